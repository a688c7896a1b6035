package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vnkhanh/animehub-backend/controllers"
	"github.com/vnkhanh/animehub-backend/middleware"
	"github.com/vnkhanh/animehub-backend/services"
	"github.com/vnkhanh/animehub-backend/ws"
)

func SetupRouter(r *gin.Engine, db *gorm.DB, tmdb *services.TmdbService) *gin.Engine {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", middleware.DBMiddleware(db), controllers.HealthCheck)

	api := r.Group("/api")
	api.Use(middleware.DBMiddleware(db), middleware.OptionalAuthMiddleware())

	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Catalog công khai, user đăng nhập thì có thêm trạng thái danh sách
	{
		api.GET("/home", controllers.GetHome)
		api.GET("/browse", controllers.BrowseAnimes)
		api.GET("/search", controllers.SearchAnimes)
		api.GET("/genres", controllers.GetGenres)
		api.GET("/anime/:slug", controllers.GetAnimeDetail(tmdb))
		api.GET("/animes/:id/episodes", controllers.GetEpisodes)
		api.GET("/animes/:id/comments", controllers.GetComments)
		api.GET("/animes/:id/comments/count", controllers.GetCommentCount)
		api.GET("/episodes/:id/watch", controllers.WatchEpisode)
	}

	// Tin tức + forum
	{
		api.GET("/news", controllers.GetNews)
		api.GET("/news/:id", controllers.GetNewsDetail)
		api.GET("/news/:id/discussion", controllers.GetDiscussion)
		api.POST("/news/:id/posts", controllers.CreateForumPost)
		api.POST("/news/:id/replies", controllers.CreateForumReply)
	}

	// Toggle danh sách: controller tự trả success=false khi chưa đăng nhập
	{
		api.POST("/watchlist/add", controllers.AddToWatchlist)
		api.POST("/watchlist/remove", controllers.RemoveFromWatchlist)
		api.POST("/favorites/add", controllers.AddToFavorites)
		api.POST("/favorites/remove", controllers.RemoveFromFavorites)
		api.POST("/bookmarks/add", controllers.AddBookmark)
		api.POST("/bookmarks/remove", controllers.RemoveBookmark)
		api.POST("/comments", controllers.AddComment)
		api.DELETE("/comments/:id", controllers.DeleteComment)
	}

	user := api.Group("/user")
	{
		user.Use(middleware.AuthMiddleware())
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.POST("/avatar", controllers.UploadAvatar)
		user.GET("/dashboard", controllers.GetDashboard)
		user.GET("/watchlist", controllers.GetWatchlist)
		user.GET("/favorites", controllers.GetFavorites)
		user.GET("/bookmarks", controllers.GetBookmarks)
	}

	admin := api.Group("/admin")
	{
		admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles("admin"))

		//Quản lý anime
		admin.GET("/animes", controllers.AdminListAnimes)
		admin.POST("/animes", controllers.AdminCreateAnime)
		admin.PUT("/animes/:id", controllers.AdminUpdateAnime)
		admin.DELETE("/animes/:id", controllers.AdminDeleteAnime)
		admin.POST("/animes/:id/image", controllers.AdminUploadAnimeImage)
		admin.GET("/tmdb/search", controllers.AdminSearchTmdb(tmdb))

		//Quản lý tập phim
		admin.GET("/episodes", controllers.AdminListEpisodes)
		admin.POST("/episodes", controllers.AdminCreateEpisode)
		admin.PUT("/episodes/:id", controllers.AdminUpdateEpisode)
		admin.DELETE("/episodes/:id", controllers.AdminDeleteEpisode)

		//Quản lý tin tức
		admin.GET("/news", controllers.AdminListNews)
		admin.POST("/news", controllers.AdminCreateNews)
		admin.PUT("/news/:id", controllers.AdminUpdateNews)
		admin.DELETE("/news/:id", controllers.AdminDeleteNews)

		//Quản lý người dùng
		admin.GET("/users", controllers.AdminListUsers)
		admin.PATCH("/users/:id/promote", controllers.AdminPromoteUser)
		admin.PATCH("/users/:id/demote", controllers.AdminDemoteUser)
		admin.DELETE("/users/:id", controllers.AdminDeleteUser)
	}

	r.GET("/ws/anime/:id", ws.HandleAnimeWebSocket)
	r.GET("/ws/status", ws.HandleGlobalWebSocket)

	return r
}
