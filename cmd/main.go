package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/vnkhanh/animehub-backend/config"
	"github.com/vnkhanh/animehub-backend/routes"
	"github.com/vnkhanh/animehub-backend/services"
	"github.com/vnkhanh/animehub-backend/utils"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("Không tìm thấy file .env")
	}

	config.InitDB()

	// Seed dữ liệu mẫu, lỗi từng bản ghi chỉ log chứ không dừng server
	config.SeedData(config.DB)

	// Dọn password reset token hết hạn theo chu kỳ
	utils.StartCleanupJob(config.DB)

	tmdb := services.NewTmdbService(nil,
		os.Getenv("TMDB_API_KEY"),
		os.Getenv("TMDB_BASE_URL"),
		services.NewMemoryCache(),
	)

	r := gin.Default()

	//Bật CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r = routes.SetupRouter(r, config.DB, tmdb)

	// Route test server
	r.GET("/", func(c *gin.Context) {
		c.String(200, "AnimeHub server is running")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("Server running at Port:" + port)
	r.Run(":" + port)
}
