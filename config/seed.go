package config

import (
	"log"
	"os"
	"time"

	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/vnkhanh/animehub-backend/models"
)

// SeedData nạp dữ liệu mẫu. Mọi bản ghi được tra theo khóa tự nhiên
// (tên thể loại, tiêu đề anime, email admin), không dựa vào id.
func SeedData(db *gorm.DB) {
	seedGenres(db)
	seedAnimes(db)
	seedEpisodes(db)
	seedRelated(db)
	seedNews(db)
	seedAdminUser(db)
}

var genreNames = []string{
	"Action", "Adventure", "Comedy", "Drama", "Fantasy", "Horror", "Romance",
	"Sci-Fi", "Supernatural", "Psychological", "Superhero", "Thriller",
	"Martial Arts", "School", "Mecha", "Slice of Life", "Mystery",
	"Historical", "Sports", "Isekai",
}

func seedGenres(db *gorm.DB) {
	for _, name := range genreNames {
		var g models.Genre
		if err := db.Where("name = ?", name).First(&g).Error; err == nil {
			continue
		}
		if err := db.Create(&models.Genre{Name: name}).Error; err != nil {
			log.Printf("Seed genre %q lỗi: %v", name, err)
		}
	}
}

type animeSeed struct {
	title    string
	year     string
	rating   float64
	status   string
	episodes string
	studio   string
	image    string
	synopsis string
	genres   []string
}

var animeSeeds = []animeSeed{
	{"Attack on Titan", "2013-2023", 9.2, "Completed", "87", "MAPPA", "/images/attack_on_titan.jpg", "Humanity fights against giant creatures in a post-apocalyptic world.", []string{"Action", "Drama", "Fantasy", "Horror"}},
	{"One Piece", "1999-Present", 9.1, "Ongoing", "1000+", "Toei Animation", "/images/one_piece.jpg", "Follow Luffy's epic adventure to become the Pirate King.", []string{"Action", "Adventure", "Comedy", "Drama"}},
	{"Demon Slayer", "2019-2022", 8.7, "Completed", "44", "Ufotable", "/images/demon_slayer.jpg", "A young boy's journey to save his sister and defeat demons.", []string{"Action", "Supernatural", "Drama"}},
	{"My Hero Academia", "2016-Present", 8.4, "Ongoing", "113", "Bones", "/images/my_hero_academia.jpg", "Heroes and villains battle in a world where superpowers are common.", []string{"Action", "Superhero", "School"}},
	{"Naruto", "2002-2007", 8.3, "Completed", "220", "Pierrot", "/images/naruto.jpg", "A young ninja's journey to become the strongest ninja and leader of his village.", []string{"Action", "Adventure", "Martial Arts"}},
	{"Death Note", "2006-2007", 9.0, "Completed", "37", "Madhouse", "/images/death_note.jpg", "A student discovers a notebook that allows him to kill anyone by writing their name.", []string{"Thriller", "Psychological", "Supernatural"}},
	{"Dragon Ball", "1986-1989", 8.7, "Completed", "153", "Toei Animation", "/images/dragon_ball.jpg", "Goku's adventures in a martial arts world.", []string{"Action", "Adventure", "Martial Arts", "Comedy"}},
	{"Dragon Ball Z", "1989-1996", 8.8, "Completed", "291", "Toei Animation", "/images/dragon_ball_z.jpg", "Goku defends Earth from powerful villains.", []string{"Action", "Adventure", "Martial Arts", "Superhero"}},
	{"Dragon Ball Super", "2015-2018", 7.4, "Completed", "131", "Toei Animation", "/images/dragon_ball_super.jpg", "Goku faces new challenges in a more powerful universe.", []string{"Action", "Adventure", "Martial Arts", "Superhero"}},
	{"Boruto: Naruto Next Generations", "2017-Present", 6.9, "Ongoing", "293", "Pierrot", "/images/boruto.jpg", "The next generation of ninjas in the Naruto world.", []string{"Action", "Adventure", "Martial Arts"}},
	{"Kaiju No. 8", "2024-Present", 8.5, "Ongoing", "12", "Production I.G", "/images/kaiju_no_8.jpg", "A young man fights giant monsters to protect humanity.", []string{"Action", "Sci-Fi", "Horror", "Supernatural"}},
	{"Jujutsu Kaisen", "2020-Present", 8.6, "Ongoing", "24", "MAPPA", "/images/jujutsu_kaisen.jpg", "Students at a magic school fight cursed spirits.", []string{"Action", "Supernatural", "Drama", "Horror"}},
	{"Chainsaw Man", "2022-Present", 8.4, "Ongoing", "12", "MAPPA", "/images/chainsaw_man.jpg", "A devil hunter makes a contract with a chainsaw devil.", []string{"Action", "Supernatural", "Horror", "Comedy"}},
	{"Attack on Titan: The Final Season", "2020-2021", 9.1, "Completed", "16", "MAPPA", "/images/attack_on_titan_final.jpg", "The conclusion of the Attack on Titan story.", []string{"Action", "Drama", "Fantasy", "Horror"}},
	{"Fullmetal Alchemist: Brotherhood", "2009-2010", 9.1, "Completed", "64", "Bones", "/images/full_metal_alchemist_brotherhood.jpg", "Two brothers search for the Philosopher's Stone.", []string{"Action", "Adventure", "Drama", "Fantasy"}},
	{"Hunter x Hunter", "2011-2014", 9.0, "Completed", "148", "Madhouse", "/images/hunter_x_hunter.jpg", "A young boy's journey to become a Hunter.", []string{"Action", "Adventure", "Fantasy", "Martial Arts"}},
	{"One Punch Man", "2015-Present", 8.7, "Ongoing", "24", "Madhouse", "/images/one_punch_man.jpg", "A hero who can defeat any opponent with one punch.", []string{"Action", "Comedy", "Superhero", "Sci-Fi"}},
	{"Tokyo Ghoul", "2014", 7.8, "Completed", "12", "Pierrot", "/images/tokyo_ghoul.jpg", "A college student becomes a half-ghoul after an accident.", []string{"Action", "Horror", "Supernatural", "Drama"}},
	{"Bleach", "2004-2012", 8.1, "Completed", "366", "Pierrot", "/images/bleach.jpg", "A Soul Reaper protects the living world from evil spirits.", []string{"Action", "Adventure", "Supernatural", "Comedy"}},
	{"Fairy Tail", "2009-2019", 7.7, "Completed", "328", "A-1 Pictures", "/images/fairy_tail.jpg", "A guild of wizards on magical adventures.", []string{"Action", "Adventure", "Comedy", "Fantasy"}},
}

func seedAnimes(db *gorm.DB) {
	for _, s := range animeSeeds {
		var existing models.Anime
		if err := db.Where("title = ?", s.title).First(&existing).Error; err == nil {
			continue
		}

		anime := models.Anime{
			Title:        s.title,
			Slug:         slug.Make(s.title),
			Synopsis:     s.synopsis,
			Year:         s.year,
			Rating:       s.rating,
			Status:       s.status,
			EpisodeCount: s.episodes,
			Studio:       s.studio,
			CoverURL:     s.image,
			PosterURL:    s.image,
		}
		if err := db.Create(&anime).Error; err != nil {
			log.Printf("Seed anime %q lỗi: %v", s.title, err)
			continue
		}

		for _, gname := range s.genres {
			var g models.Genre
			if err := db.Where("name = ?", gname).First(&g).Error; err != nil {
				log.Printf("Không tìm thấy genre %q cho %q", gname, s.title)
				continue
			}
			if err := db.Create(&models.AnimeGenre{AnimeID: anime.ID, GenreID: g.ID}).Error; err != nil {
				log.Printf("Seed anime-genre %q/%q lỗi: %v", s.title, gname, err)
			}
		}
	}
}

func seedEpisodes(db *gorm.DB) {
	var dbz models.Anime
	if err := db.Where("title = ?", "Dragon Ball Z").First(&dbz).Error; err != nil {
		log.Println("Không tìm thấy Dragon Ball Z, bỏ qua seed episode")
		return
	}

	samples := []models.Episode{
		{AnimeID: dbz.ID, EpisodeNumber: 1, Title: "The New Threat", Duration: "24 min", AirDate: timePtr(1989, 4, 26)},
		{AnimeID: dbz.ID, EpisodeNumber: 2, Title: "Reunions", Duration: "24 min", AirDate: timePtr(1989, 5, 3)},
		{AnimeID: dbz.ID, EpisodeNumber: 3, Title: "Unlikely Alliance", Duration: "24 min", AirDate: timePtr(1989, 5, 10)},
	}
	for _, ep := range samples {
		var existing models.Episode
		if err := db.Where("anime_id = ? AND episode_number = ?", dbz.ID, ep.EpisodeNumber).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&ep).Error; err != nil {
			log.Printf("Seed episode %d lỗi: %v", ep.EpisodeNumber, err)
		}
	}
}

func timePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

// Liên kết 2 chiều giữa các phần của cùng series
func seedRelated(db *gorm.DB) {
	pairs := [][2]string{
		{"Dragon Ball", "Dragon Ball Z"},
		{"Dragon Ball Z", "Dragon Ball Super"},
		{"Naruto", "Boruto: Naruto Next Generations"},
		{"Attack on Titan", "Attack on Titan: The Final Season"},
	}
	for _, p := range pairs {
		var a, b models.Anime
		if err := db.Where("title = ?", p[0]).First(&a).Error; err != nil {
			continue
		}
		if err := db.Where("title = ?", p[1]).First(&b).Error; err != nil {
			continue
		}
		for _, edge := range []models.RelatedAnime{{AnimeID: a.ID, RelatedAnimeID: b.ID}, {AnimeID: b.ID, RelatedAnimeID: a.ID}} {
			var existing models.RelatedAnime
			if err := db.Where("anime_id = ? AND related_anime_id = ?", edge.AnimeID, edge.RelatedAnimeID).First(&existing).Error; err == nil {
				continue
			}
			if err := db.Create(&edge).Error; err != nil {
				log.Printf("Seed related %q-%q lỗi: %v", p[0], p[1], err)
			}
		}
	}
}

func seedNews(db *gorm.DB) {
	var count int64
	db.Model(&models.News{}).Count(&count)
	if count > 0 {
		return
	}

	now := time.Now().UTC()
	articles := []models.News{
		{
			Title:       "One Piece Chapter 1127: Luffy's Next Big Challenge",
			Content:     "The latest One Piece chapter has fans buzzing with excitement! In Chapter 1127, Luffy and his Straw Hat crew face their most challenging opponent yet. What are your thoughts on this latest development?",
			Author:      "AnimeHub Staff",
			ImageURL:    "/images/one_piece.jpg",
			NewsType:    models.NewsInternal,
			PublishedAt: now.AddDate(0, 0, -1),
		},
		{
			Title:       "Demon Slayer Season 4: Hashira Training Arc Confirmed",
			Content:     "Ufotable has officially confirmed that the Hashira Training Arc will be adapted into Season 4 of the anime. Fans can expect the same high-quality animation that made the series a worldwide phenomenon.",
			Author:      "AnimeHub Staff",
			ImageURL:    "/images/demon_slayer.jpg",
			NewsType:    models.NewsInternal,
			PublishedAt: now.AddDate(0, 0, -2),
		},
		{
			Title:       "Jujutsu Kaisen Season 3: Production Update",
			Content:     "MAPPA has released a new production update for Jujutsu Kaisen Season 3. The season will adapt the Shibuya Incident arc, widely regarded as one of the best story arcs in the series.",
			Author:      "AnimeHub Staff",
			ImageURL:    "/images/jujutsu_kaisen.jpg",
			NewsType:    models.NewsInternal,
			PublishedAt: now.AddDate(0, 0, -3),
		},
		{
			Title:       "My Hero Academia: Final Season in Production",
			Content:     "Bones studio has confirmed that My Hero Academia's final season is currently in active production. This will be a bittersweet ending for a series that has captivated audiences for over 6 years.",
			Author:      "AnimeHub Staff",
			ImageURL:    "/images/my_hero_academia.jpg",
			NewsType:    models.NewsInternal,
			PublishedAt: now.AddDate(0, 0, -4),
		},
		{
			Title:       "Chainsaw Man Anime: Season 2 Confirmed",
			Content:     "MAPPA has officially announced Chainsaw Man Season 2! The second season will adapt the International Assassins arc from Tatsuki Fujimoto's manga.",
			Author:      "AnimeHub Staff",
			ImageURL:    "/images/chainsaw_man.jpg",
			NewsType:    models.NewsInternal,
			PublishedAt: now.AddDate(0, 0, -5),
		},
	}
	for i := range articles {
		if err := db.Create(&articles[i]).Error; err != nil {
			log.Printf("Seed news %q lỗi: %v", articles[i].Title, err)
		}
	}
}

// AdminEmail là tài khoản admin gốc, không cho hạ quyền / xóa
func AdminEmail() string {
	if email := os.Getenv("ADMIN_EMAIL"); email != "" {
		return email
	}
	return "admin@animehub.com"
}

func seedAdminUser(db *gorm.DB) {
	email := AdminEmail()

	var existing models.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "Admin123!"
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Không thể mã hoá mật khẩu admin: %v", err)
		return
	}

	admin := models.User{
		Username:  "admin",
		Email:     email,
		Password:  string(hashed),
		Role:      models.RoleAdmin,
		FirstName: "Admin",
		LastName:  "User",
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Seed admin user lỗi: %v", err)
		return
	}
	log.Printf("Đã tạo admin user: %s", email)
}
