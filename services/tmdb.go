package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const tmdbCacheTTL = time.Hour

// TmdbService gọi API TMDB (read-only) để lấy metadata bổ sung cho anime.
// Lỗi hoặc response không thành công trả về nil: trang anime vẫn render
// bằng dữ liệu trong DB, metadata ngoài chỉ là phần thêm.
type TmdbService struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	cache      Cache
}

func NewTmdbService(httpClient *http.Client, apiKey, baseURL string, cache Cache) *TmdbService {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &TmdbService{
		httpClient: httpClient,
		apiKey:     apiKey,
		baseURL:    baseURL,
		cache:      cache,
	}
}

type TmdbTvShow struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	OriginalName string  `json:"original_name"`
	Overview     string  `json:"overview"`
	FirstAirDate string  `json:"first_air_date"`
	VoteAverage  float64 `json:"vote_average"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
}

type TmdbSeason struct {
	SeasonNumber int    `json:"season_number"`
	Name         string `json:"name"`
	EpisodeCount int    `json:"episode_count"`
}

type TmdbGenre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type TmdbTvDetails struct {
	TmdbTvShow
	Seasons          []TmdbSeason `json:"seasons"`
	Genres           []TmdbGenre  `json:"genres"`
	Status           string       `json:"status"`
	NumberOfSeasons  int          `json:"number_of_seasons"`
	NumberOfEpisodes int          `json:"number_of_episodes"`
}

type TmdbImage struct {
	FilePath    string  `json:"file_path"`
	VoteAverage float64 `json:"vote_average"`
}

type TmdbImages struct {
	Backdrops []TmdbImage `json:"backdrops"`
	Posters   []TmdbImage `json:"posters"`
}

type TmdbSearchResult struct {
	Results []TmdbTvShow `json:"results"`
}

// GetAnimeDetails lấy chi tiết TV show, cache 1 giờ theo (tmdbID, language)
func (s *TmdbService) GetAnimeDetails(tmdbID int, language string) (*TmdbTvDetails, error) {
	if language == "" {
		language = "ja"
	}
	cacheKey := fmt.Sprintf("tmdb_details_%d_%s", tmdbID, language)
	if cached, ok := s.cache.Get(cacheKey); ok {
		return cached.(*TmdbTvDetails), nil
	}

	endpoint := fmt.Sprintf("%stv/%d?api_key=%s&language=%s", s.baseURL, tmdbID, s.apiKey, language)
	var details TmdbTvDetails
	if ok, err := s.fetchJSON(endpoint, &details); !ok {
		return nil, err
	}

	s.cache.Set(cacheKey, &details, tmdbCacheTTL)
	return &details, nil
}

// GetAnimeImages lấy ảnh backdrop/poster, cache 1 giờ theo tmdbID
func (s *TmdbService) GetAnimeImages(tmdbID int) (*TmdbImages, error) {
	cacheKey := fmt.Sprintf("tmdb_images_%d", tmdbID)
	if cached, ok := s.cache.Get(cacheKey); ok {
		return cached.(*TmdbImages), nil
	}

	endpoint := fmt.Sprintf("%stv/%d/images?api_key=%s", s.baseURL, tmdbID, s.apiKey)
	var images TmdbImages
	if ok, err := s.fetchJSON(endpoint, &images); !ok {
		return nil, err
	}

	s.cache.Set(cacheKey, &images, tmdbCacheTTL)
	return &images, nil
}

// SearchAnime tìm TV show theo tên (không cache, chỉ dùng trong admin)
func (s *TmdbService) SearchAnime(query, language string) (*TmdbSearchResult, error) {
	if language == "" {
		language = "ja"
	}
	endpoint := fmt.Sprintf("%ssearch/tv?api_key=%s&query=%s&language=%s",
		s.baseURL, s.apiKey, url.QueryEscape(query), language)

	var result TmdbSearchResult
	if ok, err := s.fetchJSON(endpoint, &result); !ok {
		return nil, err
	}
	return &result, nil
}

func (s *TmdbService) fetchJSON(endpoint string, out interface{}) (bool, error) {
	resp, err := s.httpClient.Get(endpoint)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return false, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, err
	}
	return true, nil
}
