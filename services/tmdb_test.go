package services_test

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnkhanh/animehub-backend/services"
)

func TestGetAnimeDetailsCachesResponse(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 1429, "name": "Attack on Titan", "number_of_seasons": 4,
			"seasons": [{"season_number": 1, "name": "Season 1", "episode_count": 25}]}`))
	}))
	defer server.Close()

	tmdb := services.NewTmdbService(server.Client(), "test-key", server.URL+"/", services.NewMemoryCache())

	details, err := tmdb.GetAnimeDetails(1429, "")
	require.NoError(t, err)
	require.NotNil(t, details)
	assert.Equal(t, "Attack on Titan", details.Name)
	assert.Equal(t, 4, details.NumberOfSeasons)
	require.Len(t, details.Seasons, 1)
	assert.Equal(t, 25, details.Seasons[0].EpisodeCount)

	// Lần 2 đọc từ cache, không gọi lại API
	again, err := tmdb.GetAnimeDetails(1429, "")
	require.NoError(t, err)
	assert.Equal(t, details, again)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))

	// Đổi language là một cache key khác
	_, err = tmdb.GetAnimeDetails(1429, "en")
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestGetAnimeDetailsUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	tmdb := services.NewTmdbService(server.Client(), "test-key", server.URL+"/", services.NewMemoryCache())

	details, err := tmdb.GetAnimeDetails(999999, "")
	assert.NoError(t, err)
	assert.Nil(t, details)
}

func TestGetAnimeImages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"backdrops": [{"file_path": "/bd.jpg", "vote_average": 5.5}],
			"posters": [{"file_path": "/p1.jpg"}, {"file_path": "/p2.jpg"}]}`))
	}))
	defer server.Close()

	tmdb := services.NewTmdbService(server.Client(), "test-key", server.URL+"/", services.NewMemoryCache())

	images, err := tmdb.GetAnimeImages(1429)
	require.NoError(t, err)
	require.NotNil(t, images)
	assert.Len(t, images.Backdrops, 1)
	assert.Len(t, images.Posters, 2)
}

func TestSearchAnimeEscapesQuery(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results": [{"id": 37854, "name": "One Piece"}]}`))
	}))
	defer server.Close()

	tmdb := services.NewTmdbService(server.Client(), "test-key", server.URL+"/", services.NoopCache{})

	result, err := tmdb.SearchAnime("one piece & more", "")
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Len(t, result.Results, 1)
	assert.Equal(t, "One Piece", result.Results[0].Name)
	assert.Equal(t, "one piece & more", gotQuery)
}
