package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnkhanh/animehub-backend/models"
	"github.com/vnkhanh/animehub-backend/services"
)

func TestBrowseAnimesGenreFilterCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)

	createTestAnime(t, db, "One Piece", "1999-Present", 9.1, "Ongoing", "Action", "Adventure")
	createTestAnime(t, db, "Dragon Ball Z", "1989-1996", 8.8, "Completed", "Action")
	createTestAnime(t, db, "Your Name", "2016", 8.9, "Completed", "Romance")

	animes, total, hasMore, err := services.BrowseAnimes(db, services.BrowseFilter{Genre: "aCtIoN"})
	require.NoError(t, err)

	require.Len(t, animes, 2)
	assert.Equal(t, int64(2), total)
	assert.False(t, hasMore)

	// Mặc định xếp theo rating giảm dần
	assert.Equal(t, "One Piece", animes[0].Title)
	assert.Equal(t, "Dragon Ball Z", animes[1].Title)
}

func TestBrowseAnimesStatusFilter(t *testing.T) {
	db := setupTestDB(t)

	createTestAnime(t, db, "One Piece", "1999-Present", 9.1, "Ongoing")
	createTestAnime(t, db, "Demon Slayer", "2019-2022", 8.7, "Completed")

	animes, _, _, err := services.BrowseAnimes(db, services.BrowseFilter{Status: "ongoing"})
	require.NoError(t, err)
	require.Len(t, animes, 1)
	assert.Equal(t, "One Piece", animes[0].Title)
}

func TestBrowseAnimesYearOlderExcludesRecent(t *testing.T) {
	db := setupTestDB(t)

	createTestAnime(t, db, "Attack on Titan", "2013-2023", 9.2, "Completed")
	createTestAnime(t, db, "Demon Slayer", "2019-2022", 8.7, "Completed")
	createTestAnime(t, db, "Jujutsu Kaisen", "2020-Present", 8.6, "Ongoing")
	createTestAnime(t, db, "Cowboy Bebop", "1998-1999", 8.9, "Completed")
	createTestAnime(t, db, "One Piece", "1999-Present", 9.1, "Ongoing")

	animes, _, _, err := services.BrowseAnimes(db, services.BrowseFilter{Year: "older"})
	require.NoError(t, err)

	titles := make([]string, 0, len(animes))
	for _, a := range animes {
		titles = append(titles, a.Title)
	}
	assert.ElementsMatch(t, []string{"Cowboy Bebop", "One Piece"}, titles)
}

func TestBrowseAnimesYearSubstring(t *testing.T) {
	db := setupTestDB(t)

	createTestAnime(t, db, "Attack on Titan", "2013-2023", 9.2, "Completed")
	createTestAnime(t, db, "Demon Slayer", "2019-2022", 8.7, "Completed")

	animes, _, _, err := services.BrowseAnimes(db, services.BrowseFilter{Year: "2019"})
	require.NoError(t, err)
	require.Len(t, animes, 1)
	assert.Equal(t, "Demon Slayer", animes[0].Title)
}

func TestBrowseAnimesAlphabeticalSort(t *testing.T) {
	db := setupTestDB(t)

	createTestAnime(t, db, "One Piece", "1999-Present", 9.1, "Ongoing")
	createTestAnime(t, db, "Attack on Titan", "2013-2023", 9.2, "Completed")
	createTestAnime(t, db, "Demon Slayer", "2019-2022", 8.7, "Completed")

	animes, _, _, err := services.BrowseAnimes(db, services.BrowseFilter{Sort: "alphabetical"})
	require.NoError(t, err)
	require.Len(t, animes, 3)
	for i := 1; i < len(animes); i++ {
		assert.LessOrEqual(t, animes[i-1].Title, animes[i].Title)
	}
}

func TestBrowseAnimesUnknownSortFallsBackToRating(t *testing.T) {
	db := setupTestDB(t)

	createTestAnime(t, db, "Dragon Ball Z", "1989-1996", 8.8, "Completed")
	createTestAnime(t, db, "One Piece", "1999-Present", 9.1, "Ongoing")

	animes, _, _, err := services.BrowseAnimes(db, services.BrowseFilter{Sort: "does-not-exist"})
	require.NoError(t, err)
	require.Len(t, animes, 2)
	assert.Equal(t, "One Piece", animes[0].Title)
}

func TestBrowseAnimesPagination(t *testing.T) {
	db := setupTestDB(t)

	for i := 0; i < 15; i++ {
		createTestAnime(t, db, fmt.Sprintf("Anime %02d", i), "2020", float64(i)/10, "Ongoing")
	}

	page1, total, hasMore, err := services.BrowseAnimes(db, services.BrowseFilter{Page: 1})
	require.NoError(t, err)
	assert.Len(t, page1, services.BrowsePageSize)
	assert.Equal(t, int64(15), total)
	assert.True(t, hasMore)

	page2, _, hasMore, err := services.BrowseAnimes(db, services.BrowseFilter{Page: 2})
	require.NoError(t, err)
	assert.Len(t, page2, 3)
	assert.False(t, hasMore)
}

func TestSearchAnimesMatchesTitleSynopsisAndGenre(t *testing.T) {
	db := setupTestDB(t)

	piece := createTestAnime(t, db, "One Piece", "1999-Present", 9.1, "Ongoing", "Adventure")
	require.NoError(t, db.Model(&models.Anime{}).Where("id = ?", piece.ID).
		Update("synopsis", "Follow Luffy's epic adventure to become the Pirate King.").Error)
	createTestAnime(t, db, "Demon Slayer", "2019-2022", 8.7, "Completed", "Supernatural")

	byTitle, err := services.SearchAnimes(db, "one pie")
	require.NoError(t, err)
	require.Len(t, byTitle, 1)
	assert.Equal(t, "One Piece", byTitle[0].Title)

	bySynopsis, err := services.SearchAnimes(db, "pirate king")
	require.NoError(t, err)
	require.Len(t, bySynopsis, 1)

	byGenre, err := services.SearchAnimes(db, "supernat")
	require.NoError(t, err)
	require.Len(t, byGenre, 1)
	assert.Equal(t, "Demon Slayer", byGenre[0].Title)
}

func TestBuildAnimeViewsDecoratesUserState(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "miku")
	anime := createTestAnime(t, db, "Attack on Titan", "2013-2023", 9.2, "Completed")
	other := createTestAnime(t, db, "Demon Slayer", "2019-2022", 8.7, "Completed")

	require.NoError(t, db.Create(&models.Favorite{UserID: user.ID, AnimeID: anime.ID}).Error)
	require.NoError(t, db.Create(&models.Watchlist{UserID: user.ID, AnimeID: anime.ID}).Error)

	ep2 := models.Episode{AnimeID: anime.ID, EpisodeNumber: 2, Title: "Tập 2"}
	ep1 := models.Episode{AnimeID: anime.ID, EpisodeNumber: 1, Title: "Tập 1"}
	require.NoError(t, db.Create(&ep2).Error)
	require.NoError(t, db.Create(&ep1).Error)

	views, err := services.BuildAnimeViews(db, []models.Anime{anime, other}, &user.ID)
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.True(t, views[0].IsInFavorites)
	assert.True(t, views[0].IsInWatchlist)
	assert.False(t, views[0].IsBookmarked)
	assert.True(t, views[0].HasEpisodes)
	require.NotNil(t, views[0].FirstEpisodeID)
	assert.Equal(t, ep1.ID, *views[0].FirstEpisodeID)

	assert.False(t, views[1].IsInFavorites)
	assert.False(t, views[1].HasEpisodes)
	assert.Nil(t, views[1].FirstEpisodeID)
}

func TestBuildAnimeViewsAnonymous(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "miku")
	anime := createTestAnime(t, db, "Attack on Titan", "2013-2023", 9.2, "Completed")
	require.NoError(t, db.Create(&models.Favorite{UserID: user.ID, AnimeID: anime.ID}).Error)

	views, err := services.BuildAnimeViews(db, []models.Anime{anime}, nil)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.False(t, views[0].IsInFavorites)
	assert.False(t, views[0].IsInWatchlist)
	assert.False(t, views[0].IsBookmarked)
}

func TestTopRatedAnimes(t *testing.T) {
	db := setupTestDB(t)

	createTestAnime(t, db, "Dragon Ball Z", "1989-1996", 8.8, "Completed")
	createTestAnime(t, db, "One Piece", "1999-Present", 9.1, "Ongoing")
	createTestAnime(t, db, "Attack on Titan", "2013-2023", 9.2, "Completed")

	animes, err := services.TopRatedAnimes(db, 2)
	require.NoError(t, err)
	require.Len(t, animes, 2)
	assert.Equal(t, "Attack on Titan", animes[0].Title)
	assert.Equal(t, "One Piece", animes[1].Title)
}
