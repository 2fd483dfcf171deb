// internal/domain/catalog/store_test.go
package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGames() []Game {
	return []Game{
		{
			ID: "1", Title: "Cyberpunk 2077", Platform: PlatformPC,
			Developer: "CD Projekt Red", Publisher: "CD Projekt",
			Genre: []string{"RPG", "Open World"}, Tags: []string{"Cyberpunk", "Futuristic"},
			OriginalPrice: 59.99, DiscountedPrice: 29.99, Discount: 50,
		},
		{
			ID: "2", Title: "Halo Infinite", Platform: PlatformXbox,
			Developer: "343 Industries", Publisher: "Xbox Game Studios",
			Genre: []string{"FPS"}, Tags: []string{"Sci-Fi", "Shooter"},
			OriginalPrice: 59.99, DiscountedPrice: 29.99, Discount: 50,
		},
		{
			ID: "3", Title: "Super Mario Odyssey", Platform: PlatformNintendo,
			Developer: "Nintendo EPD", Publisher: "Nintendo",
			Genre: []string{"Platformer"}, Tags: []string{"Family Friendly"},
			OriginalPrice: 59.99, DiscountedPrice: 39.99, Discount: 33,
		},
	}
}

func TestSearchMatchesAcrossFields(t *testing.T) {
	store := NewStore(testGames(), 30)

	cases := []struct {
		query string
		want  []string
	}{
		{"cyberpunk", []string{"1"}},     // title and tag
		{"343", []string{"2"}},           // developer
		{"nintendo", []string{"3"}},      // publisher and developer
		{"platformer", []string{"3"}},    // genre entry
		{"sci-fi", []string{"2"}},        // tag entry
		{"MARIO", []string{"3"}},         // case-insensitive
		{"", []string{"1", "2", "3"}},    // empty clears the filter
		{"zzz", []string{}},              // no match
	}

	for _, tc := range cases {
		store.SetSearchQuery(tc.query)
		got := store.FilteredGames()
		ids := make([]string, 0, len(got))
		for _, g := range got {
			ids = append(ids, g.ID)
		}
		assert.Equal(t, tc.want, ids, "query %q", tc.query)
	}
}

func TestPlatformFilter(t *testing.T) {
	store := NewStore(testGames(), 30)

	require.NoError(t, store.SetSelectedPlatform(PlatformXbox))
	filtered := store.FilteredGames()
	require.Len(t, filtered, 1)
	assert.Equal(t, "2", filtered[0].ID)

	// clearing the filter restores the full view
	require.NoError(t, store.SetSelectedPlatform(""))
	assert.Len(t, store.FilteredGames(), 3)
}

func TestSetSelectedPlatformRejectsUnknownValue(t *testing.T) {
	store := NewStore(testGames(), 30)
	store.SetCurrentPage(7)

	err := store.SetSelectedPlatform("sega")
	require.ErrorIs(t, err, ErrInvalidPlatform)

	// query state is untouched on rejection
	assert.Equal(t, 7, store.CurrentPage())
	assert.Equal(t, Platform(""), store.SelectedPlatform())
}

func TestQueryMutationsResetPage(t *testing.T) {
	store := NewStore(testGames(), 1)

	store.SetCurrentPage(3)
	store.SetSearchQuery("a")
	assert.Equal(t, 1, store.CurrentPage())

	store.SetCurrentPage(2)
	require.NoError(t, store.SetSelectedPlatform(PlatformPC))
	assert.Equal(t, 1, store.CurrentPage())
}

func TestPagination(t *testing.T) {
	// 32 pc games, page size 30: two pages of 30 and 2
	games := make([]Game, 32)
	for i := range games {
		games[i] = Game{ID: fmt.Sprintf("%d", i+1), Title: fmt.Sprintf("Game %d", i+1), Platform: PlatformPC}
	}
	store := NewStore(games, 30)

	require.NoError(t, store.SetSelectedPlatform(PlatformPC))
	assert.Equal(t, 2, store.TotalPages())

	assert.Len(t, store.PageGames(), 30)

	store.SetCurrentPage(2)
	page2 := store.PageGames()
	require.Len(t, page2, 2)
	assert.Equal(t, "31", page2[0].ID)

	// out-of-range pages yield an empty slice, not an error
	store.SetCurrentPage(3)
	assert.Empty(t, store.PageGames())
	store.SetCurrentPage(0)
	assert.Empty(t, store.PageGames())
}

func TestQueryDerivesViewWithoutTouchingState(t *testing.T) {
	store := NewStore(testGames(), 30)
	store.SetSearchQuery("halo")

	result, err := store.Query("", PlatformNintendo, 1)
	require.NoError(t, err)
	require.Len(t, result.Games, 1)
	assert.Equal(t, "3", result.Games[0].ID)
	assert.Equal(t, 1, result.TotalPages)
	assert.Equal(t, 1, result.TotalCount)

	// the store's own query state is unchanged
	assert.Equal(t, "halo", store.SearchQuery())
	assert.Equal(t, Platform(""), store.SelectedPlatform())

	_, err = store.Query("", "sega", 1)
	assert.ErrorIs(t, err, ErrInvalidPlatform)

	// out-of-range pages yield an empty slice with totals intact
	result, err = store.Query("", "", 9)
	require.NoError(t, err)
	assert.Empty(t, result.Games)
	assert.Equal(t, 3, result.TotalCount)
}

func TestQueryIsolatedFromConcurrentCallers(t *testing.T) {
	games := make([]Game, 0, 40)
	for i := 1; i <= 40; i++ {
		platform := PlatformPC
		if i%2 == 0 {
			platform = PlatformXbox
		}
		games = append(games, Game{ID: fmt.Sprintf("%d", i), Title: fmt.Sprintf("Game %d", i), Platform: platform})
	}
	store := NewStore(games, 30)

	// one caller keeps flipping the store's own filter while another derives
	// xbox views; the derived views must never reflect the other caller
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 500; i++ {
			_ = store.SetSelectedPlatform(PlatformPC)
			store.SetSearchQuery("")
		}
	}()

	for i := 0; i < 500; i++ {
		result, err := store.Query("", PlatformXbox, 1)
		if !assert.NoError(t, err) {
			break
		}
		assert.Equal(t, 20, result.TotalCount)
		for _, g := range result.Games {
			if !assert.Equal(t, PlatformXbox, g.Platform) {
				break
			}
		}
	}
	<-done
}

func TestNewStoreClampsPageSize(t *testing.T) {
	store := NewStore(testGames(), 0)

	assert.Equal(t, 3, store.TotalPages())
	assert.Len(t, store.PageGames(), 1)

	result, err := store.Query("", "", 2)
	require.NoError(t, err)
	assert.Len(t, result.Games, 1)
}

func TestEmptyFilteredView(t *testing.T) {
	store := NewStore(testGames(), 30)

	store.SetSearchQuery("no such game")
	assert.Equal(t, 0, store.TotalPages())
	assert.Empty(t, store.PageGames())

	store.SetCurrentPage(5)
	assert.Empty(t, store.PageGames())
}

func TestGameByIDIgnoresFilters(t *testing.T) {
	store := NewStore(testGames(), 30)

	// filter down to xbox only, then look up a nintendo title
	require.NoError(t, store.SetSelectedPlatform(PlatformXbox))

	game, err := store.GameByID("3")
	require.NoError(t, err)
	assert.Equal(t, "Super Mario Odyssey", game.Title)

	_, err = store.GameByID("999")
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestResetFilters(t *testing.T) {
	store := NewStore(testGames(), 30)

	store.SetSearchQuery("halo")
	require.NoError(t, store.SetSelectedPlatform(PlatformXbox))
	store.SetCurrentPage(2)

	store.ResetFilters()

	assert.Equal(t, "", store.SearchQuery())
	assert.Equal(t, Platform(""), store.SelectedPlatform())
	assert.Equal(t, 1, store.CurrentPage())
	assert.Len(t, store.FilteredGames(), 3)
}

func TestLoadGames(t *testing.T) {
	games, err := LoadGames()
	require.NoError(t, err)
	require.NotEmpty(t, games)

	seen := make(map[string]bool)
	for _, g := range games {
		assert.NotEmpty(t, g.ID)
		assert.NotEmpty(t, g.Title)
		assert.True(t, g.Platform.IsValid(), "game %s platform", g.ID)
		assert.False(t, seen[g.ID], "duplicate id %s", g.ID)
		assert.LessOrEqual(t, g.DiscountedPrice, g.OriginalPrice, "game %s pricing", g.ID)
		seen[g.ID] = true
	}
}
