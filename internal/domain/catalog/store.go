// internal/domain/catalog/store.go
package catalog

import (
	"errors"
	"strings"
	"sync"
)

var (
	// ErrGameNotFound is returned when a game id does not exist in the catalog
	ErrGameNotFound = errors.New("game not found")

	// ErrInvalidPlatform is returned when a platform filter value is not supported
	ErrInvalidPlatform = errors.New("invalid platform")
)

// Store holds the master game list and derives a filtered, paginated view
// from the current query state. The filtered view is recomputed eagerly on
// every mutating call, so reads always observe the latest query state.
type Store struct {
	mu sync.RWMutex

	games    []Game
	filtered []Game

	searchQuery      string
	selectedPlatform Platform // empty means no platform filter
	currentPage      int
	pageSize         int
}

// NewStore creates a catalog store over the given game list. A page size
// below 1 is clamped to 1 so page arithmetic stays well-defined.
func NewStore(games []Game, pageSize int) *Store {
	if pageSize < 1 {
		pageSize = 1
	}
	s := &Store{
		games:       games,
		currentPage: 1,
		pageSize:    pageSize,
	}
	s.filtered = s.applyFilters()
	return s
}

// QueryResult is a self-contained derived view for a single query, detached
// from the store's own query state.
type QueryResult struct {
	Games      []Game
	TotalPages int
	TotalCount int
}

// Query derives a filtered, paginated view for the given parameters without
// touching the store's query state, so concurrent callers never observe each
// other's filters. Unsupported platform values are rejected with
// ErrInvalidPlatform.
func (s *Store) Query(search string, platform Platform, page int) (QueryResult, error) {
	if platform != "" && !platform.IsValid() {
		return QueryResult{}, ErrInvalidPlatform
	}

	s.mu.RLock()
	games := s.games
	s.mu.RUnlock()

	filtered := filterGames(games, platform, search)
	return QueryResult{
		Games:      pageSlice(filtered, page, s.pageSize),
		TotalPages: (len(filtered) + s.pageSize - 1) / s.pageSize,
		TotalCount: len(filtered),
	}, nil
}

// SetSearchQuery sets the free-text search filter and resets to the first
// page. An empty query clears the filter.
func (s *Store) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.searchQuery = query
	s.currentPage = 1
	s.filtered = s.applyFilters()
}

// SetSelectedPlatform sets the platform filter and resets to the first page.
// An empty platform clears the filter. Unsupported values are rejected with
// ErrInvalidPlatform and leave the query state untouched.
func (s *Store) SetSelectedPlatform(platform Platform) error {
	if platform != "" && !platform.IsValid() {
		return ErrInvalidPlatform
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.selectedPlatform = platform
	s.currentPage = 1
	s.filtered = s.applyFilters()
	return nil
}

// SetCurrentPage moves the page pointer. The store does not clamp the value;
// out-of-range pages simply yield an empty slice from PageGames.
func (s *Store) SetCurrentPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentPage = page
}

// ResetFilters clears the search text and platform selection and returns to
// the first page.
func (s *Store) ResetFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.searchQuery = ""
	s.selectedPlatform = ""
	s.currentPage = 1
	s.filtered = s.applyFilters()
}

// FilteredGames returns all games passing the current platform and search
// filters.
func (s *Store) FilteredGames() []Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Game, len(s.filtered))
	copy(out, s.filtered)
	return out
}

// PageGames returns the slice of the filtered view for the current page.
// Pages beyond the filtered range yield an empty slice.
func (s *Store) PageGames() []Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return pageSlice(s.filtered, s.currentPage, s.pageSize)
}

// TotalPages returns the number of pages in the filtered view, zero when the
// filtered view is empty.
func (s *Store) TotalPages() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return (len(s.filtered) + s.pageSize - 1) / s.pageSize
}

// GameByID looks up a game in the full catalog, ignoring active filters
func (s *Store) GameByID(id string) (Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, game := range s.games {
		if game.ID == id {
			return game, nil
		}
	}
	return Game{}, ErrGameNotFound
}

// SearchQuery returns the current free-text filter
func (s *Store) SearchQuery() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searchQuery
}

// SelectedPlatform returns the current platform filter, empty when unset
func (s *Store) SelectedPlatform() Platform {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedPlatform
}

// CurrentPage returns the current page pointer
func (s *Store) CurrentPage() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentPage
}

// FilteredCount returns the size of the filtered view
func (s *Store) FilteredCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.filtered)
}

// Size returns the size of the full catalog, ignoring active filters
func (s *Store) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}

// applyFilters recomputes the filtered view from the master list. Callers
// must hold the write lock (or be the constructor).
func (s *Store) applyFilters() []Game {
	return filterGames(s.games, s.selectedPlatform, s.searchQuery)
}

// filterGames applies the platform and search filters over a game list
func filterGames(games []Game, platform Platform, search string) []Game {
	filtered := games

	if platform != "" {
		byPlatform := make([]Game, 0, len(filtered))
		for _, game := range filtered {
			if game.Platform == platform {
				byPlatform = append(byPlatform, game)
			}
		}
		filtered = byPlatform
	}

	query := strings.ToLower(strings.TrimSpace(search))
	if query != "" {
		byQuery := make([]Game, 0, len(filtered))
		for _, game := range filtered {
			if matchesQuery(game, query) {
				byQuery = append(byQuery, game)
			}
		}
		filtered = byQuery
	}

	return filtered
}

// pageSlice copies one page out of a filtered view. Pages beyond the range
// yield an empty slice.
func pageSlice(filtered []Game, page, pageSize int) []Game {
	start := (page - 1) * pageSize
	if start < 0 || start >= len(filtered) {
		return []Game{}
	}

	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	out := make([]Game, end-start)
	copy(out, filtered[start:end])
	return out
}

// matchesQuery reports whether the game matches a lowercased search query.
// The match is a substring test against title, developer, publisher and every
// genre and tag entry.
func matchesQuery(game Game, query string) bool {
	if strings.Contains(strings.ToLower(game.Title), query) ||
		strings.Contains(strings.ToLower(game.Developer), query) ||
		strings.Contains(strings.ToLower(game.Publisher), query) {
		return true
	}
	for _, genre := range game.Genre {
		if strings.Contains(strings.ToLower(genre), query) {
			return true
		}
	}
	for _, tag := range game.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}
