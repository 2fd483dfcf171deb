// internal/domain/catalog/data.go
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed data/games.json
var gamesJSON []byte

// LoadGames parses the embedded seed catalog. Loaded once at startup; the
// records are never mutated afterwards.
func LoadGames() ([]Game, error) {
	var games []Game
	if err := json.Unmarshal(gamesJSON, &games); err != nil {
		return nil, fmt.Errorf("failed to parse embedded game catalog: %w", err)
	}

	for _, game := range games {
		if !game.Platform.IsValid() {
			return nil, fmt.Errorf("game %s has unsupported platform %q", game.ID, game.Platform)
		}
	}

	return games, nil
}
