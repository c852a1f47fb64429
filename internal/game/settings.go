// internal/game/settings.go
//
// Per-game settings, validated once at game creation.

package game

import "github.com/scramble-game/go-server/internal/dictionary"

// Settings configures one game. Wire names follow the client contract.
type Settings struct {
	// NumberOfTiles is how many tiles each round draws.
	NumberOfTiles int `json:"number_of_tiles"`
	// NumberOfLookups is how many failed dictionary checks a player may
	// spend per round before a further miss forfeits their turn.
	NumberOfLookups int `json:"number_of_lookups"`
	// ScoringMethod selects how answers are scored.
	ScoringMethod dictionary.ScoringMethod `json:"scoring_method"`
	// BannedLetters never show up in a draw.
	BannedLetters Letters `json:"banned_letters"`
}

// DefaultSettings are applied when a create request carries no settings.
func DefaultSettings() Settings {
	return Settings{
		NumberOfTiles:   7,
		NumberOfLookups: 2,
		ScoringMethod:   dictionary.ScoreNormal,
		BannedLetters:   Letters{},
	}
}

// Valid reports whether the settings can produce a playable game.
// An unrecognized scoring method is rejected rather than coerced.
func (s Settings) Valid() bool {
	if s.NumberOfTiles < 2 {
		return false
	}
	switch s.ScoringMethod {
	case dictionary.ScoreNormal, dictionary.ScoreLength:
		return true
	}
	return false
}

// BannedSet converts the banned letters to the set form the tile drawer
// consumes. Letters are uppercased to match the tile alphabet.
func (s Settings) BannedSet() map[rune]struct{} {
	set := make(map[rune]struct{}, len(s.BannedLetters))
	for _, r := range s.BannedLetters {
		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		set[r] = struct{}{}
	}
	return set
}
