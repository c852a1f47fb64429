// internal/game/errors.go
//
// The business-error taxonomy. Every rejected operation in the core maps to
// exactly one of these sentinels; the HTTP layer serializes them verbatim.
// These are expected outcomes, not faults — the core never logs them.

package game

import "errors"

var (
	ErrGameConflict         = errors.New("game conflict")
	ErrGameNotFound         = errors.New("game not found")
	ErrPlayerConflict       = errors.New("player conflict")
	ErrPlayerNotFound       = errors.New("player not found")
	ErrRoundNotInStartState = errors.New("round not in start state")
	ErrRoundNotCollecting   = errors.New("round not in collecting answer state")
	ErrWordNotInDictionary  = errors.New("word was not in dictionary")
	ErrWordUsesExtraLetters = errors.New("word uses extra letters")
	ErrInvalidGameSettings  = errors.New("invalid game settings")
	ErrWordTooShort         = errors.New("word must be at least two letters long")
)

// Kind returns the machine-readable identifier clients branch on,
// or "" for errors outside the taxonomy.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrGameConflict):
		return "GameConflict"
	case errors.Is(err, ErrGameNotFound):
		return "GameNotFound"
	case errors.Is(err, ErrPlayerConflict):
		return "PlayerConflict"
	case errors.Is(err, ErrPlayerNotFound):
		return "PlayerNotFound"
	case errors.Is(err, ErrRoundNotInStartState):
		return "RoundNotInStartState"
	case errors.Is(err, ErrRoundNotCollecting):
		return "RoundNotInCollectingAnswersState"
	case errors.Is(err, ErrWordNotInDictionary):
		return "WordNotInDictionary"
	case errors.Is(err, ErrWordUsesExtraLetters):
		return "WordUsesExtraLetters"
	case errors.Is(err, ErrInvalidGameSettings):
		return "InvalidGameSettings"
	case errors.Is(err, ErrWordTooShort):
		return "WordMustBeAtLeastTwoLetters"
	}
	return ""
}
