// internal/game/round.go
//
// One round: a fixed tile draw, the answers collected against it, and the
// best possible answers once the background enrichment has filled them in.
// The round's state is computed from counts every time it is queried rather
// than stored, so it can never diverge from the data.

package game

import (
	"fmt"

	"github.com/scramble-game/go-server/internal/dictionary"
)

// State is the lifecycle position of a round, derived from how many
// players have answered.
type State int

const (
	// Start: no answers yet. Players may join or leave.
	Start State = iota
	// CollectingAnswers: some but not all players have answered.
	CollectingAnswers
	// Complete: every player has an answer recorded.
	Complete
)

// AnsweredWord is one player's recorded answer for a round.
// Immutable once appended. A forfeited answer has score 0 and no definition.
type AnsweredWord struct {
	Player     string `json:"player"`
	Answer     string `json:"answer"`
	Score      int    `json:"score"`
	Definition string `json:"definition"`
}

// Round holds one tile draw and everything played against it.
type Round struct {
	// Letters is the tile draw, fixed at creation.
	Letters Letters `json:"letters"`
	// Answers is append-only, at most one entry per player.
	Answers []AnsweredWord `json:"answers"`
	// LookupsUsed counts each player's failed dictionary checks this round.
	LookupsUsed map[string]int `json:"lookups_used"`
	// BestAnswers is empty until the background enrichment task writes it.
	// Empty means "not yet available", not "no best answer exists".
	BestAnswers []dictionary.WordEntry `json:"best_answers"`
}

// NewRound seeds a round with a tile draw.
func NewRound(letters Letters) Round {
	return Round{
		Letters:     letters,
		Answers:     []AnsweredWord{},
		LookupsUsed: make(map[string]int),
		BestAnswers: []dictionary.WordEntry{},
	}
}

// State computes the round's state for the given player count.
// More answers than players cannot happen under the admission rules;
// seeing it means the invariant is broken and we refuse to continue.
func (r *Round) State(players int) State {
	switch n := len(r.Answers); {
	case n == 0:
		return Start
	case n < players:
		return CollectingAnswers
	case n == players:
		return Complete
	default:
		panic(fmt.Sprintf("game: round has %d answers for %d players", n, players))
	}
}

// answered reports whether player already has an answer this round.
func (r *Round) answered(player string) bool {
	for _, a := range r.Answers {
		if a.Player == player {
			return true
		}
	}
	return false
}
