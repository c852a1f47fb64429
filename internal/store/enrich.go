// internal/store/enrich.go
//
// The background enrichment task: one goroutine per newly created round,
// computing the round's best possible answers out-of-band so the scan
// never blocks a player-facing request.

package store

import (
	"github.com/rs/zerolog/log"

	"github.com/scramble-game/go-server/internal/dictionary"
	"github.com/scramble-game/go-server/internal/game"
)

// BestAnswerLimit caps how many best answers a round carries.
const BestAnswerLimit = 10

// EnrichRound computes the best answers for the round's letters and writes
// them back. The dictionary scan runs without the store lock held (the
// dictionary is immutable); the lock is re-acquired only to attach the
// result. If the game or round was deleted in the meantime the result is
// silently discarded — no error, no retry.
//
// Callers spawn this with `go` after creating a round.
func (s *Store) EnrichRound(dict *dictionary.Dictionary, id string, roundIndex int, letters game.Letters, method dictionary.ScoringMethod) {
	best := dict.BestWords(letters, BestAnswerLimit, method)

	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.games[id]
	if !ok || roundIndex >= len(g.Rounds) {
		log.Debug().
			Str("gameId", id).
			Int("round", roundIndex).
			Msg("discarding best answers for a deleted game or round")
		return
	}
	g.Rounds[roundIndex].BestAnswers = best
}
