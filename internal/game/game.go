// internal/game/game.go
//
// The per-game state machine: player admission, idempotent answer
// submission with lookup-penalty bookkeeping, round advancement, and
// score aggregation.
//
// A Game carries no locking of its own; the store serializes all access.

package game

import (
	"encoding/json"
	"sort"

	"github.com/scramble-game/go-server/internal/dictionary"
)

// playerSet is a set of player identifiers that marshals as a sorted
// JSON array, so snapshots of the same game always serialize identically.
type playerSet map[string]struct{}

func (p playerSet) MarshalJSON() ([]byte, error) {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return json.Marshal(names)
}

func (p *playerSet) UnmarshalJSON(b []byte) error {
	var names []string
	if err := json.Unmarshal(b, &names); err != nil {
		return err
	}
	set := make(playerSet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	*p = set
	return nil
}

// Game is an ordered sequence of rounds plus the admitted players.
// The most recent round is last; there is always at least one round.
type Game struct {
	Players  playerSet `json:"players"`
	Rounds   []Round   `json:"rounds"`
	Settings Settings  `json:"settings"`
}

// New constructs a game with its first round already seeded.
// Settings are assumed validated by the caller (the store).
func New(settings Settings, letters Letters) *Game {
	return &Game{
		Players:  make(playerSet),
		Rounds:   []Round{NewRound(letters)},
		Settings: settings,
	}
}

// CurrentRound returns the round currently being played.
func (g *Game) CurrentRound() *Round {
	return &g.Rounds[len(g.Rounds)-1]
}

func (g *Game) currentState() State {
	return g.CurrentRound().State(len(g.Players))
}

// AddPlayer admits a player. Admission is only open while the current
// round is in the start state, and re-adding a present player is an error.
func (g *Game) AddPlayer(player string) error {
	if g.currentState() != Start {
		return ErrRoundNotInStartState
	}
	if _, ok := g.Players[player]; ok {
		return ErrPlayerConflict
	}
	g.Players[player] = struct{}{}
	return nil
}

// RemovePlayer removes a player, gated like AddPlayer on the start state.
// Removing an absent player is a no-op success: leaving is idempotent.
func (g *Game) RemovePlayer(player string) error {
	if g.currentState() != Start {
		return ErrRoundNotInStartState
	}
	delete(g.Players, player)
	return nil
}

// SubmitAnswer records word as player's answer for the current round.
//
// A resubmission by a player who already answered succeeds without any
// change. A word missing from the dictionary charges one lookup; once the
// player has spent more lookups than the game allows, the miss is recorded
// as a zero-score answer instead, so the round can still complete.
func (g *Game) SubmitAnswer(player, word string, dict *dictionary.Dictionary) error {
	if _, ok := g.Players[player]; !ok {
		return ErrPlayerNotFound
	}
	if state := g.currentState(); state != Start && state != CollectingAnswers {
		return ErrRoundNotCollecting
	}
	round := g.CurrentRound()
	if round.answered(player) {
		return nil
	}
	if len(word) < 2 {
		return ErrWordTooShort
	}
	if !dictionary.IsSubsetOfLetters(round.Letters, word) {
		return ErrWordUsesExtraLetters
	}
	entry, ok := dict.Lookup(word)
	if !ok {
		round.LookupsUsed[player]++
		if round.LookupsUsed[player] > g.Settings.NumberOfLookups {
			round.Answers = append(round.Answers, AnsweredWord{
				Player: player,
				Answer: word,
			})
			return nil
		}
		return ErrWordNotInDictionary
	}
	round.Answers = append(round.Answers, AnsweredWord{
		Player:     player,
		Answer:     word,
		Score:      g.Settings.ScoringMethod.Score(entry),
		Definition: entry.Definition,
	})
	return nil
}

// AdvanceRoundIfComplete appends a new round seeded with letters if every
// player has answered the current one, and reports whether it did.
// Kicking off best-answer enrichment for the new round is the caller's job.
func (g *Game) AdvanceRoundIfComplete(letters Letters) bool {
	if g.currentState() != Complete {
		return false
	}
	g.Rounds = append(g.Rounds, NewRound(letters))
	return true
}

// Scores totals every recorded answer per player, re-scoring each word
// against the dictionary and method at read time rather than reusing the
// score stored at submission. The two can diverge if the scoring method
// changes mid-game; the recorded score is kept only for display.
//
// Players with no recorded answers are absent from the map. A forfeited
// answer contributes 0 but still creates the player's entry.
func (g *Game) Scores(dict *dictionary.Dictionary, method dictionary.ScoringMethod) map[string]int {
	scores := make(map[string]int)
	for _, round := range g.Rounds {
		for _, a := range round.Answers {
			total := scores[a.Player]
			if entry, ok := dict.Lookup(a.Answer); ok {
				total += method.Score(entry)
			}
			scores[a.Player] = total
		}
	}
	return scores
}

// Clone deep-copies the game so it can be serialized after the store lock
// is released.
func (g *Game) Clone() Game {
	out := Game{
		Players:  make(playerSet, len(g.Players)),
		Rounds:   make([]Round, len(g.Rounds)),
		Settings: g.Settings,
	}
	out.Settings.BannedLetters = append(Letters{}, g.Settings.BannedLetters...)
	for name := range g.Players {
		out.Players[name] = struct{}{}
	}
	for i, r := range g.Rounds {
		cp := Round{
			Letters:     append(Letters{}, r.Letters...),
			Answers:     append([]AnsweredWord{}, r.Answers...),
			LookupsUsed: make(map[string]int, len(r.LookupsUsed)),
			BestAnswers: append([]dictionary.WordEntry{}, r.BestAnswers...),
		}
		for p, n := range r.LookupsUsed {
			cp.LookupsUsed[p] = n
		}
		out.Rounds[i] = cp
	}
	return out
}
