package game_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scramble-game/go-server/internal/dictionary"
	"github.com/scramble-game/go-server/internal/game"
)

const sampleList = "SCRAMBLE\tto mix together confusedly\n" +
	"BELL\ta hollow instrument that rings\n" +
	"RAM\tto strike with force\n" +
	"MARBLE\ta hard crystalline rock\n"

func dict(t *testing.T) *dictionary.Dictionary {
	t.Helper()
	d, err := dictionary.Load(strings.NewReader(sampleList))
	require.NoError(t, err)
	return d
}

func newGame(t *testing.T, settings game.Settings, players ...string) *game.Game {
	t.Helper()
	g := game.New(settings, game.Letters("SCRAMBLE"))
	for _, p := range players {
		require.NoError(t, g.AddPlayer(p))
	}
	return g
}

func TestSettingsValid(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*game.Settings)
		want   bool
	}{
		{"Defaults", func(*game.Settings) {}, true},
		{"LengthScoring", func(s *game.Settings) { s.ScoringMethod = dictionary.ScoreLength }, true},
		{"TooFewTiles", func(s *game.Settings) { s.NumberOfTiles = 1 }, false},
		{"UnknownScoringMethod", func(s *game.Settings) { s.ScoringMethod = "Reverse" }, false},
		{"EmptyScoringMethod", func(s *game.Settings) { s.ScoringMethod = "" }, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := game.DefaultSettings()
			c.mutate(&s)
			assert.Equal(t, c.want, s.Valid())
		})
	}
}

func TestRoundState(t *testing.T) {
	r := game.NewRound(game.Letters("SCRAMBLE"))
	assert.Equal(t, game.Start, r.State(2))

	r.Answers = append(r.Answers, game.AnsweredWord{Player: "a", Answer: "ram"})
	assert.Equal(t, game.CollectingAnswers, r.State(2))

	r.Answers = append(r.Answers, game.AnsweredWord{Player: "b", Answer: "ram"})
	assert.Equal(t, game.Complete, r.State(2))

	// More answers than players is a broken invariant, not a state.
	assert.Panics(t, func() { r.State(1) })
}

func TestAddPlayer(t *testing.T) {
	g := newGame(t, game.DefaultSettings(), "alice")

	t.Run("Conflict", func(t *testing.T) {
		assert.ErrorIs(t, g.AddPlayer("alice"), game.ErrPlayerConflict)
	})
	t.Run("OnlyAtRoundStart", func(t *testing.T) {
		require.NoError(t, g.AddPlayer("bob"))
		require.NoError(t, g.SubmitAnswer("alice", "ram", dict(t)))
		assert.ErrorIs(t, g.AddPlayer("carol"), game.ErrRoundNotInStartState)
	})
}

func TestRemovePlayer(t *testing.T) {
	g := newGame(t, game.DefaultSettings(), "alice", "bob")

	t.Run("AbsentPlayerIsNoop", func(t *testing.T) {
		assert.NoError(t, g.RemovePlayer("nobody"))
	})
	t.Run("Removes", func(t *testing.T) {
		require.NoError(t, g.RemovePlayer("bob"))
		assert.ErrorIs(t, g.SubmitAnswer("bob", "ram", dict(t)), game.ErrPlayerNotFound)
	})
	t.Run("OnlyAtRoundStart", func(t *testing.T) {
		// With bob gone, alice's answer completes the round immediately.
		require.NoError(t, g.SubmitAnswer("alice", "ram", dict(t)))
		assert.ErrorIs(t, g.RemovePlayer("alice"), game.ErrRoundNotInStartState)
	})
}

func TestSubmitAnswerScenario(t *testing.T) {
	// The canonical scenario: tiles [S,C,R,A,M,B,L,E], player "test".
	d := dict(t)
	g := newGame(t, game.DefaultSettings(), "test")

	assert.ErrorIs(t, g.SubmitAnswer("test", "scr", d), game.ErrWordNotInDictionary)
	assert.ErrorIs(t, g.SubmitAnswer("test", "bell", d), game.ErrWordUsesExtraLetters)
	require.NoError(t, g.SubmitAnswer("test", "scramble", d))

	assert.Equal(t, map[string]int{"test": 14}, g.Scores(d, dictionary.ScoreNormal))
}

func TestSubmitAnswer(t *testing.T) {
	d := dict(t)

	t.Run("PlayerNotFound", func(t *testing.T) {
		g := newGame(t, game.DefaultSettings(), "alice")
		assert.ErrorIs(t, g.SubmitAnswer("mallory", "ram", d), game.ErrPlayerNotFound)
	})
	t.Run("WordTooShort", func(t *testing.T) {
		g := newGame(t, game.DefaultSettings(), "alice")
		assert.ErrorIs(t, g.SubmitAnswer("alice", "s", d), game.ErrWordTooShort)
	})
	t.Run("IdempotentResubmission", func(t *testing.T) {
		g := newGame(t, game.DefaultSettings(), "alice", "bob")
		require.NoError(t, g.SubmitAnswer("alice", "ram", d))
		before := len(g.CurrentRound().Answers)

		require.NoError(t, g.SubmitAnswer("alice", "marble", d))
		assert.Equal(t, before, len(g.CurrentRound().Answers))
		assert.Equal(t, "ram", g.CurrentRound().Answers[0].Answer)
	})
	t.Run("NotCollecting", func(t *testing.T) {
		// A player without an answer in a Complete round can only happen if
		// the admission rules were bypassed; stage it directly.
		g := newGame(t, game.DefaultSettings(), "alice")
		round := g.CurrentRound()
		round.Answers = append(round.Answers, game.AnsweredWord{Player: "ghost", Answer: "ram"})
		assert.ErrorIs(t, g.SubmitAnswer("alice", "marble", d), game.ErrRoundNotCollecting)
	})
	t.Run("LengthScoring", func(t *testing.T) {
		settings := game.DefaultSettings()
		settings.ScoringMethod = dictionary.ScoreLength
		g := newGame(t, settings, "alice")
		require.NoError(t, g.SubmitAnswer("alice", "scramble", d))
		assert.Equal(t, 8, g.CurrentRound().Answers[0].Score)
		assert.Equal(t, map[string]int{"alice": 8}, g.Scores(d, settings.ScoringMethod))
	})
}

func TestLookupAllowance(t *testing.T) {
	d := dict(t)
	settings := game.DefaultSettings()
	settings.NumberOfLookups = 2
	g := newGame(t, settings, "alice")

	// "scram" fits the tiles but is not in the dictionary.
	assert.ErrorIs(t, g.SubmitAnswer("alice", "scram", d), game.ErrWordNotInDictionary)
	assert.ErrorIs(t, g.SubmitAnswer("alice", "crab", d), game.ErrWordNotInDictionary)
	assert.Equal(t, 2, g.CurrentRound().LookupsUsed["alice"])

	// Third miss exceeds the allowance: recorded as a zero-score forfeit.
	require.NoError(t, g.SubmitAnswer("alice", "blare", d))
	require.Len(t, g.CurrentRound().Answers, 1)
	forfeit := g.CurrentRound().Answers[0]
	assert.Equal(t, 0, forfeit.Score)
	assert.Equal(t, "", forfeit.Definition)
	assert.Equal(t, "blare", forfeit.Answer)

	// The round still completes, and the forfeited player scores 0 (present).
	assert.True(t, g.AdvanceRoundIfComplete(game.Letters("MARBLES")))
	assert.Equal(t, map[string]int{"alice": 0}, g.Scores(d, dictionary.ScoreNormal))
}

func TestScores(t *testing.T) {
	d := dict(t)
	g := newGame(t, game.DefaultSettings(), "alice", "bob")

	require.NoError(t, g.SubmitAnswer("alice", "ram", d))
	scores := g.Scores(d, dictionary.ScoreNormal)

	t.Run("ZeroAnswerPlayersAbsent", func(t *testing.T) {
		assert.Equal(t, map[string]int{"alice": 5}, scores)
		_, present := scores["bob"]
		assert.False(t, present)
	})
	t.Run("AccumulatesAcrossRounds", func(t *testing.T) {
		require.NoError(t, g.SubmitAnswer("bob", "marble", d))
		require.True(t, g.AdvanceRoundIfComplete(game.Letters("SCRAMBLE")))
		require.NoError(t, g.SubmitAnswer("alice", "marble", d))
		got := g.Scores(d, dictionary.ScoreNormal)
		assert.Equal(t, 5+10, got["alice"])
		assert.Equal(t, 10, got["bob"])
	})
	t.Run("RecomputedUnderCurrentMethod", func(t *testing.T) {
		// Stored per-answer scores do not matter at read time.
		got := g.Scores(d, dictionary.ScoreLength)
		assert.Equal(t, 3+6, got["alice"])
	})
}

func TestAdvanceRoundIfComplete(t *testing.T) {
	d := dict(t)
	g := newGame(t, game.DefaultSettings(), "alice", "bob")

	assert.False(t, g.AdvanceRoundIfComplete(game.Letters("MARBLES")), "start state")
	require.NoError(t, g.SubmitAnswer("alice", "ram", d))
	assert.False(t, g.AdvanceRoundIfComplete(game.Letters("MARBLES")), "still collecting")
	require.NoError(t, g.SubmitAnswer("bob", "ram", d))

	require.True(t, g.AdvanceRoundIfComplete(game.Letters("MARBLES")))
	assert.Len(t, g.Rounds, 2)
	assert.Equal(t, game.Letters("MARBLES"), g.CurrentRound().Letters)
	assert.Empty(t, g.CurrentRound().Answers)
	assert.Empty(t, g.CurrentRound().BestAnswers, "filled in later by enrichment")
}

func TestGameJSON(t *testing.T) {
	g := newGame(t, game.DefaultSettings(), "bob", "alice")
	raw, err := json.Marshal(g)
	require.NoError(t, err)
	b := string(raw)
	// Wire contract: snake_case round fields, players as a sorted array,
	// letters as single-character strings.
	assert.Contains(t, b, `"players":["alice","bob"]`)
	assert.Contains(t, b, `"lookups_used":{}`)
	assert.Contains(t, b, `"best_answers":[]`)
	assert.Contains(t, b, `"letters":["S","C","R","A","M","B","L","E"]`)
	assert.Contains(t, b, `"number_of_tiles":7`)
	assert.Contains(t, b, `"scoring_method":"Normal"`)
}
