// internal/store/store.go
//
// In-memory registry of active games, keyed by game id.
//
// Characteristics:
//   - One exclusive mutex guards the whole registry; every player-facing
//     operation is a single short critical section. There is no per-game
//     locking: round-lifetime mutations are cheap, and the one expensive
//     operation (the best-word scan) runs off this lock entirely.
//   - State is lost when the process restarts.
//   - Games are destroyed only by explicit Delete.

package store

import (
	"sync"

	"github.com/scramble-game/go-server/internal/game"
)

// Store is the concurrency-safe game registry.
type Store struct {
	mu    sync.Mutex
	games map[string]*game.Game
}

// New constructs an empty Store.
func New() *Store {
	return &Store{games: make(map[string]*game.Game)}
}

// Create validates settings, constructs a game with its first round seeded
// from letters, admits the initial player, and registers it under id.
func (s *Store) Create(id, player string, settings game.Settings, letters game.Letters) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[id]; ok {
		return game.ErrGameConflict
	}
	if !settings.Valid() {
		return game.ErrInvalidGameSettings
	}
	g := game.New(settings, letters)
	if err := g.AddPlayer(player); err != nil {
		return err
	}
	s.games[id] = g
	return nil
}

// Update runs fn on the game under the store lock. This is the exclusive
// access path every foreground mutation goes through.
func (s *Store) Update(id string, fn func(*game.Game) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.games[id]
	if !ok {
		return game.ErrGameNotFound
	}
	return fn(g)
}

// Snapshot returns a deep copy of the game so callers can serialize it
// without holding the lock.
func (s *Store) Snapshot(id string) (game.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.games[id]
	if !ok {
		return game.Game{}, game.ErrGameNotFound
	}
	return g.Clone(), nil
}

// Delete removes the game. Deleting an absent id is not an error.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
}

// Len reports how many games are live. Diagnostics only.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.games)
}
