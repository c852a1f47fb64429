// internal/httpserver/server.go
//
// HTTP wiring for the scramble backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Game endpoints: create/join/read/answer/exit/delete/score.
//   - Translating core business errors into structured client responses.
//
// Every handler is a thin wrapper: decode, one store operation, encode.
// The only thing a handler leaves running past the request is the
// best-answer enrichment goroutine spawned when a round is created.

package httpserver

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/scramble-game/go-server/internal/dictionary"
	"github.com/scramble-game/go-server/internal/game"
	"github.com/scramble-game/go-server/internal/store"
)

// Server bundles the router, the game store, and the dictionary.
type Server struct {
	r     *chi.Mux
	store *store.Store
	dict  *dictionary.Dictionary
}

// New constructs a Server, installs middleware, and registers routes.
func New(st *store.Store, dict *dictionary.Dictionary) *Server {
	s := &Server{r: chi.NewRouter(), store: st, dict: dict}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(cors.Handler(corsOptions()))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"scramble-go","endpoints":["/health","PUT /game/{id}","POST /game/{id}/answer"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int{"words": s.dict.Len(), "games": s.store.Len()})
	})

	// --- game endpoints ---
	s.r.Route("/game/{gameID}", func(r chi.Router) {
		r.Put("/", s.handleCreate)
		r.Post("/", s.handleJoin)
		r.Get("/", s.handleGameState)
		r.Post("/answer", s.handleAnswer)
		r.Delete("/exit", s.handleExit)
		r.Delete("/", s.handleDelete)
		r.Get("/score", s.handleScore)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"NotFound","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsOptions enables credentialed CORS. CLIENT_ORIGIN narrows it to one
// origin; unset allows every origin, matching the original deployment.
func corsOptions() cors.Options {
	origins := []string{"*"}
	if o := os.Getenv("CLIENT_ORIGIN"); o != "" {
		origins = []string{o}
	}
	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
}

// ------------------------------ payloads -----------------------------------

type createGameReq struct {
	Player string `json:"player"`
	// Settings may be omitted; the server then applies the defaults.
	Settings *game.Settings `json:"settings"`
}

type playerReq struct {
	Player string `json:"player"`
}

type answerReq struct {
	Player string `json:"player"`
	Answer string `json:"answer"`
}

// errorBody is the structured error contract: a machine-readable kind and
// a human-readable message.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ------------------------------ handlers -----------------------------------

// handleCreate creates a game, draws its first round's tiles, and spawns
// the best-answer enrichment for that round.
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "gameID")
	var req createGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badJSON(w)
		return
	}
	settings := game.DefaultSettings()
	if req.Settings != nil {
		settings = *req.Settings
	}
	// Validate before drawing, and treat an undrawable bag as invalid
	// settings too: banned letters that leave nothing playable are a
	// client mistake, not a server fault.
	if !settings.Valid() {
		writeError(w, game.ErrInvalidGameSettings)
		return
	}
	drawn, err := s.dict.DrawTiles(settings.NumberOfTiles, settings.BannedSet())
	if err != nil {
		writeError(w, game.ErrInvalidGameSettings)
		return
	}
	letters := game.Letters(drawn)
	if err := s.store.Create(id, req.Player, settings, letters); err != nil {
		writeError(w, err)
		return
	}
	go s.store.EnrichRound(s.dict, id, 0, letters, settings.ScoringMethod)
	ok(w)
}

// handleJoin admits a player into an existing game.
func (s *Server) handleJoin(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "gameID")
	var req playerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badJSON(w)
		return
	}
	err := s.store.Update(id, func(g *game.Game) error {
		return g.AddPlayer(req.Player)
	})
	if err != nil {
		writeError(w, err)
		return
	}
	ok(w)
}

// handleGameState returns a full snapshot of the game.
func (s *Server) handleGameState(w http.ResponseWriter, r *http.Request) {
	g, err := s.store.Snapshot(chi.URLParam(r, "gameID"))
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(g)
}

// handleAnswer records a player's answer and, if that completed the round,
// advances to a fresh round and spawns its enrichment.
func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "gameID")
	var req answerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badJSON(w)
		return
	}
	var (
		advanced   bool
		roundIndex int
		newLetters game.Letters
		method     dictionary.ScoringMethod
	)
	err := s.store.Update(id, func(g *game.Game) error {
		if err := g.SubmitAnswer(req.Player, req.Answer, s.dict); err != nil {
			return err
		}
		// The dictionary is immutable, so settings that drew a first
		// round always draw the next one.
		drawn, err := s.dict.DrawTiles(g.Settings.NumberOfTiles, g.Settings.BannedSet())
		if err != nil {
			return game.ErrInvalidGameSettings
		}
		letters := game.Letters(drawn)
		if g.AdvanceRoundIfComplete(letters) {
			advanced = true
			roundIndex = len(g.Rounds) - 1
			newLetters = letters
			method = g.Settings.ScoringMethod
		}
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}
	if advanced {
		go s.store.EnrichRound(s.dict, id, roundIndex, newLetters, method)
	}
	ok(w)
}

// handleExit removes a player. Leaving is idempotent.
func (s *Server) handleExit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "gameID")
	var req playerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badJSON(w)
		return
	}
	err := s.store.Update(id, func(g *game.Game) error {
		return g.RemovePlayer(req.Player)
	})
	if err != nil {
		writeError(w, err)
		return
	}
	ok(w)
}

// handleDelete destroys the game. Absent ids succeed.
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	s.store.Delete(chi.URLParam(r, "gameID"))
	ok(w)
}

// handleScore returns the player→total map, re-scored against the current
// dictionary and scoring method.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	g, err := s.store.Snapshot(chi.URLParam(r, "gameID"))
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(g.Scores(s.dict, g.Settings.ScoringMethod))
}

// ------------------------------ responses ----------------------------------

func ok(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"ok":true}`))
}

func badJSON(w http.ResponseWriter) {
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(errorBody{Error: "InvalidJSON", Message: "request body was not valid json"})
}

// writeError translates a core business error into the structured error
// contract. Not-found kinds map to 404, conflicts to 409, everything else
// in the taxonomy to 400. Errors outside the taxonomy should not reach
// here; they surface as a 500 so they are never mistaken for a rejection.
func writeError(w http.ResponseWriter, err error) {
	kind := game.Kind(err)
	status := http.StatusBadRequest
	switch kind {
	case "GameNotFound", "PlayerNotFound":
		status = http.StatusNotFound
	case "GameConflict", "PlayerConflict":
		status = http.StatusConflict
	case "":
		kind = "Internal"
		status = http.StatusInternalServerError
	}
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: kind, Message: err.Error()})
}
