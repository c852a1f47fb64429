package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/scramble-game/go-server/internal/dictionary"
	"github.com/scramble-game/go-server/internal/httpserver"
	"github.com/scramble-game/go-server/internal/store"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	wordList := getEnv("WORD_LIST_FILE", "word-list.txt")
	dict, err := dictionary.LoadFile(wordList)
	if err != nil {
		log.Fatal().Err(err).Str("file", wordList).Msg("failed to load word list")
	}
	log.Info().Int("words", dict.Len()).Msg("dictionary loaded")

	st := store.New()
	srv := httpserver.New(st, dict)
	port := getEnv("PORT", "8172")
	log.Info().Str("port", port).Msg("starting go-server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
