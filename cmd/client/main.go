package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/lucamaccioni05/Web-Game-Project-Agatha-Cristhies/client/game"
	"github.com/lucamaccioni05/Web-Game-Project-Agatha-Cristhies/client/rest"
	"github.com/lucamaccioni05/Web-Game-Project-Agatha-Cristhies/client/store"
)

func main() {
	// A missing .env is fine; flags and real env vars still apply.
	_ = godotenv.Load()

	serverAddr := flag.String("server", envOr("SERVER_ADDR", "http://localhost:8000"), "game server base address")
	gameID := flag.Int("game", envIntOr("GAME_ID", 0), "id of the game to join")
	playerID := flag.Int("player", envIntOr("PLAYER_ID", 0), "id of the local player")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	if err := run(*serverAddr, *gameID, *playerID, sugar); err != nil {
		sugar.Fatalw("client exited with error", "error", err)
	}
}

func run(serverAddr string, gameID, playerID int, logger *zap.SugaredLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := rest.NewClient(serverAddr)
	g, err := client.GetGame(ctx, gameID)
	if err != nil {
		return fmt.Errorf("failed to fetch game %d: %v", gameID, err)
	}

	session, err := game.NewSession(game.Options{
		ServerAddr: serverAddr,
		Game:       g,
		MyPlayerID: playerID,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create session: %v", err)
	}

	session.Store().OnChange(func(prev, next store.State) {
		if prev.CurrentStep != next.CurrentStep {
			logger.Infow("step changed", "from", prev.CurrentStep, "to", next.CurrentStep)
		}
		if prev.ErrorMessage != next.ErrorMessage && next.ErrorMessage != "" {
			logger.Warnw("session error", "message", next.ErrorMessage)
		}
	})

	return session.Run(ctx)
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
