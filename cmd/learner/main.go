package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"learner/internal/api"
	"learner/internal/assignment"
	"learner/internal/config"
	"learner/internal/logger"
	"learner/internal/notification"

	"github.com/joho/godotenv"
)

func main() {
	logger := logger.New()

	// 1. Load configuration
	if err := godotenv.Load(); err != nil {
		logger.Warn().Msg("Warning: no .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Msgf("Error loading config: %v", err)
	}

	// 2. Authenticate the session from the access token
	sess, err := newSession(cfg)
	if err != nil {
		logger.Fatal().Msgf("Invalid session token: %v", err)
	}
	logger.Info().Int64("user_id", sess.UserID).Str("email", sess.Email).Msg("Session ready")

	// 3. Build the backend gateway
	client := api.NewClient(api.Options{
		BaseURL: cfg.APIBaseURL,
		Token:   sess.Token,
		Timeout: cfg.RequestTimeout(),
	}, logger)

	// 4. Start the notification poller for the session's lifetime
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	poller := notification.NewPoller(client, cfg.NotificationPollInterval(), logger)
	poller.Start(ctx)
	defer poller.Stop()

	// 5. Run the interactive loop; SIGINT/SIGTERM end the session
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		cancel()
		fmt.Println("\nBye!")
		os.Exit(0)
	}()

	a := &app{
		ctx:         ctx,
		client:      client,
		poller:      poller,
		assignments: assignment.NewService(client, logger),
		logger:      logger,
		in:          bufio.NewScanner(os.Stdin),
	}
	a.run()
}
