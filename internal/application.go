package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/console-games/internal/config"
	"github.com/rocketscienceinc/console-games/internal/transport/console"
)

// RunApp - runs the application on the process console.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	// the session blocks on stdin, so it runs aside and the signal can end the app
	sessionErrCh := make(chan error, 1)
	go func() {
		sessionErrCh <- Run(ctx, logger, conf, os.Stdin, os.Stdout)
	}()

	select {
	case err := <-sessionErrCh:
		return err
	case sig := <-sigs:
		log.Info("Received signal, shutting down", "signal", sig)
		return nil
	}
}

// Run plays the configured game reading moves from in and printing to out.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	title, err := console.TitleByName(conf.Game)
	if err != nil {
		return fmt.Errorf("could not select game: %w", err)
	}

	logger.With("component", "app").Info("Starting console session", "game", title.Name)

	if err = console.NewSession(logger, in, out, title).Run(ctx); err != nil {
		return fmt.Errorf("console session failed: %w", err)
	}

	return nil
}
