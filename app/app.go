package app

import (
	"context"

	"log/slog"

	"github.com/ecomdash/analytics-api/config"
	httpapi "github.com/ecomdash/analytics-api/internal/api/http"
	"github.com/ecomdash/analytics-api/internal/dependency"
	"github.com/ecomdash/analytics-api/internal/store"
)

// App is the main application
type App struct {
	hs   *httpapi.Server
	db   dependency.Repository
	c    *config.Config
	done chan struct{}
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	var err error
	slog.Default().InfoContext(ctx, "starting analytics api")

	a.db, err = store.New(ctx, a.c.DB)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't connect to postgres", "err", err)
		return err
	}

	a.hs = httpapi.New(&a.c.HTTP)
	if err = a.hs.Start(ctx, a.db, httpapi.HealthInfo{
		Environment:  a.c.Environment,
		DatabaseHost: a.c.DB.Host,
	}); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server", "err", err)
		return err
	}

	go func() {
		<-a.hs.Done()
		close(a.done)
	}()

	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.hs != nil {
		if err := a.hs.Stop(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "http server shutdown", "err", err)
		}
	}
	if a.db != nil {
		a.db.Close()
	}
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() chan struct{} {
	return a.done
}
