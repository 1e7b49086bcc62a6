// Package server wires the console together: configuration, the session
// store, the backend API client, the event buses and the echo instance.
package server

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"

	"github.com/openpersona/console/internal/apiclient"
	"github.com/openpersona/console/internal/authevents"
	"github.com/openpersona/console/internal/config"
	"github.com/openpersona/console/internal/logging"
	"github.com/openpersona/console/internal/middleware"
	"github.com/openpersona/console/internal/pubsub"
	appsession "github.com/openpersona/console/internal/session"
)

// Server holds the dependencies for the HTTP console.
type Server struct {
	E      *echo.Echo
	Cfg    config.Provider
	Store  *appsession.Store
	API    *apiclient.Client
	Bus    *authevents.Bus
	Bridge *pubsub.WatermillBridge
}

// New creates a new Server instance. The dependency graph is assembled
// through an injector so the construction order stays declarative.
func New() *Server {
	logging.New() // Initialize the structured logger

	injector := do.New()

	do.Provide(injector, func(do.Injector) (config.Provider, error) {
		return config.New(), nil
	})

	do.Provide(injector, func(do.Injector) (*authevents.Bus, error) {
		return authevents.NewBus(), nil
	})

	do.Provide(injector, func(do.Injector) (*pubsub.WatermillBridge, error) {
		return pubsub.NewWatermillBridge(), nil
	})

	do.Provide(injector, func(i do.Injector) (*appsession.Store, error) {
		cfg := do.MustInvoke[config.Provider](i)
		bus := do.MustInvoke[*authevents.Bus](i)
		bridge := do.MustInvoke[*pubsub.WatermillBridge](i)

		snapshotPath := filepath.Join(cfg.GetStateDir(), "session.json")
		store := appsession.New(afero.NewOsFs(), snapshotPath,
			appsession.WithBus(bus),
			appsession.WithPublisher(bridge),
		)
		return store, nil
	})

	do.Provide(injector, func(i do.Injector) (*apiclient.Client, error) {
		cfg := do.MustInvoke[config.Provider](i)
		bus := do.MustInvoke[*authevents.Bus](i)
		store := do.MustInvoke[*appsession.Store](i)

		opts := []apiclient.Option{
			apiclient.WithBus(bus),
			apiclient.WithTokenSource(store),
		}
		if secs := cfg.GetRequestTimeoutSeconds(); secs > 0 {
			opts = append(opts, apiclient.WithTimeout(time.Duration(secs)*time.Second))
		}
		return apiclient.New(cfg.GetAPIBaseURL(), opts...), nil
	})

	cfg := do.MustInvoke[config.Provider](injector)
	store := do.MustInvoke[*appsession.Store](injector)
	api := do.MustInvoke[*apiclient.Client](injector)
	bus := do.MustInvoke[*authevents.Bus](injector)
	bridge := do.MustInvoke[*pubsub.WatermillBridge](injector)

	e := echo.New()
	e.HideBanner = true
	e.Validator = NewValidator()

	e.Use(echomw.RequestID())
	e.Use(middleware.Logger)
	e.Use(echomw.Recover())

	// Flash messages ride on a cookie session.
	cookieStore := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	cookieStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
	}
	e.Use(session.Middleware(cookieStore))

	slog.Info("Console configured", "backend", cfg.GetAPIBaseURL(), "addr", cfg.GetAddr())

	return &Server{
		E:      e,
		Cfg:    cfg,
		Store:  store,
		API:    api,
		Bus:    bus,
		Bridge: bridge,
	}
}
