package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gverri/call-survey/app"
	"github.com/gverri/call-survey/completion"
	"github.com/gverri/call-survey/config"
	"github.com/gverri/call-survey/log"
	"github.com/gverri/call-survey/routes"
	"github.com/gverri/call-survey/store"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		log.Fatal("main.config:", err)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	recordStore, err := openStore(cfg)
	if err != nil {
		log.Fatal("main.store.open:", err)
	}
	defer recordStore.Close()

	completions := completion.NewOpenAI(cfg.CompletionBaseURL, cfg.CompletionAPIKey, cfg.CompletionModel)

	app := app.App{
		RecordStore: recordStore,
		Client:      completions,
		Config:      cfg,
	}

	handler := routes.Wire(app)

	err = runServer(cfg, handler)
	if !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("main.server:", err)
	}
}

func openStore(cfg config.Config) (store.RecordStore, error) {
	switch cfg.StoreBackend {
	case "airtable":
		return store.NewAirtable(cfg.StoreBaseURL, cfg.StoreBaseID, cfg.StoreAPIKey), nil
	case "sqlite":
		return store.OpenSQLite(cfg.DBUrl)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

func runServer(cfg config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Info("Listening on " + cfg.Url())
	return srv.ListenAndServe()
}
