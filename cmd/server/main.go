package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/juho05/diacritics"
	"github.com/juho05/diacritics/config"
	"github.com/juho05/diacritics/handlers"
	"github.com/juho05/diacritics/repos"
	"github.com/juho05/diacritics/repos/postgres"
	"github.com/juho05/log"
)

func run(conf config.Config) error {
	var db repos.DB
	if conf.DBEnabled() {
		pg, err := postgres.NewDB(conf.DSN(), conf)
		if err != nil {
			return err
		}
		defer pg.Close()
		db = pg
	}

	mapper, err := repos.BuildMapper(context.Background(), db, conf.Languages, conf.CustomSets, conf.CustomSetsFirst)
	if err != nil {
		return err
	}
	diacritics.SetDefaultFactory(func() *diacritics.Mapper {
		return mapper
	})
	log.Infof("Loaded %d characters from %d providers: %v", mapper.Len(), len(mapper.Providers()), mapper.Providers())

	handler := handlers.New(db, conf)

	server := http.Server{
		Addr:     conf.ListenAddr,
		Handler:  handler,
		ErrorLog: log.NewStdLogger(log.ERROR),
	}

	closed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, syscall.SIGINT, syscall.SIGTERM)
		<-sigint
		timeout, cancelTimeout := context.WithTimeout(context.Background(), 5*time.Second)
		log.Info("Shutting down...")
		server.Shutdown(timeout)
		cancelTimeout()
		close(closed)
	}()

	log.Infof("Listening on http://%s...", conf.ListenAddr)
	err = server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}
	if err == nil {
		<-closed
	}
	return err
}

func main() {
	_ = godotenv.Load()

	conf, errs := config.Load(os.Environ())
	if len(errs) > 0 {
		for _, e := range errs {
			log.Errorf("ERROR: %s", e)
		}
		log.Fatalf("ERROR: failed to load config")
	}

	log.SetSeverity(conf.LogLevel)
	log.SetOutput(conf.LogFile)

	err := run(conf)
	if err != nil {
		log.Fatalf("ERROR: %s", err)
	}
	log.Info("Shutdown complete.")
}
