package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/sync/errgroup"

	"github.com/pzhuk/minefield/internal/config"
	"github.com/pzhuk/minefield/internal/handlers"
	"github.com/pzhuk/minefield/internal/middleware"
	"github.com/pzhuk/minefield/internal/session"
)

var log = logrus.New()

func setupLogging(cfg *config.Config) error {
	if cfg.Development {
		log.SetLevel(logrus.DebugLevel)
		log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	if cfg.LogFile == "" {
		return nil
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.LogFile,
		MaxSize:    50, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      logrus.InfoLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return err
	}
	log.AddHook(hook)
	return nil
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn("unable to load .env: ", err)
	}

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal("unable to read config: ", err)
	}

	if err := setupLogging(cfg); err != nil {
		log.Fatal("unable to set up logging: ", err)
	}

	log.WithFields(logrus.Fields{
		"addr":        cfg.Addr,
		"base_path":   cfg.BasePath,
		"session_ttl": cfg.SessionTTL.String(),
		"development": cfg.Development,
	}).Info("starting up")

	store := session.NewStore(cfg.SessionTTL, log)
	game := handlers.NewGameHandler(log, store, nil)

	handler := middleware.Wrap(
		game.ServeMux(),
		middleware.Cors(),
		middleware.Logging(log),
	)
	if cfg.BasePath != "" {
		handler = http.StripPrefix(cfg.BasePath, handler)
	}

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
		BaseContext: func(l net.Listener) context.Context {
			return mainCtx
		},
	}

	log.Infof("ready to serve @ %s", cfg.Addr)

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		store.Sweep(gCtx, cfg.SweepInterval)
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return server.Shutdown(ctx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("exit reason: ", err)
	}
}
