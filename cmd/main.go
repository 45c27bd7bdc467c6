package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"moodify/internal/handlers"
	"moodify/internal/logger"
	"moodify/internal/repository"
	"moodify/internal/server"
	"moodify/internal/service"
	"moodify/internal/spotify"

	"github.com/spf13/viper"
)

// @title           Moodify API
// @version         1.0
// @description     Mood detection and Spotify playlist service.
// @BasePath        /

func main() {
	// init logger
	log := logger.Get(logger.InfoLevel)

	// load config.yml
	if err := loadConfig(); err != nil {
		log.Fatalw("error reading config", "err", err)
	}
	if err := checkSigningKey(viper.GetString("session.signing_key")); err != nil {
		log.Fatalw("session signing key not configured", "err", err)
	}

	// open DB
	db, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			log.Fatalw("failed to close sqlite", "err", cerr)
		}
	}()

	// Spotify client
	spotifyClient, err := spotify.NewClient(spotify.Config{
		ClientID:     viper.GetString("spotify.client_id"),
		ClientSecret: viper.GetString("spotify.client_secret"),
	})
	if err != nil {
		log.Fatalw("failed to init spotify client", "err", err)
	}

	// wire dependencies
	repos := repository.NewRepository(db)
	services := service.NewService(repos, spotifyClient, service.Config{
		SessionSigningKey: viper.GetString("session.signing_key"),
		SessionTTL:        viper.GetDuration("session.ttl"),
	}, log)
	apiHandler := handlers.NewHandler(services, log)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")

	// secrets come from the environment when present
	viper.AutomaticEnv()
	for key, env := range map[string]string{
		"spotify.client_id":     "SPOTIFY_CLIENT_ID",
		"spotify.client_secret": "SPOTIFY_CLIENT_SECRET",
		"session.signing_key":   "SESSION_SIGNING_KEY",
	} {
		if err := viper.BindEnv(key, env); err != nil {
			return err
		}
	}

	return viper.ReadInConfig()
}

const placeholderSigningKey = "change-me"

// checkSigningKey rejects an absent or placeholder key. Sessions signed with
// a guessable default would be forgeable, so this fails fast like missing
// Spotify credentials do.
func checkSigningKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" || key == placeholderSigningKey {
		return errors.New("set SESSION_SIGNING_KEY or session.signing_key in configs/config.yml")
	}
	return nil
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "moodify.db")
		dbPath = "moodify.db"
	}
	return repository.InitDB(dbPath)
}

// runHTTPServer runs the HTTP server in a separate goroutine. ErrServerClosed
// is the normal outcome of a graceful shutdown, not a startup failure.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
