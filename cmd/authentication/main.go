// This is a **mock authentication service**, designed to provide JWT tokens
// for the farm service, simulating user authentication.
package main

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	"time"

	"github.com/gartstein/farm/internal/farm/auth"
	"github.com/gartstein/farm/internal/farm/config"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

// TokenResponse represents the response structure
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// tokenHandler generates a JWT for the requested user and returns it in a JSON response.
func tokenHandler(cfg *config.Config, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Simulate a user ID for the token
		userID := r.URL.Query().Get("user")
		if userID == "" {
			userID = "12345"
		}

		token, err := auth.GenerateToken(userID, cfg.JWTSecret, cfg.TokenTTL)
		if err != nil {
			logger.Error("failed to generate token", zap.Error(err))
			http.Error(w, "Failed to generate token", http.StatusInternalServerError)
			return
		}

		resp := TokenResponse{Token: token, ExpiresAt: time.Now().Add(cfg.TokenTTL).UTC()}
		w.Header().Set("Content-Type", "application/json")
		if err := jsoniter.NewEncoder(w).Encode(resp); err != nil {
			logger.Error("failed to encode token", zap.Error(err))
		}
	}
}

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		zap.Must(zap.NewProduction()).Fatal("failed to load config", zap.Error(err))
	}
	logger, err := cfg.NewLogger()
	if err != nil {
		zap.Must(zap.NewProduction()).Fatal("failed to build logger", zap.Error(err))
	}
	defer func() { _ = logger.Sync() }()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /token", tokenHandler(cfg, logger))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AuthPort),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Authentication service running", zap.Int("port", cfg.AuthPort))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("authentication service stopped", zap.Error(err))
	}
}
