package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/matchroom/auction/internal/gateway"
)

func setupServer(config *Config, handler *gateway.WebSocketHandler) *http.Server {
	mux := http.NewServeMux()

	handler.RegisterRoutes(mux)

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// The client UI, when present.
	if info, err := os.Stat(config.Server.StaticDir); err == nil && info.IsDir() {
		mux.Handle("/", http.FileServer(http.Dir(config.Server.StaticDir)))
	}

	c := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
		},
		AllowedOrigins: []string{"*"},
		AllowedHeaders: []string{"*"},
	})

	return &http.Server{
		Addr:         fmt.Sprintf(":%s", config.Server.Port),
		Handler:      h2c.NewHandler(c.Handler(mux), &http2.Server{}),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}
