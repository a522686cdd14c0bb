package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/cors"

	"github.com/tasklight/tasklight/database"
	"github.com/tasklight/tasklight/handlers"
	"github.com/tasklight/tasklight/services"
	"github.com/tasklight/tasklight/static"
	"github.com/tasklight/tasklight/tasklist"
)

func main() {
	// Load configuration (.env plus environment)
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		return
	}

	// Initialize database
	db, err := database.InitDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Hydrate the task list from the persisted slots
	list := tasklist.NewList(database.NewStore(db))
	if err := list.Hydrate(); err != nil {
		log.Fatalf("Failed to load saved state: %v", err)
	}

	// Initialize WebSocket hub
	hub := services.NewHub()
	go hub.Run()

	// Setup router
	r := mux.NewRouter()

	taskHandler := handlers.NewTaskHandler(list, hub)
	taskHandler.Register(r)

	// Static file server for the page itself
	r.PathPrefix("/").Handler(http.FileServer(http.FS(static.Files())))

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	// Start server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handlers.Logging(c.Handler(r)),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Server starting on port %s", cfg.Port)
	log.Fatal(server.ListenAndServe())
}
