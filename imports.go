package main

// This file ensures that all functionality is included when using "go run main.go"
// It doesn't contain any executable code, just imports.

import (
	_ "fmt"
	_ "log"
	_ "net/http"
	_ "os"
	_ "time"

	_ "github.com/google/uuid"
	_ "github.com/gorilla/mux"
	_ "github.com/gorilla/websocket"
	_ "github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"
	_ "github.com/rs/cors"
)
