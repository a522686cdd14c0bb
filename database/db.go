package database

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/mattn/go-sqlite3"
)

func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Create slots table (one serialized blob per named slot)
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS slots (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		return nil, fmt.Errorf("failed to create slots table: %w", err)
	}

	log.Println("Database initialized successfully")
	return db, nil
}

// Store persists named slots in sqlite
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Load retrieves a slot's value; the bool reports whether the slot exists
func (s *Store) Load(key string) (string, bool, error) {
	row := s.db.QueryRow("SELECT value FROM slots WHERE key = ?", key)

	var value string
	err := row.Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to query slot %q: %w", key, err)
	}

	return value, true, nil
}

// Save writes or overwrites a slot's value
func (s *Store) Save(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO slots (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = ?,
			updated_at = CURRENT_TIMESTAMP
	`, key, value, value)
	if err != nil {
		return fmt.Errorf("failed to upsert slot %q: %w", key, err)
	}

	return nil
}
