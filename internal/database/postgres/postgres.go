package postgres

import (
	"fmt"
	"log"
	"time"

	"aquarium-service/internal/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

var DB_Status bool

func ConnectAndCreateDB(cfg config.PostgresConfig) (*sqlx.DB, error) {
	targetConnStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.Username, cfg.Password, cfg.DBname)

	db, err := sqlx.Connect("postgres", targetConnStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to target database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping target database: %w", err)
	}
	DB_Status = true

	return db, nil
}

func RetryConnectOnFailed(wait_amount time.Duration, db **sqlx.DB, cfg config.PostgresConfig) {
	if DB_Status {
		log.Printf("false database lost connection alert! abort retry")
		return
	}

	if *db != nil {
		cur_db := *db
		err := cur_db.Ping()
		if err == nil {
			log.Printf("database connection is healthy, no retry needed")
			return
		}
		log.Printf("failed to ping target database: %s, retry db connection\n", err)
	} else {
		log.Printf("database connection is nil, attempting to reconnect...")
	}

	newDB, err := ConnectAndCreateDB(cfg)
	if err == nil {
		*db = newDB
		log.Printf("database retry connection successfully\n")
		return
	}
	log.Printf("failed to retry connect database: %s, next retry in %v\n", err, wait_amount)
	time.Sleep(wait_amount)

	RetryConnectOnFailed(wait_amount, db, cfg)
}

// InitSchema creates the service tables when they do not exist yet.
func InitSchema(db *sqlx.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            TEXT PRIMARY KEY,
			email         TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL,
			updated_at    TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS user_stats (
			user_id          TEXT PRIMARY KEY REFERENCES users(id),
			total_points     INTEGER NOT NULL DEFAULT 0,
			total_fish       INTEGER NOT NULL DEFAULT 0,
			daily_cases_used INTEGER NOT NULL DEFAULT 0,
			last_case_date   TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS fish (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			species     TEXT NOT NULL,
			rarity      TEXT NOT NULL,
			description TEXT NOT NULL,
			habitat     TEXT NOT NULL,
			diet        TEXT NOT NULL,
			points      INTEGER NOT NULL,
			color       TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS user_fish (
			user_id     TEXT NOT NULL REFERENCES users(id),
			fish_id     TEXT NOT NULL REFERENCES fish(id),
			unlocked_at TIMESTAMPTZ NOT NULL,
			PRIMARY KEY (user_id, fish_id)
		)`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}
