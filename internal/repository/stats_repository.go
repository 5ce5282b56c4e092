package repository

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"aquarium-service/internal/models"
	"aquarium-service/utils"

	"github.com/jmoiron/sqlx"
)

// UnlockTx is the slice of a draw transaction the service layer drives. All
// methods run inside the transaction opened by WithUserLock, so either every
// write of a draw commits or none do.
type UnlockTx interface {
	UpdateQuota(stats *models.UserStats) error
	InsertUnlock(userID, fishID string, at time.Time) (bool, error)
	AddUnlockStats(userID string, points int) error
}

type IStatsRepository interface {
	GetStats(userID string) (*models.UserStats, error)
	EnsureStats(userID string) error
	ResetDailyUsage(userID string) error
	GetCollection(userID string) ([]models.Fish, error)
	GetLeaderboard(limit int) ([]models.LeaderboardEntry, error)
	// WithUserLock runs fn inside a transaction holding a row lock on the
	// user's stats record, creating the record first when missing.
	// Concurrent calls for the same user serialize on the lock; different
	// users proceed independently. fn's error rolls everything back.
	WithUserLock(userID string, fn func(tx UnlockTx, stats *models.UserStats) error) error
}

type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) IStatsRepository {
	return &StatsRepository{
		db: db,
	}
}

// GetStats returns nil without error when the user has no stats row yet;
// absence means a fresh user, not a failure.
func (r *StatsRepository) GetStats(userID string) (*models.UserStats, error) {
	var stats models.UserStats
	err := r.db.Get(&stats, `SELECT * FROM user_stats WHERE user_id = $1`, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user stats: %w", err)
	}
	return &stats, nil
}

func (r *StatsRepository) EnsureStats(userID string) error {
	query := `
		INSERT INTO user_stats (user_id, total_points, total_fish, daily_cases_used, last_case_date)
		VALUES ($1, 0, 0, 0, NULL)
		ON CONFLICT (user_id) DO NOTHING
	`
	if err := utils.ExecWithCheck(r.db, query, utils.ExecInsert, userID); err != nil {
		return fmt.Errorf("failed to ensure user stats: %w", err)
	}
	return nil
}

func (r *StatsRepository) ResetDailyUsage(userID string) error {
	if err := r.EnsureStats(userID); err != nil {
		return err
	}
	query := `UPDATE user_stats SET daily_cases_used = 0 WHERE user_id = $1`
	if err := utils.ExecWithCheck(r.db, query, utils.ExecUpdate, userID); err != nil {
		return fmt.Errorf("failed to reset daily usage: %w", err)
	}
	return nil
}

func (r *StatsRepository) GetCollection(userID string) ([]models.Fish, error) {
	var fish []models.Fish
	query := `
		SELECT f.* FROM fish f
		JOIN user_fish uf ON uf.fish_id = f.id
		WHERE uf.user_id = $1
		ORDER BY uf.unlocked_at
	`
	err := r.db.Select(&fish, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get collection: %w", err)
	}
	return fish, nil
}

func (r *StatsRepository) GetLeaderboard(limit int) ([]models.LeaderboardEntry, error) {
	var entries []models.LeaderboardEntry
	query := `
		SELECT s.user_id, u.email, s.total_points, s.total_fish
		FROM user_stats s
		JOIN users u ON u.id = s.user_id
		ORDER BY s.total_points DESC, s.total_fish DESC
		LIMIT $1
	`
	err := r.db.Select(&entries, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}
	return entries, nil
}

func (r *StatsRepository) WithUserLock(userID string, fn func(tx UnlockTx, stats *models.UserStats) error) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	ensure := `
		INSERT INTO user_stats (user_id, total_points, total_fish, daily_cases_used, last_case_date)
		VALUES ($1, 0, 0, 0, NULL)
		ON CONFLICT (user_id) DO NOTHING
	`
	if _, err := tx.Exec(ensure, userID); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to ensure user stats: %w", err)
	}

	var stats models.UserStats
	if err := tx.Get(&stats, `SELECT * FROM user_stats WHERE user_id = $1 FOR UPDATE`, userID); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to lock user stats: %w", err)
	}

	if err := fn(&unlockTx{tx: tx}, &stats); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Printf("rollback failed for user %s: %v", userID, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

type unlockTx struct {
	tx *sqlx.Tx
}

func (t *unlockTx) UpdateQuota(stats *models.UserStats) error {
	query := `
		UPDATE user_stats
		SET daily_cases_used = $1, last_case_date = $2
		WHERE user_id = $3
	`
	if err := utils.ExecWithCheck(t.tx, query, utils.ExecUpdate, stats.DailyCasesUsed, stats.LastCaseDate, stats.UserID); err != nil {
		return fmt.Errorf("failed to update quota: %w", err)
	}
	return nil
}

// InsertUnlock reports whether the (user, fish) pair was newly recorded. A
// duplicate insert is absorbed by the primary key, not an error.
func (t *unlockTx) InsertUnlock(userID, fishID string, at time.Time) (bool, error) {
	query := `
		INSERT INTO user_fish (user_id, fish_id, unlocked_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, fish_id) DO NOTHING
	`
	result, err := t.tx.Exec(query, userID, fishID, at)
	if err != nil {
		return false, fmt.Errorf("failed to insert unlock: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected: %w", err)
	}
	return rows > 0, nil
}

func (t *unlockTx) AddUnlockStats(userID string, points int) error {
	query := `
		UPDATE user_stats
		SET total_points = total_points + $1, total_fish = total_fish + 1
		WHERE user_id = $2
	`
	if err := utils.ExecWithCheck(t.tx, query, utils.ExecUpdate, points, userID); err != nil {
		return fmt.Errorf("failed to add unlock stats: %w", err)
	}
	return nil
}
