package postgres

import (
	"testing"
	"time"

	"aquarium-service/internal/config"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func TestRetryConnectOnFailed_NoRetryWhileHealthy(t *testing.T) {
	DB_Status = true
	t.Cleanup(func() { DB_Status = false })

	// returns immediately instead of dialing; a healthy flag means the lost
	// connection alert was stale
	var db *sqlx.DB
	RetryConnectOnFailed(time.Millisecond, &db, config.PostgresConfig{})
	assert.Nil(t, db)
}
