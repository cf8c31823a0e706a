package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const connectTimeout = 30 * time.Second

// Connect opens a GORM connection to Postgres, retrying with exponential
// backoff while the database is still starting up. Gives up after
// connectTimeout and returns the last connection error.
func Connect(ctx context.Context, dsn string) (*gorm.DB, error) {
	var db *gorm.DB

	operation := func() error {
		var err error
		db, err = gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return err
		}

		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}

	policy := backoff.WithContext(
		backoff.NewExponentialBackOff(backoff.WithMaxElapsedTime(connectTimeout)),
		ctx,
	)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	return db, nil
}
