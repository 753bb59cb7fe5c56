// Package pgtest starts a disposable PostgreSQL for integration tests.
package pgtest

import (
	"context"
	"time"

	"marketplace/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// Container is a running PostgreSQL with the marketplace schema applied.
type Container struct {
	container *tcpostgres.PostgresContainer

	DSN string
	DB  *gorm.DB
}

// Start runs postgres:15-alpine, applies the migrations and connects GORM.
func Start(ctx context.Context) (*Container, error) {
	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	c := &Container{container: container}

	c.DSN, err = container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, err
	}

	if err = postgres.Migrate(c.DSN); err != nil {
		_ = c.Terminate(ctx)
		return nil, err
	}

	c.DB, err = postgres.Open(c.DSN)
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, err
	}

	return c, nil
}

// Truncate empties every table.
func (c *Container) Truncate() error {
	return c.DB.Exec("TRUNCATE TABLE orders, bags, drivers, restaurants CASCADE").Error
}

func (c *Container) Terminate(ctx context.Context) error {
	if c.container == nil {
		return nil
	}
	return c.container.Terminate(ctx)
}
