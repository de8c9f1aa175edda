package database

import (
	"context"

	"gorm.io/gorm"
)

// Provider abstracts the relational metadata store.
type Provider interface {
	// DB returns the underlying *gorm.DB instance.
	DB() *gorm.DB

	// WithContext returns a request-scoped *gorm.DB.
	WithContext(ctx context.Context) *gorm.DB

	// AutoMigrate applies DDL for the given models.
	AutoMigrate(models ...interface{}) error

	// Ping checks database connectivity.
	Ping() error

	// Close shuts the connection pool down.
	Close() error

	// Name returns the backing database type.
	Name() string
}
