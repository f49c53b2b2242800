package database

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"spendwise/internal/config"
	"spendwise/internal/logger"
	"spendwise/internal/store"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

//go:embed migrations
var migrationsFS embed.FS

// Manager owns the connection behind the record store.
type Manager struct {
	driver string
	db     *gorm.DB
	url    string
	mem    *store.MemoryStore
}

// NewManager opens the backend selected by cfg.DBDriver. The memory driver
// opens nothing and keeps all records in process.
func NewManager(cfg *config.Config) (*Manager, error) {
	m := &Manager{driver: cfg.DBDriver}

	gormCfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)}

	switch cfg.DBDriver {
	case config.DriverMemory:
		m.mem = store.NewMemoryStore()
		return m, nil

	case config.DriverPostgres:
		db, err := gorm.Open(postgres.New(postgres.Config{
			DSN:                  cfg.PostgresDSN(),
			PreferSimpleProtocol: true,
		}), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		m.db = db
		m.url = cfg.PostgresURL()

	default:
		if dir := filepath.Dir(cfg.DBPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create db directory: %w", err)
			}
		}
		db, err := gorm.Open(sqlite.Open(cfg.DBPath), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		m.db = db
		m.url = "sqlite3://" + cfg.DBPath
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	if cfg.DBDriver == config.DriverPostgres {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
	} else {
		// single writer
		sqlDB.SetMaxOpenConns(1)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	return m, nil
}

// Migrator returns a golang-migrate instance over the embedded migrations
// for the configured driver. Callers must Close it.
func (m *Manager) Migrator() (*migrate.Migrate, error) {
	if m.db == nil {
		return nil, errors.New("memory driver has no migrations")
	}
	dir := "migrations/sqlite"
	if m.driver == config.DriverPostgres {
		dir = "migrations/postgres"
	}
	src, err := iofs.New(migrationsFS, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}
	mig, err := migrate.NewWithSourceInstance("iofs", src, m.url)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return mig, nil
}

// RunMigrations applies pending SQL migrations. It is a no-op for the memory driver.
func (m *Manager) RunMigrations() error {
	if m.db == nil {
		return nil
	}
	logger.Named("database").Info("Running database migrations...")

	mig, err := m.Migrator()
	if err != nil {
		return err
	}
	defer CloseMigrator(mig)

	if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Named("database").Info("Database migrations completed successfully")
	return nil
}

// Store returns the record store backed by this manager.
func (m *Manager) Store() store.RecordStore {
	if m.mem != nil {
		return m.mem
	}
	return store.NewGormStore(m.db)
}

// DB returns the underlying GORM database instance, or nil for the memory driver.
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close releases the database connection.
func (m *Manager) Close() error {
	if m.db == nil {
		return nil
	}
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// CloseMigrator closes a migrator returned by Migrator, logging any errors.
func CloseMigrator(mig *migrate.Migrate) {
	srcErr, dbErr := mig.Close()
	if srcErr != nil {
		logger.Named("database").Warnf("migrate source close error: %v", srcErr)
	}
	if dbErr != nil {
		logger.Named("database").Warnf("migrate database close error: %v", dbErr)
	}
}
