package recorder

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lixenwraith/minigold/config"
)

// Open connects to the configured database and migrates the recorder tables
// sqlite with an empty DSN opens a private in-memory database
func Open(cfg config.RecorderConfig, log zerolog.Logger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		SkipDefaultTransaction: true,
		CreateBatchSize:        batchSize(cfg),
		Logger:                 logger.Default.LogMode(logger.Silent),
	}

	var (
		db  *gorm.DB
		err error
	)

	switch cfg.Driver {
	case "postgres":
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  cfg.DSN,
			PreferSimpleProtocol: true,
		}), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("error connecting to postgres: %w", err)
		}
		log.Info().Msg("Recorder using Postgres DB")

	case "sqlite", "":
		dsn := cfg.DSN
		if dsn == "" {
			dsn = fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
		}
		db, err = gorm.Open(sqlite.Open(dsn), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("error opening sqlite: %w", err)
		}
		if err := sqlitePragmas(db); err != nil {
			return nil, err
		}
		log.Info().Str("path", cfg.DSN).Msg("Recorder using SQLite DB")

	default:
		return nil, fmt.Errorf("unknown recorder driver %q", cfg.Driver)
	}

	if err := db.AutoMigrate(&Match{}, &CombatEvent{}); err != nil {
		return nil, fmt.Errorf("error migrating recorder tables: %w", err)
	}
	return db, nil
}

func sqlitePragmas(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to access sql interface: %w", err)
	}
	// A single writer keeps in-memory databases on one connection
	sqlDB.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = MEMORY;",
		"PRAGMA synchronous = OFF;",
		"PRAGMA temp_store = MEMORY;",
	}
	for _, pragma := range pragmas {
		if err := db.Exec(pragma).Error; err != nil {
			return fmt.Errorf("error setting PRAGMA: %w", err)
		}
	}
	return nil
}

func batchSize(cfg config.RecorderConfig) int {
	if cfg.BatchSize <= 0 {
		return 500
	}
	return cfg.BatchSize
}
