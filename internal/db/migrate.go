package db

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"hermes-ido/db/migrations"
)

// Migrate brings the schema at addr to migrations.Version. A dirty schema
// is reported instead of forced.
func Migrate(addr string, logger *slog.Logger) error {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}
	defer src.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", src, addr)
	if err != nil {
		return err
	}
	defer mg.Close()

	current, dirty, err := mg.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		current = 0
	case err != nil:
		return err
	case dirty:
		return fmt.Errorf("schema version %d is dirty", current)
	}

	err = mg.Migrate(migrations.Version)
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Debug("schema up to date", slog.Uint64("version", uint64(current)))
		return nil
	}
	if err != nil {
		return err
	}
	logger.Info("schema migrated",
		slog.Uint64("from", uint64(current)),
		slog.Uint64("to", migrations.Version))
	return nil
}
