package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/niksmo/aqua-plant/migrations"
	"github.com/spf13/pflag"
)

const (
	storagePathFlag   = "storage-path"
	migrationPathFlag = "migrations-path"
	downFlag          = "down"
)

type flags struct {
	storagePath    string
	migrationsPath string
	down           bool
}

func main() {
	f := getFlagsValues()
	validateFlags(f)
	makeMigrations(f)
}

type MigrationLogger struct {
	logger  *slog.Logger
	verbose bool
}

func NewMigrationLogger() *MigrationLogger {
	return &MigrationLogger{
		logger:  slog.Default(),
		verbose: true,
	}
}

func (ml *MigrationLogger) Printf(format string, v ...any) {
	ml.logger.Info(fmt.Sprintf(format, v...))
}

func (ml *MigrationLogger) Verbose() bool {
	return ml.verbose
}

func getFlagsValues() (f flags) {
	pflag.StringVarP(&f.storagePath, storagePathFlag, "s", "",
		"postgres address: user:pass@host:port/db")
	pflag.StringVarP(&f.migrationsPath, migrationPathFlag, "m", "",
		"migrations directory, embedded migrations when empty")
	pflag.BoolVar(&f.down, downFlag, false, "roll back all migrations")
	pflag.Parse()
	return f
}

func validateFlags(f flags) {
	if f.storagePath == "" {
		slog.Error("too few args",
			"err", fmt.Errorf("--%s flag: required", storagePathFlag))
		fallDown()
	}
}

func newMigrate(f flags) (*migrate.Migrate, error) {
	dbURL := fmt.Sprintf("pgx5://%s", f.storagePath)

	if f.migrationsPath != "" {
		return migrate.New(fmt.Sprintf("file://%s", f.migrationsPath), dbURL)
	}

	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, err
	}
	return migrate.NewWithSourceInstance("iofs", src, dbURL)
}

func makeMigrations(f flags) {
	m, err := newMigrate(f)
	if err != nil {
		slog.Error("failed to migrate", "err", err)
		fallDown()
	}

	m.Log = NewMigrationLogger()

	apply, done := m.Up, "migration applied"
	if f.down {
		apply, done = m.Down, "migration rolled back"
	}

	if err := apply(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			m.Log.Printf("no migrations to apply")
			return
		}
		slog.Error("failed to migrate", "err", err)
		fallDown()
	}
	m.Log.Printf("%s", done)
}

func fallDown() {
	os.Exit(2)
}
