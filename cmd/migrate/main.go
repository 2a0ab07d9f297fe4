package main

import (
	"database/sql"
	"flag"
	"os"

	"blog-api/pkg/config"
	"blog-api/pkg/database"
	"blog-api/pkg/logger"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

func main() {
	var (
		dir     = flag.String("dir", "migrations", "directory with migration files")
		command = flag.String("command", "up", "migration command (up, down, redo, reset, status, version, create)")
		name    = flag.String("name", "", "name for new migration (used with create command)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.NewForEnv(cfg.AppEnv)
	defer func() { _ = log.Sync() }()

	if err := run(cfg, *dir, *command, *name, log); err != nil {
		log.Error("Migration command %q failed: %v", *command, err)
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, dir, command, name string, log *logger.Logger) error {
	db, err := sql.Open("postgres", database.DSN(cfg))
	if err != nil {
		return err
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	commands := map[string]func() error{
		"up":      func() error { return goose.Up(db, dir) },
		"down":    func() error { return goose.Down(db, dir) },
		"redo":    func() error { return goose.Redo(db, dir) },
		"reset":   func() error { return goose.Reset(db, dir) },
		"status":  func() error { return goose.Status(db, dir) },
		"version": func() error { return goose.Version(db, dir) },
		"create": func() error {
			if name == "" {
				return errNameRequired
			}
			return goose.Create(db, dir, name, "sql")
		},
	}

	fn, ok := commands[command]
	if !ok {
		return errUnknownCommand
	}
	if err := fn(); err != nil {
		return err
	}

	log.Info("Migration command %q finished", command)
	return nil
}
