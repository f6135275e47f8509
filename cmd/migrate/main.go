package main

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/adroitdesign/studio-api/internal/config"
	"github.com/adroitdesign/studio-api/internal/infra"
)

const migrationsTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
	name TEXT PRIMARY KEY,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file provided")
	}

	var cfg config.PostgresCfg
	if err := env.Parse(&cfg); err != nil {
		logrus.Fatalf("failed to parse environment variables - %v", err)
	}

	ctx := context.Background()
	pool, err := infra.Postgresql(ctx, cfg)
	if err != nil {
		logrus.Fatal(err)
	}
	defer pool.Close()

	if err := apply(ctx, pool, migrationsDir()); err != nil {
		logrus.Fatal(err)
	}
}

func migrationsDir() string {
	dir := "migrations"
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		dir = "../migrations"
	}
	return dir
}

func apply(ctx context.Context, pool *pgxpool.Pool, dir string) error {
	if _, err := pool.Exec(ctx, migrationsTable); err != nil {
		return err
	}

	applied := 0
	for _, filename := range sqlFiles(dir) {
		name := strings.TrimSuffix(filename, ".sql")

		var exists bool
		if err := pool.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE name = $1)", name).Scan(&exists); err != nil {
			return err
		}
		if exists {
			continue
		}

		sql, err := os.ReadFile(filepath.Join(dir, filename))
		if err != nil {
			return err
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			logrus.Errorf("migration %s failed - %v", name, err)
			return err
		}
		if _, err := pool.Exec(ctx, "INSERT INTO schema_migrations (name) VALUES ($1)", name); err != nil {
			return err
		}

		logrus.Infof("applied migration %s", name)
		applied++
	}

	if applied == 0 {
		logrus.Info("all migrations already applied")
	}
	return nil
}

func sqlFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logrus.Fatalf("failed to read migrations directory - %v", err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files
}
