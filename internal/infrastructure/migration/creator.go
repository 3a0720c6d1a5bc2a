package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// MigrationFile describes a created up/down migration pair
type MigrationFile struct {
	Version  string
	Name     string
	UpPath   string
	DownPath string
}

// CreateMigration scaffolds a new up/down migration pair in migrationsDir.
// Versions are second-resolution timestamps so files sort chronologically.
func CreateMigration(migrationsDir, name string) (*MigrationFile, error) {
	if name == "" {
		return nil, fmt.Errorf("migration name is required")
	}

	if err := os.MkdirAll(migrationsDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create migrations directory: %w", err)
	}

	version := time.Now().Format("20060102150405")
	slug := strings.ReplaceAll(strings.ToLower(name), " ", "_")

	upPath := filepath.Join(migrationsDir, fmt.Sprintf("%s_%s.up.sql", version, slug))
	downPath := filepath.Join(migrationsDir, fmt.Sprintf("%s_%s.down.sql", version, slug))

	header := fmt.Sprintf("-- Migration: %s\n-- Created: %s\n\n", slug, time.Now().Format(time.RFC3339))
	if err := os.WriteFile(upPath, []byte(header), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write up migration: %w", err)
	}
	if err := os.WriteFile(downPath, []byte(header), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write down migration: %w", err)
	}

	return &MigrationFile{
		Version:  version,
		Name:     slug,
		UpPath:   upPath,
		DownPath: downPath,
	}, nil
}
