// Package iocache is for persisting metric reports across runs.
package iocache

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/huangsam/citescope/schema"
)

// Table names for report history tracking.
const (
	runsTable    = "citescope_runs"
	reportsTable = "citescope_metric_reports"
)

// GetHistoryDBFilePath returns the path to the SQLite DB file for report history.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".citescope_history.db"
	}
	return filepath.Join(homeDir, ".citescope_history.db")
}

// quoteTableName quotes a table name appropriately for the backend.
func quoteTableName(name string, backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf("`%s`", name)
	default: // SQLite and PostgreSQL
		return fmt.Sprintf("%q", name)
	}
}

// formatTime converts a time.Time to the appropriate format for the backend.
// SQLite has no native datetime type, so values are stored as RFC 3339 text.
func formatTime(t time.Time, backend schema.DatabaseBackend) any {
	switch backend {
	case schema.SQLiteBackend:
		return t.Format(time.RFC3339Nano)
	default:
		return t
	}
}
