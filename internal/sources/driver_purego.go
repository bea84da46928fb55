//go:build !cgo_sqlite

package sources

import (
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const (
	sqliteDriverName = "sqlite"
	sqliteDriverType = "purego"
)
