// Package database handles the sync journal connection and schema checks.
//
// It provides a wrapper around GORM to configure either a MySQL server or a
// local SQLite file based on the application's configuration.
//
// # Connect
//
// Connect opens the configured driver, applies pool settings and verifies the
// connection with a bounded ping. SQLite connections are limited to a single
// open connection.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns read the migrated schema through the GORM
// migrator, so the journal migrate command can report a table that does not
// carry the expected columns.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Journal disabled", zap.Error(err))
//	}
//
//	missing, err := database.MissingColumns(db, "hud_sync_events", []string{"id", "kind"})
package database
