// Package database handles the optional relational connection used for visit history.
//
// It provides a wrapper around GORM to configure MySQL or SQLite connections based on
// the application's configuration. The database is optional: an empty driver disables
// it, and a failed connection at startup is logged as a warning while the server
// keeps running with in-memory state only.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("Optional database connection failed", zap.Error(err))
//	}
package database
