// Package database handles the GORM/MySQL connection for the application.
//
// Connect configures the DSN with connection and I/O timeouts, pools the
// underlying sql.DB and verifies the connection with a context-bounded ping.
// Feature models are migrated by the start command after a successful
// connection.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
