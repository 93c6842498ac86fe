// Package config provides configuration management for livecast.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults live next to each field in a `default` struct tag.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: port, request body limit, assets directory, shutdown timeout
//   - Storage: template storage driver (disk or s3) and its credentials
//   - Log: logging level and format
//   - Database: optional visit history database
//   - Broadcast: per-subscriber queue size, write timeout, keep-alive, eviction
//   - Geo: viewer geo resolver provider
//
// Environment variables map to nested keys by replacing dots with underscores,
// e.g. SERVER_PORT sets server.port and STORAGE_DRIVER sets storage.driver.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
