// Package config provides configuration management for pipeline-hud.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP API settings (port, API key, timeouts)
//   - Stream: view endpoint, reconnect backoff and snapshot mode
//   - LogStore: log retention limits
//   - Storage: S3/MinIO credentials and the snapshot bucket
//   - Database: sync journal connection (sqlite or mysql)
//   - Log: Logging level and format
//
// Environment variables map onto nested keys with underscores, e.g.
// STREAM_URL sets stream.url and SERVER_API_KEY sets server.api_key.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Stream.URL)
package config
