// Package config loads the application configuration.
//
// Values come from environment variables, optionally seeded from a .env file,
// and fall back to the `default` struct tags of each section. Nested keys map
// to upper-case variables with underscores, so assets.stats_file is read from
// ASSETS_STATS_FILE.
//
// # Configuration Structure
//
//   - Server: HTTP port, API key and timeouts
//   - Database: MySQL or SQLite connection details
//   - Storage: S3/MinIO credentials and bucket
//   - Log: level and format
//   - Crypto: Fernet key for encrypted values
//   - Assets: webpack stats files and static URLs
//   - Export: spreadsheet export limits
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
