// Package config provides configuration management for the MaulePro server.
//
// It loads an optional .env file with godotenv, then resolves every key
// through Viper: environment variable first, struct-tag default otherwise.
// Nested keys map to upper-case underscore names, so server.port is read
// from SERVER_PORT.
//
// # Configuration Structure
//
//   - Server: port (8000), host, root, index, browse, open_browser,
//     shutdown_timeout_seconds
//   - Log: level, format, output
//
// Command-line flags on the start command override whatever is loaded here.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
