// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for parsing `env` struct tags. Each
// configuration type is parsed once and cached for the life of the
// process:
//
//	type Config struct {
//	    MaxDepth  int    `env:"CONFORM_MAX_DEPTH" envDefault:"256"`
//	    LogLevel  string `env:"CONFORM_LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// Load reads ./.env once if it exists. Additional files can be loaded up
// front with LoadEnv; variables already present in the process environment
// always win over file values.
//
// Errors are sentinels for errors.Is: ErrParsingConfig, ErrLoadingEnvFile
// and ErrNilPointer. Tests that change the environment should call Reload
// or ResetCache.
package config
