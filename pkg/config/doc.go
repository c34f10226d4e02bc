// Package config loads typed configuration from the environment.
//
// It wraps github.com/joho/godotenv, which reads .env files into the process
// environment, and github.com/caarlos0/env/v11, which parses the environment
// into a struct according to `env` and `envDefault` tags.
//
// Each configuration type is parsed once and cached by type, so repeated
// calls to Load are cheap and consistent. ResetCache clears the cache between
// tests.
//
// # Usage
//
//	type Config struct {
//	    Env         string `env:"LANGKIT_ENV" envDefault:"development"`
//	    Parallelism int    `env:"LANGKIT_PARALLELISM" envDefault:"4"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// # Error Handling
//
// Errors wrap ErrParsingConfig, ErrLoadingEnvFile or ErrNilPointer and can
// be matched with errors.Is.
package config
