// Package config loads application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - Optional `.env` files are loaded into the process environment first.
//     Variables already present in the environment win over file values.
//   - The environment is parsed into any Go struct using `env` field tags.
//
// # Usage
//
//	type MailConfig struct {
//	    APIKey string `env:"POSTMARK_API_KEY,required"`
//	    Stream string `env:"POSTMARK_MESSAGE_STREAM" envDefault:"outbound"`
//	}
//
//	var cfg MailConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// Tests can bypass the process environment entirely:
//
//	err := config.Load(&cfg, config.WithEnvironment(map[string]string{
//	    "POSTMARK_API_KEY": "test",
//	}))
//
// # Error Handling
//
//   - ErrParsingConfig: the environment could not be parsed into the struct.
//   - ErrNilPointer: a nil pointer was passed to Load.
//   - ErrLoadingEnvFile: an explicitly requested `.env` file could not be read.
package config
