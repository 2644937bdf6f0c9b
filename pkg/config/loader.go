package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Option tunes a single Load call.
type Option func(*loadOptions)

type loadOptions struct {
	files       []string
	environment map[string]string
	prefix      string
}

// WithFiles loads the given .env files before parsing.
// Missing files are reported as ErrLoadingEnvFile.
func WithFiles(files ...string) Option {
	return func(o *loadOptions) { o.files = append(o.files, files...) }
}

// WithEnvironment parses from the given map instead of the process environment.
func WithEnvironment(environ map[string]string) Option {
	return func(o *loadOptions) { o.environment = environ }
}

// WithPrefix requires every variable name to carry the prefix.
func WithPrefix(prefix string) Option {
	return func(o *loadOptions) { o.prefix = prefix }
}

// Load parses environment variables into v based on its `env` field tags.
//
// On first use the default .env file in the working directory is loaded if it
// exists. Values already set in the process environment are never overridden.
//
// Example:
//
//	type ServerConfig struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := loadOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	defaultEnvLoaded.Do(func() {
		// The default .env file is optional.
		_ = godotenv.Load()
	})

	if len(o.files) > 0 {
		if err := godotenv.Load(o.files...); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
	}

	if err := env.ParseWithOptions(v, env.Options{
		Environment: o.environment,
		Prefix:      o.prefix,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Use it for configuration the process cannot start without.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
