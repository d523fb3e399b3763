package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache holds one parsed value per configuration type.
var cache sync.Map // reflect.Type -> any

var defaultEnvLoaded sync.Once

// LoadEnv loads .env files into the process environment. Files listed
// later override earlier ones; variables already set in the environment
// are kept. Without arguments it loads ".env" from the working directory.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	vars, err := godotenv.Read(paths...)
	if err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	for k, v := range vars {
		if _, exists := os.LookupEnv(k); exists {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
	}
	return nil
}

// MustLoadEnv is LoadEnv that panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("config: loading env files: %v", err))
	}
}

// Load parses the environment into v using `env` struct tags. The default
// .env file is read once, if present. Each configuration type is parsed
// once and served from cache afterwards.
//
//	type Config struct {
//	    MaxDepth int    `env:"CONFORM_MAX_DEPTH" envDefault:"256"`
//	    Language string `env:"CONFORM_LANGUAGE" envDefault:"en"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	defaultEnvLoaded.Do(func() {
		// A missing .env file is fine.
		_ = LoadEnv()
	})

	key := typeKey[T]()
	if cached, ok := cache.Load(key); ok {
		*v = cached.(T)
		return nil
	}
	return parse(key, v)
}

// MustLoad is Load that panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
}

// Reload parses the environment into v again and replaces the cached value.
func Reload[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	return parse(typeKey[T](), v)
}

// ResetCache drops every cached configuration.
func ResetCache() {
	cache.Clear()
}

func parse[T any](key reflect.Type, v *T) error {
	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	cache.Store(key, parsed)
	*v = parsed
	return nil
}

func typeKey[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}
