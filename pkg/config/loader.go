package config

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache keeps one parsed copy per configuration type.
// Every type gets its own sync.Once so concurrent first loads resolve to a single winner.
type cache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

var (
	settings = newCache()

	defaultEnvMu     sync.Mutex
	defaultEnvLoaded bool
)

func newCache() *cache {
	return &cache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}
}

// LoadEnv reads variables from the given .env files into the process environment.
// With no paths the default .env in the working directory is used and must exist.
// Otherwise the given files are layered over the default .env, which is optional:
// files listed later take precedence over earlier ones and over .env, while
// variables already present in the process environment are never replaced.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		markDefaultEnvLoaded()
		return godotenv.Load()
	}

	// godotenv.Load keeps the first value it sees, so walk the list backwards
	// to let the last file win, and read the default file last.
	for i := len(paths) - 1; i >= 0; i-- {
		if err := godotenv.Load(paths[i]); err != nil {
			return fmt.Errorf("load env file %q: %w", paths[i], err)
		}
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load default env file: %w", err)
	}
	markDefaultEnvLoaded()
	return nil
}

// MustLoadEnv is LoadEnv that panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

// Load parses environment variables into v using `env` struct tags.
// Each configuration type is parsed once per process; later calls are served
// from the cache, which makes Load cheap to call from anywhere.
//
// Example:
//
//	type EmailSettings struct {
//		APIKey string `env:"RESEND_API_KEY"`
//		From   string `env:"EMAIL_FROM,required"`
//	}
//
//	var s EmailSettings
//	if err := config.Load(&s); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	loadDefaultEnv()
	if v == nil {
		return ErrNilPointer
	}

	key := typeKey[T]()
	if cached(key, v) {
		return nil
	}

	settings.mu.Lock()
	once, ok := settings.onces[key]
	if !ok {
		once = new(sync.Once)
		settings.onces[key] = once
	}
	settings.mu.Unlock()

	var err error
	once.Do(func() {
		if parseErr := env.Parse(v); parseErr != nil {
			err = errors.Join(ErrParsingConfig, parseErr)
			// allow a later call to retry once the environment is fixed
			settings.mu.Lock()
			delete(settings.onces, key)
			settings.mu.Unlock()
			return
		}

		settings.mu.Lock()
		settings.values[key] = *v
		settings.mu.Unlock()
	})
	if err != nil {
		return err
	}

	if cached(key, v) {
		return nil
	}
	return ErrConfigNotLoaded
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ForceReloadConfig drops the cached copy of T and parses the environment again.
func ForceReloadConfig[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	key := typeKey[T]()
	settings.mu.Lock()
	delete(settings.values, key)
	delete(settings.onces, key)
	settings.mu.Unlock()

	return Load(v)
}

// ResetCache forgets every loaded configuration. Intended for tests.
func ResetCache() {
	settings.mu.Lock()
	settings.values = make(map[string]any)
	settings.onces = make(map[string]*sync.Once)
	settings.mu.Unlock()
}

// cached copies the stored value for key into v.
func cached[T any](key string, v *T) bool {
	settings.mu.RLock()
	defer settings.mu.RUnlock()

	stored, ok := settings.values[key].(T)
	if !ok {
		return false
	}
	*v = stored
	return true
}

func loadDefaultEnv() {
	defaultEnvMu.Lock()
	defer defaultEnvMu.Unlock()
	if defaultEnvLoaded {
		return
	}
	defaultEnvLoaded = true
	// a missing .env file is fine
	_ = godotenv.Load()
}

func markDefaultEnvLoaded() {
	defaultEnvMu.Lock()
	defaultEnvLoaded = true
	defaultEnvMu.Unlock()
}

// typeKey returns a string identifier for the generic type T.
func typeKey[T any]() string {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		return fmt.Sprintf("%T", new(T))
	}
	return t.PkgPath() + "." + t.String()
}
