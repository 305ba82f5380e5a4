package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"hintkit/internal/application/port/output"
)

var _ output.ConfigPort = (*EnvService)(nil)

var ErrMissingKey = errors.New("required environment variable is missing")

// EnvService reads configuration from the process environment after loading
// .env and .env.$APP_ENV. The second file overrides the first.
type EnvService struct {
	appEnv string
	loaded []string
}

func NewEnvService() (*EnvService, error) {
	return NewEnvServiceIn(".")
}

// NewEnvServiceIn loads the env files found in dir. Missing files are not an
// error; malformed ones are.
func NewEnvServiceIn(dir string) (*EnvService, error) {
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "dev"
	}
	e := &EnvService{appEnv: appEnv}

	base := dir + "/.env"
	if err := godotenv.Load(base); err == nil {
		e.loaded = append(e.loaded, base)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", base, err)
	}

	envFile := fmt.Sprintf("%s/.env.%s", dir, appEnv)
	if err := godotenv.Overload(envFile); err == nil {
		e.loaded = append(e.loaded, envFile)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	return e, nil
}

func (e *EnvService) AppEnv() string   { return e.appEnv }
func (e *EnvService) Loaded() []string { return e.loaded }

func (e *EnvService) Get(key string) string {
	return os.Getenv(key)
}

// MustGet panics when key is unset or empty.
func (e *EnvService) MustGet(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Errorf("%w: %s", ErrMissingKey, key))
	}
	return val
}

func (e *EnvService) GetWithDefault(key string, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}
