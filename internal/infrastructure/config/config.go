// Package config maps environment keys onto hint options, browser settings
// and the log level.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap/zapcore"

	"hintkit/internal/domain/entity"
	"hintkit/internal/infrastructure/browser/rod"
)

const (
	KeyHintKeys        = "HINT_KEYS"
	KeyHintMax         = "HINT_MAX"
	KeyFollowLast      = "HINT_FOLLOW_LAST"
	KeyFixedWidth      = "HINT_FIXED_WIDTH"
	KeyKeepOpen        = "HINT_KEEP_OPEN"
	KeyVisibility      = "HINT_VISIBILITY"
	KeyBackground      = "HINT_BG"
	KeyFocusBg         = "HINT_BG_FOCUS"
	KeyForeground      = "HINT_FG"
	KeyStyle           = "HINT_STYLE"
	KeyHeadless        = "BROWSER_HEADLESS"
	KeyTimeout         = "BROWSER_TIMEOUT"
	KeySlowMotion      = "BROWSER_SLOW_MOTION"
	KeyDisableSecurity = "BROWSER_DISABLE_SECURITY"
	KeyLogLevel        = "LOG_LEVEL"
	KeyScrollStep      = "SCROLL_STEP"

	DefaultScrollStep = 40
)

var ErrInvalidValue = errors.New("invalid configuration value")

// Source is the read side of output.ConfigPort.
type Source interface {
	Get(key string) string
}

type Config struct {
	Hints      entity.Options
	Browser    rod.BrowserConfig
	LogLevel   zapcore.Level
	ScrollStep int
}

func Default() Config {
	return Config{
		Hints:      entity.DefaultOptions(),
		Browser:    rod.DefaultConfig(),
		LogLevel:   zapcore.InfoLevel,
		ScrollStep: DefaultScrollStep,
	}
}

// Load starts from the defaults and applies every key set in src. All
// malformed values are reported together.
func Load(src Source) (Config, error) {
	cfg := Default()
	r := reader{src: src}

	r.text(KeyHintKeys, &cfg.Hints.Keys)
	r.number(KeyHintMax, &cfg.Hints.MaxHints)
	r.flag(KeyFollowLast, &cfg.Hints.FollowLast)
	r.flag(KeyFixedWidth, &cfg.Hints.FixedWidth)
	r.flag(KeyKeepOpen, &cfg.Hints.KeepOpen)
	if v := src.Get(KeyVisibility); v != "" {
		cfg.Hints.Visibility = entity.VisibilityPolicy(v)
	}
	r.text(KeyBackground, &cfg.Hints.Style.Background)
	r.text(KeyFocusBg, &cfg.Hints.Style.FocusBackground)
	r.text(KeyForeground, &cfg.Hints.Style.Foreground)
	r.text(KeyStyle, &cfg.Hints.Style.CSS)

	r.flag(KeyHeadless, &cfg.Browser.Headless)
	r.duration(KeyTimeout, &cfg.Browser.Timeout)
	r.duration(KeySlowMotion, &cfg.Browser.SlowMotion)
	r.flag(KeyDisableSecurity, &cfg.Browser.DisableSecurityFeatures)
	r.number(KeyScrollStep, &cfg.ScrollStep)

	if v := src.Get(KeyLogLevel); v != "" {
		lvl, err := zapcore.ParseLevel(v)
		if err != nil {
			r.fail(KeyLogLevel, v, err)
		} else {
			cfg.LogLevel = lvl
		}
	}

	if cfg.ScrollStep <= 0 {
		r.fail(KeyScrollStep, strconv.Itoa(cfg.ScrollStep), errors.New("must be positive"))
	}
	if err := cfg.Hints.Validate(); err != nil {
		r.errs = append(r.errs, err)
	}
	return cfg, errors.Join(r.errs...)
}

type reader struct {
	src  Source
	errs []error
}

func (r *reader) fail(key, val string, err error) {
	r.errs = append(r.errs, fmt.Errorf("%w: %s=%q: %v", ErrInvalidValue, key, val, err))
}

func (r *reader) text(key string, dst *string) {
	if v := r.src.Get(key); v != "" {
		*dst = v
	}
}

func (r *reader) number(key string, dst *int) {
	v := r.src.Get(key)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.fail(key, v, err)
		return
	}
	*dst = n
}

func (r *reader) flag(key string, dst *bool) {
	v := r.src.Get(key)
	if v == "" {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		r.fail(key, v, err)
		return
	}
	*dst = b
}

// duration accepts Go durations ("2s") or plain milliseconds.
func (r *reader) duration(key string, dst *time.Duration) {
	v := r.src.Get(key)
	if v == "" {
		return
	}
	if ms, err := strconv.Atoi(v); err == nil {
		*dst = time.Duration(ms) * time.Millisecond
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		r.fail(key, v, err)
		return
	}
	*dst = d
}
