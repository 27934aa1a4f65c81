package temporal

import (
	"sync/atomic"
	"time"

	"github.com/teranos/nldates/errors"
	"github.com/teranos/nldates/locale"
	"github.com/teranos/nldates/logger"
	"golang.org/x/text/language"
)

// LocaleConfig selects the locale consulted for the locale-default week start.
type LocaleConfig struct {
	// Tag is a BCP 47 tag ("en-GB", "de-DE-u-fw-sun") or a POSIX locale
	// name ("en_GB.UTF-8"). Empty means detect from LC_ALL, LC_TIME, LANG.
	Tag string
}

// Environment is the read-only locale state a resolution needs. Build one
// with NewEnvironment to resolve without touching process-wide state.
type Environment struct {
	tag       language.Tag
	weekStart time.Weekday
}

// NewEnvironment parses the locale configuration.
func NewEnvironment(cfg LocaleConfig) (*Environment, error) {
	tag, err := locale.Resolve(cfg.Tag)
	if err != nil {
		return nil, err
	}
	return &Environment{tag: tag, weekStart: locale.WeekStart(tag)}, nil
}

// Locale returns the environment's language tag
func (e *Environment) Locale() language.Tag {
	return e.tag
}

// WeekStart returns the locale's first day of the week
func (e *Environment) WeekStart() time.Weekday {
	return e.weekStart
}

// global is the process-wide environment; nil until Initialize
var global atomic.Pointer[Environment]

func current() *Environment {
	return global.Load()
}

// Initialize installs the process-wide environment. It must run before
// Resolve and fails with ErrAlreadyInitialized if an environment is
// already installed; use Reinitialize to replace it.
func Initialize(cfg LocaleConfig) error {
	env, err := NewEnvironment(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to initialize resolver")
	}
	if !global.CompareAndSwap(nil, env) {
		return errors.WithHint(errors.ErrAlreadyInitialized,
			"use temporal.Reinitialize to replace the locale environment")
	}
	logInstalled("initialized", env)
	return nil
}

// Reinitialize atomically replaces the process-wide environment. Resolutions
// in flight finish against the environment they loaded.
func Reinitialize(cfg LocaleConfig) error {
	env, err := NewEnvironment(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to reinitialize resolver")
	}
	global.Store(env)
	logInstalled("reinitialized", env)
	return nil
}

// Teardown clears the process-wide environment. Resolve fails with
// ErrNotInitialized until the next Initialize.
func Teardown() {
	if global.Swap(nil) != nil {
		logger.ComponentLogger("temporal").Debugw("torn down")
	}
}

// Initialized reports whether an environment is installed
func Initialized() bool {
	return current() != nil
}

func logInstalled(event string, env *Environment) {
	logger.ComponentLogger("temporal").Infow(event,
		logger.FieldLocale, env.tag.String(),
		logger.FieldWeekStart, env.weekStart.String())
}

func notInitialized(op string) error {
	return errors.WithHint(errors.Wrap(errors.ErrNotInitialized, op),
		"call temporal.Initialize before resolving phrases")
}
