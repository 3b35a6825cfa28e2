// Package preferences stores per-user display preferences and recent searches on top of a
// namespaced key/value Store. Stored values that fail to parse read back as the default.
package preferences

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cookstemma/edge/internal/locale"
)

// ErrInvalidValue is returned when writing a value outside a preference's allowed set.
var ErrInvalidValue = errors.New("invalid preference value")

const (
	KeyTheme           = "theme"
	KeyMeasurementUnit = "measurement_unit"
	KeyLanguage        = "language"
	KeySearchHistory   = "search_history"
)

type Theme string

const (
	ThemeSystem Theme = "SYSTEM"
	ThemeLight  Theme = "LIGHT"
	ThemeDark   Theme = "DARK"

	DefaultTheme = ThemeSystem
)

// ParseTheme accepts the canonical names case-insensitively.
func ParseTheme(s string) (Theme, error) {
	switch t := Theme(strings.ToUpper(strings.TrimSpace(s))); t {
	case ThemeSystem, ThemeLight, ThemeDark:
		return t, nil
	}
	return DefaultTheme, fmt.Errorf("%w: theme %q", ErrInvalidValue, s)
}

type MeasurementUnit string

const (
	UnitOriginal MeasurementUnit = "ORIGINAL"
	UnitMetric   MeasurementUnit = "METRIC"
	UnitUS       MeasurementUnit = "US"

	DefaultMeasurementUnit = UnitOriginal
)

// ParseMeasurementUnit accepts the canonical names case-insensitively.
func ParseMeasurementUnit(s string) (MeasurementUnit, error) {
	switch u := MeasurementUnit(strings.ToUpper(strings.TrimSpace(s))); u {
	case UnitOriginal, UnitMetric, UnitUS:
		return u, nil
	}
	return DefaultMeasurementUnit, fmt.Errorf("%w: measurement unit %q", ErrInvalidValue, s)
}

// ParseLanguage accepts one of the supported locale codes.
func ParseLanguage(s string) (string, error) {
	code := strings.ToLower(strings.TrimSpace(s))
	if locale.IsSupported(code) {
		return code, nil
	}
	return locale.Default, fmt.Errorf("%w: language %q", ErrInvalidValue, s)
}

// Snapshot is the effective preference set.
type Snapshot struct {
	Theme           Theme
	MeasurementUnit MeasurementUnit
	Language        string
}

// Preferences reads and writes typed preferences.
type Preferences struct {
	store Store
}

func New(store Store) *Preferences {
	return &Preferences{store: store}
}

// read returns the parsed stored value, or def when nothing or garbage is stored.
func read[T any](ctx context.Context, store Store, key string, parse func(string) (T, error), def T) (T, error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return def, err
	}
	if !ok {
		return def, nil
	}
	v, err := parse(raw)
	if err != nil {
		return def, nil
	}
	return v, nil
}

func (p *Preferences) Theme(ctx context.Context) (Theme, error) {
	return read(ctx, p.store, KeyTheme, ParseTheme, DefaultTheme)
}

func (p *Preferences) SetTheme(ctx context.Context, t Theme) error {
	parsed, err := ParseTheme(string(t))
	if err != nil {
		return err
	}
	return p.store.Set(ctx, KeyTheme, string(parsed))
}

func (p *Preferences) MeasurementUnit(ctx context.Context) (MeasurementUnit, error) {
	return read(ctx, p.store, KeyMeasurementUnit, ParseMeasurementUnit, DefaultMeasurementUnit)
}

func (p *Preferences) SetMeasurementUnit(ctx context.Context, u MeasurementUnit) error {
	parsed, err := ParseMeasurementUnit(string(u))
	if err != nil {
		return err
	}
	return p.store.Set(ctx, KeyMeasurementUnit, string(parsed))
}

func (p *Preferences) Language(ctx context.Context) (string, error) {
	return read(ctx, p.store, KeyLanguage, ParseLanguage, locale.Default)
}

func (p *Preferences) SetLanguage(ctx context.Context, code string) error {
	parsed, err := ParseLanguage(code)
	if err != nil {
		return err
	}
	return p.store.Set(ctx, KeyLanguage, parsed)
}

// Snapshot reads every preference.
func (p *Preferences) Snapshot(ctx context.Context) (Snapshot, error) {
	theme, err := p.Theme(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	unit, err := p.MeasurementUnit(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	lang, err := p.Language(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Theme: theme, MeasurementUnit: unit, Language: lang}, nil
}

// Reset removes every stored preference so reads return defaults.
func (p *Preferences) Reset(ctx context.Context) error {
	for _, key := range []string{KeyTheme, KeyMeasurementUnit, KeyLanguage} {
		if err := p.store.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}
