package viewstate

import (
	"context"
	"log/slog"
)

// ThemeKey is the preference key holding the persisted theme.
const ThemeKey = "theme"

type ThemeMode int

const (
	Light ThemeMode = iota
	Dark
)

func (m ThemeMode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// Flip returns the opposite mode.
func (m ThemeMode) Flip() ThemeMode {
	if m == Dark {
		return Light
	}
	return Dark
}

// ParseThemeMode decodes a stored value. Only the exact string "dark" is
// Dark; anything else, including the empty string, is Light.
func ParseThemeMode(s string) ThemeMode {
	if s == "dark" {
		return Dark
	}
	return Light
}

// PreferenceStore is the key/value store the theme is persisted to.
type PreferenceStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// ThemeReader is the read-only view of the presentation flag handed to
// renderers.
type ThemeReader interface {
	Mode() ThemeMode
	Dark() bool
	Subscribe(fn func()) (cancel func())
}

// ThemeContext carries the presentation flag every style reads. Only
// ThemePreference writes it.
type ThemeContext struct {
	mode ThemeMode
	notifier
}

func (c *ThemeContext) Mode() ThemeMode { return c.mode }

func (c *ThemeContext) Dark() bool { return c.mode == Dark }

func (c *ThemeContext) apply(m ThemeMode) {
	if c.mode == m {
		return
	}
	c.mode = m
	c.notify()
}

// ThemePreference resolves and toggles the light/dark preference, keeping
// the presentation flag and the store in step.
type ThemePreference struct {
	presentation *ThemeContext
	store        PreferenceStore
	logger       *slog.Logger
	mode         ThemeMode
	notifier
}

// NewThemePreference returns a preference in Light mode. store may be nil,
// in which case the choice lives only for the session.
func NewThemePreference(store PreferenceStore, logger *slog.Logger) *ThemePreference {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ThemePreference{
		presentation: &ThemeContext{},
		store:        store,
		logger:       logger,
	}
}

// Context returns the presentation flag for read-only consumers.
func (p *ThemePreference) Context() ThemeReader {
	return p.presentation
}

// Init reads the stored preference. Only a stored Dark touches the
// presentation flag; a missing, unreadable or unrecognised value leaves the
// default Light in place.
func (p *ThemePreference) Init(ctx context.Context) ThemeMode {
	if p.store == nil {
		return p.mode
	}
	raw, ok, err := p.store.Get(ctx, ThemeKey)
	if err != nil {
		p.logger.Warn("read theme preference", "error", err)
		return Light
	}
	if !ok || ParseThemeMode(raw) != Dark {
		p.logger.Debug("theme preference defaulted", "stored", raw, "present", ok)
		return Light
	}
	p.mode = Dark
	p.presentation.apply(Dark)
	p.notify()
	return Dark
}

func (p *ThemePreference) Get() ThemeMode {
	return p.mode
}

// Toggle flips the mode, applies it to the presentation flag and writes it
// back to the store. A failed write is logged; the in-memory mode still
// changes.
func (p *ThemePreference) Toggle(ctx context.Context) ThemeMode {
	next := p.mode.Flip()
	p.mode = next
	p.presentation.apply(next)
	if p.store != nil {
		if err := p.store.Set(ctx, ThemeKey, next.String()); err != nil {
			p.logger.Warn("persist theme preference", "mode", next.String(), "error", err)
		}
	}
	p.logger.Info("theme toggled", "mode", next.String())
	p.notify()
	return next
}
