package viewstate

import (
	"context"
	"testing"
)

func TestThemeInitWithEmptyStoreIsLight(t *testing.T) {
	store := newMemStore()
	p := NewThemePreference(store, nil)
	if got := p.Init(context.Background()); got != Light {
		t.Fatalf("Init() = %v, want light", got)
	}
	if p.Context().Dark() {
		t.Fatal("presentation flag should stay light")
	}
	if len(store.writes) != 0 {
		t.Fatalf("Init should not write, got %v", store.writes)
	}
}

func TestThemeInitWithStoredDark(t *testing.T) {
	store := newMemStore()
	store.values[ThemeKey] = "dark"
	p := NewThemePreference(store, nil)
	if got := p.Init(context.Background()); got != Dark {
		t.Fatalf("Init() = %v, want dark", got)
	}
	if !p.Context().Dark() {
		t.Fatal("presentation flag should be dark")
	}
	if p.Get() != Dark {
		t.Fatalf("Get() = %v, want dark", p.Get())
	}
}

func TestThemeInitUnrecognisedValues(t *testing.T) {
	for _, raw := range []string{"light", "", "DARK", " dark", "purple"} {
		t.Run(raw, func(t *testing.T) {
			store := newMemStore()
			store.values[ThemeKey] = raw
			p := NewThemePreference(store, nil)
			if got := p.Init(context.Background()); got != Light {
				t.Fatalf("Init() with %q = %v, want light", raw, got)
			}
		})
	}
}

func TestThemeInitReadErrorFallsBackToLight(t *testing.T) {
	store := newMemStore()
	store.values[ThemeKey] = "dark"
	store.getErr = errStoreDown
	p := NewThemePreference(store, nil)
	if got := p.Init(context.Background()); got != Light {
		t.Fatalf("Init() = %v, want light", got)
	}
}

func TestThemeToggleRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	p := NewThemePreference(store, nil)
	p.Init(ctx)

	if got := p.Toggle(ctx); got != Dark {
		t.Fatalf("first Toggle() = %v, want dark", got)
	}
	if store.values[ThemeKey] != "dark" {
		t.Fatalf("stored = %q, want dark", store.values[ThemeKey])
	}
	if !p.Context().Dark() {
		t.Fatal("presentation flag should follow toggle")
	}

	if got := p.Toggle(ctx); got != Light {
		t.Fatalf("second Toggle() = %v, want light", got)
	}
	if store.values[ThemeKey] != "light" {
		t.Fatalf("stored = %q, want light", store.values[ThemeKey])
	}
	if p.Context().Mode() != Light {
		t.Fatal("presentation flag should be light again")
	}
}

func TestThemeToggleWriteErrorStillFlips(t *testing.T) {
	store := newMemStore()
	store.setErr = errStoreDown
	p := NewThemePreference(store, nil)
	if got := p.Toggle(context.Background()); got != Dark {
		t.Fatalf("Toggle() = %v, want dark", got)
	}
}

func TestThemeContextNotifiesReaders(t *testing.T) {
	p := NewThemePreference(nil, nil)
	calls := 0
	cancel := p.Context().Subscribe(func() { calls++ })
	p.Toggle(context.Background())
	p.Toggle(context.Background())
	cancel()
	p.Toggle(context.Background())
	if calls != 2 {
		t.Fatalf("reader notified %d times, want 2", calls)
	}
}
