package builder

import (
	"sync"
	"testing"

	"github.com/superme-Sophie/manus-dynamic-section/page"
)

func TestThemeDefaultsFromConfig(t *testing.T) {
	a := New(Config{Title: "T", Theme: page.Theme{Primary: "#112233"}})
	got := a.Theme()
	if got.Primary != "#112233" {
		t.Errorf("Primary = %q, want config value", got.Primary)
	}
	if got.Secondary == "" || got.Accent == "" {
		t.Errorf("defaults not filled in: %+v", got)
	}
}

func TestSetThemeFillsDefaults(t *testing.T) {
	a := New(Config{Title: "T"})
	a.SetTheme(page.Theme{Primary: "#445566"})
	got := a.Theme()
	if got.Primary != "#445566" {
		t.Errorf("Primary = %q", got.Primary)
	}
	if got.Secondary == "" || got.Accent == "" {
		t.Errorf("defaults not filled in: %+v", got)
	}
}

// Theme reads happen on every request while the builder can update the
// theme at any time, so the two must be safe to run concurrently.
func TestThemeConcurrentAccess(t *testing.T) {
	a := New(Config{Title: "T"})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				a.SetTheme(page.Theme{Primary: "#010203"})
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = a.site()
			}
		}()
	}
	wg.Wait()
	if got := a.Theme().Primary; got != "#010203" {
		t.Errorf("Primary = %q after updates", got)
	}
}
