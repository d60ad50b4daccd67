package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/valter-silva-au/taskpad/pkg/models"
	"pgregory.net/rapid"
)

func genNonEmptyAlphaString(t *rapid.T, label string) string {
	return rapid.StringMatching(`[a-z]{1,8}-[a-z0-9]{1,8}`).Draw(t, label)
}

type configValues struct {
	locale       string
	userName     string
	userRole     string
	sidebarWidth int
	seedEnabled  bool
	seeds        []models.SeedTask
}

func genConfigValues(t *rapid.T) configValues {
	v := configValues{
		locale:       rapid.SampledFrom([]string{"en", "th"}).Draw(t, "locale"),
		userName:     genNonEmptyAlphaString(t, "userName"),
		userRole:     genNonEmptyAlphaString(t, "userRole"),
		sidebarWidth: rapid.IntRange(0, 80).Draw(t, "sidebarWidth"),
		seedEnabled:  rapid.Bool().Draw(t, "seedEnabled"),
	}
	n := rapid.IntRange(0, 4).Draw(t, "seedCount")
	v.seeds = make([]models.SeedTask, n)
	for i := range v.seeds {
		v.seeds[i] = models.SeedTask{
			Title:       genNonEmptyAlphaString(t, fmt.Sprintf("seedTitle%d", i)),
			Description: genNonEmptyAlphaString(t, fmt.Sprintf("seedDesc%d", i)),
			Done:        rapid.Bool().Draw(t, fmt.Sprintf("seedDone%d", i)),
		}
	}
	return v
}

func mustWriteTaskpadConfig(t *rapid.T, dir string, v configValues) {
	var b strings.Builder
	fmt.Fprintf(&b, "locale: %s\n", v.locale)
	fmt.Fprintf(&b, "user:\n  name: %s\n  role: %s\n", v.userName, v.userRole)
	fmt.Fprintf(&b, "ui:\n  sidebar_width: %d\n", v.sidebarWidth)
	fmt.Fprintf(&b, "seed:\n  enabled: %t\n", v.seedEnabled)
	if len(v.seeds) == 0 {
		b.WriteString("  tasks: []\n")
	} else {
		b.WriteString("  tasks:\n")
		for _, s := range v.seeds {
			fmt.Fprintf(&b, "    - title: %s\n      description: %s\n      done: %t\n", s.Title, s.Description, s.Done)
		}
	}

	path := filepath.Join(dir, ConfigFileName+".yaml")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// Values written to .taskpad.yaml come back unchanged from LoadGlobalConfig
// and pass validation.
func TestProperty_ConfigRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		dir, err := os.MkdirTemp(t.TempDir(), "config")
		if err != nil {
			rt.Fatalf("creating temp dir: %v", err)
		}
		v := genConfigValues(rt)
		mustWriteTaskpadConfig(rt, dir, v)

		cm := NewConfigurationManager(dir)
		cfg, err := cm.LoadGlobalConfig()
		if err != nil {
			rt.Fatalf("LoadGlobalConfig: %v", err)
		}
		if err := cm.ValidateConfig(cfg); err != nil {
			rt.Fatalf("ValidateConfig: %v", err)
		}

		if cfg.Locale != v.locale {
			rt.Errorf("Locale = %q, want %q", cfg.Locale, v.locale)
		}
		if cfg.User.Name != v.userName || cfg.User.Role != v.userRole {
			rt.Errorf("User = %+v, want %s/%s", cfg.User, v.userName, v.userRole)
		}
		if cfg.UI.SidebarWidth != v.sidebarWidth {
			rt.Errorf("SidebarWidth = %d, want %d", cfg.UI.SidebarWidth, v.sidebarWidth)
		}
		if cfg.Seed.Enabled != v.seedEnabled {
			rt.Errorf("Seed.Enabled = %t, want %t", cfg.Seed.Enabled, v.seedEnabled)
		}
		if cfg.Seed.Tasks == nil {
			rt.Fatalf("Seed.Tasks = nil, want explicit list of %d", len(v.seeds))
		}
		if len(cfg.Seed.Tasks) != len(v.seeds) {
			rt.Fatalf("len(Seed.Tasks) = %d, want %d", len(cfg.Seed.Tasks), len(v.seeds))
		}
		for i, s := range v.seeds {
			if cfg.Seed.Tasks[i] != s {
				rt.Errorf("Seed.Tasks[%d] = %+v, want %+v", i, cfg.Seed.Tasks[i], s)
			}
		}
	})
}

// A negative sidebar width always fails validation, whatever else is set.
func TestProperty_NegativeSidebarWidthRejected(t *testing.T) {
	cm := NewConfigurationManager(t.TempDir())
	rapid.Check(t, func(rt *rapid.T) {
		cfg := DefaultGlobalConfig()
		cfg.Locale = rapid.SampledFrom([]string{"en", "th"}).Draw(rt, "locale")
		cfg.UI.SidebarWidth = rapid.IntRange(-1000, -1).Draw(rt, "sidebarWidth")

		err := cm.ValidateConfig(cfg)
		if err == nil {
			rt.Fatal("expected validation error")
		}
		if !strings.Contains(err.Error(), "sidebar_width") {
			rt.Errorf("error %q does not mention sidebar_width", err)
		}
	})
}
