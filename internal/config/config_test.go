package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("default config mismatch (-want +got):\n%s", diff)
	}
	if !cfg.ShowBanner() {
		t.Fatal("banner should default to on")
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
case: locale
locale: tr
color: true
banner: false
pipeline:
  - type: RegexReplace
    pattern: "[0-9]+"
    replace: "#"
  - type: CasePad
    params:
      char_pad: 1
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{
		Case:   CaseLocale,
		Locale: "tr",
		Color:  true,
		Banner: cfg.Banner,
		Pipeline: []*TransformConfig{
			{Type: "RegexReplace", Pattern: "[0-9]+", Replace: "#"},
			{Type: "CasePad", Params: map[string]any{"char_pad": 1}},
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
	if cfg.ShowBanner() {
		t.Fatal("banner: false should disable the banner")
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	path := writeConfig(t, "color: true\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Case != CaseASCII {
		t.Fatalf("case = %q", cfg.Case)
	}
	if len(cfg.Pipeline) != 1 || cfg.Pipeline[0].Type != "CasePad" {
		t.Fatalf("unexpected pipeline: %+v", cfg.Pipeline)
	}
}

func TestLoadErrors(t *testing.T) {
	cases := map[string]struct {
		body string
		want string
	}{
		"unknown case":   {"case: klingon\n", "unknown case"},
		"locale missing": {"case: locale\n", "requires a locale"},
		"stray locale":   {"locale: de\n", "requires case"},
		"untyped stage":  {"pipeline:\n  - pattern: x\n", "has no type"},
		"bad yaml":       {"case: [\n", "parse config"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "read config") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "capspad.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}
