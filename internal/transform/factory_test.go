package transform

import (
	"strings"
	"testing"

	"github.com/dyne/capspad/internal/config"
)

func TestBuildPipelineDefault(t *testing.T) {
	tr, err := BuildPipeline(nil)
	if err != nil {
		t.Fatal(err)
	}
	if tr.Name() != "CasePad" {
		t.Fatalf("name = %q", tr.Name())
	}
	out, _ := tr.Transform("ok")
	if out != "O  K  " {
		t.Fatalf("got %q", out)
	}
}

func TestBuildPipelineChain(t *testing.T) {
	cfg := &config.Config{
		Case: config.CaseUnicode,
		Pipeline: []*config.TransformConfig{
			{Type: "map", Map: map[string]string{"hi": "héllo"}},
			{Type: "casepad", Params: map[string]any{"space_width": 1, "char_pad": float64(0)}},
		},
	}
	tr, err := BuildPipeline(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := tr.(*Chain); !ok {
		t.Fatalf("expected chain, got %T", tr)
	}
	out, err := tr.Transform("hi")
	if err != nil {
		t.Fatal(err)
	}
	if out != "HÉLLO" {
		t.Fatalf("got %q", out)
	}
}

func TestBuildErrors(t *testing.T) {
	cases := map[string]*config.Config{
		"unknown type": {Pipeline: []*config.TransformConfig{{Type: "Shout"}}},
		"bad regex":    {Pipeline: []*config.TransformConfig{{Type: "RegexReplace", Pattern: "["}}},
		"bad width":    {Pipeline: []*config.TransformConfig{{Type: "CasePad", Params: map[string]any{"char_pad": -1}}}},
		"bad case":     {Case: "weird"},
		"huge width":   {Pipeline: []*config.TransformConfig{{Type: "CasePad", Params: map[string]any{"space_width": int64(1000000000000)}}}},
		"wide pad":     {Pipeline: []*config.TransformConfig{{Type: "CasePad", Params: map[string]any{"char_pad": float64(MaxWidth + 1)}}}},
	}
	for name, cfg := range cases {
		if _, err := BuildPipeline(cfg); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestRegisteredFactoryWins(t *testing.T) {
	registerPlugin("Reverse", func(s string) (string, error) {
		r := []rune(s)
		for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
			r[i], r[j] = r[j], r[i]
		}
		return string(r), nil
	})
	t.Cleanup(func() { delete(registry, "reverse") })

	tr, err := Build(&config.TransformConfig{Type: "REVERSE"}, ASCII{})
	if err != nil {
		t.Fatal(err)
	}
	out, err := tr.Transform("abc")
	if err != nil || out != "cba" {
		t.Fatalf("got %q, %v", out, err)
	}
	if !strings.Contains(strings.Join(Registered(), ","), "reverse") {
		t.Fatalf("registered = %v", Registered())
	}
}

func TestLoadPluginsMissing(t *testing.T) {
	if err := LoadPlugins(nil); err != nil {
		t.Fatal(err)
	}
	if err := LoadPlugins([]string{t.TempDir() + "/nope.so"}); err == nil {
		t.Fatal("expected error for missing plugin")
	}
}
