package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dyne/capspad/internal/config"
)

type PluginFunc func(input string) (string, error)

type Factory func(cfg *config.TransformConfig, mapper CaseMapper) (Transformer, error)

var registry = map[string]Factory{}

func Register(name string, factory Factory) {
	if name == "" || factory == nil {
		return
	}
	registry[strings.ToLower(name)] = factory
}

// Registered lists the names of transformers added through Register.
func Registered() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func registerPlugin(name string, fn PluginFunc) {
	Register(name, func(cfg *config.TransformConfig, mapper CaseMapper) (Transformer, error) {
		return &PluginTransformer{name: name, fn: fn}, nil
	})
}

type PluginTransformer struct {
	name string
	fn   PluginFunc
}

func (t *PluginTransformer) Name() string { return t.name }

func (t *PluginTransformer) Transform(input string) (string, error) {
	if t.fn == nil {
		return "", fmt.Errorf("plugin transformer %s not initialized", t.name)
	}
	return t.fn(input)
}
