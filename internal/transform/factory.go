package transform

import (
	"fmt"
	"strings"

	"github.com/dyne/capspad/internal/config"
)

func Build(cfg *config.TransformConfig, mapper CaseMapper) (Transformer, error) {
	if cfg == nil {
		return nil, nil
	}
	key := strings.ToLower(cfg.Type)
	if factory, ok := registry[key]; ok {
		return factory(cfg, mapper)
	}
	switch key {
	case "casepad":
		spaceWidth := paramInt(cfg, "space_width", DefaultSpaceWidth)
		charPad := paramInt(cfg, "char_pad", DefaultCharPad)
		if spaceWidth < 0 || charPad < 0 || spaceWidth > MaxWidth || charPad > MaxWidth {
			return nil, fmt.Errorf("casepad: space_width and char_pad must be between 0 and %d", MaxWidth)
		}
		return NewCasePadWidths(mapper, spaceWidth, charPad), nil
	case "regexreplace":
		return NewRegexReplace(cfg.Pattern, cfg.Replace)
	case "map", "mapreplace":
		return NewMapReplace(cfg.Map), nil
	default:
		return nil, fmt.Errorf("unknown transformer type: %s", cfg.Type)
	}
}

// BuildPipeline resolves the case policy and every configured stage. A single
// stage is returned as is; several are wrapped in a Chain.
func BuildPipeline(cfg *config.Config) (Transformer, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	mapper, err := MapperFor(cfg.Case, cfg.Locale)
	if err != nil {
		return nil, err
	}
	stages := make([]Transformer, 0, len(cfg.Pipeline))
	for i, sc := range cfg.Pipeline {
		tr, err := Build(sc, mapper)
		if err != nil {
			return nil, fmt.Errorf("pipeline stage %d: %w", i, err)
		}
		if tr != nil {
			stages = append(stages, tr)
		}
	}
	switch len(stages) {
	case 0:
		return NewCasePad(mapper), nil
	case 1:
		return stages[0], nil
	default:
		return NewChain(stages...), nil
	}
}

func paramInt(cfg *config.TransformConfig, key string, def int) int {
	if cfg.Params == nil {
		return def
	}
	if v, ok := cfg.Params[key]; ok {
		if iv, ok := asInt(v); ok {
			return iv
		}
	}
	return def
}

func asInt(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		return int(t), true
	case float32:
		return int(t), true
	default:
		return 0, false
	}
}
