//go:build linux || darwin

package transform

import (
	"fmt"
	"os"
	"path/filepath"
	"plugin"
	"runtime"
	"sort"
	"strings"
)

// LoadPlugins opens each Go plugin and registers the entries of its exported
// Transformers map. A directory path loads every compatible .so inside it.
func LoadPlugins(paths []string) error {
	for _, path := range paths {
		if path == "" {
			continue
		}
		resolved, err := resolvePluginPaths(path)
		if err != nil {
			return err
		}
		for _, pluginPath := range resolved {
			p, err := plugin.Open(pluginPath)
			if err != nil {
				return fmt.Errorf("open plugin %s: %w", pluginPath, err)
			}
			sym, err := p.Lookup("Transformers")
			if err != nil {
				return fmt.Errorf("plugin %s: missing Transformers symbol", pluginPath)
			}
			if err := registerPluginSymbol(pluginPath, sym); err != nil {
				return err
			}
		}
	}
	return nil
}

func resolvePluginPaths(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return pluginsInDir(path)
	}
	if err == nil {
		return []string{path}, nil
	}
	base := strings.TrimSuffix(path, ".so")
	candidates := []string{
		base + "." + platformSuffix(),
		base + "." + runtime.GOARCH + ".so",
	}
	for _, cand := range candidates {
		if info, err := os.Stat(cand); err == nil && !info.IsDir() {
			return []string{cand}, nil
		}
	}
	return nil, fmt.Errorf("plugin not found: %s (tried %s)", path, strings.Join(candidates, ", "))
}

func pluginsInDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read plugin dir %s: %w", dir, err)
	}
	var matches []string
	for _, entry := range entries {
		if entry.IsDir() || !builtForHost(entry.Name()) {
			continue
		}
		matches = append(matches, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(matches)
	if len(matches) == 0 {
		return nil, fmt.Errorf("no compatible plugins found in %s", dir)
	}
	return matches, nil
}

func platformSuffix() string {
	return runtime.GOOS + "." + runtime.GOARCH + ".so"
}

// builtForHost accepts name.so, name.<arch>.so and name.<os>.<arch>.so, and
// rejects files tagged for another platform.
func builtForHost(name string) bool {
	if !strings.HasSuffix(name, ".so") {
		return false
	}
	parts := strings.Split(strings.TrimSuffix(name, ".so"), ".")
	switch {
	case len(parts) >= 3 && isKnownOS(parts[len(parts)-2]):
		return parts[len(parts)-2] == runtime.GOOS && parts[len(parts)-1] == runtime.GOARCH
	case len(parts) >= 2 && isKnownArch(parts[len(parts)-1]):
		return parts[len(parts)-1] == runtime.GOARCH
	default:
		return true
	}
}

func isKnownOS(s string) bool {
	return s == "linux" || s == "darwin"
}

func isKnownArch(s string) bool {
	switch s {
	case "amd64", "arm64", "386", "arm", "ppc64le", "s390x", "riscv64":
		return true
	}
	return false
}

func registerPluginSymbol(path string, sym any) error {
	var table map[string]func(string) (string, error)
	switch v := sym.(type) {
	case map[string]func(string) (string, error):
		table = v
	case *map[string]func(string) (string, error):
		table = *v
	default:
		return fmt.Errorf("plugin %s: Transformers has incompatible type %T", path, sym)
	}
	for name, fn := range table {
		registerPlugin(name, fn)
	}
	return nil
}
