//go:build !linux && !darwin

package transform

import "fmt"

func LoadPlugins(paths []string) error {
	for _, p := range paths {
		if p != "" {
			return fmt.Errorf("plugins are only supported on linux and darwin")
		}
	}
	return nil
}
