package matrix

import (
	"context"
	"os"

	"snowstat/pkg/logger"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// servicesFile is the on-disk shape of the canonical service ordering file.
type servicesFile struct {
	Services []string `yaml:"services"`
}

// LoadCanonicalServices reads the canonical service ordering from a YAML file.
// The ordering is a display preference, so a missing or unparsable file is not
// fatal: it logs a warning and returns a nil list, which makes Build fall back
// to alphabetical ordering. An empty path returns a nil list silently.
func LoadCanonicalServices(ctx context.Context, path string) []string {
	if path == "" {
		return nil
	}

	raw, err := os.ReadFile(path) //nolint: gosec
	if err != nil {
		logger.Warn(ctx, "could not read services file, falling back to alphabetical ordering",
			zap.String("path", path), zap.Error(err))

		return nil
	}

	var parsed servicesFile
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		logger.Warn(ctx, "could not parse services file, falling back to alphabetical ordering",
			zap.String("path", path), zap.Error(err))

		return nil
	}

	return parsed.Services
}
