// Package config loads the handful of user-tunable settings jsonlens
// exposes: the schema/header cache size limit and the default timezone used
// to interpret timezone-less timestamp strings during sort-key coercion.
// Everything else (PARSE_CHUNK, SEARCH_CHUNK, HEADER_SAMPLE, ...) is a
// compile-time constant per spec.md §6 and is not read from this file.
//
// Modeled on the teacher's app/settings/settings.go: a YAML file living next
// to the executable, unmarshalled onto a map and overlaid onto defaults so
// an absent or partial file never breaks startup.
package config

import (
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

const fileName = "jsonlens.yml"

// Settings are the effective, defaulted configuration values.
type Settings struct {
	CacheMaxBytes         int64  `yaml:"cache_max_bytes"`
	DefaultIngestTimezone string `yaml:"default_ingest_timezone"`
}

func defaults() Settings {
	return Settings{
		CacheMaxBytes:         100 * 1024 * 1024,
		DefaultIngestTimezone: "UTC",
	}
}

var (
	once   sync.Once
	cached Settings
)

// Effective returns the process-wide settings, loading them from disk once
// and overlaying any present keys onto the defaults.
func Effective() Settings {
	once.Do(func() {
		cached = load()
	})
	return cached
}

func load() Settings {
	s := defaults()
	path, err := settingsPath()
	if err != nil {
		return s
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return s
	}
	if v, ok := raw["cache_max_bytes"]; ok {
		if n, ok := toInt64(v); ok {
			s.CacheMaxBytes = n
		}
	}
	if v, ok := raw["default_ingest_timezone"].(string); ok && v != "" {
		s.DefaultIngestTimezone = v
	}
	return s
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}

func settingsPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(exe), fileName), nil
}
