package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option adjusts how Load locates configuration.
type Option func(*loader)

type loader struct {
	dir string
}

// WithConfigDir points Load at a directory other than ./configs.
func WithConfigDir(dir string) Option {
	return func(l *loader) { l.dir = dir }
}

// Load assembles the configuration for a profile. Layers merge in order,
// later layers winning:
//
//	built-in defaults
//	<dir>/base.yaml
//	<dir>/<profile>.yaml
//	APP_* environment variables
//
// Environment names map onto dotted keys by matching against the keys the
// earlier layers produced, so APP_SERVER_READ_TIMEOUT resolves to
// server.read_timeout instead of splitting on every underscore. The merged
// result is validated before it is returned.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := checkProfile(profile); err != nil {
		return nil, err
	}

	l := &loader{dir: defaultConfigDir}
	for _, opt := range opts {
		opt(l)
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}
	for _, name := range []string{"base", profile} {
		path := filepath.Join(l.dir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        envPrefix,
		TransformFunc: envTransform(k.Keys()),
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// envTransform maps flattened APP_ names back onto the dotted keys already
// present in the tree. Without the reverse lookup, underscores inside field
// names would be indistinguishable from nesting separators.
func envTransform(known []string) func(key, value string) (string, any) {
	lookup := make(map[string]string, len(known))
	for _, key := range known {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
	}
	return func(key, value string) (string, any) {
		name := strings.ToLower(strings.TrimPrefix(key, envPrefix))
		if dotted, ok := lookup[name]; ok {
			return dotted, value
		}
		return strings.ReplaceAll(name, "_", "."), value
	}
}

// checkProfile rejects names that could escape the config directory.
func checkProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`), strings.Contains(profile, ".."):
		return fmt.Errorf("invalid profile name %q", profile)
	}
	return nil
}
