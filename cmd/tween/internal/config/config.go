// Package config resolves the optional tween.yaml project configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file looked up in the project root.
const FileName = "tween.yaml"

// Defaults applied when tween.yaml leaves a value out.
const (
	DefaultFPS     = 60
	DefaultSeconds = 3.0
	maxFPS         = 240
)

// Config represents the optional tween.yaml configuration.
type Config struct {
	App     AppConfig     `yaml:"app"`
	Preview PreviewConfig `yaml:"preview"`
	Store   StoreConfig   `yaml:"store"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// PreviewConfig contains the defaults of tween run, watch and tweenview.
type PreviewConfig struct {
	FPS     int     `yaml:"fps,omitempty"`
	Seconds float64 `yaml:"seconds,omitempty"`
}

// StoreConfig selects the preset storage.
type StoreConfig struct {
	// App is the gdata application name. Defaults to tween_<app name>.
	App string `yaml:"app,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	AppName    string
	StoreApp   string
	FPS        int
	Seconds    float64
}

// LoadOptional reads tween.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads tween.yaml (if present) from dir and resolves defaults. A
// missing go.mod is not an error; the app name then comes from dir.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}

	storeApp := strings.TrimSpace(cfg.Store.App)
	if storeApp == "" {
		storeApp = "tween_" + sanitizeSegment(appName)
	}

	fps := cfg.Preview.FPS
	if fps == 0 {
		fps = DefaultFPS
	}
	seconds := cfg.Preview.Seconds
	if seconds == 0 {
		seconds = DefaultSeconds
	}

	r := &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		AppName:    appName,
		StoreApp:   storeApp,
		FPS:        fps,
		Seconds:    seconds,
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// ResolveWorkingDir resolves the configuration of the enclosing project, or
// of the working directory when it is not inside a Go module.
func ResolveWorkingDir() (*Resolved, error) {
	root, err := FindProjectRoot()
	if err != nil {
		if root, err = os.Getwd(); err != nil {
			return nil, err
		}
	}
	return Resolve(root)
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modulePath != "" {
		modName, _, ok := module.SplitPathVersion(modulePath)
		if ok {
			parts := strings.Split(modName, "/")
			base = parts[len(parts)-1]
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "tween_app"
	}
	return base
}

// sanitizeSegment lowercases s and keeps the characters gdata accepts in an
// application name.
func sanitizeSegment(s string) string {
	var out []rune
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r == '-' || r == '.' || r == ' ':
			out = append(out, '_')
		}
	}
	if len(out) == 0 {
		return "app"
	}
	return string(out)
}

func (r *Resolved) validate() error {
	if r.FPS < 1 || r.FPS > maxFPS {
		return fmt.Errorf("preview.fps must be between 1 and %d (got %d)", maxFPS, r.FPS)
	}
	if r.Seconds < 0 {
		return fmt.Errorf("preview.seconds must not be negative (got %g)", r.Seconds)
	}
	if strings.ContainsAny(r.StoreApp, `/\`) {
		return fmt.Errorf("store.app must not contain path separators (got %q)", r.StoreApp)
	}
	return nil
}
