package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics  *PhysicsConfig
	Entities *EntitiesConfig
	Levels   []*LevelConfig
}

// Loader loads game configuration using fs.FS interface: JSON for the engine
// tuning, YAML for level layouts.
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadPhysics loads physics.json
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "physics.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read physics.json: %w", err)
	}

	var cfg PhysicsConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse physics.json: %w", err)
	}

	return &cfg, nil
}

// LoadEntities loads entities.json
func (l *Loader) LoadEntities() (*EntitiesConfig, error) {
	data, err := fs.ReadFile(l.fsys, "entities.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read entities.json: %w", err)
	}

	var cfg EntitiesConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse entities.json: %w", err)
	}

	return &cfg, nil
}

// LevelPath returns the path of a level file relative to the loader root.
func LevelPath(name string) string {
	return path.Join("levels", name+".yaml")
}

// LevelName returns the level name for a level file path, or "" when the path
// is not a level file.
func LevelName(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	if path.Ext(p) != ".yaml" || path.Base(path.Dir(p)) != "levels" {
		return ""
	}
	return strings.TrimSuffix(path.Base(p), ".yaml")
}

// LoadLevel loads and validates levels/<name>.yaml
func (l *Loader) LoadLevel(name string) (*LevelConfig, error) {
	cfg, err := loadYAML[LevelConfig](l.fsys, LevelPath(name))
	if err != nil {
		return nil, fmt.Errorf("failed to read level %s: %w", name, err)
	}
	cfg.ID = name

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadLevels loads every named level in order.
func (l *Loader) LoadLevels(names []string) ([]*LevelConfig, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no levels configured", ErrInvalidLevel)
	}
	levels := make([]*LevelConfig, 0, len(names))
	for _, name := range names {
		lvl, err := l.LoadLevel(name)
		if err != nil {
			return nil, err
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}

// LoadAll loads physics, entities and every level listed in physics.json
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	entities, err := l.LoadEntities()
	if err != nil {
		return nil, err
	}

	levels, err := l.LoadLevels(physics.Levels)
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Physics:  physics,
		Entities: entities,
		Levels:   levels,
	}, nil
}

func loadYAML[T any](fsys fs.FS, name string) (*T, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}

	var v T
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return &v, nil
}
