package data

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"gopkg.in/yaml.v3"
)

//go:embed content/*.yaml
var contentFS embed.FS

const (
	actionsFile = "actions.yaml"
	enemiesFile = "enemies.yaml"
	regionsFile = "regions.yaml"
)

type actionsDoc struct {
	Actions []ActionDef `yaml:"actions"`
}

type enemiesDoc struct {
	EnemyActions []EnemyActionDef `yaml:"enemy_actions"`
	Enemies      []EnemyDef       `yaml:"enemies"`
}

type regionsDoc struct {
	Regions []RegionDef `yaml:"regions"`
}

// LoadCatalog reads actions.yaml, enemies.yaml and regions.yaml from fsys,
// builds a Catalog and validates it.
func LoadCatalog(fsys fs.FS) (*Catalog, error) {
	var (
		actions actionsDoc
		enemies enemiesDoc
		regions regionsDoc
	)
	if err := decodeFile(fsys, actionsFile, &actions); err != nil {
		return nil, err
	}
	if err := decodeFile(fsys, enemiesFile, &enemies); err != nil {
		return nil, err
	}
	if err := decodeFile(fsys, regionsFile, &regions); err != nil {
		return nil, err
	}

	c, err := NewCatalog(actions.Actions, enemies.EnemyActions, enemies.Enemies, regions.Regions)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validating content: %w", err)
	}

	slog.Info("loaded content",
		"actions", len(c.actions),
		"enemy_actions", len(c.enemyActions),
		"enemies", len(c.enemies),
		"regions", len(c.regions))
	return c, nil
}

// LoadDefault loads the content tables bundled with the binary.
func LoadDefault() (*Catalog, error) {
	sub, err := fs.Sub(contentFS, "content")
	if err != nil {
		return nil, fmt.Errorf("opening bundled content: %w", err)
	}
	return LoadCatalog(sub)
}

func decodeFile(fsys fs.FS, name string, out any) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("content file %s not found: %w", name, err)
		}
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}
