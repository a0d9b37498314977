package cycles

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogData []byte

type catalogFile struct {
	Fallback string `yaml:"fallback"`
	Defaults []struct {
		Level ExperienceLevel `yaml:"level"`
		Goal  Goal            `yaml:"goal"`
		Cycle string          `yaml:"cycle"`
	} `yaml:"defaults"`
	Cycles []CycleConfig `yaml:"cycles"`
}

type defaultsKey struct {
	level ExperienceLevel
	goal  Goal
}

// Catalog is the static set of predefined training cycles.
type Catalog struct {
	cycles     []CycleConfig
	byID       map[string]int
	defaults   map[defaultsKey]string
	fallbackID string
}

// DefaultCatalog parses the embedded cycle catalog.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalogData)
}

func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w", err)
	}

	if len(file.Cycles) == 0 {
		return nil, errors.New("catalog has no cycles")
	}

	c := &Catalog{
		cycles:     file.Cycles,
		byID:       make(map[string]int, len(file.Cycles)),
		defaults:   make(map[defaultsKey]string, len(file.Defaults)),
		fallbackID: file.Fallback,
	}

	for i, cycle := range file.Cycles {
		if err := validateCycle(cycle); err != nil {
			return nil, err
		}
		if _, exists := c.byID[cycle.ID]; exists {
			return nil, fmt.Errorf("duplicate cycle id: %s", cycle.ID)
		}
		c.byID[cycle.ID] = i
	}

	if _, ok := c.byID[c.fallbackID]; !ok {
		return nil, fmt.Errorf("fallback cycle %q: %w", c.fallbackID, ErrUnknownCycle)
	}

	for _, d := range file.Defaults {
		if _, ok := c.byID[d.Cycle]; !ok {
			return nil, fmt.Errorf("default for %s/%s -> %q: %w", d.Level, d.Goal, d.Cycle, ErrUnknownCycle)
		}
		c.defaults[defaultsKey{level: d.Level, goal: d.Goal}] = d.Cycle
	}

	return c, nil
}

func validateCycle(cycle CycleConfig) error {
	if cycle.ID == "" {
		return errors.New("cycle without id")
	}
	if cycle.Type != CycleTypeStrength && cycle.Type != CycleTypeCardio {
		return fmt.Errorf("cycle %s: invalid type %q", cycle.ID, cycle.Type)
	}
	if len(cycle.Phases) == 0 {
		return fmt.Errorf("cycle %s: no phases", cycle.ID)
	}
	for i, p := range cycle.Phases {
		if p.DurationWeeks <= 0 {
			return fmt.Errorf("cycle %s: phase %d has invalid duration %d", cycle.ID, i, p.DurationWeeks)
		}
	}
	return nil
}

func (c *Catalog) Get(id string) (CycleConfig, error) {
	idx, ok := c.byID[id]
	if !ok {
		return CycleConfig{}, fmt.Errorf("%s: %w", id, ErrUnknownCycle)
	}
	return c.cycles[idx], nil
}

// List returns all cycles in catalog order.
func (c *Catalog) List() []CycleConfig {
	result := make([]CycleConfig, len(c.cycles))
	copy(result, c.cycles)
	return result
}

// DefaultCycleFor maps experience level and goal to a cycle, falling back to the
// catalog's fixed default when no mapping exists.
func (c *Catalog) DefaultCycleFor(level ExperienceLevel, goal Goal) CycleConfig {
	id, ok := c.defaults[defaultsKey{level: level, goal: goal}]
	if !ok {
		id = c.fallbackID
	}
	return c.cycles[c.byID[id]]
}
