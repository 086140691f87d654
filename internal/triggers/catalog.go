// Package triggers provides the static trigger catalog: the descriptors users pick
// triggers from, parameter defaults for new instances, and English descriptions.
package triggers

import (
	_ "embed"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-spellwizard/internal/entities/spell"
	"github.com/KirkDiggler/rpg-spellwizard/internal/errors"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Catalog is a read-only set of trigger descriptors
type Catalog struct {
	descriptors      []spell.TriggerDescriptor
	byID             map[string]int
	parameterDefault map[string]any
	parameterPhrases map[string]map[string]string
}

type catalogFile struct {
	ParameterDefaults map[string]any               `yaml:"parameter_defaults"`
	ParameterPhrases  map[string]map[string]string `yaml:"parameter_phrases"`
	Triggers          []spell.TriggerDescriptor    `yaml:"triggers"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog embedded in the binary
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(catalogYAML)
		if err != nil {
			panic("triggers: embedded catalog is invalid: " + err.Error())
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Load parses a catalog from YAML
func Load(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse trigger catalog")
	}

	c := &Catalog{
		byID:             make(map[string]int, len(file.Triggers)),
		parameterDefault: make(map[string]any, len(file.ParameterDefaults)),
		parameterPhrases: file.ParameterPhrases,
	}
	for name, value := range file.ParameterDefaults {
		c.parameterDefault[name] = normalize(value)
	}

	for _, d := range file.Triggers {
		if d.ID == "" {
			return nil, errors.InvalidArgument("trigger without an id")
		}
		if d.Category == "" {
			return nil, errors.InvalidArgumentf("trigger %s has no category", d.ID)
		}
		if _, exists := c.byID[d.ID]; exists {
			return nil, errors.InvalidArgumentf("duplicate trigger id %s", d.ID)
		}
		if d.ParameterNames == nil {
			d.ParameterNames = []string{}
		}
		c.byID[d.ID] = len(c.descriptors)
		c.descriptors = append(c.descriptors, d)
	}

	return c, nil
}

// All returns every descriptor in catalog order
func (c *Catalog) All() []spell.TriggerDescriptor {
	out := make([]spell.TriggerDescriptor, len(c.descriptors))
	for i, d := range c.descriptors {
		out[i] = cloneDescriptor(d)
	}
	return out
}

// ByCategory returns the descriptors of one category; an empty category returns all
func (c *Catalog) ByCategory(category string) []spell.TriggerDescriptor {
	if category == "" {
		return c.All()
	}
	var out []spell.TriggerDescriptor
	for _, d := range c.descriptors {
		if d.Category == category {
			out = append(out, cloneDescriptor(d))
		}
	}
	return out
}

// Categories returns the distinct categories, sorted
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	for _, d := range c.descriptors {
		seen[d.Category] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for category := range seen {
		out = append(out, category)
	}
	sort.Strings(out)
	return out
}

// Get looks up a descriptor by ID
func (c *Catalog) Get(id string) (spell.TriggerDescriptor, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return spell.TriggerDescriptor{}, false
	}
	return cloneDescriptor(c.descriptors[idx]), true
}

// NewInstance creates a trigger instance with every parameter set to its default
func (c *Catalog) NewInstance(id string) (spell.TriggerInstance, bool) {
	d, ok := c.Get(id)
	if !ok {
		return spell.TriggerInstance{}, false
	}

	params := make(map[string]any, len(d.ParameterNames))
	for _, name := range d.ParameterNames {
		params[name] = c.DefaultParameterValue(name)
	}

	return spell.TriggerInstance{
		TriggerID:  d.ID,
		Category:   d.Category,
		Parameters: params,
	}, true
}

// DefaultParameterValue returns the default for a parameter name, or an empty string
// for names the catalog has no rule for.
func (c *Catalog) DefaultParameterValue(name string) any {
	if v, ok := c.parameterDefault[name]; ok {
		return spell.CloneValue(v)
	}
	return ""
}

func cloneDescriptor(d spell.TriggerDescriptor) spell.TriggerDescriptor {
	params := make([]string, len(d.ParameterNames))
	copy(params, d.ParameterNames)
	d.ParameterNames = params
	return d
}

// normalize converts YAML numbers to float64 so instances match what JSON decoding yields
func normalize(v any) any {
	if n, ok := v.(int); ok {
		return float64(n)
	}
	return v
}
