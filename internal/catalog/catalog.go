// Package catalog holds the immutable equipment catalog and the configuration engine working on top of it:
// compatibility filtering, price accumulation and standard package classification.
//
// All functions are total over partial selections. Ids that do not resolve in the catalog are treated as if the field
// was unset.
package catalog

import (
	"github.com/myrjola/droneconfigurator/internal/models"
	"slices"
)

// Category identifies one kind of catalog item.
type Category string

const (
	CategoryScenario    Category = "scenario"
	CategoryPlatform    Category = "platform"
	CategoryPayload     Category = "payload"
	CategoryPowerSource Category = "power-source"
	CategoryAccessory   Category = "accessory"
)

// Categories returns the categories in wizard order.
func Categories() []Category {
	return []Category{
		CategoryScenario,
		CategoryPlatform,
		CategoryPayload,
		CategoryPowerSource,
		CategoryAccessory,
	}
}

// Data is the raw catalog content in declaration order.
type Data struct {
	Scenarios        []models.Scenario        `yaml:"scenarios"`
	Platforms        []models.Platform        `yaml:"platforms"`
	Payloads         []models.Payload         `yaml:"payloads"`
	PowerSources     []models.PowerSource     `yaml:"powerSources"`
	Accessories      []models.Accessory       `yaml:"accessories"`
	StandardPackages []models.StandardPackage `yaml:"standardPackages"`
}

// Catalog is read-only after construction and safe for concurrent use.
type Catalog struct {
	data Data
}

// New creates a catalog from data. The data is copied so later modifications by the caller have no effect.
func New(data Data) *Catalog {
	return &Catalog{data: cloneData(data)}
}

// Data returns a copy of the catalog content.
func (c *Catalog) Data() Data {
	return cloneData(c.data)
}

func (c *Catalog) Scenarios() []models.Scenario {
	return slices.Clone(c.data.Scenarios)
}

func (c *Catalog) Platforms() []models.Platform {
	return slices.Clone(c.data.Platforms)
}

func (c *Catalog) Payloads() []models.Payload {
	return slices.Clone(c.data.Payloads)
}

func (c *Catalog) PowerSources() []models.PowerSource {
	return slices.Clone(c.data.PowerSources)
}

func (c *Catalog) Accessories() []models.Accessory {
	return slices.Clone(c.data.Accessories)
}

func (c *Catalog) StandardPackages() []models.StandardPackage {
	return slices.Clone(c.data.StandardPackages)
}

// Scenario looks up a scenario by id.
func (c *Catalog) Scenario(id string) (models.Scenario, bool) {
	return find(c.data.Scenarios, id, func(s models.Scenario) string { return s.ID })
}

// Platform looks up a platform by id.
func (c *Catalog) Platform(id string) (models.Platform, bool) {
	return find(c.data.Platforms, id, func(p models.Platform) string { return p.ID })
}

// Payload looks up a payload by id.
func (c *Catalog) Payload(id string) (models.Payload, bool) {
	return find(c.data.Payloads, id, func(p models.Payload) string { return p.ID })
}

// PowerSource looks up a power source by id.
func (c *Catalog) PowerSource(id string) (models.PowerSource, bool) {
	return find(c.data.PowerSources, id, func(p models.PowerSource) string { return p.ID })
}

// Accessory looks up an accessory by id.
func (c *Catalog) Accessory(id string) (models.Accessory, bool) {
	return find(c.data.Accessories, id, func(a models.Accessory) string { return a.ID })
}

// find is a linear scan. The catalog is small and lookups are not on a hot path.
func find[T any](items []T, id string, key func(T) string) (T, bool) {
	var zero T
	if id == "" {
		return zero, false
	}
	for _, item := range items {
		if key(item) == id {
			return item, true
		}
	}
	return zero, false
}

func cloneData(data Data) Data {
	platforms := slices.Clone(data.Platforms)
	for i := range platforms {
		platforms[i].Scenarios = slices.Clone(platforms[i].Scenarios)
	}
	payloads := slices.Clone(data.Payloads)
	for i := range payloads {
		payloads[i].CompatiblePlatforms = slices.Clone(payloads[i].CompatiblePlatforms)
	}
	powerSources := slices.Clone(data.PowerSources)
	for i := range powerSources {
		powerSources[i].CompatiblePlatforms = slices.Clone(powerSources[i].CompatiblePlatforms)
	}
	accessories := slices.Clone(data.Accessories)
	for i := range accessories {
		accessories[i].CompatiblePlatforms = slices.Clone(accessories[i].CompatiblePlatforms)
	}
	return Data{
		Scenarios:        slices.Clone(data.Scenarios),
		Platforms:        platforms,
		Payloads:         payloads,
		PowerSources:     powerSources,
		Accessories:      accessories,
		StandardPackages: slices.Clone(data.StandardPackages),
	}
}
