package catalog

import (
	"github.com/myrjola/droneconfigurator/internal/models"
	"slices"
)

// Option is a catalog item offered at one step of the configurator.
type Option struct {
	ID          string
	Name        string
	Description string
	Price       int64
	// Disabled options are shown but cannot be selected. Only platforms are ever disabled.
	Disabled bool
}

// AvailableOptions returns the items of category that the selection allows, in catalog declaration order.
//
// Platforms are never removed. When a scenario is selected, platforms not supporting it are flagged Disabled.
// Payloads, power sources and accessories are restricted to the items compatible with the selected platform, and
// returned unfiltered while no platform is selected. Unknown categories yield nil.
func (c *Catalog) AvailableOptions(category Category, sel models.Selection) []Option {
	var options []Option
	switch category {
	case CategoryScenario:
		for _, s := range c.data.Scenarios {
			options = append(options, Option{ID: s.ID, Name: s.Name, Description: s.Description})
		}
	case CategoryPlatform:
		for _, p := range c.data.Platforms {
			options = append(options, Option{
				ID:          p.ID,
				Name:        p.Name,
				Description: p.Description,
				Price:       p.BasePrice,
				Disabled:    sel.Scenario != "" && !p.SupportsScenario(sel.Scenario),
			})
		}
	case CategoryPayload:
		for _, p := range c.data.Payloads {
			if fitsPlatform(p.CompatiblePlatforms, sel.Platform) {
				options = append(options, Option{ID: p.ID, Name: p.Name, Description: p.Description, Price: p.Price})
			}
		}
	case CategoryPowerSource:
		for _, p := range c.data.PowerSources {
			if fitsPlatform(p.CompatiblePlatforms, sel.Platform) {
				options = append(options, Option{ID: p.ID, Name: p.Name, Description: p.Description, Price: p.Price})
			}
		}
	case CategoryAccessory:
		for _, a := range c.data.Accessories {
			if fitsPlatform(a.CompatiblePlatforms, sel.Platform) {
				options = append(options, Option{ID: a.ID, Name: a.Name, Description: a.Description, Price: a.Price})
			}
		}
	}
	return options
}

// Selectable reports whether id is offered for category under the selection and not disabled.
func (c *Catalog) Selectable(category Category, sel models.Selection, id string) bool {
	return slices.ContainsFunc(c.AvailableOptions(category, sel), func(o Option) bool {
		return o.ID == id && !o.Disabled
	})
}

func fitsPlatform(compatible []string, platformID string) bool {
	return platformID == "" || slices.Contains(compatible, platformID)
}
