package catalog

import (
	"github.com/myrjola/droneconfigurator/internal/models"
)

// IsStandard reports whether the selection is one of the known standard packages.
//
// Scenario, platform, payload and power source must all be set and match a package exactly. Accessories are not
// compared: a standard package with extra accessories is still standard.
func (c *Catalog) IsStandard(sel models.Selection) bool {
	if !sel.Complete() {
		return false
	}
	for _, pkg := range c.data.StandardPackages {
		if pkg.Scenario == sel.Scenario &&
			pkg.Platform == sel.Platform &&
			pkg.Payload == sel.Payload &&
			pkg.PowerSource == sel.PowerSource {
			return true
		}
	}
	return false
}
