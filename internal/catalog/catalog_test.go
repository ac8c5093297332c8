package catalog_test

import (
	"github.com/myrjola/droneconfigurator/internal/catalog"
	"github.com/myrjola/droneconfigurator/internal/models"
	"github.com/myrjola/droneconfigurator/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func optionIDs(options []catalog.Option) []string {
	ids := make([]string, 0, len(options))
	for _, o := range options {
		ids = append(ids, o.ID)
	}
	return ids
}

func TestCatalog_lookups(t *testing.T) {
	c := testhelpers.NewCatalog()

	p, ok := c.Platform("quad-scout")
	require.True(t, ok)
	assert.Equal(t, int64(150000), p.BasePrice)

	_, ok = c.Platform("does-not-exist")
	assert.False(t, ok)
	_, ok = c.Payload("")
	assert.False(t, ok)
}

func TestNew_copiesData(t *testing.T) {
	data := testhelpers.CatalogData()
	c := catalog.New(data)

	data.Platforms[0].BasePrice = 1
	data.Payloads[0].CompatiblePlatforms[0] = "mutated"

	p, ok := c.Platform("quad-scout")
	require.True(t, ok)
	assert.Equal(t, int64(150000), p.BasePrice)
	assert.True(t, c.Selectable(catalog.CategoryPayload, models.Selection{Platform: "quad-scout"}, "camera-4k"))
}

func TestCatalog_AvailableOptions(t *testing.T) {
	c := testhelpers.NewCatalog()
	data := testhelpers.CatalogData()

	t.Run("empty selection returns unfiltered categories", func(t *testing.T) {
		sel := models.Selection{}
		assert.Len(t, c.AvailableOptions(catalog.CategoryScenario, sel), len(data.Scenarios))
		assert.Len(t, c.AvailableOptions(catalog.CategoryPayload, sel), len(data.Payloads))
		assert.Len(t, c.AvailableOptions(catalog.CategoryPowerSource, sel), len(data.PowerSources))
		assert.Len(t, c.AvailableOptions(catalog.CategoryAccessory, sel), len(data.Accessories))
		platforms := c.AvailableOptions(catalog.CategoryPlatform, sel)
		require.Len(t, platforms, len(data.Platforms))
		for _, p := range platforms {
			assert.False(t, p.Disabled, p.ID)
		}
	})

	t.Run("scenario disables unsupported platforms", func(t *testing.T) {
		platforms := c.AvailableOptions(catalog.CategoryPlatform, models.Selection{Scenario: "security"})
		require.Equal(t, []string{"quad-scout", "quad-surveyor", "quad-inspector", "hex-carrier", "octo-commander"},
			optionIDs(platforms))
		disabled := map[string]bool{}
		for _, p := range platforms {
			disabled[p.ID] = p.Disabled
		}
		assert.Equal(t, map[string]bool{
			"quad-scout":     false,
			"quad-surveyor":  true,
			"quad-inspector": true,
			"hex-carrier":    true,
			"octo-commander": false,
		}, disabled)
	})

	tests := []struct {
		name     string
		category catalog.Category
		platform string
		want     []string
	}{
		{
			name:     "payloads for quad-scout",
			category: catalog.CategoryPayload,
			platform: "quad-scout",
			want:     []string{"camera-4k"},
		},
		{
			name:     "payloads for hex-carrier",
			category: catalog.CategoryPayload,
			platform: "hex-carrier",
			want:     []string{"camera-4k", "camera-thermal", "lidar", "multispectral", "speaker"},
		},
		{
			name:     "power sources for octo-commander",
			category: catalog.CategoryPowerSource,
			platform: "octo-commander",
			want:     []string{"battery-pro"},
		},
		{
			name:     "accessories for quad-inspector",
			category: catalog.CategoryAccessory,
			platform: "quad-inspector",
			want:     []string{"case", "spare-propellers", "training"},
		},
		{
			name:     "unknown platform matches nothing",
			category: catalog.CategoryPayload,
			platform: "does-not-exist",
			want:     []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.AvailableOptions(tt.category, models.Selection{Platform: tt.platform})
			assert.Equal(t, tt.want, optionIDs(got))
			for _, o := range got {
				assert.False(t, o.Disabled)
			}
		})
	}

	t.Run("dependent options list the selected platform", func(t *testing.T) {
		for _, platform := range data.Platforms {
			sel := models.Selection{Platform: platform.ID}
			for _, o := range c.AvailableOptions(catalog.CategoryPayload, sel) {
				payload, ok := c.Payload(o.ID)
				require.True(t, ok)
				assert.Contains(t, payload.CompatiblePlatforms, platform.ID)
			}
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		assert.Nil(t, c.AvailableOptions(catalog.Category("rotor"), models.Selection{}))
	})
}

func TestCatalog_Selectable(t *testing.T) {
	c := testhelpers.NewCatalog()
	sel := models.Selection{Scenario: "security", Platform: "quad-scout"}

	assert.True(t, c.Selectable(catalog.CategoryPlatform, sel, "octo-commander"))
	assert.False(t, c.Selectable(catalog.CategoryPlatform, sel, "hex-carrier"), "disabled platform")
	assert.True(t, c.Selectable(catalog.CategoryPayload, sel, "camera-4k"))
	assert.False(t, c.Selectable(catalog.CategoryPayload, sel, "lidar"), "incompatible payload")
	assert.False(t, c.Selectable(catalog.CategoryScenario, sel, "does-not-exist"))
}

func TestCatalog_TotalPrice(t *testing.T) {
	c := testhelpers.NewCatalog()

	tests := []struct {
		name string
		sel  models.Selection
		want int64
	}{
		{
			name: "empty",
			sel:  models.Selection{},
			want: 0,
		},
		{
			name: "scenario only",
			sel:  models.Selection{Scenario: "security"},
			want: 0,
		},
		{
			name: "standard security package",
			sel: models.Selection{
				Scenario:    "security",
				Platform:    "quad-scout",
				Payload:     "camera-4k",
				PowerSource: "battery-standard",
			},
			want: 210000,
		},
		{
			name: "accessories",
			sel: models.Selection{
				Platform:    "hex-carrier",
				Accessories: []string{"case", "ground-station"},
			},
			want: 450000 + 20000 + 120000,
		},
		{
			name: "duplicate accessory counted once",
			sel: models.Selection{
				Platform:    "hex-carrier",
				Accessories: []string{"case", "case"},
			},
			want: 450000 + 20000,
		},
		{
			name: "unresolved ids contribute zero",
			sel: models.Selection{
				Platform:    "quad-scout",
				Payload:     "does-not-exist",
				PowerSource: "battery-warp",
				Accessories: []string{"flux-capacitor"},
			},
			want: 150000,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.TotalPrice(tt.sel))
		})
	}
}

func TestCatalog_TotalPrice_unresolvedEqualsUnset(t *testing.T) {
	c := testhelpers.NewCatalog()
	base := models.Selection{
		Scenario:    "geodesy",
		Platform:    "quad-surveyor",
		Payload:     "lidar",
		PowerSource: "battery-extended",
		Accessories: []string{"training"},
	}

	setters := []func(*models.Selection, string){
		func(s *models.Selection, v string) { s.Platform = v },
		func(s *models.Selection, v string) { s.Payload = v },
		func(s *models.Selection, v string) { s.PowerSource = v },
		func(s *models.Selection, v string) {
			s.Accessories = nil
			if v != "" {
				s.Accessories = []string{v}
			}
		},
	}
	for _, set := range setters {
		cleared := base.Clone()
		set(&cleared, "")
		unresolved := base.Clone()
		set(&unresolved, "unknown-id")
		assert.Equal(t, c.TotalPrice(cleared), c.TotalPrice(unresolved))
		assert.Less(t, c.TotalPrice(cleared), c.TotalPrice(base))
	}
}

func TestCatalog_IsStandard(t *testing.T) {
	c := testhelpers.NewCatalog()

	tests := []struct {
		name string
		sel  models.Selection
		want bool
	}{
		{
			name: "empty",
			sel:  models.Selection{},
			want: false,
		},
		{
			name: "missing power source",
			sel:  models.Selection{Scenario: "security", Platform: "quad-scout", Payload: "camera-4k"},
			want: false,
		},
		{
			name: "security package",
			sel: models.Selection{
				Scenario:    "security",
				Platform:    "quad-scout",
				Payload:     "camera-4k",
				PowerSource: "battery-standard",
			},
			want: true,
		},
		{
			name: "agriculture package with accessories",
			sel: models.Selection{
				Scenario:    "agriculture",
				Platform:    "quad-surveyor",
				Payload:     "multispectral",
				PowerSource: "battery-extended",
				Accessories: []string{"case", "controller-pro", "training"},
			},
			want: true,
		},
		{
			name: "same equipment for another scenario",
			sel: models.Selection{
				Scenario:    "construction",
				Platform:    "quad-surveyor",
				Payload:     "multispectral",
				PowerSource: "battery-extended",
			},
			want: false,
		},
		{
			name: "different battery",
			sel: models.Selection{
				Scenario:    "security",
				Platform:    "quad-scout",
				Payload:     "camera-4k",
				PowerSource: "battery-extended",
			},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.IsStandard(tt.sel))
		})
	}
}

func TestCatalog_Quote(t *testing.T) {
	c := testhelpers.NewCatalog()

	t.Run("empty selection needs no review", func(t *testing.T) {
		q := c.Quote(models.Selection{})
		assert.Empty(t, q.Lines)
		assert.Zero(t, q.Total)
		assert.False(t, q.Standard)
		assert.False(t, q.NeedsReview())
	})

	t.Run("custom configuration needs review", func(t *testing.T) {
		q := c.Quote(models.Selection{
			Scenario:    "emergency",
			Platform:    "hex-carrier",
			Payload:     "camera-thermal",
			PowerSource: "battery-pro",
			Accessories: []string{"ground-station", "case"},
		})
		assert.Equal(t, int64(450000+120000+40000+120000+20000), q.Total)
		assert.False(t, q.Standard)
		assert.True(t, q.NeedsReview())

		payload, ok := q.Line(catalog.CategoryPayload)
		require.True(t, ok)
		assert.Equal(t, "Тепловизионная камера", payload.Name)

		accessories := q.AccessoryLines()
		require.Len(t, accessories, 2)
		assert.Equal(t, "ground-station", accessories[0].ID)
		assert.Equal(t, "case", accessories[1].ID)
	})

	t.Run("standard package", func(t *testing.T) {
		q := c.Quote(models.Selection{
			Scenario:    "inspection",
			Platform:    "quad-inspector",
			Payload:     "camera-4k",
			PowerSource: "battery-standard",
		})
		assert.Equal(t, int64(280000+45000+15000), q.Total)
		assert.True(t, q.Standard)
		assert.False(t, q.NeedsReview())
		_, ok := q.Line(catalog.CategoryAccessory)
		assert.False(t, ok)
	})
}
