package models

import "slices"

// Scenario is a use-case category, e.g. security patrol, that narrows down which platforms are relevant.
type Scenario struct {
	ID          string `db:"id"          yaml:"id"`
	Name        string `db:"name"        yaml:"name"`
	Description string `db:"description" yaml:"description"`
	// Icon is a tag resolved to a glyph by the presentation layer.
	Icon string `db:"icon" yaml:"icon"`
}

// Platform is the primary unit being configured, a drone airframe.
type Platform struct {
	ID          string `db:"id"          yaml:"id"`
	Name        string `db:"name"        yaml:"name"`
	Description string `db:"description" yaml:"description"`
	ImagePath   string `db:"image_path"  yaml:"image"`
	// BasePrice is in whole roubles.
	BasePrice int64 `db:"base_price" yaml:"basePrice"`
	// FlightTime is in minutes.
	FlightTime int `db:"flight_time" yaml:"flightTime"`
	// MaxSpeed is in km/h.
	MaxSpeed int `db:"max_speed" yaml:"maxSpeed"`
	// Range is in kilometres.
	Range     int      `db:"range_km" yaml:"range"`
	Scenarios []string `db:"-"        yaml:"scenarios"`
}

// SupportsScenario reports whether the platform lists the scenario.
func (p Platform) SupportsScenario(scenarioID string) bool {
	return slices.Contains(p.Scenarios, scenarioID)
}

// Payload is a sensor or camera mounted on a platform.
type Payload struct {
	ID          string `db:"id"          yaml:"id"`
	Name        string `db:"name"        yaml:"name"`
	Description string `db:"description" yaml:"description"`
	Price       int64  `db:"price"       yaml:"price"`
	// Weight is in grams and does not affect pricing.
	Weight              int      `db:"weight" yaml:"weight"`
	CompatiblePlatforms []string `db:"-"      yaml:"compatiblePlatforms"`
}

// PowerSource is a battery pack.
type PowerSource struct {
	ID          string `db:"id"          yaml:"id"`
	Name        string `db:"name"        yaml:"name"`
	Description string `db:"description" yaml:"description"`
	Price       int64  `db:"price"       yaml:"price"`
	// Capacity is in mAh.
	Capacity            int      `db:"capacity" yaml:"capacity"`
	Weight              int      `db:"weight"   yaml:"weight"`
	CompatiblePlatforms []string `db:"-"        yaml:"compatiblePlatforms"`
}

// Accessory is optional additional equipment such as a transport case or operator training.
type Accessory struct {
	ID                  string   `db:"id"          yaml:"id"`
	Name                string   `db:"name"        yaml:"name"`
	Description         string   `db:"description" yaml:"description"`
	Price               int64    `db:"price"       yaml:"price"`
	CompatiblePlatforms []string `db:"-"           yaml:"compatiblePlatforms"`
}

// StandardPackage is a known good combination that does not need a specialist review.
type StandardPackage struct {
	Scenario    string `db:"scenario_id"     yaml:"scenario"`
	Platform    string `db:"platform_id"     yaml:"platform"`
	Payload     string `db:"payload_id"      yaml:"payload"`
	PowerSource string `db:"power_source_id" yaml:"powerSource"`
}
