package main

import (
	"github.com/myrjola/droneconfigurator/internal/catalog"
	"github.com/myrjola/droneconfigurator/internal/models"
	"github.com/myrjola/droneconfigurator/internal/wizard"
	"strings"
)

const notSelected = "Не выбрано"

type optionView struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Price       int64
	Disabled    bool
	Selected    bool
}

type stepView struct {
	Name        string
	Title       string
	Description string
	Action      string
	Visible     bool
	// Multi steps toggle items on and off instead of picking one.
	Multi   bool
	Options []optionView
}

type summaryView struct {
	Scenario    *models.Scenario
	Platform    models.Platform
	Payload     *models.Payload
	PowerSource *models.PowerSource
	Accessories []models.Accessory
}

type priceView struct {
	Platform    string
	Payload     string
	PowerSource string
	Accessories string
	Total       int64
	NeedsReview bool
}

type configuratorTemplateData struct {
	BaseTemplateData
	Steps           []stepView
	Summary         *summaryView
	Price           priceView
	Ready           bool
	Started         bool
	AccessoryAction string
}

var steps = []struct {
	step        wizard.Step
	category    catalog.Category
	title       string
	description string
}{
	{wizard.StepScenario, catalog.CategoryScenario,
		"Выберите сценарий применения", "Определите задачи, которые должен решать дрон"},
	{wizard.StepPlatform, catalog.CategoryPlatform,
		"Выберите модель дрона", "Подберите платформу, оптимальную для ваших задач"},
	{wizard.StepPayload, catalog.CategoryPayload,
		"Выберите полезную нагрузку", "Определите тип сенсора или камеры для ваших задач"},
	{wizard.StepPowerSource, catalog.CategoryPowerSource,
		"Выберите аккумулятор", "Подберите аккумулятор для обеспечения необходимого времени полета"},
	{wizard.StepAccessories, catalog.CategoryAccessory,
		"Дополнительное оборудование", "Выберите дополнительные компоненты и аксессуары"},
}

func selectionAction(category catalog.Category) string {
	return "/selection/" + string(category)
}

// scenarioGlyphs maps the icon tags of the catalog to display glyphs.
var scenarioGlyphs = map[string]string{
	"shield":   "🛡️",
	"map":      "🗺️",
	"search":   "🔍",
	"leaf":     "🌱",
	"building": "🏗️",
	"alarm":    "🚨",
}

func scenarioGlyph(icon string) string {
	if glyph, ok := scenarioGlyphs[icon]; ok {
		return glyph
	}
	return scenarioGlyphs["shield"]
}

func (app *application) newConfiguratorTemplateData(base BaseTemplateData, wiz *wizard.Wizard) configuratorTemplateData {
	sel := wiz.Selection
	data := configuratorTemplateData{
		BaseTemplateData: base,
		Summary:          app.newSummaryView(sel),
		Price:            app.newPriceView(sel),
		Ready:            wiz.Ready(),
		Started:          sel.Scenario != "" || wiz.Cursor > wizard.StepScenario,
		AccessoryAction:  selectionAction(catalog.CategoryAccessory),
	}
	for _, s := range steps {
		view := stepView{
			Name:        s.step.String(),
			Title:       s.title,
			Description: s.description,
			Action:      selectionAction(s.category),
			Visible:     wiz.Visible(s.step),
			Multi:       s.category == catalog.CategoryAccessory,
		}
		for _, o := range app.catalog.AvailableOptions(s.category, sel) {
			view.Options = append(view.Options, app.newOptionView(s.category, sel, o))
		}
		data.Steps = append(data.Steps, view)
	}
	return data
}

func (app *application) newOptionView(category catalog.Category, sel models.Selection, o catalog.Option) optionView {
	view := optionView{
		ID:          o.ID,
		Name:        o.Name,
		Description: o.Description,
		Price:       o.Price,
		Disabled:    o.Disabled,
	}
	switch category {
	case catalog.CategoryScenario:
		view.Selected = sel.Scenario == o.ID
		if s, ok := app.catalog.Scenario(o.ID); ok {
			view.Icon = scenarioGlyph(s.Icon)
		}
	case catalog.CategoryPlatform:
		view.Selected = sel.Platform == o.ID
	case catalog.CategoryPayload:
		view.Selected = sel.Payload == o.ID
	case catalog.CategoryPowerSource:
		view.Selected = sel.PowerSource == o.ID
	case catalog.CategoryAccessory:
		view.Selected = sel.HasAccessory(o.ID)
	}
	return view
}

// newSummaryView describes the chosen platform. It is nil until a platform is selected.
func (app *application) newSummaryView(sel models.Selection) *summaryView {
	platform, ok := app.catalog.Platform(sel.Platform)
	if !ok {
		return nil
	}
	summary := summaryView{Platform: platform}
	if s, found := app.catalog.Scenario(sel.Scenario); found {
		summary.Scenario = &s
	}
	if p, found := app.catalog.Payload(sel.Payload); found {
		summary.Payload = &p
	}
	if p, found := app.catalog.PowerSource(sel.PowerSource); found {
		summary.PowerSource = &p
	}
	for _, id := range sel.Accessories {
		if a, found := app.catalog.Accessory(id); found {
			summary.Accessories = append(summary.Accessories, a)
		}
	}
	return &summary
}

func (app *application) newPriceView(sel models.Selection) priceView {
	quote := app.catalog.Quote(sel)
	view := priceView{
		Platform:    notSelected,
		Payload:     notSelected,
		PowerSource: notSelected,
		Accessories: notSelected,
		Total:       quote.Total,
		NeedsReview: quote.NeedsReview(),
	}
	if line, ok := quote.Line(catalog.CategoryPlatform); ok {
		view.Platform = line.Name
	}
	if line, ok := quote.Line(catalog.CategoryPayload); ok {
		view.Payload = line.Name
	}
	if line, ok := quote.Line(catalog.CategoryPowerSource); ok {
		view.PowerSource = line.Name
	}
	if lines := quote.AccessoryLines(); len(lines) > 0 {
		names := make([]string, 0, len(lines))
		for _, line := range lines {
			names = append(names, line.Name)
		}
		view.Accessories = strings.Join(names, ", ")
	}
	return view
}
