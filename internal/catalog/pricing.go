package catalog

import (
	"github.com/myrjola/droneconfigurator/internal/models"
)

// LineItem is one priced component of a selection.
type LineItem struct {
	Category Category
	ID       string
	Name     string
	Price    int64
}

// Quote is the priced breakdown of a selection.
type Quote struct {
	// Lines are ordered platform, payload, power source, then accessories in selection order.
	Lines    []LineItem
	Total    int64
	Standard bool
}

// NeedsReview reports whether the quote must carry the specialist review disclaimer.
func (q Quote) NeedsReview() bool {
	return !q.Standard && q.Total > 0
}

// Line returns the line of a single-valued category.
func (q Quote) Line(category Category) (LineItem, bool) {
	for _, line := range q.Lines {
		if line.Category == category {
			return line, true
		}
	}
	return LineItem{}, false
}

// AccessoryLines returns the accessory lines in selection order.
func (q Quote) AccessoryLines() []LineItem {
	var lines []LineItem
	for _, line := range q.Lines {
		if line.Category == CategoryAccessory {
			lines = append(lines, line)
		}
	}
	return lines
}

// TotalPrice sums the prices of the resolved fields of the selection.
//
// Unset and unresolved fields contribute zero and every accessory id is counted once.
func (c *Catalog) TotalPrice(sel models.Selection) int64 {
	var total int64
	for _, line := range c.lineItems(sel) {
		total += line.Price
	}
	return total
}

// Quote prices the selection and classifies it.
func (c *Catalog) Quote(sel models.Selection) Quote {
	lines := c.lineItems(sel)
	var total int64
	for _, line := range lines {
		total += line.Price
	}
	return Quote{
		Lines:    lines,
		Total:    total,
		Standard: c.IsStandard(sel),
	}
}

func (c *Catalog) lineItems(sel models.Selection) []LineItem {
	var lines []LineItem
	if p, ok := c.Platform(sel.Platform); ok {
		lines = append(lines, LineItem{Category: CategoryPlatform, ID: p.ID, Name: p.Name, Price: p.BasePrice})
	}
	if p, ok := c.Payload(sel.Payload); ok {
		lines = append(lines, LineItem{Category: CategoryPayload, ID: p.ID, Name: p.Name, Price: p.Price})
	}
	if p, ok := c.PowerSource(sel.PowerSource); ok {
		lines = append(lines, LineItem{Category: CategoryPowerSource, ID: p.ID, Name: p.Name, Price: p.Price})
	}
	seen := make(map[string]struct{}, len(sel.Accessories))
	for _, id := range sel.Accessories {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if a, ok := c.Accessory(id); ok {
			lines = append(lines, LineItem{Category: CategoryAccessory, ID: a.ID, Name: a.Name, Price: a.Price})
		}
	}
	return lines
}
