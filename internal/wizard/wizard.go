// Package wizard implements the linear configurator flow on top of a models.Selection.
//
// The selection and the step cursor are kept apart. Completeness of the selection decides whether a lead can be
// submitted while the cursor only decides which sections of the page are expanded.
package wizard

import (
	"github.com/myrjola/droneconfigurator/internal/errors"
	"github.com/myrjola/droneconfigurator/internal/models"
	"log/slog"
	"time"
)

// Step is the position of the advisory cursor.
type Step int

const (
	StepScenario Step = iota
	StepPlatform
	StepPayload
	StepPowerSource
	StepAccessories
	StepReady
)

func (s Step) String() string {
	switch s {
	case StepScenario:
		return "scenario"
	case StepPlatform:
		return "platform"
	case StepPayload:
		return "payload"
	case StepPowerSource:
		return "power-source"
	case StepAccessories:
		return "accessories"
	case StepReady:
		return "ready"
	default:
		return "unknown"
	}
}

var ErrIncomplete = errors.NewSentinel("selection incomplete")

// Wizard is stored in the user session so the fields are exported for gob.
type Wizard struct {
	Selection models.Selection
	Cursor    Step
}

// New returns a wizard with an empty selection at the first step.
func New() *Wizard {
	return &Wizard{}
}

// SelectScenario sets the scenario. The platform is kept even if it does not support the new scenario.
func (w *Wizard) SelectScenario(id string) {
	w.Selection.Scenario = id
	w.advanceFrom(StepScenario)
}

// SelectPlatform sets the platform. Choosing a different platform clears payload, power source and accessories
// because their compatibility depends on the platform.
func (w *Wizard) SelectPlatform(id string) {
	if id != w.Selection.Platform {
		w.Selection.Payload = ""
		w.Selection.PowerSource = ""
		w.Selection.Accessories = nil
	}
	w.Selection.Platform = id
	w.advanceFrom(StepPlatform)
}

func (w *Wizard) SelectPayload(id string) {
	w.Selection.Payload = id
	w.advanceFrom(StepPayload)
}

func (w *Wizard) SelectPowerSource(id string) {
	w.Selection.PowerSource = id
	w.advanceFrom(StepPowerSource)
}

// ToggleAccessory adds or removes the accessory. Adding keeps insertion order and ignores duplicates.
func (w *Wizard) ToggleAccessory(id string, checked bool) {
	if checked {
		if !w.Selection.HasAccessory(id) {
			w.Selection.Accessories = append(w.Selection.Accessories, id)
		}
		return
	}
	kept := w.Selection.Accessories[:0]
	for _, a := range w.Selection.Accessories {
		if a != id {
			kept = append(kept, a)
		}
	}
	if len(kept) == 0 {
		kept = nil
	}
	w.Selection.Accessories = kept
}

// advanceFrom moves the cursor one step forward only when it points at the step owning the changed field.
func (w *Wizard) advanceFrom(owner Step) {
	if w.Cursor == owner {
		w.Cursor = owner + 1
	}
}

// Complete reports whether scenario, platform, payload and power source are all set.
func (w *Wizard) Complete() bool {
	return w.Selection.Complete()
}

// Ready reports whether a lead can be submitted. The cursor position does not matter.
func (w *Wizard) Ready() bool {
	return w.Complete()
}

// Finish moves the cursor to StepReady. It reports false and does nothing when the selection is incomplete.
func (w *Wizard) Finish() bool {
	if !w.Complete() {
		return false
	}
	w.Cursor = StepReady
	return true
}

// Submit builds a lead from the current selection. The wizard is left untouched so the caller decides whether to
// keep the configuration around.
func (w *Wizard) Submit(contact models.Contact) (models.Lead, error) {
	if !w.Ready() {
		return models.Lead{}, errors.Wrap(ErrIncomplete, "submit lead", slog.String("cursor", w.Cursor.String()))
	}
	return models.Lead{
		Contact:     contact,
		Selection:   w.Selection.Clone(),
		SubmittedAt: time.Now(),
	}, nil
}

// Reset discards the selection and rewinds the cursor.
func (w *Wizard) Reset() {
	*w = Wizard{}
}

// Visible reports whether the page section of step is expanded. A section opens once the cursor has reached it or
// the field of the preceding step is set.
func (w *Wizard) Visible(step Step) bool {
	if w.Cursor >= step {
		return true
	}
	switch step {
	case StepScenario:
		return true
	case StepPlatform:
		return w.Selection.Scenario != ""
	case StepPayload:
		return w.Selection.Platform != ""
	case StepPowerSource:
		return w.Selection.Payload != ""
	case StepAccessories:
		return w.Selection.PowerSource != ""
	default:
		return false
	}
}
