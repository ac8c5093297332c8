package models

import (
	"github.com/google/uuid"
	"slices"
	"time"
)

// Selection is the in-progress configuration of one session. Empty ids mean the field is unset.
type Selection struct {
	Scenario    string
	Platform    string
	Payload     string
	PowerSource string
	// Accessories is an insertion-ordered set of accessory ids.
	Accessories []string
}

// HasAccessory reports whether the accessory is part of the selection.
func (s Selection) HasAccessory(id string) bool {
	return slices.Contains(s.Accessories, id)
}

// Complete reports whether all required fields are set. Accessories are optional.
func (s Selection) Complete() bool {
	return s.Scenario != "" && s.Platform != "" && s.Payload != "" && s.PowerSource != ""
}

// Clone returns a copy that does not share the accessory slice.
func (s Selection) Clone() Selection {
	s.Accessories = slices.Clone(s.Accessories)
	return s
}

// Contact is the contact information collected by the lead form.
type Contact struct {
	Name           string `validate:"required,min=2,max=200"`
	Company        string `validate:"required,min=2,max=200"`
	Email          string `validate:"required,email,max=254"`
	Phone          string `validate:"required,min=6,max=40"`
	AdditionalInfo string `validate:"max=4000"`
}

// Lead is a completed configuration together with the contact details of the requester.
type Lead struct {
	ID          uuid.UUID
	Contact     Contact
	Selection   Selection
	SubmittedAt time.Time
}
