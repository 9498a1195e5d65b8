// SPDX-License-Identifier: MIT
// Package: mrdiagram/catalog
//
// types.go — the descriptor record shape and its closed enumerations.

package catalog

import (
	"fmt"
)

// Category is the functional family a shape belongs to on a sequence
// diagram. The set is closed; anything that fits no lane is General.
type Category string

const (
	// CategoryRF marks radio-frequency pulse shapes.
	CategoryRF Category = "RF"
	// CategoryGradient marks gradient lobe and trajectory shapes.
	CategoryGradient Category = "Gradient"
	// CategorySignal marks acquisition signal shapes.
	CategorySignal Category = "Signal"
	// CategoryTrigger marks physiological/external trigger markers.
	CategoryTrigger Category = "Trigger"
	// CategoryFlag marks single-event flag markers.
	CategoryFlag Category = "Flag"
	// CategoryGeneral marks shapes outside the five diagram lanes.
	CategoryGeneral Category = "General"
)

// Valid reports whether c is one of the closed category values.
func (c Category) Valid() bool {
	switch c {
	case CategoryRF, CategoryGradient, CategorySignal, CategoryTrigger, CategoryFlag, CategoryGeneral:
		return true
	}

	return false
}

// Rating is a coarse qualitative grade used for the selectivity, duration
// and SAR annotations. Shapes where a grade makes no sense (a gradient has
// no SAR) carry RatingNotApplicable.
type Rating string

const (
	RatingHigh          Rating = "high"
	RatingMedium        Rating = "medium"
	RatingLow           Rating = "low"
	RatingNone          Rating = "none"
	RatingNotApplicable Rating = "n/a"
)

// Valid reports whether r is one of the closed rating values. The empty
// string is accepted and read as "not applicable" so sparse records stay
// legal.
func (r Rating) Valid() bool {
	switch r {
	case RatingHigh, RatingMedium, RatingLow, RatingNone, RatingNotApplicable, "":
		return true
	}

	return false
}

// Descriptor is one catalogue record: everything the editor shows about a
// shape plus everything the registry needs to draw it. Descriptors are
// read-only configuration; the core never writes them back.
type Descriptor struct {
	// ID is the unique record identifier (also the icon file stem).
	ID string `json:"id" yaml:"id"`
	// Name is the human-readable display name.
	Name string `json:"name" yaml:"name"`
	// Description is free text shown by the editor.
	Description string `json:"description" yaml:"description"`
	// Type is the diagram lane the shape belongs to.
	Type Category `json:"type" yaml:"type"`
	// Tags are free-form search keywords.
	Tags []string `json:"tags" yaml:"tags"`
	// Usage is free text describing when the shape is used.
	Usage string `json:"usage" yaml:"usage"`
	// Selectivity grades how spatially/spectrally selective the shape is.
	Selectivity Rating `json:"selectivity" yaml:"selectivity"`
	// Duration grades how long the element typically runs.
	Duration Rating `json:"duration" yaml:"duration"`
	// SAR grades the specific-absorption-rate impact (RF only).
	SAR Rating `json:"sar" yaml:"sar"`
	// Class is the waveform registry key that draws this record.
	Class string `json:"class" yaml:"class"`
	// Args maps generator parameter names to this record's default values.
	Args map[string]float64 `json:"args" yaml:"args"`
}

// Validate checks the descriptor contract: non-empty id and class, known
// category, known ratings. Returns an error wrapping ErrBadDescriptor
// naming the first violated field.
func (d *Descriptor) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("descriptor with empty id: %w", ErrBadDescriptor)
	}
	if d.Class == "" {
		return fmt.Errorf("descriptor %q: empty class: %w", d.ID, ErrBadDescriptor)
	}
	if !d.Type.Valid() {
		return fmt.Errorf("descriptor %q: unknown category %q: %w", d.ID, d.Type, ErrBadDescriptor)
	}
	for name, r := range map[string]Rating{"selectivity": d.Selectivity, "duration": d.Duration, "sar": d.SAR} {
		if !r.Valid() {
			return fmt.Errorf("descriptor %q: unknown %s rating %q: %w", d.ID, name, r, ErrBadDescriptor)
		}
	}

	return nil
}

// Catalog is the top-level catalogue record: a flat list of descriptors,
// matching the on-disk shape {"shapes": [...]}.
type Catalog struct {
	Shapes []Descriptor `json:"shapes" yaml:"shapes"`
}

// ByCategory groups the descriptors by their diagram lane, preserving the
// in-catalogue order inside each group.
// Complexity: O(len(Shapes)).
func (c *Catalog) ByCategory() map[Category][]Descriptor {
	out := make(map[Category][]Descriptor)
	for _, d := range c.Shapes {
		out[d.Type] = append(out[d.Type], d)
	}

	return out
}
