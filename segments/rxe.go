package segments

import (
	"fmt"

	"github.com/dshills/ssmixgen/hl7"
)

// RXE represents the Pharmacy/Treatment Encoded Order segment.
// Carries the filling side of a prescription order. RXE-3 (give amount -
// minimum) is the field the primitive encoder's three-state model exists
// for: when a dose's minimum amount is structurally required by the
// profile but semantically undefined (an ointment has no meaningful
// "minimum dose"), RXE-3 must be the literal two-character `""`, not an
// empty field and not a regular numeric string.
type RXE struct {
	// QuantityTiming is RXE-1 (deprecated, retained for profile compatibility).
	QuantityTiming string `hl7:"RXE.1"`

	// GiveCode is RXE-2: the drug/treatment code (CE).
	GiveCode string `hl7:"RXE.2"`

	// GiveAmountMinimum is RXE-3. Built from an hl7.FieldValue so the
	// literal `""` case cannot be confused with an absent field.
	GiveAmountMinimum hl7.FieldValue

	// GiveAmountMaximum is RXE-4.
	GiveAmountMaximum string `hl7:"RXE.4"`

	// GiveUnits is RXE-5 (CE).
	GiveUnits string `hl7:"RXE.5"`

	// GiveDosageForm is RXE-6 (CE).
	GiveDosageForm string `hl7:"RXE.6"`

	// ProvidersAdministrationInstructions is RXE-7 (can repeat).
	ProvidersAdministrationInstructions string `hl7:"RXE.7"`

	// DeliverToLocation is RXE-10.
	DeliverToLocation string `hl7:"RXE.10"`

	// NumberOfRefillsRemaining is RXE-13.
	NumberOfRefillsRemaining string `hl7:"RXE.13"`
}

// ErrNotRXESegment indicates the segment is not an RXE segment.
var ErrNotRXESegment = fmt.Errorf("segment is not RXE")

// ParseRXE extracts field values from an hl7.Segment into an RXE struct.
func ParseRXE(seg hl7.Segment) (*RXE, error) {
	if seg == nil {
		return nil, ErrNilSegment
	}

	if seg.Name() != "RXE" {
		return nil, fmt.Errorf("%w: got %s", ErrNotRXESegment, seg.Name())
	}

	rawMinimum := getFieldValue(seg, 3)
	var minimum hl7.FieldValue
	if rawMinimum == `""` {
		minimum = hl7.LiteralNull()
	} else {
		minimum = hl7.Value(rawMinimum)
	}

	rxe := &RXE{
		QuantityTiming:                      getFieldValue(seg, 1),
		GiveCode:                            getFieldValue(seg, 2),
		GiveAmountMinimum:                   minimum,
		GiveAmountMaximum:                   getFieldValue(seg, 4),
		GiveUnits:                           getFieldValue(seg, 5),
		GiveDosageForm:                      getFieldValue(seg, 6),
		ProvidersAdministrationInstructions: getFieldValue(seg, 7),
		DeliverToLocation:                   getFieldValue(seg, 10),
		NumberOfRefillsRemaining:            getFieldValue(seg, 13),
	}

	return rxe, nil
}

// ToSegment converts the RXE struct into an hl7.Segment.
// Fields 8 and 9 (charge to practice / old give amount) carry no profile
// meaning in SS-MIX2's use of RXE and are always emitted absent.
func (r *RXE) ToSegment(delims *hl7.Delimiters) (hl7.Segment, error) {
	if delims == nil {
		delims = hl7.DefaultDelimiters()
	}

	fields := []string{
		r.QuantityTiming,
		r.GiveCode,
		r.GiveAmountMinimum.Raw(),
		r.GiveAmountMaximum,
		r.GiveUnits,
		r.GiveDosageForm,
		r.ProvidersAdministrationInstructions,
		"", // RXE-8: deliver-to patient location (unused in this profile)
		"", // RXE-9: substitution status (unused in this profile)
		r.DeliverToLocation,
		"", // RXE-11: dispense amount (unused in this profile)
		"", // RXE-12: dispense units (unused in this profile)
		r.NumberOfRefillsRemaining,
	}

	data := buildSegmentData("RXE", fields, delims)

	seg, err := hl7.ParseSegment([]rune(data), delims)
	if err != nil {
		return nil, fmt.Errorf("failed to create RXE segment: %w", err)
	}

	return seg, nil
}
