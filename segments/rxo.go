package segments

import (
	"fmt"

	"github.com/dshills/ssmixgen/hl7"
)

// RXO represents the Pharmacy/Treatment Order segment.
// Carries the ordering-side detail of a prescription (what was requested),
// paired with RXE which carries the filling-side encoded detail.
type RXO struct {
	// RequestedGiveCode is RXO-1: drug/treatment code (CE).
	RequestedGiveCode string `hl7:"RXO.1"`

	// RequestedGiveAmountMinimum is RXO-2.
	RequestedGiveAmountMinimum string `hl7:"RXO.2"`

	// RequestedGiveAmountMaximum is RXO-3.
	RequestedGiveAmountMaximum string `hl7:"RXO.3"`

	// RequestedGiveUnits is RXO-4 (CE).
	RequestedGiveUnits string `hl7:"RXO.4"`

	// RequestedDosageForm is RXO-5 (CE).
	RequestedDosageForm string `hl7:"RXO.5"`

	// ProvidersPharmacyInstructions is RXO-6 (can repeat).
	ProvidersPharmacyInstructions string `hl7:"RXO.6"`

	// ProvidersAdministrationInstructions is RXO-7 (can repeat).
	ProvidersAdministrationInstructions string `hl7:"RXO.7"`

	// DeliverToLocation is RXO-8.
	DeliverToLocation string `hl7:"RXO.8"`
}

// ErrNotRXOSegment indicates the segment is not an RXO segment.
var ErrNotRXOSegment = fmt.Errorf("segment is not RXO")

// ParseRXO extracts field values from an hl7.Segment into an RXO struct.
func ParseRXO(seg hl7.Segment) (*RXO, error) {
	if seg == nil {
		return nil, ErrNilSegment
	}

	if seg.Name() != "RXO" {
		return nil, fmt.Errorf("%w: got %s", ErrNotRXOSegment, seg.Name())
	}

	rxo := &RXO{
		RequestedGiveCode:                   getFieldValue(seg, 1),
		RequestedGiveAmountMinimum:          getFieldValue(seg, 2),
		RequestedGiveAmountMaximum:          getFieldValue(seg, 3),
		RequestedGiveUnits:                  getFieldValue(seg, 4),
		RequestedDosageForm:                 getFieldValue(seg, 5),
		ProvidersPharmacyInstructions:       getFieldValue(seg, 6),
		ProvidersAdministrationInstructions: getFieldValue(seg, 7),
		DeliverToLocation:                   getFieldValue(seg, 8),
	}

	return rxo, nil
}

// ToSegment converts the RXO struct into an hl7.Segment.
func (r *RXO) ToSegment(delims *hl7.Delimiters) (hl7.Segment, error) {
	if delims == nil {
		delims = hl7.DefaultDelimiters()
	}

	fields := []string{
		r.RequestedGiveCode,
		r.RequestedGiveAmountMinimum,
		r.RequestedGiveAmountMaximum,
		r.RequestedGiveUnits,
		r.RequestedDosageForm,
		r.ProvidersPharmacyInstructions,
		r.ProvidersAdministrationInstructions,
		r.DeliverToLocation,
	}

	data := buildSegmentData("RXO", fields, delims)

	seg, err := hl7.ParseSegment([]rune(data), delims)
	if err != nil {
		return nil, fmt.Errorf("failed to create RXO segment: %w", err)
	}

	return seg, nil
}
