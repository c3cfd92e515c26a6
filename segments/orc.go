package segments

import (
	"fmt"

	"github.com/dshills/ssmixgen/hl7"
)

// ORC represents the Common Order segment.
// This segment is used for transmitting common order information, including
// order control codes, placer/filler order numbers, order status, and
// timing/quantity information for orders.
//
// Field positions follow the HL7 standard where ORC-1 is the first field
// after the segment name. Only the fields a prescription, injection, or
// lab order actually carries are named here; the rest (response flags,
// enterer/authorization chains, facility contact details) are left as
// literal gaps in ToSegment/ParseORC.
type ORC struct {
	// OrderControl is ORC-1: Order control code.
	// Determines the function of the order segment (NW=New, CA=Cancel, SC=Status Changed, etc.).
	OrderControl string `hl7:"ORC.1"`

	// PlacerOrderNumber is ORC-2: Placer order number (EI - Entity Identifier).
	// The order number assigned by the ordering/placing application.
	PlacerOrderNumber string `hl7:"ORC.2"`

	// FillerOrderNumber is ORC-3: Filler order number.
	// The order number assigned by the filling application.
	FillerOrderNumber string `hl7:"ORC.3"`

	// OrderStatus is ORC-5: Order status (A=Some but not all, CA=Canceled, CM=Completed, etc.).
	OrderStatus string `hl7:"ORC.5"`

	// DateTimeOfTransaction is ORC-9: Date/time of transaction.
	DateTimeOfTransaction string `hl7:"ORC.9"`

	// OrderEffectiveDateTime is ORC-15: Order effective date/time.
	OrderEffectiveDateTime string `hl7:"ORC.15"`
}

// ErrNotORCSegment indicates the segment is not an ORC segment.
var ErrNotORCSegment = fmt.Errorf("segment is not ORC")

// ParseORC extracts field values from an hl7.Segment into an ORC struct.
// Returns an error if the segment is nil or not an ORC segment.
func ParseORC(seg hl7.Segment) (*ORC, error) {
	if seg == nil {
		return nil, ErrNilSegment
	}

	if seg.Name() != "ORC" {
		return nil, fmt.Errorf("%w: got %s", ErrNotORCSegment, seg.Name())
	}

	orc := &ORC{
		OrderControl:           getFieldValue(seg, 1),
		PlacerOrderNumber:      getFieldValue(seg, 2),
		FillerOrderNumber:      getFieldValue(seg, 3),
		OrderStatus:            getFieldValue(seg, 5),
		DateTimeOfTransaction:  getFieldValue(seg, 9),
		OrderEffectiveDateTime: getFieldValue(seg, 15),
	}

	return orc, nil
}

// ToSegment converts the ORC struct into an hl7.Segment.
// The delims parameter specifies the delimiters to use for encoding.
// If delims is nil, default delimiters are used.
func (o *ORC) ToSegment(delims *hl7.Delimiters) (hl7.Segment, error) {
	if delims == nil {
		delims = hl7.DefaultDelimiters()
	}

	// Index i holds field ORC.(i+1); unused positions stay "" so the
	// populated fields land at their correct HL7 position.
	fields := make([]string, 15)
	fields[0] = o.OrderControl
	fields[1] = o.PlacerOrderNumber
	fields[2] = o.FillerOrderNumber
	fields[4] = o.OrderStatus
	fields[8] = o.DateTimeOfTransaction
	fields[14] = o.OrderEffectiveDateTime

	data := buildSegmentData("ORC", fields, delims)

	seg, err := hl7.ParseSegment([]rune(data), delims)
	if err != nil {
		return nil, fmt.Errorf("failed to create ORC segment: %w", err)
	}

	return seg, nil
}
