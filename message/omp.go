package message

import (
	"fmt"
	"time"

	"github.com/dshills/ssmixgen/domain"
	"github.com/dshills/ssmixgen/hl7"
	"github.com/dshills/ssmixgen/segments"
)

// PrescriptionOrder builds an OMP^O09 pharmacy/treatment order message for
// a prescription order. route carries the RXR-1 administration route.
func PrescriptionOrder(ctx Context, p *domain.Patient, o *domain.Order, controlID string, eventTime time.Time) (hl7.Message, error) {
	delims := hl7.DefaultDelimiters()

	msh, err := buildMSH(ctx, "OMP^O09", controlID, eventTime, delims)
	if err != nil {
		return nil, err
	}
	pid, err := patientToPID(p, delims)
	if err != nil {
		return nil, err
	}

	orc := &segments.ORC{
		OrderControl:           "NW",
		PlacerOrderNumber:      o.OrderNumber,
		OrderStatus:            "IP",
		DateTimeOfTransaction:  o.OrderDateTime.Format("20060102150405"),
		OrderEffectiveDateTime: o.OrderDateTime.Format("20060102150405"),
	}
	orcSeg, err := orc.ToSegment(delims)
	if err != nil {
		return nil, fmt.Errorf("building ORC: %w", err)
	}

	rxo := &segments.RXO{
		RequestedGiveCode:          o.GiveCode,
		RequestedGiveAmountMinimum: o.GiveAmountMinimum.Raw(),
		RequestedGiveAmountMaximum: o.GiveAmountMaximum,
		RequestedGiveUnits:         o.GiveUnits,
		RequestedDosageForm:        o.GiveDosageForm,
	}
	rxoSeg, err := rxo.ToSegment(delims)
	if err != nil {
		return nil, fmt.Errorf("building RXO: %w", err)
	}

	rxr := &segments.RXR{Route: o.Route}
	rxrSeg, err := rxr.ToSegment(delims)
	if err != nil {
		return nil, fmt.Errorf("building RXR: %w", err)
	}

	return assemble(msh, pid, orcSeg, rxoSeg, rxrSeg), nil
}

// InjectionOrder builds an OMP^O09 pharmacy/treatment order message for a
// ward-administered injection. Unlike PrescriptionOrder this carries an
// RXE rather than an RXO, since an injection is given from existing ward
// stock rather than dispensed against a pharmacy request. RXE-3's minimum
// dose is carried straight through from the domain Order as an
// hl7.FieldValue, preserving a literal `""` for orders the synthesizer
// marked as having no meaningful minimum dose (an ointment-like order).
func InjectionOrder(ctx Context, p *domain.Patient, o *domain.Order, controlID string, eventTime time.Time) (hl7.Message, error) {
	delims := hl7.DefaultDelimiters()

	msh, err := buildMSH(ctx, "OMP^O09", controlID, eventTime, delims)
	if err != nil {
		return nil, err
	}
	pid, err := patientToPID(p, delims)
	if err != nil {
		return nil, err
	}

	orc := &segments.ORC{
		OrderControl:           "NW",
		PlacerOrderNumber:      o.OrderNumber,
		OrderStatus:            "IP",
		DateTimeOfTransaction:  o.OrderDateTime.Format("20060102150405"),
		OrderEffectiveDateTime: o.OrderDateTime.Format("20060102150405"),
	}
	orcSeg, err := orc.ToSegment(delims)
	if err != nil {
		return nil, fmt.Errorf("building ORC: %w", err)
	}

	rxe := &segments.RXE{
		GiveCode:          o.GiveCode,
		GiveAmountMinimum: o.GiveAmountMinimum,
		GiveAmountMaximum: o.GiveAmountMaximum,
		GiveUnits:         o.GiveUnits,
		GiveDosageForm:    o.GiveDosageForm,
	}
	rxeSeg, err := rxe.ToSegment(delims)
	if err != nil {
		return nil, fmt.Errorf("building RXE: %w", err)
	}

	rxr := &segments.RXR{Route: o.Route}
	rxrSeg, err := rxr.ToSegment(delims)
	if err != nil {
		return nil, fmt.Errorf("building RXR: %w", err)
	}

	return assemble(msh, pid, orcSeg, rxeSeg, rxrSeg), nil
}
