package domain

import (
	"time"

	"github.com/dshills/ssmixgen/hl7"
)

// Order kinds determine which OMP^O09 body a generation run builds: an RXO
// for a pharmacy-dispensed prescription, an RXE for a ward-administered
// injection. OML^O33 is a separate message entirely, built from a LabTest
// rather than an Order.
const (
	OrderKindPrescription = "prescription"
	OrderKindInjection    = "injection"
)

func validOrderKind(k string) bool {
	switch k {
	case OrderKindPrescription, OrderKindInjection:
		return true
	default:
		return false
	}
}

// Order models one ORC/RXO/RXE/RXR-bearing drug order. GiveAmountMinimum
// carries the spec's three-state field model directly: for an ointment or
// other order whose minimum dose has no meaningful value, the synthesizer
// sets it to hl7.LiteralNull() rather than leaving it absent, matching the
// literal RXE-3 `""` SS-MIX2 profiles expect.
type Order struct {
	PatientID         string
	OrderNumber       string
	Kind              string
	OrderDateTime     time.Time
	GiveCode          string
	GiveAmountMinimum hl7.FieldValue
	GiveAmountMaximum string
	GiveUnits         string
	GiveDosageForm    string
	Route             string
}

// NewOrder validates the required order attributes. GiveAmountMinimum is
// supplied by the caller already as an hl7.FieldValue since only the
// synthesizer knows whether a given drug's minimum dose should be absent,
// literally null, or a concrete value.
func NewOrder(patientID, orderNumber, kind, orderDateTime, giveCode string, giveAmountMinimum hl7.FieldValue, giveAmountMaximum, giveUnits, giveDosageForm, route string) (*Order, error) {
	if patientID == "" {
		return nil, newValidationError("Order", "PatientID", patientID, "required")
	}
	if orderNumber == "" {
		return nil, newValidationError("Order", "OrderNumber", orderNumber, "required")
	}
	if !validOrderKind(kind) {
		return nil, newValidationError("Order", "Kind", kind, "must be one of prescription,injection")
	}
	when, err := parseClinicalTimestamp(orderDateTime)
	if err != nil {
		return nil, newValidationError("Order", "OrderDateTime", orderDateTime, "must be YYYYMMDD or YYYYMMDDHHMMSS")
	}
	if giveCode == "" {
		return nil, newValidationError("Order", "GiveCode", giveCode, "required")
	}

	return &Order{
		PatientID:         patientID,
		OrderNumber:       orderNumber,
		Kind:              kind,
		OrderDateTime:     when,
		GiveCode:          giveCode,
		GiveAmountMinimum: giveAmountMinimum,
		GiveAmountMaximum: giveAmountMaximum,
		GiveUnits:         giveUnits,
		GiveDosageForm:    giveDosageForm,
		Route:             route,
	}, nil
}
