package segments

import (
	"fmt"

	"github.com/dshills/ssmixgen/hl7"
)

// IN1 represents the Insurance segment.
// Carries one insurance coverage entry for a patient; a patient holding
// multiple policies carries multiple IN1 segments distinguished by SetID.
type IN1 struct {
	// SetID is IN1-1: Set ID.
	SetID string `hl7:"IN1.1"`

	// InsurancePlanID is IN1-2: insurance plan ID (CE).
	InsurancePlanID string `hl7:"IN1.2"`

	// InsuranceCompanyID is IN1-3: insurance company ID (CX, can repeat).
	InsuranceCompanyID string `hl7:"IN1.3"`

	// InsuranceCompanyName is IN1-4: payer name (XON, can repeat).
	InsuranceCompanyName string `hl7:"IN1.4"`

	// InsuranceCompanyAddress is IN1-5: payer address (XAD, can repeat).
	InsuranceCompanyAddress string `hl7:"IN1.5"`

	// InsuranceCoContactPerson is IN1-6: payer contact person (XPN, can repeat).
	InsuranceCoContactPerson string `hl7:"IN1.6"`

	// InsuranceCoPhoneNumber is IN1-7: payer phone number (XTN, can repeat).
	InsuranceCoPhoneNumber string `hl7:"IN1.7"`

	// GroupNumber is IN1-8.
	GroupNumber string `hl7:"IN1.8"`

	// GroupName is IN1-9 (XON, can repeat).
	GroupName string `hl7:"IN1.9"`

	// InsuredsGroupEmpID is IN1-10 (CX, can repeat).
	InsuredsGroupEmpID string `hl7:"IN1.10"`

	// InsuredsGroupEmpName is IN1-11 (XON, can repeat).
	InsuredsGroupEmpName string `hl7:"IN1.11"`

	// PlanEffectiveDate is IN1-12.
	PlanEffectiveDate string `hl7:"IN1.12"`

	// PlanExpirationDate is IN1-13.
	PlanExpirationDate string `hl7:"IN1.13"`

	// AuthorizationInformation is IN1-14 (AUI).
	AuthorizationInformation string `hl7:"IN1.14"`

	// PlanType is IN1-15.
	PlanType string `hl7:"IN1.15"`

	// NameOfInsured is IN1-16: the policy subscriber (XPN, can repeat).
	NameOfInsured string `hl7:"IN1.16"`

	// InsuredsRelationshipToPatient is IN1-17 (CE): self/spouse/child/other.
	InsuredsRelationshipToPatient string `hl7:"IN1.17"`

	// InsuredsDateOfBirth is IN1-18.
	InsuredsDateOfBirth string `hl7:"IN1.18"`
}

// ErrNotIN1Segment indicates the segment is not an IN1 segment.
var ErrNotIN1Segment = fmt.Errorf("segment is not IN1")

// ParseIN1 extracts field values from an hl7.Segment into an IN1 struct.
func ParseIN1(seg hl7.Segment) (*IN1, error) {
	if seg == nil {
		return nil, ErrNilSegment
	}

	if seg.Name() != "IN1" {
		return nil, fmt.Errorf("%w: got %s", ErrNotIN1Segment, seg.Name())
	}

	in1 := &IN1{
		SetID:                          getFieldValue(seg, 1),
		InsurancePlanID:                getFieldValue(seg, 2),
		InsuranceCompanyID:             getFieldValue(seg, 3),
		InsuranceCompanyName:           getFieldValue(seg, 4),
		InsuranceCompanyAddress:        getFieldValue(seg, 5),
		InsuranceCoContactPerson:       getFieldValue(seg, 6),
		InsuranceCoPhoneNumber:         getFieldValue(seg, 7),
		GroupNumber:                    getFieldValue(seg, 8),
		GroupName:                      getFieldValue(seg, 9),
		InsuredsGroupEmpID:             getFieldValue(seg, 10),
		InsuredsGroupEmpName:           getFieldValue(seg, 11),
		PlanEffectiveDate:              getFieldValue(seg, 12),
		PlanExpirationDate:             getFieldValue(seg, 13),
		AuthorizationInformation:       getFieldValue(seg, 14),
		PlanType:                       getFieldValue(seg, 15),
		NameOfInsured:                  getFieldValue(seg, 16),
		InsuredsRelationshipToPatient:  getFieldValue(seg, 17),
		InsuredsDateOfBirth:            getFieldValue(seg, 18),
	}

	return in1, nil
}

// ToSegment converts the IN1 struct into an hl7.Segment.
func (i *IN1) ToSegment(delims *hl7.Delimiters) (hl7.Segment, error) {
	if delims == nil {
		delims = hl7.DefaultDelimiters()
	}

	fields := []string{
		i.SetID,
		i.InsurancePlanID,
		i.InsuranceCompanyID,
		i.InsuranceCompanyName,
		i.InsuranceCompanyAddress,
		i.InsuranceCoContactPerson,
		i.InsuranceCoPhoneNumber,
		i.GroupNumber,
		i.GroupName,
		i.InsuredsGroupEmpID,
		i.InsuredsGroupEmpName,
		i.PlanEffectiveDate,
		i.PlanExpirationDate,
		i.AuthorizationInformation,
		i.PlanType,
		i.NameOfInsured,
		i.InsuredsRelationshipToPatient,
		i.InsuredsDateOfBirth,
	}

	data := buildSegmentData("IN1", fields, delims)

	seg, err := hl7.ParseSegment([]rune(data), delims)
	if err != nil {
		return nil, fmt.Errorf("failed to create IN1 segment: %w", err)
	}

	return seg, nil
}
