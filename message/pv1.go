package message

import (
	"fmt"

	"github.com/dshills/ssmixgen/domain"
	"github.com/dshills/ssmixgen/hl7"
	"github.com/dshills/ssmixgen/segments"
)

func admissionToPV1(a *domain.Admission, delims *hl7.Delimiters) (hl7.Segment, error) {
	pv1 := &segments.PV1{
		SetID:                   "1",
		PatientClass:            a.PatientClass,
		AssignedPatientLocation: a.AssignedLocation,
		VisitNumber:             a.VisitNumber,
		AdmitDateTime:           a.AdmitDateTime.Format("20060102150405"),
	}
	if !a.DischargeDateTime.IsZero() {
		pv1.DischargeDateTime = a.DischargeDateTime.Format("20060102150405")
	}
	seg, err := pv1.ToSegment(delims)
	if err != nil {
		return nil, fmt.Errorf("building PV1: %w", err)
	}
	return seg, nil
}
