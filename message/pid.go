package message

import (
	"fmt"

	"github.com/dshills/ssmixgen/domain"
	"github.com/dshills/ssmixgen/hl7"
	"github.com/dshills/ssmixgen/segments"
)

func patientToPID(p *domain.Patient, delims *hl7.Delimiters) (hl7.Segment, error) {
	name := fmt.Sprintf("%s^%s^^^^^^^^^%s^%s", p.Name.FamilyName, p.Name.GivenName, p.Name.FamilyNameKana, p.Name.GivenNameKana)
	addr := fmt.Sprintf("%s%s%s^^%s^%s^%s", p.Address.Town, p.Address.Chome, p.Address.Building, p.Address.City, p.Address.Prefecture, p.Address.PostalCode)

	pid := &segments.PID{
		SetID:           "1",
		PatientIDList:   p.ID,
		PatientName:     name,
		DateOfBirth:     p.BirthDate.Format("20060102"),
		Sex:             p.Sex,
		PatientAddress:  addr,
		PhoneNumberHome: p.PhoneNumber,
	}
	if p.Dead {
		pid.PatientDeathDateTime = p.DeathDate.Format("20060102")
		pid.PatientDeathIndicator = "Y"
	}

	seg, err := pid.ToSegment(delims)
	if err != nil {
		return nil, fmt.Errorf("building PID: %w", err)
	}
	return seg, nil
}
