package message

import (
	"fmt"

	"github.com/dshills/ssmixgen/domain"
	"github.com/dshills/ssmixgen/hl7"
	"github.com/dshills/ssmixgen/segments"
)

func insuranceToIN1(ins *domain.Insurance, setID int, delims *hl7.Delimiters) (hl7.Segment, error) {
	in1 := &segments.IN1{
		SetID:                         fmt.Sprintf("%d", setID),
		InsurancePlanID:               ins.PlanID,
		InsuranceCompanyName:          ins.CompanyName,
		GroupNumber:                   ins.GroupNumber,
		NameOfInsured:                 ins.NameOfInsured,
		InsuredsRelationshipToPatient: ins.RelationToPatient,
	}
	return in1.ToSegment(delims)
}
