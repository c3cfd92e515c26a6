package message

import (
	"fmt"

	"github.com/dshills/ssmixgen/domain"
	"github.com/dshills/ssmixgen/hl7"
	"github.com/dshills/ssmixgen/segments"
)

func allergyToAL1(al *domain.Allergy, setID int, delims *hl7.Delimiters) (hl7.Segment, error) {
	al1 := &segments.AL1{
		SetID:                   fmt.Sprintf("%d", setID),
		AllergenTypeCode:        al.AllergenType,
		AllergenCodeDescription: al.Allergen,
		AllergySeverityCode:     al.Severity,
		AllergyReaction:         al.Reaction,
	}
	return al1.ToSegment(delims)
}
