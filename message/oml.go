package message

import (
	"fmt"
	"time"

	"github.com/dshills/ssmixgen/domain"
	"github.com/dshills/ssmixgen/hl7"
	"github.com/dshills/ssmixgen/segments"
)

// LabOrder builds an OML^O33 laboratory order message: the order placed
// for a LabTest before it has a result, carrying the specimen it will be
// collected against. specimen may be nil for an order the row source
// never attached a specimen to.
func LabOrder(ctx Context, p *domain.Patient, lt *domain.LabTest, specimen *domain.Specimen, controlID string, eventTime time.Time) (hl7.Message, error) {
	delims := hl7.DefaultDelimiters()

	msh, err := buildMSH(ctx, "OML^O33", controlID, eventTime, delims)
	if err != nil {
		return nil, err
	}
	pid, err := patientToPID(p, delims)
	if err != nil {
		return nil, err
	}

	orc := &segments.ORC{
		OrderControl:          "NW",
		PlacerOrderNumber:     lt.SpecimenID,
		OrderStatus:           "IP",
		DateTimeOfTransaction: eventTime.Format("20060102150405"),
	}
	orcSeg, err := orc.ToSegment(delims)
	if err != nil {
		return nil, fmt.Errorf("building ORC: %w", err)
	}

	obr := &segments.OBR{
		SetID:                      "1",
		FillerOrderNumber:          lt.SpecimenID,
		UniversalServiceIdentifier: lt.TestCode,
		ObservationDateTime:        eventTime.Format("20060102150405"),
	}
	obrSeg, err := obr.ToSegment(delims)
	if err != nil {
		return nil, fmt.Errorf("building OBR: %w", err)
	}

	segs := []hl7.Segment{msh, pid, orcSeg, obrSeg}

	if specimen != nil {
		spm := &segments.SPM{
			SetID:                      "1",
			SpecimenID:                 specimen.ID,
			SpecimenType:               specimen.SpecimenType,
			SpecimenCollectionDateTime: specimen.CollectedAt.Format("20060102150405"),
		}
		spmSeg, err := spm.ToSegment(delims)
		if err != nil {
			return nil, fmt.Errorf("building SPM: %w", err)
		}
		segs = append(segs, spmSeg)
	}

	return assemble(segs...), nil
}
