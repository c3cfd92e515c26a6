package message

import (
	"fmt"
	"time"

	"github.com/dshills/ssmixgen/domain"
	"github.com/dshills/ssmixgen/hl7"
	"github.com/dshills/ssmixgen/segments"
)

// LabResult builds an ORU^R01 observation result message for a completed
// LabTest, one OBX per observation plus a leading SPM when a specimen is
// supplied. specimen may be nil for tests the row source didn't attach a
// specimen to.
func LabResult(ctx Context, p *domain.Patient, lt *domain.LabTest, specimen *domain.Specimen, controlID string, eventTime time.Time) (hl7.Message, error) {
	delims := hl7.DefaultDelimiters()

	msh, err := buildMSH(ctx, "ORU^R01", controlID, eventTime, delims)
	if err != nil {
		return nil, err
	}
	pid, err := patientToPID(p, delims)
	if err != nil {
		return nil, err
	}

	obr := &segments.OBR{
		SetID:                      "1",
		FillerOrderNumber:          lt.SpecimenID,
		UniversalServiceIdentifier: lt.TestCode,
		ObservationDateTime:        lt.ObservedAt.Format("20060102150405"),
		ResultStatus:               lt.ResultStatus,
	}
	obrSeg, err := obr.ToSegment(delims)
	if err != nil {
		return nil, fmt.Errorf("building OBR: %w", err)
	}

	segs := []hl7.Segment{msh, pid}

	if specimen != nil {
		spm := &segments.SPM{
			SetID:                      "1",
			SpecimenID:                 specimen.ID,
			SpecimenType:               specimen.SpecimenType,
			SpecimenCollectionDateTime: specimen.CollectedAt.Format("20060102150405"),
		}
		if !specimen.ReceivedAt.IsZero() {
			spm.SpecimenReceivedDateTime = specimen.ReceivedAt.Format("20060102150405")
		}
		spmSeg, err := spm.ToSegment(delims)
		if err != nil {
			return nil, fmt.Errorf("building SPM: %w", err)
		}
		segs = append(segs, spmSeg)
	}

	segs = append(segs, obrSeg)

	for i, obs := range lt.Observations {
		obx := &segments.OBX{
			SetID:                   fmt.Sprintf("%d", i+1),
			ValueType:               obs.ValueType,
			ObservationIdentifier:   obs.ObservationID,
			ObservationValue:        obs.Value,
			Units:                   obs.Units,
			ReferencesRange:         obs.ReferenceRange,
			AbnormalFlags:           obs.AbnormalFlag,
			ObservationResultStatus: obs.ResultStatus,
		}
		obxSeg, err := obx.ToSegment(delims)
		if err != nil {
			return nil, fmt.Errorf("building OBX[%d]: %w", i, err)
		}
		segs = append(segs, obxSeg)
	}

	return assemble(segs...), nil
}
