package message

import (
	"time"

	"github.com/dshills/ssmixgen/domain"
	"github.com/dshills/ssmixgen/hl7"
)

// AdmitNotify builds an ADT^A01 admit/visit notification message.
func AdmitNotify(ctx Context, p *domain.Patient, a *domain.Admission, controlID string, eventTime time.Time) (hl7.Message, error) {
	return buildADT(ctx, "ADT^A01", p, a, controlID, eventTime)
}

// DischargeNotify builds an ADT^A03 discharge notification message.
func DischargeNotify(ctx Context, p *domain.Patient, a *domain.Admission, controlID string, eventTime time.Time) (hl7.Message, error) {
	return buildADT(ctx, "ADT^A03", p, a, controlID, eventTime)
}

// UpdatePatientInfo builds an ADT^A08 patient information update message,
// used when only demographic fields change and no visit event occurred.
func UpdatePatientInfo(ctx Context, p *domain.Patient, a *domain.Admission, controlID string, eventTime time.Time) (hl7.Message, error) {
	return buildADT(ctx, "ADT^A08", p, a, controlID, eventTime)
}

func buildADT(ctx Context, messageType string, p *domain.Patient, a *domain.Admission, controlID string, eventTime time.Time) (hl7.Message, error) {
	return buildADTDetailed(ctx, messageType, p, a, nil, nil, nil, nil, controlID, eventTime)
}

// AdmitNotifyDetailed builds an ADT^A01 admit notification carrying, in
// addition to PID/PV1, one IN1 segment per coverage and one AL1 segment
// per allergy the patient is known to have, each immediately followed by
// an NTE carrying that coverage's or allergy's free-text note when one is
// supplied. SS-MIX2 admit notifications routinely bundle insurance and
// allergy context with the visit event rather than sending them as
// separate messages. insuranceNotes and allergyNotes are positional and
// may be shorter than their segment slices or contain empty strings;
// either skips the NTE for that entry.
func AdmitNotifyDetailed(ctx Context, p *domain.Patient, a *domain.Admission, insurances []*domain.Insurance, insuranceNotes []string, allergies []*domain.Allergy, allergyNotes []string, controlID string, eventTime time.Time) (hl7.Message, error) {
	return buildADTDetailed(ctx, "ADT^A01", p, a, insurances, insuranceNotes, allergies, allergyNotes, controlID, eventTime)
}

func buildADTDetailed(ctx Context, messageType string, p *domain.Patient, a *domain.Admission, insurances []*domain.Insurance, insuranceNotes []string, allergies []*domain.Allergy, allergyNotes []string, controlID string, eventTime time.Time) (hl7.Message, error) {
	delims := hl7.DefaultDelimiters()

	msh, err := buildMSH(ctx, messageType, controlID, eventTime, delims)
	if err != nil {
		return nil, err
	}
	pid, err := patientToPID(p, delims)
	if err != nil {
		return nil, err
	}
	pv1, err := admissionToPV1(a, delims)
	if err != nil {
		return nil, err
	}

	segs := []hl7.Segment{msh, pid, pv1}
	noteSetID := 1
	for i, ins := range insurances {
		in1, err := insuranceToIN1(ins, i+1, delims)
		if err != nil {
			return nil, err
		}
		segs = append(segs, in1)
		if i < len(insuranceNotes) && insuranceNotes[i] != "" {
			nte, err := noteToNTE(nteSourceOrderer, insuranceNotes[i], noteSetID, delims)
			if err != nil {
				return nil, err
			}
			segs = append(segs, nte)
			noteSetID++
		}
	}
	for i, al := range allergies {
		al1, err := allergyToAL1(al, i+1, delims)
		if err != nil {
			return nil, err
		}
		segs = append(segs, al1)
		if i < len(allergyNotes) && allergyNotes[i] != "" {
			nte, err := noteToNTE(nteSourceAncillary, allergyNotes[i], noteSetID, delims)
			if err != nil {
				return nil, err
			}
			segs = append(segs, nte)
			noteSetID++
		}
	}
	return assemble(segs...), nil
}
