package segments

import (
	"testing"

	"github.com/dshills/ssmixgen/hl7"
)

func TestParseSPM(t *testing.T) {
	input := "SPM|1|SPEC001^Placer~SPEC001F^Filler|||BLD^Blood"
	seg, err := hl7.ParseSegment([]rune(input), hl7.DefaultDelimiters())
	if err != nil {
		t.Fatalf("failed to parse segment: %v", err)
	}

	got, err := ParseSPM(seg)
	if err != nil {
		t.Fatalf("ParseSPM() unexpected error: %v", err)
	}

	if got.SetID != "1" {
		t.Errorf("SetID = %q, want %q", got.SetID, "1")
	}
	if got.SpecimenType != "BLD^Blood" {
		t.Errorf("SpecimenType = %q, want %q", got.SpecimenType, "BLD^Blood")
	}
}

func TestSPM_ToSegment(t *testing.T) {
	spm := &SPM{
		SetID:                      "1",
		SpecimenID:                 "SPEC002",
		SpecimenType:               "URN^Urine",
		SpecimenCollectionDateTime: "20230615090000",
	}

	seg, err := spm.ToSegment(hl7.DefaultDelimiters())
	if err != nil {
		t.Fatalf("ToSegment() unexpected error: %v", err)
	}
	if seg.Name() != "SPM" {
		t.Errorf("segment name = %q, want SPM", seg.Name())
	}

	roundTrip, err := ParseSPM(seg)
	if err != nil {
		t.Fatalf("round-trip ParseSPM() error: %v", err)
	}
	if roundTrip.SpecimenCollectionDateTime != spm.SpecimenCollectionDateTime {
		t.Errorf("round-trip SpecimenCollectionDateTime = %q, want %q",
			roundTrip.SpecimenCollectionDateTime, spm.SpecimenCollectionDateTime)
	}
}
