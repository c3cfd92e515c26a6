package segments

import (
	"testing"

	"github.com/dshills/ssmixgen/hl7"
)

func TestParseMSA(t *testing.T) {
	input := "MSA|AA|MSG00001"
	seg, err := hl7.ParseSegment([]rune(input), hl7.DefaultDelimiters())
	if err != nil {
		t.Fatalf("failed to parse segment: %v", err)
	}

	got, err := ParseMSA(seg)
	if err != nil {
		t.Fatalf("ParseMSA() unexpected error: %v", err)
	}
	if got.AcknowledgmentCode != "AA" {
		t.Errorf("AcknowledgmentCode = %q, want AA", got.AcknowledgmentCode)
	}
	if got.MessageControlID != "MSG00001" {
		t.Errorf("MessageControlID = %q, want MSG00001", got.MessageControlID)
	}
}

func TestParseMSA_WrongSegment(t *testing.T) {
	seg, err := hl7.ParseSegment([]rune("PID|1"), hl7.DefaultDelimiters())
	if err != nil {
		t.Fatalf("failed to parse segment: %v", err)
	}
	if _, err := ParseMSA(seg); err == nil {
		t.Fatal("expected error for non-MSA segment")
	}
}

func TestMSA_ToSegment(t *testing.T) {
	msa := &MSA{AcknowledgmentCode: "AE", MessageControlID: "MSG00002", TextMessage: "bad data"}

	seg, err := msa.ToSegment(hl7.DefaultDelimiters())
	if err != nil {
		t.Fatalf("ToSegment() unexpected error: %v", err)
	}
	if seg.Name() != "MSA" {
		t.Errorf("segment name = %q, want MSA", seg.Name())
	}

	roundTrip, err := ParseMSA(seg)
	if err != nil {
		t.Fatalf("round-trip ParseMSA() error: %v", err)
	}
	if roundTrip.AcknowledgmentCode != msa.AcknowledgmentCode {
		t.Errorf("round-trip AcknowledgmentCode = %q, want %q", roundTrip.AcknowledgmentCode, msa.AcknowledgmentCode)
	}
}
