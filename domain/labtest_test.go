package domain

import "testing"

func TestNewLabTest_Valid(t *testing.T) {
	lt, err := NewLabTest("P0001", "SPEC001", "CBC^Complete Blood Count^LOCAL", "Complete Blood Count", "20230101090000", ResultStatusFinal)
	if err != nil {
		t.Fatalf("NewLabTest() unexpected error: %v", err)
	}
	if lt.TestCode == "" {
		t.Errorf("TestCode should not be empty")
	}
}

func TestNewLabTest_InvalidResultStatus(t *testing.T) {
	_, err := NewLabTest("P0001", "SPEC001", "CBC", "Complete Blood Count", "20230101090000", "X")
	if err == nil {
		t.Fatal("expected error for invalid result status")
	}
}

func TestLabTest_AddObservation(t *testing.T) {
	lt, err := NewLabTest("P0001", "SPEC001", "CBC", "Complete Blood Count", "20230101090000", ResultStatusFinal)
	if err != nil {
		t.Fatalf("NewLabTest() unexpected error: %v", err)
	}
	err = lt.AddObservation(Observation{ObservationID: "WBC^White Blood Cell Count", Value: "5.5", Units: "10*3/uL"})
	if err != nil {
		t.Fatalf("AddObservation() unexpected error: %v", err)
	}
	if len(lt.Observations) != 1 {
		t.Errorf("len(Observations) = %d, want 1", len(lt.Observations))
	}
}

func TestLabTest_AddObservation_MissingID(t *testing.T) {
	lt, err := NewLabTest("P0001", "SPEC001", "CBC", "Complete Blood Count", "20230101090000", ResultStatusFinal)
	if err != nil {
		t.Fatalf("NewLabTest() unexpected error: %v", err)
	}
	if err := lt.AddObservation(Observation{Value: "5.5"}); err == nil {
		t.Fatal("expected error for missing ObservationID")
	}
}
