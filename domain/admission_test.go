package domain

import "testing"

func TestNewAdmission_Valid(t *testing.T) {
	a, err := NewAdmission("P0001", "V0001", PatientClassInpatient, "2F^201^1", "20230101080000", "")
	if err != nil {
		t.Fatalf("NewAdmission() unexpected error: %v", err)
	}
	if !a.DischargeDateTime.IsZero() {
		t.Errorf("DischargeDateTime should be zero for open admission")
	}
}

func TestNewAdmission_Discharged(t *testing.T) {
	a, err := NewAdmission("P0001", "V0001", PatientClassInpatient, "2F^201^1", "20230101080000", "20230105100000")
	if err != nil {
		t.Fatalf("NewAdmission() unexpected error: %v", err)
	}
	if a.DischargeDateTime.IsZero() {
		t.Errorf("DischargeDateTime should be set")
	}
}

func TestNewAdmission_InvalidPatientClass(t *testing.T) {
	_, err := NewAdmission("P0001", "V0001", "X", "2F^201^1", "20230101080000", "")
	if err == nil {
		t.Fatal("expected error for invalid patient class")
	}
}

func TestNewAdmission_DischargeBeforeAdmit(t *testing.T) {
	_, err := NewAdmission("P0001", "V0001", PatientClassInpatient, "2F^201^1", "20230105100000", "20230101080000")
	if err == nil {
		t.Fatal("expected error when discharge precedes admit")
	}
}

func TestNewAdmission_MissingVisitNumber(t *testing.T) {
	_, err := NewAdmission("P0001", "", PatientClassInpatient, "2F^201^1", "20230101080000", "")
	if err == nil {
		t.Fatal("expected error for empty VisitNumber")
	}
}
