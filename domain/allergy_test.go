package domain

import "testing"

func TestNewAllergy_Valid(t *testing.T) {
	a, err := NewAllergy("P0001", AllergenDrug, "PEN^Penicillin^LOCAL", SeveritySevere, "Anaphylaxis")
	if err != nil {
		t.Fatalf("NewAllergy() unexpected error: %v", err)
	}
	if a.Allergen == "" {
		t.Errorf("Allergen should not be empty")
	}
}

func TestNewAllergy_NoSeverity(t *testing.T) {
	_, err := NewAllergy("P0001", AllergenFood, "SHELLFISH^Shellfish^LOCAL", "", "")
	if err != nil {
		t.Fatalf("NewAllergy() unexpected error: %v", err)
	}
}

func TestNewAllergy_InvalidAllergenType(t *testing.T) {
	_, err := NewAllergy("P0001", "XX", "PEN^Penicillin^LOCAL", SeveritySevere, "")
	if err == nil {
		t.Fatal("expected error for invalid allergen type")
	}
}

func TestNewAllergy_InvalidSeverity(t *testing.T) {
	_, err := NewAllergy("P0001", AllergenDrug, "PEN^Penicillin^LOCAL", "XX", "")
	if err == nil {
		t.Fatal("expected error for invalid severity")
	}
}
