package validate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dshills/ssmixgen/domain"
	"github.com/dshills/ssmixgen/internal/rowsource"
)

// SweepError is one entry in the pre-flight validation report: a single
// row that failed entity construction, naming where it came from and
// what rule it broke. Distinct from ValidationError, which reports
// message-profile violations against an already-built hl7.Message; this
// type reports input-row violations against the domain layer, the
// deliberate segment-vs-message layering split this corpus's validate
// package documents for its own rule set.
type SweepError struct {
	Table string `json:"table"`
	Row   int    `json:"row"`
	Field string `json:"field"`
	Value string `json:"value"`
	Rule  string `json:"rule"`
}

// SweepReport is the structured, all-errors validation report spec.md's
// validation driver writes to output_dir/validation_errors.json.
type SweepReport struct {
	Errors []SweepError `json:"errors"`
}

// Valid reports whether the sweep found no errors, in which case
// generation may proceed.
func (r *SweepReport) Valid() bool {
	return len(r.Errors) == 0
}

func fromValidationError(table string, row int, field string, err error) SweepError {
	if ve, ok := err.(*domain.ValidationError); ok {
		return SweepError{Table: table, Row: row, Field: ve.Attribute, Value: ve.Value, Rule: ve.Rule}
	}
	return SweepError{Table: table, Row: row, Field: field, Rule: err.Error()}
}

// Sweep constructs every entity eagerly from src, collecting every
// construction error rather than stopping at the first one. It never
// returns early: the returned SweepReport is total over the input, per
// spec.md's validator-totality law.
func Sweep(src rowsource.RowSource) (*SweepReport, error) {
	report := &SweepReport{}

	patients, err := src.Patients()
	if err != nil {
		return nil, fmt.Errorf("validate: reading patients: %w", err)
	}
	for i, row := range patients {
		if _, err := domain.NewPatient(row.ID, row.Sex, row.BirthDate, row.Dead == "true", row.DeathDate); err != nil {
			report.Errors = append(report.Errors, fromValidationError("patients", i, "", err))
		}
	}

	admissions, err := src.Admissions()
	if err != nil {
		return nil, fmt.Errorf("validate: reading admissions: %w", err)
	}
	for i, row := range admissions {
		if _, err := domain.NewAdmission(row.PatientID, row.VisitNumber, row.PatientClass, row.AssignedLocation, row.AdmitDateTime, row.DischargeDateTime); err != nil {
			report.Errors = append(report.Errors, fromValidationError("admissions", i, "", err))
		}
	}

	orders, err := src.Orders()
	if err != nil {
		return nil, fmt.Errorf("validate: reading orders: %w", err)
	}
	for i, row := range orders {
		minimum := rowsource.FieldValueFrom(row.GiveAmountMinimum)
		if _, err := domain.NewOrder(row.PatientID, row.OrderNumber, row.Kind, row.OrderDateTime, row.GiveCode,
			minimum, row.GiveAmountMaximum, row.GiveUnits, row.GiveDosageForm, row.Route); err != nil {
			report.Errors = append(report.Errors, fromValidationError("orders", i, "", err))
		}
	}

	observationsByKey := map[string][]rowsource.ObservationRow{}
	observationRows, err := src.Observations()
	if err != nil {
		return nil, fmt.Errorf("validate: reading observations: %w", err)
	}
	for _, row := range observationRows {
		observationsByKey[row.LabTestKey] = append(observationsByKey[row.LabTestKey], row)
	}

	labTests, err := src.LabTests()
	if err != nil {
		return nil, fmt.Errorf("validate: reading labtests: %w", err)
	}
	for i, row := range labTests {
		lt, err := domain.NewLabTest(row.PatientID, row.SpecimenID, row.TestCode, row.TestName, row.ObservedAt, row.ResultStatus)
		if err != nil {
			report.Errors = append(report.Errors, fromValidationError("labtests", i, "", err))
			continue
		}
		for j, obs := range observationsByKey[row.Key] {
			if err := lt.AddObservation(domain.Observation{
				SetID:          fmt.Sprintf("%d", j+1),
				ValueType:      obs.ValueType,
				ObservationID:  obs.ObservationID,
				Value:          obs.Value,
				Units:          obs.Units,
				ReferenceRange: obs.ReferenceRange,
				AbnormalFlag:   obs.AbnormalFlag,
				ResultStatus:   obs.ResultStatus,
			}); err != nil {
				report.Errors = append(report.Errors, fromValidationError("observations", j, "", err))
			}
		}
	}

	specimens, err := src.Specimens()
	if err != nil {
		return nil, fmt.Errorf("validate: reading specimens: %w", err)
	}
	for i, row := range specimens {
		if _, err := domain.NewSpecimen(row.ID, row.PatientID, row.SpecimenType, row.CollectedAt, row.ReceivedAt); err != nil {
			report.Errors = append(report.Errors, fromValidationError("specimens", i, "", err))
		}
	}

	insurances, err := src.Insurances()
	if err != nil {
		return nil, fmt.Errorf("validate: reading insurance: %w", err)
	}
	for i, row := range insurances {
		if _, err := domain.NewInsurance(row.PatientID, row.PlanID, row.CompanyName, row.GroupNumber, row.NameOfInsured, row.Relation); err != nil {
			report.Errors = append(report.Errors, fromValidationError("insurance", i, "", err))
		}
	}

	allergies, err := src.Allergies()
	if err != nil {
		return nil, fmt.Errorf("validate: reading allergies: %w", err)
	}
	for i, row := range allergies {
		if _, err := domain.NewAllergy(row.PatientID, row.AllergenType, row.Allergen, row.Severity, row.Reaction); err != nil {
			report.Errors = append(report.Errors, fromValidationError("allergies", i, "", err))
		}
	}

	return report, nil
}

// WriteReport serializes report to outputDir/validation_errors.json.
func WriteReport(report *SweepReport, outputDir string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("validate: marshaling report: %w", err)
	}
	path := filepath.Join(outputDir, "validation_errors.json")
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("validate: creating %s: %w", outputDir, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("validate: writing %s: %w", path, err)
	}
	return nil
}
