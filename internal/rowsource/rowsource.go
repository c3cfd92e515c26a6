// Package rowsource implements the "reader collaborator" spec.md's
// external interfaces section describes: a directory of tabular files,
// one per entity class, read into typed row structs. The generation
// driver consumes these rows to construct domain entities; rowsource
// itself performs no validation beyond the minimum needed to parse a row
// into its fields.
package rowsource

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dshills/ssmixgen/hl7"
)

// LiteralNullMarker is the CSV convention for an RXE-3-style field whose
// value must be encoded, at the wire level, as the two-character literal
// `""` rather than left empty. A plain empty cell means "absent".
const LiteralNullMarker = `""`

// FieldValueFrom converts a raw row cell into the three-state FieldValue
// the domain and segment layers use, applying the LiteralNullMarker
// convention: an empty cell is absent, the marker is a literal null, and
// anything else is a present value.
func FieldValueFrom(s string) hl7.FieldValue {
	switch s {
	case "":
		return hl7.Absent()
	case LiteralNullMarker:
		return hl7.LiteralNull()
	default:
		return hl7.Value(s)
	}
}

type PatientRow struct {
	ID        string
	Sex       string
	BirthDate string
	Dead      string
	DeathDate string
}

type AdmissionRow struct {
	PatientID         string
	VisitNumber       string
	PatientClass      string
	AssignedLocation  string
	AdmitDateTime     string
	DischargeDateTime string
}

type OrderRow struct {
	PatientID         string
	OrderNumber       string
	Kind              string
	OrderDateTime     string
	GiveCode          string
	GiveAmountMinimum string // "" = absent, `""` = literal null, else a value
	GiveAmountMaximum string
	GiveUnits         string
	GiveDosageForm    string
	Route             string
}

type LabTestRow struct {
	Key          string // joins to ObservationRow.LabTestKey
	PatientID    string
	SpecimenID   string
	TestCode     string
	TestName     string
	ObservedAt   string
	ResultStatus string
}

type ObservationRow struct {
	LabTestKey     string
	ObservationID  string
	ValueType      string
	Value          string
	Units          string
	ReferenceRange string
	AbnormalFlag   string
	ResultStatus   string
}

type SpecimenRow struct {
	ID           string
	PatientID    string
	SpecimenType string
	CollectedAt  string
	ReceivedAt   string
}

type InsuranceRow struct {
	PatientID     string
	PlanID        string
	CompanyName   string
	GroupNumber   string
	NameOfInsured string
	Relation      string
}

type AllergyRow struct {
	PatientID    string
	AllergenType string
	Allergen     string
	Severity     string
	Reaction     string
}

// RowSource is the minimal interface the generation driver and
// validation sweep depend on; any tabular format can back it as long as
// it can be mapped onto these row structs.
type RowSource interface {
	Patients() ([]PatientRow, error)
	Admissions() ([]AdmissionRow, error)
	Orders() ([]OrderRow, error)
	LabTests() ([]LabTestRow, error)
	Observations() ([]ObservationRow, error)
	Specimens() ([]SpecimenRow, error)
	Insurances() ([]InsuranceRow, error)
	Allergies() ([]AllergyRow, error)
}

// CSVRowSource reads one CSV file per entity class from a directory. Each
// file's first row is a header, discarded on read. A missing file is
// treated as zero rows rather than an error, so a source directory only
// needs the entity classes a given run actually uses.
type CSVRowSource struct {
	dir string
}

// NewCSVRowSource creates a RowSource backed by CSV files under dir.
func NewCSVRowSource(dir string) *CSVRowSource {
	return &CSVRowSource{dir: dir}
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("rowsource: opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("rowsource: reading %s: %w", path, err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}
	return rows[1:], nil // drop header
}

func (s *CSVRowSource) path(name string) string {
	return filepath.Join(s.dir, name)
}

func col(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

func (s *CSVRowSource) Patients() ([]PatientRow, error) {
	rows, err := readCSV(s.path("patients.csv"))
	if err != nil {
		return nil, err
	}
	out := make([]PatientRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, PatientRow{
			ID: col(r, 0), Sex: col(r, 1), BirthDate: col(r, 2), Dead: col(r, 3), DeathDate: col(r, 4),
		})
	}
	return out, nil
}

func (s *CSVRowSource) Admissions() ([]AdmissionRow, error) {
	rows, err := readCSV(s.path("admissions.csv"))
	if err != nil {
		return nil, err
	}
	out := make([]AdmissionRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, AdmissionRow{
			PatientID: col(r, 0), VisitNumber: col(r, 1), PatientClass: col(r, 2),
			AssignedLocation: col(r, 3), AdmitDateTime: col(r, 4), DischargeDateTime: col(r, 5),
		})
	}
	return out, nil
}

func (s *CSVRowSource) Orders() ([]OrderRow, error) {
	rows, err := readCSV(s.path("orders.csv"))
	if err != nil {
		return nil, err
	}
	out := make([]OrderRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, OrderRow{
			PatientID: col(r, 0), OrderNumber: col(r, 1), Kind: col(r, 2), OrderDateTime: col(r, 3),
			GiveCode: col(r, 4), GiveAmountMinimum: col(r, 5), GiveAmountMaximum: col(r, 6),
			GiveUnits: col(r, 7), GiveDosageForm: col(r, 8), Route: col(r, 9),
		})
	}
	return out, nil
}

func (s *CSVRowSource) LabTests() ([]LabTestRow, error) {
	rows, err := readCSV(s.path("labtests.csv"))
	if err != nil {
		return nil, err
	}
	out := make([]LabTestRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, LabTestRow{
			Key: col(r, 0), PatientID: col(r, 1), SpecimenID: col(r, 2), TestCode: col(r, 3),
			TestName: col(r, 4), ObservedAt: col(r, 5), ResultStatus: col(r, 6),
		})
	}
	return out, nil
}

func (s *CSVRowSource) Observations() ([]ObservationRow, error) {
	rows, err := readCSV(s.path("observations.csv"))
	if err != nil {
		return nil, err
	}
	out := make([]ObservationRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, ObservationRow{
			LabTestKey: col(r, 0), ObservationID: col(r, 1), ValueType: col(r, 2), Value: col(r, 3),
			Units: col(r, 4), ReferenceRange: col(r, 5), AbnormalFlag: col(r, 6), ResultStatus: col(r, 7),
		})
	}
	return out, nil
}

func (s *CSVRowSource) Specimens() ([]SpecimenRow, error) {
	rows, err := readCSV(s.path("specimens.csv"))
	if err != nil {
		return nil, err
	}
	out := make([]SpecimenRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, SpecimenRow{
			ID: col(r, 0), PatientID: col(r, 1), SpecimenType: col(r, 2), CollectedAt: col(r, 3), ReceivedAt: col(r, 4),
		})
	}
	return out, nil
}

func (s *CSVRowSource) Insurances() ([]InsuranceRow, error) {
	rows, err := readCSV(s.path("insurance.csv"))
	if err != nil {
		return nil, err
	}
	out := make([]InsuranceRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, InsuranceRow{
			PatientID: col(r, 0), PlanID: col(r, 1), CompanyName: col(r, 2),
			GroupNumber: col(r, 3), NameOfInsured: col(r, 4), Relation: col(r, 5),
		})
	}
	return out, nil
}

func (s *CSVRowSource) Allergies() ([]AllergyRow, error) {
	rows, err := readCSV(s.path("allergies.csv"))
	if err != nil {
		return nil, err
	}
	out := make([]AllergyRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, AllergyRow{
			PatientID: col(r, 0), AllergenType: col(r, 1), Allergen: col(r, 2),
			Severity: col(r, 3), Reaction: col(r, 4),
		})
	}
	return out, nil
}
