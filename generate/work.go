package generate

import (
	"fmt"
	"sort"
	"time"

	"github.com/dshills/ssmixgen/domain"
	"github.com/dshills/ssmixgen/internal/rowsource"
)

type kind int

const (
	kindAdmit kind = iota
	kindDischarge
	kindPatientUpdate
	kindPrescription
	kindInjection
	kindLabOrder
	kindLabResult
)

// precedence breaks timestamp ties in the deterministic order clinical
// logic requires: a patient master event before any order, an order
// before its result, a lab order before the result it precedes. ACK
// messages are generated as the direct companion of the message they
// acknowledge, so they never need a precedence of their own here.
func (k kind) precedence() int {
	switch k {
	case kindAdmit, kindDischarge:
		return 0
	case kindPatientUpdate:
		return 1
	case kindPrescription, kindInjection:
		return 2
	case kindLabOrder:
		return 3
	case kindLabResult:
		return 4
	default:
		return 99
	}
}

// workItem is one message this run will produce for one patient, carrying
// the already-validated domain entities a message builder needs.
type workItem struct {
	patientID  string
	timestamp  time.Time
	kind       kind
	admission  *domain.Admission
	order      *domain.Order
	labTest    *domain.LabTest
	specimen   *domain.Specimen
	insurances []*domain.Insurance
	allergies  []*domain.Allergy
}

// controlKey returns the entity key a Generator derives this item's
// message control ID from. It must uniquely identify the item within a
// patient so two work items never collide on the same control ID: the
// driving domain entity's own business key, qualified by kind since an
// admission and its discharge share one Admission but need distinct IDs.
func (w *workItem) controlKey() string {
	switch w.kind {
	case kindAdmit, kindDischarge, kindPatientUpdate:
		return fmt.Sprintf("%s|%d|%s", w.patientID, w.kind, w.admission.VisitNumber)
	case kindPrescription, kindInjection:
		return fmt.Sprintf("%s|%d|%s", w.patientID, w.kind, w.order.OrderNumber)
	case kindLabOrder, kindLabResult:
		return fmt.Sprintf("%s|%d|%s|%s", w.patientID, w.kind, w.labTest.SpecimenID, w.labTest.TestCode)
	default:
		return fmt.Sprintf("%s|%d|%d", w.patientID, w.kind, w.timestamp.UnixNano())
	}
}

// buildWork constructs every domain entity from src and groups the
// resulting work items by patient, each slice sorted into clinical order.
// Entities are assumed already validated (the caller runs validate.Sweep,
// or the caller's already-validated flag stands in for it) — buildWork
// still propagates any construction error since trusting unseen input
// blindly would silently drop patients instead of failing the run.
func buildWork(src rowsource.RowSource) (map[string]*domain.Patient, map[string][]*workItem, error) {
	patients := map[string]*domain.Patient{}
	work := map[string][]*workItem{}

	patientRows, err := src.Patients()
	if err != nil {
		return nil, nil, fmt.Errorf("generate: reading patients: %w", err)
	}
	for _, row := range patientRows {
		p, err := domain.NewPatient(row.ID, row.Sex, row.BirthDate, row.Dead == "true", row.DeathDate)
		if err != nil {
			return nil, nil, fmt.Errorf("generate: patient row %q: %w", row.ID, err)
		}
		patients[p.ID] = p
	}

	insurancesByPatient := map[string][]*domain.Insurance{}
	insuranceRows, err := src.Insurances()
	if err != nil {
		return nil, nil, fmt.Errorf("generate: reading insurance: %w", err)
	}
	for _, row := range insuranceRows {
		ins, err := domain.NewInsurance(row.PatientID, row.PlanID, row.CompanyName, row.GroupNumber, row.NameOfInsured, row.Relation)
		if err != nil {
			return nil, nil, fmt.Errorf("generate: insurance row for %q: %w", row.PatientID, err)
		}
		insurancesByPatient[row.PatientID] = append(insurancesByPatient[row.PatientID], ins)
	}

	allergiesByPatient := map[string][]*domain.Allergy{}
	allergyRows, err := src.Allergies()
	if err != nil {
		return nil, nil, fmt.Errorf("generate: reading allergies: %w", err)
	}
	for _, row := range allergyRows {
		al, err := domain.NewAllergy(row.PatientID, row.AllergenType, row.Allergen, row.Severity, row.Reaction)
		if err != nil {
			return nil, nil, fmt.Errorf("generate: allergy row for %q: %w", row.PatientID, err)
		}
		allergiesByPatient[row.PatientID] = append(allergiesByPatient[row.PatientID], al)
	}

	admissionRows, err := src.Admissions()
	if err != nil {
		return nil, nil, fmt.Errorf("generate: reading admissions: %w", err)
	}
	lastAdmission := map[string]*domain.Admission{}
	for _, row := range admissionRows {
		a, err := domain.NewAdmission(row.PatientID, row.VisitNumber, row.PatientClass, row.AssignedLocation, row.AdmitDateTime, row.DischargeDateTime)
		if err != nil {
			return nil, nil, fmt.Errorf("generate: admission row for %q: %w", row.PatientID, err)
		}
		work[a.PatientID] = append(work[a.PatientID], &workItem{
			patientID:  a.PatientID,
			timestamp:  a.AdmitDateTime,
			kind:       kindAdmit,
			admission:  a,
			insurances: insurancesByPatient[a.PatientID],
			allergies:  allergiesByPatient[a.PatientID],
		})
		if !a.DischargeDateTime.IsZero() {
			work[a.PatientID] = append(work[a.PatientID], &workItem{
				patientID: a.PatientID,
				timestamp: a.DischargeDateTime,
				kind:      kindDischarge,
				admission: a,
			})
		}
		if prior, ok := lastAdmission[a.PatientID]; !ok || a.AdmitDateTime.After(prior.AdmitDateTime) {
			lastAdmission[a.PatientID] = a
		}
	}

	// A patient recorded as deceased triggers a patient master update
	// against their most recent visit: demographics changed (death
	// indicator and date) but no new visit event occurred, the textbook
	// case for an ADT^A08 rather than a fresh admit/discharge pair.
	for _, p := range patients {
		if !p.Dead {
			continue
		}
		a, ok := lastAdmission[p.ID]
		if !ok {
			continue
		}
		work[p.ID] = append(work[p.ID], &workItem{
			patientID: p.ID,
			timestamp: p.DeathDate,
			kind:      kindPatientUpdate,
			admission: a,
		})
	}

	orderRows, err := src.Orders()
	if err != nil {
		return nil, nil, fmt.Errorf("generate: reading orders: %w", err)
	}
	for _, row := range orderRows {
		minimum := rowsource.FieldValueFrom(row.GiveAmountMinimum)
		o, err := domain.NewOrder(row.PatientID, row.OrderNumber, row.Kind, row.OrderDateTime, row.GiveCode,
			minimum, row.GiveAmountMaximum, row.GiveUnits, row.GiveDosageForm, row.Route)
		if err != nil {
			return nil, nil, fmt.Errorf("generate: order row %q: %w", row.OrderNumber, err)
		}
		k := kindPrescription
		if o.Kind == domain.OrderKindInjection {
			k = kindInjection
		}
		work[o.PatientID] = append(work[o.PatientID], &workItem{
			patientID: o.PatientID,
			timestamp: o.OrderDateTime,
			kind:      k,
			order:     o,
		})
	}

	specimensByID := map[string]*domain.Specimen{}
	specimenRows, err := src.Specimens()
	if err != nil {
		return nil, nil, fmt.Errorf("generate: reading specimens: %w", err)
	}
	for _, row := range specimenRows {
		s, err := domain.NewSpecimen(row.ID, row.PatientID, row.SpecimenType, row.CollectedAt, row.ReceivedAt)
		if err != nil {
			return nil, nil, fmt.Errorf("generate: specimen row %q: %w", row.ID, err)
		}
		specimensByID[s.ID] = s
	}

	observationsByKey := map[string][]rowsource.ObservationRow{}
	observationRows, err := src.Observations()
	if err != nil {
		return nil, nil, fmt.Errorf("generate: reading observations: %w", err)
	}
	for _, row := range observationRows {
		observationsByKey[row.LabTestKey] = append(observationsByKey[row.LabTestKey], row)
	}

	labTestRows, err := src.LabTests()
	if err != nil {
		return nil, nil, fmt.Errorf("generate: reading labtests: %w", err)
	}
	for _, row := range labTestRows {
		lt, err := domain.NewLabTest(row.PatientID, row.SpecimenID, row.TestCode, row.TestName, row.ObservedAt, row.ResultStatus)
		if err != nil {
			return nil, nil, fmt.Errorf("generate: labtest row %q: %w", row.Key, err)
		}
		for i, obs := range observationsByKey[row.Key] {
			err := lt.AddObservation(domain.Observation{
				SetID:          fmt.Sprintf("%d", i+1),
				ValueType:      obs.ValueType,
				ObservationID:  obs.ObservationID,
				Value:          obs.Value,
				Units:          obs.Units,
				ReferenceRange: obs.ReferenceRange,
				AbnormalFlag:   obs.AbnormalFlag,
				ResultStatus:   obs.ResultStatus,
			})
			if err != nil {
				return nil, nil, fmt.Errorf("generate: observation for labtest %q: %w", row.Key, err)
			}
		}

		specimen := specimensByID[lt.SpecimenID]

		// Every lab test was first placed as an order; the order timestamp
		// is the specimen's collection time when one was recorded, since
		// collection cannot precede the order that requested it, and the
		// observed result time otherwise.
		orderedAt := lt.ObservedAt
		if specimen != nil && !specimen.CollectedAt.IsZero() {
			orderedAt = specimen.CollectedAt
		}
		work[lt.PatientID] = append(work[lt.PatientID], &workItem{
			patientID: lt.PatientID,
			timestamp: orderedAt,
			kind:      kindLabOrder,
			labTest:   lt,
			specimen:  specimen,
		})

		work[lt.PatientID] = append(work[lt.PatientID], &workItem{
			patientID: lt.PatientID,
			timestamp: lt.ObservedAt,
			kind:      kindLabResult,
			labTest:   lt,
			specimen:  specimen,
		})
	}

	for _, items := range work {
		sortWorkItems(items)
	}

	return patients, work, nil
}

func sortWorkItems(items []*workItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].timestamp.Equal(items[j].timestamp) {
			return items[i].timestamp.Before(items[j].timestamp)
		}
		return items[i].kind.precedence() < items[j].kind.precedence()
	})
}
