package generate

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/dshills/ssmixgen/domain"
	"github.com/dshills/ssmixgen/hl7"
	"github.com/dshills/ssmixgen/internal/rowsource"
	"github.com/dshills/ssmixgen/message"
	"github.com/dshills/ssmixgen/store"
	"github.com/dshills/ssmixgen/synth"
	"github.com/dshills/ssmixgen/validate"
)

// Config carries one generation run's parameters, matching spec.md §6's
// entry-point contract (source_dir/output_dir/max_workers/already_validated)
// plus the seed and facility identity the ambient config layer supplies.
type Config struct {
	SourceDir        string
	OutputDir        string
	MaxWorkers       int
	AlreadyValidated bool
	Seed             int64
	FacilityCode     string
	FacilityName     string

	// Fs overrides the filesystem the writer uses; nil means the real OS
	// filesystem. Tests inject an afero.MemMapFs here.
	Fs afero.Fs
}

// Run executes one full generation pass: validate (unless skipped),
// build every domain entity and its message work items, then fan the
// work out across per-patient workers and write the result tree.
func Run(ctx context.Context, cfg Config) error {
	src := rowsource.NewCSVRowSource(cfg.SourceDir)

	if !cfg.AlreadyValidated {
		report, err := validate.Sweep(src)
		if err != nil {
			return fmt.Errorf("generate: pre-flight sweep: %w", err)
		}
		if !report.Valid() {
			if err := validate.WriteReport(report, cfg.OutputDir); err != nil {
				return fmt.Errorf("generate: writing validation report: %w", err)
			}
			return ErrValidationFailed
		}
	}

	patients, work, err := buildWork(src)
	if err != nil {
		return err
	}

	fs := cfg.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	writer := store.NewMessageWriter(fs, cfg.OutputDir)

	maxWorkers := cfg.MaxWorkers
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	patientIDs := make([]string, 0, len(patients))
	for id := range patients {
		patientIDs = append(patientIDs, id)
	}
	sort.Strings(patientIDs)

	slices := partition(patientIDs, maxWorkers)

	g, gctx := errgroup.WithContext(ctx)
	for workerIndex, slice := range slices {
		workerIndex, slice := workerIndex, slice
		if len(slice) == 0 {
			continue
		}
		g.Go(func() error {
			return runWorker(gctx, cfg.Seed, workerIndex, slice, patients, work, cfg.FacilityCode, writer)
		})
	}
	return g.Wait()
}

// partition splits ids into n contiguous slices, interleaved round-robin so
// a small patient count still spreads across every worker rather than
// piling onto the first one.
func partition(ids []string, n int) [][]string {
	slices := make([][]string, n)
	for i, id := range ids {
		w := i % n
		slices[w] = append(slices[w], id)
	}
	return slices
}

func runWorker(ctx context.Context, seed int64, workerIndex int, patientIDs []string, patients map[string]*domain.Patient, work map[string][]*workItem, facilityCode string, writer *store.MessageWriter) error {
	gen := synth.NewGenerator(seed, workerIndex)
	msgCtx := message.DefaultContext(facilityCode)

	for _, pid := range patientIDs {
		if err := ctx.Err(); err != nil {
			return err
		}
		p := patients[pid]
		if p == nil {
			continue
		}
		p.Name = gen.NameForSex(pid, p.Sex)
		p.Address = gen.AddressFor(pid)
		p.PhoneNumber = gen.PhoneFor(pid)

		for _, item := range work[pid] {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := processItem(gen, msgCtx, p, item, facilityCode, writer); err != nil {
				return fmt.Errorf("generate: patient %s: %w", pid, err)
			}
		}
	}
	return nil
}

func processItem(gen *synth.Generator, msgCtx message.Context, p *domain.Patient, item *workItem, facilityCode string, writer *store.MessageWriter) error {
	controlID := gen.ControlIDFor(item.controlKey())

	msg, err := buildMessage(gen, msgCtx, p, item, controlID)
	if err != nil {
		return err
	}
	if err := msg.ValidateHeader(); err != nil {
		return fmt.Errorf("generate: patient %s: %w", item.patientID, err)
	}
	if result := validate.NewWithRuleSet(validate.ProfileFor(msg)).Validate(msg); !result.Valid() {
		return fmt.Errorf("generate: patient %s: message %s failed profile validation: %v", item.patientID, msg.Type(), result.Errors())
	}
	if _, err := writer.Write(item.patientID, facilityCode, msg.Type(), item.timestamp, msg); err != nil {
		return err
	}

	ack, err := message.Acknowledge(msgCtx, controlID, message.AckApplicationAccept, item.timestamp)
	if err != nil {
		return err
	}
	if _, err := writer.Write(item.patientID, facilityCode, ack.Type(), item.timestamp, ack); err != nil {
		return err
	}
	return nil
}

func buildMessage(gen *synth.Generator, msgCtx message.Context, p *domain.Patient, item *workItem, controlID string) (hl7.Message, error) {
	switch item.kind {
	case kindAdmit:
		if len(item.insurances) > 0 || len(item.allergies) > 0 {
			insuranceNotes := make([]string, len(item.insurances))
			for i := range item.insurances {
				insuranceNotes[i] = gen.InsuranceNoteFor(fmt.Sprintf("%s-ins-%d", item.patientID, i))
			}
			allergyNotes := make([]string, len(item.allergies))
			for i := range item.allergies {
				allergyNotes[i] = gen.AllergyNoteFor(fmt.Sprintf("%s-al-%d", item.patientID, i))
			}
			return message.AdmitNotifyDetailed(msgCtx, p, item.admission, item.insurances, insuranceNotes, item.allergies, allergyNotes, controlID, item.timestamp)
		}
		return message.AdmitNotify(msgCtx, p, item.admission, controlID, item.timestamp)
	case kindDischarge:
		return message.DischargeNotify(msgCtx, p, item.admission, controlID, item.timestamp)
	case kindPatientUpdate:
		return message.UpdatePatientInfo(msgCtx, p, item.admission, controlID, item.timestamp)
	case kindPrescription:
		return message.PrescriptionOrder(msgCtx, p, item.order, controlID, item.timestamp)
	case kindInjection:
		return message.InjectionOrder(msgCtx, p, item.order, controlID, item.timestamp)
	case kindLabOrder:
		return message.LabOrder(msgCtx, p, item.labTest, item.specimen, controlID, item.timestamp)
	case kindLabResult:
		return message.LabResult(msgCtx, p, item.labTest, item.specimen, controlID, item.timestamp)
	default:
		return nil, fmt.Errorf("generate: unknown work item kind %d", item.kind)
	}
}
