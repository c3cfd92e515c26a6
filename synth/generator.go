package synth

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/ssmixgen/domain"
)

// Generator synthesizes the non-clinical attributes of domain entities for
// one worker of a generation run. It never reads or writes the process
// global math/rand source: every value derives from a *rand.Rand seeded
// from (seed, workerIndex), mirroring the per-seed Generator shape used by
// this corpus's record generator for FHIR and HL7 payloads.
//
// Per-entity determinism does not depend on call order: NameFor, AddressFor
// and PhoneFor each derive a private *rand.Rand from a hash of
// (seed, workerIndex, entityID), so calling NameFor("P001") twice, or
// calling it before or after NameFor("P002"), always yields the same
// result for "P001".
type Generator struct {
	seed       int64
	workerIndex int

	mu           sync.Mutex
	orderCounter map[string]int // keyed by facilityCode|YYYYMMDD
}

// NewGenerator creates a Generator scoped to one worker of a run.
// workerIndex must be stable and unique across the run's worker pool so
// that two workers never derive the same per-entity sub-seed space.
func NewGenerator(seed int64, workerIndex int) *Generator {
	return &Generator{
		seed:         seed,
		workerIndex:  workerIndex,
		orderCounter: make(map[string]int),
	}
}

func (g *Generator) entropyFor(entityID string) *rand.Rand {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d:%d:%s", g.seed, g.workerIndex, entityID)
	return rand.New(rand.NewSource(int64(h.Sum64())))
}

// NameFor synthesizes a deterministic Name for the given patient ID. Every
// family name carries the 仮/カリ realism marker so a reader can never
// mistake a generated record for a real patient's.
func (g *Generator) NameFor(entityID string) domain.Name {
	r := g.entropyFor(entityID)
	surname := surnameTable[r.Intn(len(surnameTable))]
	given := givenNameTable[r.Intn(len(givenNameTable))]
	return domain.Name{
		FamilyName:     "仮" + surname.kanji,
		GivenName:      given.kanji,
		FamilyNameKana: "カリ" + surname.kana,
		GivenNameKana:  given.kana,
	}
}

// NameForSex synthesizes a Name whose given name matches the supplied HL7
// sex code where the table has a matching entry.
func (g *Generator) NameForSex(entityID, sex string) domain.Name {
	r := g.entropyFor(entityID)
	surname := surnameTable[r.Intn(len(surnameTable))]
	candidates := givenNamesFor(sex)
	given := candidates[r.Intn(len(candidates))]
	return domain.Name{
		FamilyName:     "仮" + surname.kanji,
		GivenName:      given.kanji,
		FamilyNameKana: "カリ" + surname.kana,
		GivenNameKana:  given.kana,
	}
}

// AddressFor synthesizes a deterministic Address for the given patient ID.
// Chome is always pinned to "99丁目", a value no real Japanese address
// uses, so a generated address can never collide with a real one.
func (g *Generator) AddressFor(entityID string) domain.Address {
	r := g.entropyFor(entityID)
	a := addressTable[r.Intn(len(addressTable))]
	return domain.Address{
		PostalCode: a.postalCode,
		Prefecture: a.prefecture,
		City:       a.city,
		Town:       a.town,
		Chome:      "99丁目",
		Building:   "仮" + fmt.Sprintf("サンプル第%d", r.Intn(9)+1),
	}
}

// PhoneFor synthesizes a deterministic phone number for the given patient
// ID. Every number carries the 099 exchange prefix reserved for fictional
// telephone numbers so it can never resolve to a real line.
func (g *Generator) PhoneFor(entityID string) string {
	r := g.entropyFor(entityID)
	return fmt.Sprintf("099-%04d-%04d", r.Intn(10000), r.Intn(10000))
}

// StaffIDFor synthesizes a deterministic staff/provider identifier.
func (g *Generator) StaffIDFor(entityID string) string {
	r := g.entropyFor(entityID)
	return fmt.Sprintf("STAFF%05d", r.Intn(100000))
}

// InsuranceNoteFor synthesizes a deterministic free-text note describing a
// synthesized insurance record.
func (g *Generator) InsuranceNoteFor(entityID string) string {
	notes := []string{
		"被保険者本人",
		"被扶養者",
		"高齢受給者",
		"生成データ",
	}
	r := g.entropyFor(entityID)
	return notes[r.Intn(len(notes))]
}

// AllergyNoteFor synthesizes a deterministic free-text reaction note.
func (g *Generator) AllergyNoteFor(entityID string) string {
	notes := []string{
		"発疹",
		"掻痒感",
		"嘔気",
		"呼吸苦",
		"アナフィラキシー既往あり",
	}
	r := g.entropyFor(entityID)
	return notes[r.Intn(len(notes))]
}

// ControlIDFor synthesizes a deterministic MSH-10 message control ID for
// the given entity key, formatted as a v4-shaped UUID via
// uuid.NewRandomFromReader fed from this Generator's seeded entropy rather
// than uuid's crypto-random default. It never reads process-wide
// randomness, so two runs with the same seed produce byte-identical
// control IDs for the same work item regardless of worker count or
// scheduling order.
func (g *Generator) ControlIDFor(entityID string) string {
	r := g.entropyFor(entityID)
	id, err := uuid.NewRandomFromReader(r)
	if err != nil {
		// r is an in-memory math/rand.Rand; Read never fails.
		panic(fmt.Sprintf("synth: deterministic control ID generation: %v", err))
	}
	return id.String()
}

// NextOrderNumber returns the next monotonic order number for a given
// facility and date (YYYYMMDD), starting at 1. Numbering is scoped to this
// Generator's worker; callers that shard patients across workers by ID
// already guarantee a single worker owns a given facility/date/patient
// combination within a run.
func (g *Generator) NextOrderNumber(facilityCode, yyyymmdd string) int {
	key := facilityCode + "|" + yyyymmdd
	g.mu.Lock()
	defer g.mu.Unlock()
	g.orderCounter[key]++
	return g.orderCounter[key]
}
