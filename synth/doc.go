// Package synth fills in the synthesized, non-clinical attributes of a
// domain entity: names, addresses, phone numbers, and the free-text notes
// attached to insurance and allergy records. It never invents clinical
// facts (sex, dates, codes) — those come from the row source and are
// validated by the domain package.
//
// Every synthesized value must be deterministic: the same (seed,
// workerIndex, entityID) triple always produces the same output, so a
// generation run can be replayed byte-for-byte. Generator therefore never
// touches the process-global math/rand functions; each Generator owns a
// private *rand.Rand seeded once at construction, following the same
// per-worker-generator shape the reference record generator in this
// corpus uses for its FHIR and HL7 record producers.
//
// Every synthesized name and address carries an unmistakable realism
// marker — "仮" prefixed to family names and a pinned 99 chōme — so no
// generated record can be confused with a real patient's, a requirement
// SS-MIX2 test-data conventions call out explicitly.
package synth
