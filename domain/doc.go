// Package domain models the clinical entities a generation run assembles
// from input rows: Patient, Hospital, Admission, Order (prescription or
// injection), LabTest, Specimen, Insurance, and Allergy.
//
// Every entity follows the teacher library's self-validating-on-
// construction style (see segments.ParsePID and friends): a NewX function
// either returns a fully valid value or a *ValidationError naming the
// entity, attribute, offending value, and violated rule. There is no
// partially-constructed entity a caller can observe.
//
// Optional attributes uniformly accept the empty string; constructors
// must never reject "" for an optional field. Required attributes reject
// the empty string, out-of-table enumerations, and unparseable dates.
package domain
