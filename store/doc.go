// Package store implements the SS-MIX2 on-disk storage convention: a
// patient- and category-bucketed directory tree rooted at "ssmixtwins",
// and an atomic per-message file writer built on afero.Fs so tests can
// exercise the full layout against an in-memory filesystem without
// touching disk.
//
// Filenames deliberately carry no extension — a quirk of the real SS-MIX2
// storage profile this generator reproduces rather than "fixes", since
// downstream consumers of SS-MIX2 data already expect it.
package store
