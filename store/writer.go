package store

import (
	"fmt"
	"path"
	"sync"
	"time"

	"github.com/spf13/afero"

	"github.com/dshills/ssmixgen/encode"
	"github.com/dshills/ssmixgen/hl7"
)

// MessageWriter writes one HL7 message per SS-MIX2 file, atomically, under
// an afero.Fs rooted at outputDir. Using afero rather than the bare os
// package lets a test exercise the whole tree-construction logic against
// an in-memory filesystem.
//
// A single MessageWriter is shared across every generation worker: disjoint
// patient slices mean workers never contend for the same directory's
// sequence counter in practice, but the counter map itself is still one
// shared object, so access to it is mutex-guarded rather than relying on
// that disjointness to also rule out concurrent map access.
type MessageWriter struct {
	fs        afero.Fs
	outputDir string
	encoder   encode.Encoder
	mu        sync.Mutex
	seq       map[string]int // keyed by directory, for FileName's sequence number
}

// NewMessageWriter creates a MessageWriter rooted at outputDir on fs.
func NewMessageWriter(fs afero.Fs, outputDir string) *MessageWriter {
	return &MessageWriter{
		fs:        fs,
		outputDir: outputDir,
		encoder:   encode.New(),
		seq:       make(map[string]int),
	}
}

// Write encodes msg and writes it to its SS-MIX2 path, creating parent
// directories as needed. Writes are atomic: the message is written to a
// temporary file in the same directory, then renamed into place, so a
// crash mid-write never leaves a torn file at the final path.
func (w *MessageWriter) Write(patientID, facilityCode, messageType string, eventTime time.Time, msg hl7.Message) (string, error) {
	dir := path.Join(w.outputDir, DirFor(patientID, CategoryForMessageType(messageType), eventTime))
	if err := w.fs.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("store: creating directory %s: %w", dir, err)
	}

	w.mu.Lock()
	w.seq[dir]++
	seq := w.seq[dir]
	w.mu.Unlock()
	name := FileName(eventTime, messageType, facilityCode, seq)
	finalPath := path.Join(dir, name)
	tmpPath := finalPath + ".tmp"

	data, err := w.encoder.Encode(msg)
	if err != nil {
		return "", fmt.Errorf("store: encoding message for %s: %w", finalPath, err)
	}

	if err := afero.WriteFile(w.fs, tmpPath, data, 0o644); err != nil {
		return "", fmt.Errorf("store: writing %s: %w", tmpPath, err)
	}
	if err := w.fs.Rename(tmpPath, finalPath); err != nil {
		return "", fmt.Errorf("store: renaming %s to %s: %w", tmpPath, finalPath, err)
	}

	return finalPath, nil
}
