package segments

import (
	"fmt"

	"github.com/dshills/ssmixgen/hl7"
)

// NTE represents the Notes and Comments segment.
// Carries free-text annotations following the segment it comments on
// (e.g. an allergy note following AL1, or an order note following ORC).
type NTE struct {
	// SetID is NTE-1: Set ID.
	SetID string `hl7:"NTE.1"`

	// SourceOfComment is NTE-2: source of comment (L=Ancillary, P=Orderer, O=Other).
	SourceOfComment string `hl7:"NTE.2"`

	// Comment is NTE-3: the free-text comment (can repeat; joined by callers
	// with the repetition delimiter before reaching this builder).
	Comment string `hl7:"NTE.3"`

	// CommentType is NTE-4: comment type code.
	CommentType string `hl7:"NTE.4"`
}

// ErrNotNTESegment indicates the segment is not an NTE segment.
var ErrNotNTESegment = fmt.Errorf("segment is not NTE")

// ParseNTE extracts field values from an hl7.Segment into an NTE struct.
func ParseNTE(seg hl7.Segment) (*NTE, error) {
	if seg == nil {
		return nil, ErrNilSegment
	}

	if seg.Name() != "NTE" {
		return nil, fmt.Errorf("%w: got %s", ErrNotNTESegment, seg.Name())
	}

	nte := &NTE{
		SetID:           getFieldValue(seg, 1),
		SourceOfComment: getFieldValue(seg, 2),
		Comment:         getFieldValue(seg, 3),
		CommentType:     getFieldValue(seg, 4),
	}

	return nte, nil
}

// ToSegment converts the NTE struct into an hl7.Segment.
func (n *NTE) ToSegment(delims *hl7.Delimiters) (hl7.Segment, error) {
	if delims == nil {
		delims = hl7.DefaultDelimiters()
	}

	fields := []string{
		n.SetID,
		n.SourceOfComment,
		n.Comment,
		n.CommentType,
	}

	data := buildSegmentData("NTE", fields, delims)

	seg, err := hl7.ParseSegment([]rune(data), delims)
	if err != nil {
		return nil, fmt.Errorf("failed to create NTE segment: %w", err)
	}

	return seg, nil
}
