package segments

import (
	"fmt"

	"github.com/dshills/ssmixgen/hl7"
)

// MSA represents the Message Acknowledgment segment carried by every ACK
// message, correlating it back to the original message's control ID.
type MSA struct {
	AcknowledgmentCode string `hl7:"MSA.1"`
	MessageControlID   string `hl7:"MSA.2"`
	TextMessage        string `hl7:"MSA.3"`
}

var ErrNotMSASegment = fmt.Errorf("segment is not MSA")

// ParseMSA extracts field values from an hl7.Segment into an MSA struct.
func ParseMSA(seg hl7.Segment) (*MSA, error) {
	if seg == nil {
		return nil, ErrNilSegment
	}
	if seg.Name() != "MSA" {
		return nil, fmt.Errorf("%w: got %s", ErrNotMSASegment, seg.Name())
	}

	return &MSA{
		AcknowledgmentCode: getFieldValue(seg, 1),
		MessageControlID:   getFieldValue(seg, 2),
		TextMessage:        getFieldValue(seg, 3),
	}, nil
}

// ToSegment renders the MSA back into an hl7.Segment.
func (m *MSA) ToSegment(delims *hl7.Delimiters) (hl7.Segment, error) {
	if delims == nil {
		delims = hl7.DefaultDelimiters()
	}
	fields := []string{
		m.AcknowledgmentCode,
		m.MessageControlID,
		m.TextMessage,
	}
	data := buildSegmentData("MSA", fields, delims)
	seg, err := hl7.ParseSegment([]rune(data), delims)
	if err != nil {
		return nil, fmt.Errorf("failed to create MSA segment: %w", err)
	}
	return seg, nil
}
