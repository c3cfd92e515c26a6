package message

import (
	"time"

	"github.com/dshills/ssmixgen/hl7"
	"github.com/dshills/ssmixgen/segments"
)

// Acknowledgment codes from HL7 Table 0008.
const (
	AckApplicationAccept = "AA"
	AckApplicationError  = "AE"
	AckApplicationReject = "AR"
)

// Acknowledge builds the companion ACK message a generation run writes
// alongside every message it produces, carrying the original message's
// control ID in MSA-2 as HL7 requires.
func Acknowledge(ctx Context, originalControlID, ackCode string, eventTime time.Time) (hl7.Message, error) {
	delims := hl7.DefaultDelimiters()

	msh, err := buildMSH(ctx, "ACK", originalControlID+"-ACK", eventTime, delims)
	if err != nil {
		return nil, err
	}

	msa := &segments.MSA{
		AcknowledgmentCode: ackCode,
		MessageControlID:   originalControlID,
	}
	msaSeg, err := msa.ToSegment(delims)
	if err != nil {
		return nil, err
	}

	return assemble(msh, msaSeg), nil
}
