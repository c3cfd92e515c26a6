// Package message assembles complete SS-MIX2 messages out of segments.
// Each builder takes already-synthesized domain entities and produces an
// hl7.Message ready for encode.Encoder, following the same shape as this
// corpus's ack package: build field values, hand them to a segments.X
// struct, call ToSegment, and assemble the result with hl7.NewMessage.
//
// Builders never validate clinical content — that happened already, when
// the domain entity was constructed. A builder's only job is mapping a
// validated entity onto the wire segments SS-MIX2 expects, in the
// sequence each trigger event's message structure defines.
package message

import (
	"fmt"
	"time"

	"github.com/dshills/ssmixgen/hl7"
	"github.com/dshills/ssmixgen/segments"
)

// Context carries the header fields every message in a run shares:
// sending application/facility and the HL7 version to stamp into MSH.
type Context struct {
	SendingApplication string
	SendingFacility    string
	ReceivingApplication string
	ReceivingFacility  string
	VersionID          string
}

// DefaultContext returns the Context a run uses unless overridden.
func DefaultContext(facilityCode string) Context {
	return Context{
		SendingApplication:   "SSMIXGEN",
		SendingFacility:      facilityCode,
		ReceivingApplication: "SS-MIX2",
		ReceivingFacility:    facilityCode,
		VersionID:            "2.5",
	}
}

func buildMSH(ctx Context, messageType, controlID string, eventTime time.Time, delims *hl7.Delimiters) (hl7.Segment, error) {
	msh := &segments.MSH{
		FieldSeparator:     "|",
		EncodingCharacters: `^~\&`,
		SendingApplication: ctx.SendingApplication,
		SendingFacility:    ctx.SendingFacility,
		ReceivingApplication: ctx.ReceivingApplication,
		ReceivingFacility:  ctx.ReceivingFacility,
		DateTime:           eventTime.Format("20060102150405"),
		MessageType:        messageType,
		MessageControlID:   controlID,
		ProcessingID:       "P",
		VersionID:          ctx.VersionID,
	}
	seg, err := msh.ToSegment(delims)
	if err != nil {
		return nil, fmt.Errorf("building MSH: %w", err)
	}
	return seg, nil
}

func assemble(segs ...hl7.Segment) hl7.Message {
	return hl7.NewMessage(segs, hl7.DefaultDelimiters())
}
