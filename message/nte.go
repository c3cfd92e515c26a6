package message

import (
	"fmt"

	"github.com/dshills/ssmixgen/hl7"
	"github.com/dshills/ssmixgen/internal/escape"
	"github.com/dshills/ssmixgen/segments"
)

// NTE source-of-comment codes from HL7 Table 0105.
const (
	nteSourceAncillary = "L"
	nteSourceOrderer   = "P"
)

// noteToNTE builds an NTE segment from a free-text comment. Unlike the
// structured fields elsewhere in a generated message, comment is operator
// or clinician narrative, not a value the generator composed from known
// HL7-safe parts, so it is escaped before it reaches the wire: a reaction
// note like "発疹 & 掻痒感" would otherwise introduce a stray subcomponent
// delimiter into NTE.3.
func noteToNTE(source, comment string, setID int, delims *hl7.Delimiters) (hl7.Segment, error) {
	nte := &segments.NTE{
		SetID:           fmt.Sprintf("%d", setID),
		SourceOfComment: source,
		Comment:         escape.New(delims).Escape(comment),
	}
	return nte.ToSegment(delims)
}
