package store

import (
	"fmt"
	"path"
	"strings"
	"time"
)

// Root is the well-known top-level directory SS-MIX2 trees are rooted at.
const Root = "ssmixtwins"

// bucketFor shards patients into fixed-width two-character buckets keyed
// on the last two characters of the patient ID, the same sharding
// convention real SS-MIX2 archives use to keep any one directory from
// holding every patient in a facility.
func bucketFor(patientID string) string {
	if len(patientID) < 2 {
		return "00"
	}
	return patientID[len(patientID)-2:]
}

// Category names the data-category directory a message type's files live
// under.
type Category string

const (
	CategoryADT Category = "ADT"
	CategoryOMP Category = "OMP"
	CategoryOML Category = "OML"
	CategoryORU Category = "ORU"
	CategoryACK Category = "ACK"
)

// CategoryForMessageType derives the storage category from an HL7
// MSH-9 message type string (e.g. "ADT^A01").
func CategoryForMessageType(messageType string) Category {
	root := strings.SplitN(messageType, "^", 2)[0]
	switch root {
	case "ADT":
		return CategoryADT
	case "OMP":
		return CategoryOMP
	case "OML":
		return CategoryOML
	case "ORU":
		return CategoryORU
	case "ACK":
		return CategoryACK
	default:
		return Category(root)
	}
}

// DirFor returns the directory a message for the given patient, category,
// and date belongs in, relative to the output root: ssmixtwins is NOT
// included since callers combine this with their output_dir.
func DirFor(patientID string, category Category, eventTime time.Time) string {
	return path.Join(Root, bucketFor(patientID), patientID, string(category), eventTime.Format("20060102"))
}

// FileName composes the SS-MIX2 filename for one message: event
// timestamp, message type (trigger event collapsed to letters/digits),
// facility code, a monotonic per-directory sequence number, and the
// category suffix. Deliberately carries no dot-extension — SS-MIX2's
// real convention, preserved here rather than "fixed".
func FileName(eventTime time.Time, messageType, facilityCode string, seq int) string {
	flatType := strings.NewReplacer("^", "_", "~", "_").Replace(messageType)
	category := CategoryForMessageType(messageType)
	return fmt.Sprintf("%s_%s_%s_%05d_%s", eventTime.Format("20060102150405"), flatType, facilityCode, seq, category)
}

// PathFor returns the full path, relative to output_dir, for one message.
func PathFor(patientID, facilityCode, messageType string, eventTime time.Time, seq int) string {
	category := CategoryForMessageType(messageType)
	dir := DirFor(patientID, category, eventTime)
	return path.Join(dir, FileName(eventTime, messageType, facilityCode, seq))
}
