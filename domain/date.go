package domain

import "time"

// dateLayout is HL7's date-only precision (YYYYMMDD).
const dateLayout = "20060102"

// dateTimeLayout is HL7's full datetime precision (YYYYMMDDHHMMSS).
const dateTimeLayout = "20060102150405"

// parseDate parses an HL7 YYYYMMDD date string.
func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// parseDateTime parses an HL7 YYYYMMDDHHMMSS datetime string. Callers that
// also accept bare dates should fall back to parseDate on error.
func parseDateTime(s string) (time.Time, error) {
	return time.Parse(dateTimeLayout, s)
}

// parseClinicalTimestamp accepts either precision, trying the more precise
// layout first since most clinical events carry full timestamps.
func parseClinicalTimestamp(s string) (time.Time, error) {
	if t, err := parseDateTime(s); err == nil {
		return t, nil
	}
	return parseDate(s)
}
