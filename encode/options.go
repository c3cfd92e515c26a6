// Package encode provides HL7 v2.x message encoding functionality.
// It converts HL7 message structures to the wire format SS-MIX2 stores
// to disk, with configurable options for line endings and delimiters.
package encode

// Default encoder settings.
const (
	// DefaultLineEnding is the standard HL7 segment terminator (carriage return).
	// SS-MIX2 files never use "\n"; this is the only terminator store writes.
	DefaultLineEnding = "\r"
)

// encoderConfig holds the configuration options for encoding HL7 messages.
type encoderConfig struct {
	lineEnding         string // segment terminator, default "\r"
	trailingDelimiters bool   // include trailing empty delimiters
}

// defaultConfig returns an encoderConfig with default settings.
func defaultConfig() encoderConfig {
	return encoderConfig{
		lineEnding:         DefaultLineEnding,
		trailingDelimiters: false,
	}
}

// EncoderOption is a functional option for configuring an encoder.
type EncoderOption func(*encoderConfig)

// WithLineEnding sets the segment terminator string.
// The default is "\r" (carriage return) per HL7 specification.
// Some systems may require "\r\n" (CRLF) for compatibility.
func WithLineEnding(ending string) EncoderOption {
	return func(c *encoderConfig) {
		c.lineEnding = ending
	}
}

// WithTrailingDelimiters controls whether trailing empty delimiters are included.
// When false (default), trailing empty fields, components, and subcomponents
// are omitted from the encoded output.
// When true, delimiters are preserved even for empty trailing elements.
func WithTrailingDelimiters(include bool) EncoderOption {
	return func(c *encoderConfig) {
		c.trailingDelimiters = include
	}
}
