// Package encode provides HL7 v2.x message encoding functionality.
//
// The encode package converts structured [hl7.Message] objects back to their
// wire format representation. It supports configurable line endings and
// streaming to io.Writer, which is how the store package flushes a built
// message to its SS-MIX2 file path.
//
// # Basic Usage
//
// Encode a message to bytes:
//
//	enc := encode.New()
//	data, err := enc.Encode(msg)
//	if err != nil {
//	    log.Fatal("encode error:", err)
//	}
//	// data contains the HL7 message as bytes
//
// Encode directly to a writer:
//
//	ctx := context.Background()
//	err := enc.EncodeToWriter(ctx, f, msg)
//	if err != nil {
//	    log.Fatal("encode error:", err)
//	}
//
// # Encoder Options
//
// The encoder supports functional options for configuration:
//
//	// Use CRLF line endings (for Windows compatibility)
//	enc := encode.New(encode.WithLineEnding("\r\n"))
//
//	// Include trailing delimiters
//	enc := encode.New(encode.WithTrailingDelimiters(true))
//
// # Line Endings
//
// SS-MIX2 storage files use carriage return (CR, 0x0D) as the segment
// terminator, never LF. Other line endings are supported only for
// interoperability with non-SS-MIX2 consumers:
//
//	// Standard SS-MIX2 (default)
//	enc := encode.New(encode.WithLineEnding("\r"))
//
// # Streaming Encoding
//
// For large batches, use EncodeToWriter for efficient streaming with
// context cancellation support:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
//	defer cancel()
//
//	err := enc.EncodeToWriter(ctx, f, msg)
//	if err != nil {
//	    if errors.Is(err, context.DeadlineExceeded) {
//	        log.Println("encode timeout")
//	    } else {
//	        log.Println("encode error:", err)
//	    }
//	}
//
// # Error Handling
//
// Encoding errors are returned as *Error with detailed information:
//
//	data, err := enc.Encode(msg)
//	if err != nil {
//	    var encErr *encode.Error
//	    if errors.As(err, &encErr) {
//	        fmt.Printf("Encode failed: %s\n", encErr.Message)
//	        if encErr.Segment != "" {
//	            fmt.Printf("  at segment: %s\n", encErr.Segment)
//	        }
//	        if encErr.Cause != nil {
//	            fmt.Printf("  cause: %v\n", encErr.Cause)
//	        }
//	    }
//	}
package encode
