package nbt

import "fmt"

// FormatError reports a malformed NBT byte stream: a read past the end of
// the buffer, a root tag that is not a compound, or an unrecognized
// tag-type discriminant inside a payload.
//
// Offset is the cursor position at which the problem was detected.
// Callers should branch with errors.As rather than matching the message.
type FormatError struct {
	Offset    int
	Message   string
	Tag       uint8 // offending discriminant, when applicable
	Truncated bool
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("nbt: %s at offset %d", e.Message, e.Offset)
}

func errTruncated(offset, need, have int) error {
	return &FormatError{
		Offset:    offset,
		Message:   fmt.Sprintf("truncated stream: need %d bytes, have %d", need, have),
		Truncated: true,
	}
}

func errBadTag(offset int, id uint8) error {
	return &FormatError{
		Offset:  offset,
		Message: fmt.Sprintf("unrecognized tag type 0x%02x", id),
		Tag:     id,
	}
}

func errBadRoot(offset int, id uint8) error {
	return &FormatError{
		Offset:  offset,
		Message: fmt.Sprintf("root tag must be %s, got 0x%02x", TagCompound, id),
		Tag:     id,
	}
}

// DecompressionError reports a byte stream that is not a recognized or
// well-formed compressed schematic payload.
type DecompressionError struct {
	Message string
	Cause   error
}

func (e *DecompressionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("nbt: %s: %v", e.Message, e.Cause)
	}
	return "nbt: " + e.Message
}

func (e *DecompressionError) Unwrap() error {
	return e.Cause
}
