package tlv

import "errors"

// Sentinel errors for the TLV primitive layer (Matter 1.5 specification
// Appendix A). Callers should compare with errors.Is; the IB and message
// layers wrap these with field-specific context.
var (
	// ErrBufferUnderrun is returned when a read needs more bytes than
	// remain in the backing slice.
	ErrBufferUnderrun = errors.New("tlv: buffer underrun")

	// ErrBufferFull is returned when a write would exceed the writer's
	// capacity or its reserved tail.
	ErrBufferFull = errors.New("tlv: buffer full")

	// ErrInvalidElementType is returned when a control octet names an
	// element type this package does not know.
	ErrInvalidElementType = errors.New("tlv: invalid element type")

	// ErrInvalidTagControl is returned when a control octet names a tag
	// control this package does not know.
	ErrInvalidTagControl = errors.New("tlv: invalid tag control")

	// ErrTypeMismatch is returned when a typed accessor is called
	// against an element of a different element type.
	ErrTypeMismatch = errors.New("tlv: type mismatch")

	// ErrInvalidTag is returned for a tag that is structurally
	// inadmissible in its container (anonymous in a structure, tagged
	// in an array, context tag outside a structure/list), or for a
	// context tag that violates ascending-order/uniqueness rules.
	ErrInvalidTag = errors.New("tlv: invalid tag")

	// ErrNotInContainer is returned by ExitContainer-style calls made
	// outside of any entered container.
	ErrNotInContainer = errors.New("tlv: not in container")

	// ErrContainerNotClosed is returned when EndContainer is called on
	// a writer that never opened a matching container.
	ErrContainerNotClosed = errors.New("tlv: container not closed")

	// ErrInvalidUTF8 is returned when a UTF-8 string contains invalid
	// byte sequences.
	ErrInvalidUTF8 = errors.New("tlv: invalid UTF-8 string")

	// ErrNoElement is returned when trying to access an element before
	// calling Next().
	ErrNoElement = errors.New("tlv: no current element")

	// ErrValueAlreadyRead is returned when trying to read the same
	// value twice.
	ErrValueAlreadyRead = errors.New("tlv: value already read")

	// ErrOverflow is returned when a value overflows the target type.
	ErrOverflow = errors.New("tlv: value overflow")
)

// ErrEndOfTLV is the sentinel "no more elements" signal used throughout
// this package in place of io.EOF: a byte-slice cursor has no underlying
// stream to exhaust, only a position that has reached the end of the
// current container or the end of the buffer. It is informational, not a
// failure: code walking a container with Next() treats it exactly like
// reaching an end-of-container element, and code asking about an optional
// field should not surface it to its own caller.
var ErrEndOfTLV = errors.New("tlv: end of TLV data")
