package message

import (
	"errors"

	"github.com/backkem/matter-im-codec/pkg/tlv"
)

// Encoding/decoding errors for the Interaction Model message layer.
// Builders fold tlv-layer errors into their sticky error field directly;
// these sentinels cover violations that only make sense at the IB/message
// level (a missing mandatory field, a semantically impossible but
// structurally valid path, two variants set on an exactly-one-of IB).
var (
	ErrInvalidType   = errors.New("im: invalid TLV type")
	ErrMissingField  = errors.New("im: missing required field")
	ErrUnexpectedEnd = errors.New("im: unexpected end of data")
	ErrInvalidTag    = tlv.ErrInvalidTag
	ErrMalformedPath = errors.New("im: malformed path")
	ErrInvalidStatus = errors.New("im: invalid status")

	// ErrInvalidAction marks a request that is structurally well-formed
	// TLV but semantically impossible: a wildcard cluster paired with a
	// non-wildcard, non-global attribute; a list-index on a path whose
	// attribute is itself wildcard; both variants set on an
	// exactly-one-of IB; a subscribe request whose interval floor
	// exceeds its ceiling.
	ErrInvalidAction = errors.New("im: invalid action")
)
