package message

import (
	"github.com/backkem/matter-im-codec/pkg/tlv"
)

// StatusIB carries the outcome of an action against a single path:
// a general interaction-model status plus the cluster's own protocol id
// and code when it wants to be more specific than the general status
// allows. All three fields are mandatory.
// Container type: List of three anonymous-tagged elements, in order.
type StatusIB struct {
	GeneralStatus Status
	ProtocolID    uint32
	ProtocolCode  uint16
}

// Encode writes the StatusIB as an anonymous-tagged list.
func (s *StatusIB) Encode(w *tlv.Writer) error {
	return s.EncodeWithTag(w, tlv.Anonymous())
}

// EncodeWithTag writes the StatusIB under the given tag.
func (s *StatusIB) EncodeWithTag(w *tlv.Writer, tag tlv.Tag) error {
	var b ListBuilder
	if err := b.Init(w, tag); err != nil {
		return err
	}

	b.fail(w.PutUint(tlv.Anonymous(), uint64(s.GeneralStatus)))
	b.fail(w.PutUint(tlv.Anonymous(), uint64(s.ProtocolID)))
	b.fail(w.PutUint(tlv.Anonymous(), uint64(s.ProtocolCode)))

	return b.EndOfContainer()
}

// Decode reads a StatusIB from the TLV reader.
func (s *StatusIB) Decode(r *tlv.Reader) error {
	if err := r.Next(); err != nil {
		return err
	}
	return s.DecodeFrom(r)
}

// DecodeFrom reads a StatusIB assuming the reader is positioned at the
// container start. The three fields are read positionally, as they carry
// no context tag to dispatch on.
func (s *StatusIB) DecodeFrom(r *tlv.Reader) error {
	var lp ListParser
	if err := lp.Init(r); err != nil {
		return err
	}

	generalStatus, err := readAnonymousUint(r)
	if err != nil {
		return err
	}
	s.GeneralStatus = Status(generalStatus)

	protocolID, err := readAnonymousUint(r)
	if err != nil {
		return err
	}
	s.ProtocolID = uint32(protocolID)

	protocolCode, err := readAnonymousUint(r)
	if err != nil {
		return err
	}
	s.ProtocolCode = uint16(protocolCode)

	return lp.Exit()
}

// readAnonymousUint advances to the next element and reads it as an
// unsigned integer, rejecting anything but an anonymous tag.
func readAnonymousUint(r *tlv.Reader) (uint64, error) {
	if err := r.Next(); err != nil {
		return 0, err
	}
	if !r.Tag().IsAnonymous() {
		return 0, ErrInvalidTag
	}
	return r.Uint()
}
