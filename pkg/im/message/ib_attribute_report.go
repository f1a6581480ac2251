package message

import (
	"github.com/backkem/matter-im-codec/pkg/tlv"
)

// AttributeReportIB carries exactly one of an attribute's data or its
// failure status. The parser accepts either variant; the builder
// enforces the exclusion so an encoded report never carries both.
// Container type: Structure
type AttributeReportIB struct {
	AttributeStatus *AttributeStatusIB // Tag 0
	AttributeData   *AttributeDataIB   // Tag 1
}

// Context tags for AttributeReportIB.
const (
	attrReportTagAttributeStatus = 0
	attrReportTagAttributeData   = 1
)

// SetStatus sets the status variant, failing if the data variant is
// already set.
func (a *AttributeReportIB) SetStatus(status *AttributeStatusIB) error {
	if a.AttributeData != nil {
		return ErrInvalidAction
	}
	a.AttributeStatus = status
	return nil
}

// SetData sets the data variant, failing if the status variant is
// already set.
func (a *AttributeReportIB) SetData(data *AttributeDataIB) error {
	if a.AttributeStatus != nil {
		return ErrInvalidAction
	}
	a.AttributeData = data
	return nil
}

// Encode writes the AttributeReportIB to the TLV writer.
func (a *AttributeReportIB) Encode(w *tlv.Writer) error {
	return a.EncodeWithTag(w, tlv.Anonymous())
}

// EncodeWithTag writes the AttributeReportIB with a specific tag. Returns
// ErrInvalidAction if both or neither variant is set.
func (a *AttributeReportIB) EncodeWithTag(w *tlv.Writer, tag tlv.Tag) error {
	if (a.AttributeStatus == nil) == (a.AttributeData == nil) {
		return ErrInvalidAction
	}

	var b StructBuilder
	if err := b.Init(w, tag); err != nil {
		return err
	}

	if a.AttributeStatus != nil {
		b.fail(a.AttributeStatus.EncodeWithTag(w, tlv.ContextTag(attrReportTagAttributeStatus)))
	}
	if a.AttributeData != nil {
		b.fail(a.AttributeData.EncodeWithTag(w, tlv.ContextTag(attrReportTagAttributeData)))
	}

	return b.EndOfContainer()
}

// Decode reads an AttributeReportIB from the TLV reader.
func (a *AttributeReportIB) Decode(r *tlv.Reader) error {
	if err := r.Next(); err != nil {
		return err
	}
	return a.DecodeFrom(r)
}

// DecodeFrom reads an AttributeReportIB assuming the reader is positioned
// at the container start.
func (a *AttributeReportIB) DecodeFrom(r *tlv.Reader) error {
	var sp StructParser
	if err := sp.Init(r); err != nil {
		return err
	}

	err := sp.ForEachContextField(func(tagNum uint8, r *tlv.Reader) error {
		switch tagNum {
		case attrReportTagAttributeStatus:
			a.AttributeStatus = &AttributeStatusIB{}
			return a.AttributeStatus.DecodeFrom(r)

		case attrReportTagAttributeData:
			a.AttributeData = &AttributeDataIB{}
			return a.AttributeData.DecodeFrom(r)
		}
		return nil
	})
	if err != nil {
		return err
	}

	return sp.Exit()
}

// IsStatus returns true if this report contains a status (error).
func (a *AttributeReportIB) IsStatus() bool {
	return a.AttributeStatus != nil
}

// IsData returns true if this report contains attribute data.
func (a *AttributeReportIB) IsData() bool {
	return a.AttributeData != nil
}
