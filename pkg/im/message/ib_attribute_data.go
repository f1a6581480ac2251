package message

import (
	"github.com/backkem/matter-im-codec/pkg/tlv"
)

// AttributeDataIB contains attribute data.
// Container type: Structure
type AttributeDataIB struct {
	DataVersion DataVersion     // Tag 0
	Path        AttributePathIB // Tag 1
	Data        []byte          // Tag 2, raw TLV of the attribute's value
}

// Context tags for AttributeDataIB.
const (
	attrDataTagDataVersion = 0
	attrDataTagPath        = 1
	attrDataTagData        = 2
)

// Encode writes the AttributeDataIB to the TLV writer.
func (a *AttributeDataIB) Encode(w *tlv.Writer) error {
	return a.EncodeWithTag(w, tlv.Anonymous())
}

// EncodeWithTag writes the AttributeDataIB with a specific tag.
func (a *AttributeDataIB) EncodeWithTag(w *tlv.Writer, tag tlv.Tag) error {
	var b StructBuilder
	if err := b.Init(w, tag); err != nil {
		return err
	}

	b.fail(w.PutUint(tlv.ContextTag(attrDataTagDataVersion), uint64(a.DataVersion)))
	b.fail(a.Path.EncodeWithTag(w, tlv.ContextTag(attrDataTagPath)))
	if len(a.Data) > 0 {
		b.fail(w.PutRaw(tlv.ContextTag(attrDataTagData), a.Data))
	}

	return b.EndOfContainer()
}

// Decode reads an AttributeDataIB from the TLV reader.
func (a *AttributeDataIB) Decode(r *tlv.Reader) error {
	if err := r.Next(); err != nil {
		return err
	}
	return a.DecodeFrom(r)
}

// DecodeFrom reads an AttributeDataIB assuming the reader is positioned
// at the container start.
func (a *AttributeDataIB) DecodeFrom(r *tlv.Reader) error {
	var sp StructParser
	if err := sp.Init(r); err != nil {
		return err
	}

	var hasDataVersion, hasPath bool

	err := sp.ForEachContextField(func(tagNum uint8, r *tlv.Reader) error {
		switch tagNum {
		case attrDataTagDataVersion:
			v, err := r.Uint()
			if err != nil {
				return err
			}
			a.DataVersion = DataVersion(v)
			hasDataVersion = true

		case attrDataTagPath:
			if err := a.Path.DecodeFrom(r); err != nil {
				return err
			}
			hasPath = true

		case attrDataTagData:
			data, err := r.RawBytes()
			if err != nil {
				return err
			}
			a.Data = data
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := sp.Exit(); err != nil {
		return err
	}

	if !hasDataVersion || !hasPath {
		return ErrMissingField
	}

	return nil
}

// SetDataValue encodes a value with encode and stores the result as the
// raw TLV Data field.
func (a *AttributeDataIB) SetDataValue(encode func(w *tlv.Writer) error) error {
	w := tlv.NewWriter(nil, 0)
	if err := encode(w); err != nil {
		return err
	}
	a.Data = w.Bytes()
	return nil
}
