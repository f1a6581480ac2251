package message

import (
	"github.com/backkem/matter-im-codec/pkg/tlv"
)

// DataVersionFilterIB filters attributes by cluster path and data version.
// Container type: Structure
type DataVersionFilterIB struct {
	Path        ClusterPathIB // Tag 0
	DataVersion DataVersion   // Tag 1
}

// Context tags for DataVersionFilterIB.
const (
	dataVersionFilterTagPath        = 0
	dataVersionFilterTagDataVersion = 1
)

// Encode writes the DataVersionFilterIB to the TLV writer.
func (f *DataVersionFilterIB) Encode(w *tlv.Writer) error {
	return f.EncodeWithTag(w, tlv.Anonymous())
}

// EncodeWithTag writes the DataVersionFilterIB with a specific tag.
func (f *DataVersionFilterIB) EncodeWithTag(w *tlv.Writer, tag tlv.Tag) error {
	var b StructBuilder
	if err := b.Init(w, tag); err != nil {
		return err
	}

	b.fail(f.Path.EncodeWithTag(w, tlv.ContextTag(dataVersionFilterTagPath)))
	b.fail(w.PutUint(tlv.ContextTag(dataVersionFilterTagDataVersion), uint64(f.DataVersion)))

	return b.EndOfContainer()
}

// Decode reads a DataVersionFilterIB from the TLV reader.
func (f *DataVersionFilterIB) Decode(r *tlv.Reader) error {
	if err := r.Next(); err != nil {
		return err
	}
	return f.DecodeFrom(r)
}

// DecodeFrom reads a DataVersionFilterIB assuming the reader is positioned
// at the container start.
func (f *DataVersionFilterIB) DecodeFrom(r *tlv.Reader) error {
	var sp StructParser
	if err := sp.Init(r); err != nil {
		return err
	}

	var hasPath, hasDataVersion bool

	err := sp.ForEachContextField(func(tagNum uint8, r *tlv.Reader) error {
		switch tagNum {
		case dataVersionFilterTagPath:
			if err := f.Path.DecodeFrom(r); err != nil {
				return err
			}
			hasPath = true

		case dataVersionFilterTagDataVersion:
			v, err := r.Uint()
			if err != nil {
				return err
			}
			f.DataVersion = DataVersion(v)
			hasDataVersion = true
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := sp.Exit(); err != nil {
		return err
	}

	if !hasPath || !hasDataVersion {
		return ErrMissingField
	}

	return nil
}
