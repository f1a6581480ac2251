package message

import (
	"github.com/backkem/matter-im-codec/pkg/tlv"
)

// CommandDataIB contains command invocation data.
// Container type: Structure
type CommandDataIB struct {
	Path   CommandPathIB // Tag 0
	Fields []byte        // Tag 1, raw TLV of the command's argument structure
	Ref    *uint16       // Tag 2, optional, disambiguates batched commands
}

// Context tags for CommandDataIB.
const (
	cmdDataTagPath   = 0
	cmdDataTagFields = 1
	cmdDataTagRef    = 2
)

// Encode writes the CommandDataIB to the TLV writer.
func (c *CommandDataIB) Encode(w *tlv.Writer) error {
	return c.EncodeWithTag(w, tlv.Anonymous())
}

// EncodeWithTag writes the CommandDataIB with a specific tag.
func (c *CommandDataIB) EncodeWithTag(w *tlv.Writer, tag tlv.Tag) error {
	var b StructBuilder
	if err := b.Init(w, tag); err != nil {
		return err
	}

	b.fail(c.Path.EncodeWithTag(w, tlv.ContextTag(cmdDataTagPath)))
	if len(c.Fields) > 0 {
		b.fail(w.PutRaw(tlv.ContextTag(cmdDataTagFields), c.Fields))
	}
	if c.Ref != nil {
		b.fail(w.PutUint(tlv.ContextTag(cmdDataTagRef), uint64(*c.Ref)))
	}

	return b.EndOfContainer()
}

// Decode reads a CommandDataIB from the TLV reader.
func (c *CommandDataIB) Decode(r *tlv.Reader) error {
	if err := r.Next(); err != nil {
		return err
	}
	return c.DecodeFrom(r)
}

// DecodeFrom reads a CommandDataIB assuming the reader is positioned
// at the container start.
func (c *CommandDataIB) DecodeFrom(r *tlv.Reader) error {
	var sp StructParser
	if err := sp.Init(r); err != nil {
		return err
	}

	var hasPath bool

	err := sp.ForEachContextField(func(tagNum uint8, r *tlv.Reader) error {
		switch tagNum {
		case cmdDataTagPath:
			if err := c.Path.DecodeFrom(r); err != nil {
				return err
			}
			hasPath = true

		case cmdDataTagFields:
			data, err := r.RawBytes()
			if err != nil {
				return err
			}
			c.Fields = data

		case cmdDataTagRef:
			v, err := r.Uint()
			if err != nil {
				return err
			}
			ref := uint16(v)
			c.Ref = &ref
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := sp.Exit(); err != nil {
		return err
	}

	if !hasPath {
		return ErrMissingField
	}

	return nil
}

// SetFields encodes command fields with encode and stores the result as
// the raw TLV Fields payload.
func (c *CommandDataIB) SetFields(encode func(w *tlv.Writer) error) error {
	w := tlv.NewWriter(nil, 0)
	if err := encode(w); err != nil {
		return err
	}
	c.Fields = w.Bytes()
	return nil
}
