package message

import (
	"github.com/backkem/matter-im-codec/pkg/tlv"
)

// CommandStatusIB contains status information for a command invocation.
// Container type: Structure
type CommandStatusIB struct {
	Path   CommandPathIB // Tag 0
	Status StatusIB      // Tag 1
	Ref    *uint16       // Tag 2, optional, disambiguates batched commands
}

// Context tags for CommandStatusIB.
const (
	cmdStatusTagPath   = 0
	cmdStatusTagStatus = 1
	cmdStatusTagRef    = 2
)

// Encode writes the CommandStatusIB to the TLV writer.
func (c *CommandStatusIB) Encode(w *tlv.Writer) error {
	return c.EncodeWithTag(w, tlv.Anonymous())
}

// EncodeWithTag writes the CommandStatusIB with a specific tag.
func (c *CommandStatusIB) EncodeWithTag(w *tlv.Writer, tag tlv.Tag) error {
	var b StructBuilder
	if err := b.Init(w, tag); err != nil {
		return err
	}

	b.fail(c.Path.EncodeWithTag(w, tlv.ContextTag(cmdStatusTagPath)))
	b.fail(c.Status.EncodeWithTag(w, tlv.ContextTag(cmdStatusTagStatus)))
	if c.Ref != nil {
		b.fail(w.PutUint(tlv.ContextTag(cmdStatusTagRef), uint64(*c.Ref)))
	}

	return b.EndOfContainer()
}

// Decode reads a CommandStatusIB from the TLV reader.
func (c *CommandStatusIB) Decode(r *tlv.Reader) error {
	if err := r.Next(); err != nil {
		return err
	}
	return c.DecodeFrom(r)
}

// DecodeFrom reads a CommandStatusIB assuming the reader is positioned
// at the container start.
func (c *CommandStatusIB) DecodeFrom(r *tlv.Reader) error {
	var sp StructParser
	if err := sp.Init(r); err != nil {
		return err
	}

	var hasPath, hasStatus bool

	err := sp.ForEachContextField(func(tagNum uint8, r *tlv.Reader) error {
		switch tagNum {
		case cmdStatusTagPath:
			if err := c.Path.DecodeFrom(r); err != nil {
				return err
			}
			hasPath = true

		case cmdStatusTagStatus:
			if err := c.Status.DecodeFrom(r); err != nil {
				return err
			}
			hasStatus = true

		case cmdStatusTagRef:
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

	if !hasPath || !hasStatus {
		return ErrMissingField
	}

	return nil
}
