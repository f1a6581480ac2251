package message

import (
	"github.com/backkem/matter-im-codec/pkg/tlv"
)

// CommandPathIB identifies a command.
// Container type: List
type CommandPathIB struct {
	Endpoint EndpointID // Tag 0
	Cluster  ClusterID  // Tag 1
	Command  CommandID  // Tag 2
}

// Context tags for CommandPathIB.
const (
	cmdPathTagEndpoint = 0
	cmdPathTagCluster  = 1
	cmdPathTagCommand  = 2
)

// Encode writes the CommandPathIB to the TLV writer.
func (p *CommandPathIB) Encode(w *tlv.Writer) error {
	return p.EncodeWithTag(w, tlv.Anonymous())
}

// EncodeWithTag writes the CommandPathIB with a specific tag.
func (p *CommandPathIB) EncodeWithTag(w *tlv.Writer, tag tlv.Tag) error {
	var b ListBuilder
	if err := b.Init(w, tag); err != nil {
		return err
	}

	b.fail(w.PutUint(tlv.ContextTag(cmdPathTagEndpoint), uint64(p.Endpoint)))
	b.fail(w.PutUint(tlv.ContextTag(cmdPathTagCluster), uint64(p.Cluster)))
	b.fail(w.PutUint(tlv.ContextTag(cmdPathTagCommand), uint64(p.Command)))

	return b.EndOfContainer()
}

// Decode reads a CommandPathIB from the TLV reader.
func (p *CommandPathIB) Decode(r *tlv.Reader) error {
	if err := r.Next(); err != nil {
		return err
	}
	return p.DecodeFrom(r)
}

// DecodeFrom reads a CommandPathIB assuming the reader is positioned
// at the container start.
func (p *CommandPathIB) DecodeFrom(r *tlv.Reader) error {
	var lp ListParser
	if err := lp.Init(r); err != nil {
		return err
	}

	var hasEndpoint, hasCluster, hasCommand bool

	err := lp.ForEachContextField(func(tagNum uint8, r *tlv.Reader) error {
		switch tagNum {
		case cmdPathTagEndpoint:
			v, err := r.Uint()
			if err != nil {
				return err
			}
			p.Endpoint = EndpointID(v)
			hasEndpoint = true

		case cmdPathTagCluster:
			v, err := r.Uint()
			if err != nil {
				return err
			}
			p.Cluster = ClusterID(v)
			hasCluster = true

		case cmdPathTagCommand:
			v, err := r.Uint()
			if err != nil {
				return err
			}
			p.Command = CommandID(v)
			hasCommand = true
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := lp.Exit(); err != nil {
		return err
	}

	if !hasEndpoint || !hasCluster || !hasCommand {
		return ErrMissingField
	}

	return nil
}
