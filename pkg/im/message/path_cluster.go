package message

import (
	"github.com/backkem/matter-im-codec/pkg/tlv"
)

// ClusterPathIB identifies a cluster.
// Container type: List
type ClusterPathIB struct {
	Node     *NodeID     // Tag 0
	Endpoint *EndpointID // Tag 1
	Cluster  *ClusterID  // Tag 2
}

// Context tags for ClusterPathIB.
const (
	clusterPathTagNode     = 0
	clusterPathTagEndpoint = 1
	clusterPathTagCluster  = 2
)

// Encode writes the ClusterPathIB to the TLV writer.
func (p *ClusterPathIB) Encode(w *tlv.Writer) error {
	return p.EncodeWithTag(w, tlv.Anonymous())
}

// EncodeWithTag writes the ClusterPathIB with a specific tag.
func (p *ClusterPathIB) EncodeWithTag(w *tlv.Writer, tag tlv.Tag) error {
	var b ListBuilder
	if err := b.Init(w, tag); err != nil {
		return err
	}

	if p.Node != nil {
		b.fail(w.PutUint(tlv.ContextTag(clusterPathTagNode), uint64(*p.Node)))
	}
	if p.Endpoint != nil {
		b.fail(w.PutUint(tlv.ContextTag(clusterPathTagEndpoint), uint64(*p.Endpoint)))
	}
	if p.Cluster != nil {
		b.fail(w.PutUint(tlv.ContextTag(clusterPathTagCluster), uint64(*p.Cluster)))
	}

	return b.EndOfContainer()
}

// Decode reads a ClusterPathIB from the TLV reader.
func (p *ClusterPathIB) Decode(r *tlv.Reader) error {
	if err := r.Next(); err != nil {
		return err
	}
	return p.DecodeFrom(r)
}

// DecodeFrom reads a ClusterPathIB assuming the reader is positioned
// at the container start.
func (p *ClusterPathIB) DecodeFrom(r *tlv.Reader) error {
	var lp ListParser
	if err := lp.Init(r); err != nil {
		return err
	}

	err := lp.ForEachContextField(func(tagNum uint8, r *tlv.Reader) error {
		switch tagNum {
		case clusterPathTagNode:
			v, err := r.Uint()
			if err != nil {
				return err
			}
			nodeID := NodeID(v)
			p.Node = &nodeID

		case clusterPathTagEndpoint:
			v, err := r.Uint()
			if err != nil {
				return err
			}
			endpointID := EndpointID(v)
			p.Endpoint = &endpointID

		case clusterPathTagCluster:
			v, err := r.Uint()
			if err != nil {
				return err
			}
			clusterID := ClusterID(v)
			p.Cluster = &clusterID
		}
		return nil
	})
	if err != nil {
		return err
	}

	return lp.Exit()
}
