package message

import (
	"github.com/backkem/matter-im-codec/pkg/tlv"
)

// AttributePathIB identifies an attribute or set of attributes.
// Container type: List
type AttributePathIB struct {
	EnableTagCompression *bool        // Tag 0
	Node                 *NodeID      // Tag 1
	Endpoint             *EndpointID  // Tag 2
	Cluster              *ClusterID   // Tag 3
	Attribute            *AttributeID // Tag 4
	ListIndex            *ListIndex   // Tag 5, nil means absent
	// ListIndexNull records that tag 5 was present as the Null element
	// (meaning "append"), as opposed to absent entirely. The wire format
	// distinguishes these two states even though both leave ListIndex nil.
	ListIndexNull bool
}

// Context tags for AttributePathIB.
const (
	attrPathTagEnableTagCompression = 0
	attrPathTagNode                 = 1
	attrPathTagEndpoint             = 2
	attrPathTagCluster              = 3
	attrPathTagAttribute            = 4
	attrPathTagListIndex            = 5
)

// globalAttributeMin is the lowest attribute id reserved for global
// attributes (ClusterRevision, FeatureMap, AttributeList, and friends).
const globalAttributeMin = AttributeID(0x0000F000)

func isGlobalAttribute(id AttributeID) bool { return id >= globalAttributeMin }

// Encode writes the AttributePathIB as an anonymous-tagged list.
func (p *AttributePathIB) Encode(w *tlv.Writer) error {
	return p.EncodeWithTag(w, tlv.Anonymous())
}

// EncodeWithTag writes the AttributePathIB under the given tag.
func (p *AttributePathIB) EncodeWithTag(w *tlv.Writer, tag tlv.Tag) error {
	var b ListBuilder
	if err := b.Init(w, tag); err != nil {
		return err
	}

	if p.EnableTagCompression != nil {
		b.fail(w.PutBool(tlv.ContextTag(attrPathTagEnableTagCompression), *p.EnableTagCompression))
	}
	if p.Node != nil {
		b.fail(w.PutUint(tlv.ContextTag(attrPathTagNode), uint64(*p.Node)))
	}
	if p.Endpoint != nil {
		b.fail(w.PutUint(tlv.ContextTag(attrPathTagEndpoint), uint64(*p.Endpoint)))
	}
	if p.Cluster != nil {
		b.fail(w.PutUint(tlv.ContextTag(attrPathTagCluster), uint64(*p.Cluster)))
	}
	if p.Attribute != nil {
		b.fail(w.PutUint(tlv.ContextTag(attrPathTagAttribute), uint64(*p.Attribute)))
	}
	switch {
	case p.ListIndex != nil:
		b.fail(w.PutUint(tlv.ContextTag(attrPathTagListIndex), uint64(*p.ListIndex)))
	case p.ListIndexNull:
		b.fail(w.PutNull(tlv.ContextTag(attrPathTagListIndex)))
	}

	return b.EndOfContainer()
}

// Decode reads an AttributePathIB, consuming its own container element.
func (p *AttributePathIB) Decode(r *tlv.Reader) error {
	if err := r.Next(); err != nil {
		return err
	}
	return p.DecodeFrom(r)
}

// DecodeFrom reads an AttributePathIB assuming the reader is already
// positioned on the container element (used when a caller like
// AttributeStatusIB has already called Next for a nested field).
func (p *AttributePathIB) DecodeFrom(r *tlv.Reader) error {
	var lp ListParser
	if err := lp.Init(r); err != nil {
		return err
	}

	err := lp.ForEachContextField(func(tagNum uint8, r *tlv.Reader) error {
		switch tagNum {
		case attrPathTagEnableTagCompression:
			v, err := r.Bool()
			if err != nil {
				return err
			}
			p.EnableTagCompression = &v

		case attrPathTagNode:
			v, err := r.Uint()
			if err != nil {
				return err
			}
			nodeID := NodeID(v)
			p.Node = &nodeID

		case attrPathTagEndpoint:
			v, err := r.Uint()
			if err != nil {
				return err
			}
			endpointID := EndpointID(v)
			p.Endpoint = &endpointID

		case attrPathTagCluster:
			v, err := r.Uint()
			if err != nil {
				return err
			}
			clusterID := ClusterID(v)
			p.Cluster = &clusterID

		case attrPathTagAttribute:
			v, err := r.Uint()
			if err != nil {
				return err
			}
			attributeID := AttributeID(v)
			p.Attribute = &attributeID

		case attrPathTagListIndex:
			if r.Type() == tlv.ElementTypeNull {
				if err := r.Null(); err != nil {
					return err
				}
				p.ListIndexNull = true
			} else {
				v, err := r.Uint()
				if err != nil {
					return err
				}
				listIndex := ListIndex(v)
				p.ListIndex = &listIndex
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	return lp.Exit()
}

// ListOp describes what a concrete attribute path's list-index implies
// about the write/report operation targeting it.
type ListOp int

const (
	// ListOpNotList means the path carried no list index: the operation
	// targets the whole attribute (or, for a list attribute, replaces it
	// in its entirety).
	ListOpNotList ListOp = iota
	// ListOpAppendItem means the list index was present and null.
	ListOpAppendItem
)

// AttributePathParams is the validated, wildcard-aware result of parsing
// an AttributePathIB. A nil field means "wildcard" at that axis.
type AttributePathParams struct {
	Node      *NodeID
	Endpoint  *EndpointID
	Cluster   *ClusterID
	Attribute *AttributeID
	ListOp    ListOp
}

// ParsePath validates the path's field combination and returns the
// wildcard-aware AttributePathParams. It enforces two rules: a wildcard
// cluster requires the attribute be wildcard or a global attribute id,
// and a list index requires a concrete (non-wildcard) attribute.
// Violations return ErrInvalidAction: the path is well-formed TLV but
// describes an operation that can never be serviced.
//
// A present, concrete (non-null) ListIndex is rejected with
// ErrMalformedPath rather than accepted as a replace-item operation:
// original_source's own parser
// (AttributePathIB::Parser::GetGroupAttributePath, AttributePathIB.cpp)
// has never implemented ListOperation::ReplaceItem for this case and
// returns CHIP_ERROR_IM_MALFORMED_ATTRIBUTE_PATH_IB instead, so a wire
// attribute path carrying a concrete list index is malformed by the
// same standard the rest of this package follows.
func (p *AttributePathIB) ParsePath() (AttributePathParams, error) {
	params := AttributePathParams{
		Node:      p.Node,
		Endpoint:  p.Endpoint,
		Cluster:   p.Cluster,
		Attribute: p.Attribute,
	}

	wildcardCluster := p.Cluster == nil
	wildcardAttribute := p.Attribute == nil

	if wildcardCluster && !wildcardAttribute && !isGlobalAttribute(*p.Attribute) {
		return AttributePathParams{}, ErrInvalidAction
	}

	switch {
	case p.ListIndex != nil:
		return AttributePathParams{}, ErrMalformedPath
	case p.ListIndexNull:
		if wildcardAttribute {
			return AttributePathParams{}, ErrInvalidAction
		}
		params.ListOp = ListOpAppendItem
	default:
		params.ListOp = ListOpNotList
	}

	return params, nil
}
