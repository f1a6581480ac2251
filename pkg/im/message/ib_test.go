package message

import (
	"errors"
	"reflect"
	"testing"

	"github.com/backkem/matter-im-codec/pkg/tlv"
)

func TestStatusIB_Roundtrip(t *testing.T) {
	tests := []struct {
		name   string
		status StatusIB
	}{
		{
			name: "C reference vector",
			status: StatusIB{
				GeneralStatus: StatusInvalidSubscription,
			},
		},
		{
			name: "success",
			status: StatusIB{
				GeneralStatus: StatusSuccess,
			},
		},
		{
			name: "failure with protocol details",
			status: StatusIB{
				GeneralStatus: StatusFailure,
				ProtocolID:    uint32(ProtocolID),
				ProtocolCode:  0x42,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := tlv.NewWriter(nil, 0)

			if err := tt.status.Encode(w); err != nil {
				t.Fatalf("Encode failed: %v", err)
			}

			r := tlv.NewReader(w.Bytes())
			var decoded StatusIB
			if err := decoded.Decode(r); err != nil {
				t.Fatalf("Decode failed: %v", err)
			}

			if !reflect.DeepEqual(tt.status, decoded) {
				t.Errorf("Roundtrip mismatch:\ngot:  %+v\nwant: %+v", decoded, tt.status)
			}
		})
	}
}

func TestEncodeInvokeResponseIBsWithEndBufferReserved_ClosesWithinReservation(t *testing.T) {
	item := InvokeResponseIB{
		Status: &CommandStatusIB{
			Path:   CommandPathIB{Endpoint: 1, Cluster: 6, Command: 0},
			Status: StatusIB{GeneralStatus: StatusSuccess},
		},
	}

	probe := tlv.NewWriter(nil, 0)
	if err := item.EncodeWithTag(probe, tlv.Anonymous()); err != nil {
		t.Fatalf("probe encode failed: %v", err)
	}
	itemLen := len(probe.Bytes())

	// Control octet plus the one-byte context tag.
	const arrayStartLen = 2
	maxLen := arrayStartLen + itemLen + invokeResponseIBsEndBufferReserve

	w := tlv.NewWriter(nil, maxLen)
	if err := EncodeInvokeResponseIBsWithEndBufferReserved(w, tlv.ContextTag(1), []InvokeResponseIB{item}); err != nil {
		t.Fatalf("expected one item plus the reserved close byte to fit exactly, got: %v", err)
	}
	if len(w.Bytes()) != maxLen {
		t.Errorf("expected the array to use the full budget including its close byte, got %d want %d", len(w.Bytes()), maxLen)
	}
}

func TestEncodeInvokeResponseIBsWithEndBufferReserved_BufferFull(t *testing.T) {
	item := InvokeResponseIB{
		Status: &CommandStatusIB{
			Path:   CommandPathIB{Endpoint: 1, Cluster: 6, Command: 0},
			Status: StatusIB{GeneralStatus: StatusSuccess},
		},
	}

	probe := tlv.NewWriter(nil, 0)
	if err := item.EncodeWithTag(probe, tlv.Anonymous()); err != nil {
		t.Fatalf("probe encode failed: %v", err)
	}
	itemLen := len(probe.Bytes())

	// Sized for exactly one item plus the reserved close byte: a second
	// item must be rejected rather than accepted and leave the array
	// unable to close (P6). The array start is the control octet plus the
	// one-byte context tag.
	const arrayStartLen = 2
	maxLen := arrayStartLen + itemLen + invokeResponseIBsEndBufferReserve

	w := tlv.NewWriter(nil, maxLen)
	err := EncodeInvokeResponseIBsWithEndBufferReserved(w, tlv.ContextTag(1), []InvokeResponseIB{item, item})
	if !errors.Is(err, tlv.ErrBufferFull) {
		t.Fatalf("expected ErrBufferFull when a second item would encroach on the reservation, got %v", err)
	}
}

func TestEventFilterIB_Roundtrip(t *testing.T) {
	tests := []struct {
		name   string
		filter EventFilterIB
	}{
		{
			name: "C reference vector",
			filter: EventFilterIB{
				Node:     Ptr(NodeID(1)),
				EventMin: 2,
			},
		},
		{
			name: "no node",
			filter: EventFilterIB{
				EventMin: 100,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := tlv.NewWriter(nil, 0)

			if err := tt.filter.Encode(w); err != nil {
				t.Fatalf("Encode failed: %v", err)
			}

			r := tlv.NewReader(w.Bytes())
			var decoded EventFilterIB
			if err := decoded.Decode(r); err != nil {
				t.Fatalf("Decode failed: %v", err)
			}

			if !reflect.DeepEqual(tt.filter, decoded) {
				t.Errorf("Roundtrip mismatch:\ngot:  %+v\nwant: %+v", decoded, tt.filter)
			}
		})
	}
}

func TestDataVersionFilterIB_Roundtrip(t *testing.T) {
	tests := []struct {
		name   string
		filter DataVersionFilterIB
	}{
		{
			name: "C reference vector",
			filter: DataVersionFilterIB{
				Path: ClusterPathIB{
					Node:     Ptr(NodeID(1)),
					Endpoint: Ptr(EndpointID(2)),
					Cluster:  Ptr(ClusterID(3)),
				},
				DataVersion: 2,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := tlv.NewWriter(nil, 0)

			if err := tt.filter.Encode(w); err != nil {
				t.Fatalf("Encode failed: %v", err)
			}

			r := tlv.NewReader(w.Bytes())
			var decoded DataVersionFilterIB
			if err := decoded.Decode(r); err != nil {
				t.Fatalf("Decode failed: %v", err)
			}

			if !reflect.DeepEqual(tt.filter, decoded) {
				t.Errorf("Roundtrip mismatch:\ngot:  %+v\nwant: %+v", decoded, tt.filter)
			}
		})
	}
}

func TestEventDataIB_TimestampCount(t *testing.T) {
	base := func() EventDataIB {
		return EventDataIB{
			Path: EventPathIB{
				Endpoint: Ptr(EndpointID(0)),
				Cluster:  Ptr(ClusterID(0x0028)),
				Event:    Ptr(EventID(0)),
			},
			EventNumber: 1,
			Priority:    EventPriorityCritical,
		}
	}

	t.Run("zero timestamps", func(t *testing.T) {
		e := base()
		w := tlv.NewWriter(nil, 0)
		if err := e.Encode(w); !errors.Is(err, ErrInvalidAction) {
			t.Fatalf("expected ErrInvalidAction with no timestamp set, got %v", err)
		}
	})

	t.Run("two timestamps", func(t *testing.T) {
		e := base()
		e.EpochTimestamp = Ptr(uint64(4))
		e.SystemTimestamp = Ptr(uint64(5))
		w := tlv.NewWriter(nil, 0)
		if err := e.Encode(w); !errors.Is(err, ErrInvalidAction) {
			t.Fatalf("expected ErrInvalidAction with two timestamps set, got %v", err)
		}
	})

	t.Run("decode rejects zero timestamps", func(t *testing.T) {
		// Hand-encode a structure that skips the exactly-one-of check
		// Encode would otherwise enforce, to verify Decode independently
		// rejects it.
		w := tlv.NewWriter(nil, 0)
		var b StructBuilder
		if err := b.Init(w, tlv.Anonymous()); err != nil {
			t.Fatal(err)
		}
		path := EventPathIB{Endpoint: Ptr(EndpointID(0)), Cluster: Ptr(ClusterID(0x0028)), Event: Ptr(EventID(0))}
		b.fail(path.EncodeWithTag(w, tlv.ContextTag(eventDataTagPath)))
		b.fail(w.PutUint(tlv.ContextTag(eventDataTagEventNumber), 1))
		b.fail(w.PutUint(tlv.ContextTag(eventDataTagPriority), uint64(EventPriorityCritical)))
		if err := b.EndOfContainer(); err != nil {
			t.Fatal(err)
		}

		r := tlv.NewReader(w.Bytes())
		var decoded EventDataIB
		if err := decoded.Decode(r); !errors.Is(err, ErrInvalidAction) {
			t.Fatalf("expected ErrInvalidAction decoding an event with no timestamp, got %v", err)
		}
	})
}

func TestCommandDataIB_Roundtrip(t *testing.T) {
	tests := []struct {
		name string
		cmd  CommandDataIB
	}{
		{
			name: "C reference vector",
			cmd: CommandDataIB{
				Path: CommandPathIB{
					Endpoint: 1,
					Cluster:  3,
					Command:  4,
				},
				// Fields with context tag 1 struct containing bool true
				// This matches chip-tool format: context tag 1 (0x35 0x01), context tag 1 bool true (0x29 0x01), end (0x18)
				Fields: []byte{0x35, 0x01, 0x29, 0x01, 0x18},
			},
		},
		{
			name: "with ref",
			cmd: CommandDataIB{
				Path: CommandPathIB{
					Endpoint: 1,
					Cluster:  6,
					Command:  0,
				},
				Ref: Ptr(uint16(42)),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := tlv.NewWriter(nil, 0)

			if err := tt.cmd.Encode(w); err != nil {
				t.Fatalf("Encode failed: %v", err)
			}

			r := tlv.NewReader(w.Bytes())
			var decoded CommandDataIB
			if err := decoded.Decode(r); err != nil {
				t.Fatalf("Decode failed: %v", err)
			}

			if !reflect.DeepEqual(tt.cmd, decoded) {
				t.Errorf("Roundtrip mismatch:\ngot:  %+v\nwant: %+v", decoded, tt.cmd)
			}
		})
	}
}

func TestCommandStatusIB_Roundtrip(t *testing.T) {
	tests := []struct {
		name   string
		status CommandStatusIB
	}{
		{
			name: "success",
			status: CommandStatusIB{
				Path: CommandPathIB{
					Endpoint: 1,
					Cluster:  3,
					Command:  4,
				},
				Status: StatusIB{
					GeneralStatus: StatusSuccess,
				},
			},
		},
		{
			name: "unsupported command",
			status: CommandStatusIB{
				Path: CommandPathIB{
					Endpoint: 1,
					Cluster:  0x0006,
					Command:  0xFF,
				},
				Status: StatusIB{
					GeneralStatus: StatusUnsupportedCommand,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := tlv.NewWriter(nil, 0)

			if err := tt.status.Encode(w); err != nil {
				t.Fatalf("Encode failed: %v", err)
			}

			r := tlv.NewReader(w.Bytes())
			var decoded CommandStatusIB
			if err := decoded.Decode(r); err != nil {
				t.Fatalf("Decode failed: %v", err)
			}

			if !reflect.DeepEqual(tt.status, decoded) {
				t.Errorf("Roundtrip mismatch:\ngot:  %+v\nwant: %+v", decoded, tt.status)
			}
		})
	}
}

func TestInvokeResponseIB_Roundtrip(t *testing.T) {
	tests := []struct {
		name string
		resp InvokeResponseIB
	}{
		{
			name: "with command",
			resp: InvokeResponseIB{
				Command: &CommandDataIB{
					Path: CommandPathIB{
						Endpoint: 1,
						Cluster:  3,
						Command:  4,
					},
				},
			},
		},
		{
			name: "with status",
			resp: InvokeResponseIB{
				Status: &CommandStatusIB{
					Path: CommandPathIB{
						Endpoint: 1,
						Cluster:  3,
						Command:  4,
					},
					Status: StatusIB{
						GeneralStatus: StatusSuccess,
					},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := tlv.NewWriter(nil, 0)

			if err := tt.resp.Encode(w); err != nil {
				t.Fatalf("Encode failed: %v", err)
			}

			r := tlv.NewReader(w.Bytes())
			var decoded InvokeResponseIB
			if err := decoded.Decode(r); err != nil {
				t.Fatalf("Decode failed: %v", err)
			}

			if !reflect.DeepEqual(tt.resp, decoded) {
				t.Errorf("Roundtrip mismatch:\ngot:  %+v\nwant: %+v", decoded, tt.resp)
			}
		})
	}
}

func TestAttributeReportIB_Roundtrip(t *testing.T) {
	tests := []struct {
		name   string
		report AttributeReportIB
	}{
		{
			name: "with data",
			report: AttributeReportIB{
				AttributeData: &AttributeDataIB{
					DataVersion: 2,
					Path: AttributePathIB{
						Endpoint:  Ptr(EndpointID(1)),
						Cluster:   Ptr(ClusterID(6)),
						Attribute: Ptr(AttributeID(0)),
					},
					// Data with context tag 2 (attrDataTagData): boolean false
					Data: []byte{0x28, 0x02}, // Context tag 2, boolean false
				},
			},
		},
		{
			name: "with status",
			report: AttributeReportIB{
				AttributeStatus: &AttributeStatusIB{
					Path: AttributePathIB{
						Endpoint:  Ptr(EndpointID(1)),
						Cluster:   Ptr(ClusterID(6)),
						Attribute: Ptr(AttributeID(0xFF)),
					},
					Status: StatusIB{
						GeneralStatus: StatusUnsupportedAttribute,
					},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := tlv.NewWriter(nil, 0)

			if err := tt.report.Encode(w); err != nil {
				t.Fatalf("Encode failed: %v", err)
			}

			r := tlv.NewReader(w.Bytes())
			var decoded AttributeReportIB
			if err := decoded.Decode(r); err != nil {
				t.Fatalf("Decode failed: %v", err)
			}

			if !reflect.DeepEqual(tt.report, decoded) {
				t.Errorf("Roundtrip mismatch:\ngot:  %+v\nwant: %+v", decoded, tt.report)
			}
		})
	}
}

func TestEventDataIB_Roundtrip(t *testing.T) {
	tests := []struct {
		name  string
		event EventDataIB
	}{
		{
			name: "C reference vector",
			event: EventDataIB{
				Path: EventPathIB{
					Node:     Ptr(NodeID(1)),
					Endpoint: Ptr(EndpointID(2)),
					Cluster:  Ptr(ClusterID(3)),
					Event:    Ptr(EventID(4)),
					IsUrgent: Ptr(true),
				},
				EventNumber:    2,
				Priority:       3,
				EpochTimestamp: Ptr(uint64(4)),
				// Data with context tag 7 (eventDataTagData): struct with bool true
				Data: []byte{0x35, 0x07, 0x29, 0x01, 0x18},
			},
		},
		{
			name: "minimal",
			event: EventDataIB{
				Path: EventPathIB{
					Endpoint: Ptr(EndpointID(0)),
					Cluster:  Ptr(ClusterID(0x0028)),
					Event:    Ptr(EventID(0)),
				},
				EventNumber:     1,
				Priority:        EventPriorityCritical,
				SystemTimestamp: Ptr(uint64(100)),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := tlv.NewWriter(nil, 0)

			if err := tt.event.Encode(w); err != nil {
				t.Fatalf("Encode failed: %v", err)
			}

			r := tlv.NewReader(w.Bytes())
			var decoded EventDataIB
			if err := decoded.Decode(r); err != nil {
				t.Fatalf("Decode failed: %v", err)
			}

			if !reflect.DeepEqual(tt.event, decoded) {
				t.Errorf("Roundtrip mismatch:\ngot:  %+v\nwant: %+v", decoded, tt.event)
			}
		})
	}
}
