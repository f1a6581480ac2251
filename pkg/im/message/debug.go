package message

import (
	"fmt"
	"io"
	"strings"

	"github.com/pion/logging"
)

// Printer accumulates pretty-printed output for one IB or message tree. It
// is an explicit value threaded through every PrettyPrint call rather than
// package-level state, so two goroutines can each pretty-print concurrently
// as long as they own separate Printers.
type Printer struct {
	sink  io.Writer
	depth int
	log   logging.LeveledLogger
}

// NewPrinter returns a Printer writing indented lines to sink. log may be
// nil, in which case unknown-field notices are dropped instead of logged.
func NewPrinter(sink io.Writer, log logging.LeveledLogger) *Printer {
	return &Printer{sink: sink, log: log}
}

func (p *Printer) indent() string {
	return strings.Repeat("  ", p.depth)
}

// Line writes one indented, formatted line.
func (p *Printer) Line(format string, args ...interface{}) {
	fmt.Fprintf(p.sink, "%s%s\n", p.indent(), fmt.Sprintf(format, args...))
}

// Enter writes name as a header line and increases indentation for the
// fields that follow, until the matching Exit.
func (p *Printer) Enter(name string) {
	p.Line("%s:", name)
	p.depth++
}

// Exit restores the indentation level Enter increased.
func (p *Printer) Exit() {
	p.depth--
}

// unknownField logs a context tag no PrettyPrint method recognizes. Per the
// forward-compatibility rule (P2), this is informational only: it never
// causes pretty-printing to fail.
func (p *Printer) unknownField(tagNum uint8) {
	if p.log != nil {
		p.log.Debugf("im: unknown context tag %d", tagNum)
	}
}

func formatOptUint[T ~uint8 | ~uint16 | ~uint32 | ~uint64](v *T) string {
	if v == nil {
		return "<absent>"
	}
	return fmt.Sprintf("%d", *v)
}

func formatOptBool(v *bool) string {
	if v == nil {
		return "<absent>"
	}
	return fmt.Sprintf("%t", *v)
}

// PrettyPrint writes a human-readable rendering of the attribute path.
func (p *AttributePathIB) PrettyPrint(pr *Printer) {
	pr.Enter("AttributePathIB")
	pr.Line("enableTagCompression: %s", formatOptBool(p.EnableTagCompression))
	pr.Line("node: %s", formatOptUint(p.Node))
	pr.Line("endpoint: %s", formatOptUint(p.Endpoint))
	pr.Line("cluster: %s", formatOptUint(p.Cluster))
	pr.Line("attribute: %s", formatOptUint(p.Attribute))
	switch {
	case p.ListIndex != nil:
		pr.Line("listIndex: %d", *p.ListIndex)
	case p.ListIndexNull:
		pr.Line("listIndex: null (append)")
	default:
		pr.Line("listIndex: <absent>")
	}
	pr.Exit()
}

// CheckSchemaValidity reports whether the path carries a semantically
// usable field combination. It delegates to ParsePath so the two can never
// disagree about which combinations are acceptable.
func (p *AttributePathIB) CheckSchemaValidity() error {
	_, err := p.ParsePath()
	return err
}

// PrettyPrint writes a human-readable rendering of the cluster path.
func (p *ClusterPathIB) PrettyPrint(pr *Printer) {
	pr.Enter("ClusterPathIB")
	pr.Line("node: %s", formatOptUint(p.Node))
	pr.Line("endpoint: %s", formatOptUint(p.Endpoint))
	pr.Line("cluster: %s", formatOptUint(p.Cluster))
	pr.Exit()
}

// PrettyPrint writes a human-readable rendering of the command path.
func (p *CommandPathIB) PrettyPrint(pr *Printer) {
	pr.Enter("CommandPathIB")
	pr.Line("endpoint: %d", p.Endpoint)
	pr.Line("cluster: 0x%04x", p.Cluster)
	pr.Line("command: 0x%02x", p.Command)
	pr.Exit()
}

// PrettyPrint writes a human-readable rendering of the event path.
func (p *EventPathIB) PrettyPrint(pr *Printer) {
	pr.Enter("EventPathIB")
	pr.Line("node: %s", formatOptUint(p.Node))
	pr.Line("endpoint: %s", formatOptUint(p.Endpoint))
	pr.Line("cluster: %s", formatOptUint(p.Cluster))
	pr.Line("event: %s", formatOptUint(p.Event))
	pr.Line("isUrgent: %s", formatOptBool(p.IsUrgent))
	pr.Exit()
}

// PrettyPrint writes a human-readable rendering of the status.
func (s *StatusIB) PrettyPrint(pr *Printer) {
	pr.Enter("StatusIB")
	pr.Line("generalStatus: %s (0x%02x)", s.GeneralStatus, uint8(s.GeneralStatus))
	pr.Line("protocolID: 0x%08x", s.ProtocolID)
	pr.Line("protocolCode: 0x%04x", s.ProtocolCode)
	pr.Exit()
}

// CheckSchemaValidity reports whether the status's general code is one
// this package recognizes; an unrecognized code yields ErrInvalidStatus.
func (s *StatusIB) CheckSchemaValidity() error {
	if s.GeneralStatus.String() == "Unknown" {
		return fmt.Errorf("message: malformed StatusIB: %w", ErrInvalidStatus)
	}
	return nil
}

// PrettyPrint writes a human-readable rendering of the attribute data.
func (a *AttributeDataIB) PrettyPrint(pr *Printer) {
	pr.Enter("AttributeDataIB")
	pr.Line("dataVersion: %d", a.DataVersion)
	a.Path.PrettyPrint(pr)
	pr.Line("data: %d raw TLV bytes", len(a.Data))
	pr.Exit()
}

// PrettyPrint writes a human-readable rendering of the attribute status.
func (a *AttributeStatusIB) PrettyPrint(pr *Printer) {
	pr.Enter("AttributeStatusIB")
	a.Path.PrettyPrint(pr)
	a.Status.PrettyPrint(pr)
	pr.Exit()
}

// PrettyPrint writes a human-readable rendering of whichever variant the
// report carries.
func (a *AttributeReportIB) PrettyPrint(pr *Printer) {
	pr.Enter("AttributeReportIB")
	switch {
	case a.AttributeData != nil:
		a.AttributeData.PrettyPrint(pr)
	case a.AttributeStatus != nil:
		a.AttributeStatus.PrettyPrint(pr)
	default:
		pr.Line("<empty>")
	}
	pr.Exit()
}

// CheckSchemaValidity reports whether the report carries exactly one of
// its two variants, reusing the builder's own exactly-one-of rule (P7).
func (a *AttributeReportIB) CheckSchemaValidity() error {
	if (a.AttributeStatus == nil) == (a.AttributeData == nil) {
		return fmt.Errorf("message: malformed AttributeReportIB: %w", ErrInvalidAction)
	}
	return nil
}

// PrettyPrint writes a human-readable rendering of the command data.
func (c *CommandDataIB) PrettyPrint(pr *Printer) {
	pr.Enter("CommandDataIB")
	c.Path.PrettyPrint(pr)
	pr.Line("fields: %d raw TLV bytes", len(c.Fields))
	pr.Line("ref: %s", formatOptUint(c.Ref))
	pr.Exit()
}

// PrettyPrint writes a human-readable rendering of the command status.
func (c *CommandStatusIB) PrettyPrint(pr *Printer) {
	pr.Enter("CommandStatusIB")
	c.Path.PrettyPrint(pr)
	c.Status.PrettyPrint(pr)
	pr.Line("ref: %s", formatOptUint(c.Ref))
	pr.Exit()
}

// PrettyPrint writes a human-readable rendering of the data version filter.
func (f *DataVersionFilterIB) PrettyPrint(pr *Printer) {
	pr.Enter("DataVersionFilterIB")
	f.Path.PrettyPrint(pr)
	pr.Line("dataVersion: %d", f.DataVersion)
	pr.Exit()
}

// PrettyPrint writes a human-readable rendering of the event data.
func (e *EventDataIB) PrettyPrint(pr *Printer) {
	pr.Enter("EventDataIB")
	e.Path.PrettyPrint(pr)
	pr.Line("eventNumber: %d", e.EventNumber)
	pr.Line("priority: %d", e.Priority)
	pr.Line("epochTimestamp: %s", formatOptUint(e.EpochTimestamp))
	pr.Line("systemTimestamp: %s", formatOptUint(e.SystemTimestamp))
	pr.Line("deltaEpochTimestamp: %s", formatOptUint(e.DeltaEpochTimestamp))
	pr.Line("deltaSystemTimestamp: %s", formatOptUint(e.DeltaSystemTimestamp))
	pr.Line("data: %d raw TLV bytes", len(e.Data))
	pr.Exit()
}

// PrettyPrint writes a human-readable rendering of the event filter.
func (f *EventFilterIB) PrettyPrint(pr *Printer) {
	pr.Enter("EventFilterIB")
	pr.Line("node: %s", formatOptUint(f.Node))
	pr.Line("eventMin: %d", f.EventMin)
	pr.Exit()
}

// PrettyPrint writes a human-readable rendering of whichever variant the
// report carries.
func (e *EventReportIB) PrettyPrint(pr *Printer) {
	pr.Enter("EventReportIB")
	switch {
	case e.EventData != nil:
		e.EventData.PrettyPrint(pr)
	case e.EventStatus != nil:
		e.EventStatus.PrettyPrint(pr)
	default:
		pr.Line("<empty>")
	}
	pr.Exit()
}

// CheckSchemaValidity reports whether the report carries exactly one of
// its two variants, reusing the builder's own exactly-one-of rule (P7).
func (e *EventReportIB) CheckSchemaValidity() error {
	if (e.EventStatus == nil) == (e.EventData == nil) {
		return fmt.Errorf("message: malformed EventReportIB: %w", ErrInvalidAction)
	}
	return nil
}

// PrettyPrint writes a human-readable rendering of the event status.
func (e *EventStatusIB) PrettyPrint(pr *Printer) {
	pr.Enter("EventStatusIB")
	e.Path.PrettyPrint(pr)
	e.Status.PrettyPrint(pr)
	pr.Exit()
}

// PrettyPrint writes a human-readable rendering of whichever variant the
// response carries.
func (i *InvokeResponseIB) PrettyPrint(pr *Printer) {
	pr.Enter("InvokeResponseIB")
	switch {
	case i.Command != nil:
		i.Command.PrettyPrint(pr)
	case i.Status != nil:
		i.Status.PrettyPrint(pr)
	default:
		pr.Line("<empty>")
	}
	pr.Exit()
}

// CheckSchemaValidity reports whether the response carries exactly one of
// its two variants, reusing the builder's own exactly-one-of rule (P7).
func (i *InvokeResponseIB) CheckSchemaValidity() error {
	if (i.Command == nil) == (i.Status == nil) {
		return fmt.Errorf("message: malformed InvokeResponseIB: %w", ErrInvalidAction)
	}
	return nil
}
