package message

import "fmt"

func prettyPrintList[T any](pr *Printer, name string, items []T, print func(*T, *Printer)) {
	pr.Line("%s: %d item(s)", name, len(items))
	pr.depth++
	for i := range items {
		print(&items[i], pr)
	}
	pr.depth--
}

// PrettyPrint writes a human-readable rendering of the read request.
func (m *ReadRequestMessage) PrettyPrint(pr *Printer) {
	pr.Enter("ReadRequestMessage")
	prettyPrintList(pr, "attributeRequests", m.AttributeRequests, (*AttributePathIB).PrettyPrint)
	prettyPrintList(pr, "eventRequests", m.EventRequests, (*EventPathIB).PrettyPrint)
	prettyPrintList(pr, "eventFilters", m.EventFilters, (*EventFilterIB).PrettyPrint)
	pr.Line("fabricFiltered: %t", m.FabricFiltered)
	prettyPrintList(pr, "dataVersionFilters", m.DataVersionFilters, (*DataVersionFilterIB).PrettyPrint)
	pr.Exit()
}

// PrettyPrint writes a human-readable rendering of the subscribe request.
func (m *SubscribeRequestMessage) PrettyPrint(pr *Printer) {
	pr.Enter("SubscribeRequestMessage")
	pr.Line("keepSubscriptions: %t", m.KeepSubscriptions)
	pr.Line("minIntervalFloor: %d", m.MinIntervalFloor)
	pr.Line("maxIntervalCeiling: %d", m.MaxIntervalCeiling)
	prettyPrintList(pr, "attributeRequests", m.AttributeRequests, (*AttributePathIB).PrettyPrint)
	prettyPrintList(pr, "eventRequests", m.EventRequests, (*EventPathIB).PrettyPrint)
	prettyPrintList(pr, "eventFilters", m.EventFilters, (*EventFilterIB).PrettyPrint)
	pr.Line("fabricFiltered: %t", m.FabricFiltered)
	prettyPrintList(pr, "dataVersionFilters", m.DataVersionFilters, (*DataVersionFilterIB).PrettyPrint)
	pr.Exit()
}

// CheckSchemaValidity reports whether the interval floor and ceiling are
// ordered correctly, mirroring the check the builder performs on encode.
func (m *SubscribeRequestMessage) CheckSchemaValidity() error {
	if m.MinIntervalFloor > m.MaxIntervalCeiling {
		return fmt.Errorf("message: malformed SubscribeRequestMessage: %w", ErrInvalidAction)
	}
	return nil
}

// PrettyPrint writes a human-readable rendering of the subscribe response.
func (m *SubscribeResponseMessage) PrettyPrint(pr *Printer) {
	pr.Enter("SubscribeResponseMessage")
	pr.Line("subscriptionID: %d", m.SubscriptionID)
	pr.Line("maxInterval: %d", m.MaxInterval)
	pr.Exit()
}

// PrettyPrint writes a human-readable rendering of the report data.
func (m *ReportDataMessage) PrettyPrint(pr *Printer) {
	pr.Enter("ReportDataMessage")
	pr.Line("subscriptionID: %s", formatOptUint(m.SubscriptionID))
	prettyPrintList(pr, "attributeReports", m.AttributeReports, (*AttributeReportIB).PrettyPrint)
	prettyPrintList(pr, "eventReports", m.EventReports, (*EventReportIB).PrettyPrint)
	pr.Line("moreChunkedMessages: %t", m.MoreChunkedMessages)
	pr.Line("suppressResponse: %t", m.SuppressResponse)
	pr.Exit()
}

// PrettyPrint writes a human-readable rendering of the write request.
func (m *WriteRequestMessage) PrettyPrint(pr *Printer) {
	pr.Enter("WriteRequestMessage")
	pr.Line("suppressResponse: %t", m.SuppressResponse)
	pr.Line("timedRequest: %t", m.TimedRequest)
	prettyPrintList(pr, "writeRequests", m.WriteRequests, (*AttributeDataIB).PrettyPrint)
	pr.Line("moreChunkedMessages: %t", m.MoreChunkedMessages)
	pr.Exit()
}

// PrettyPrint writes a human-readable rendering of the write response.
func (m *WriteResponseMessage) PrettyPrint(pr *Printer) {
	pr.Enter("WriteResponseMessage")
	prettyPrintList(pr, "writeResponses", m.WriteResponses, (*AttributeStatusIB).PrettyPrint)
	pr.Exit()
}

// PrettyPrint writes a human-readable rendering of the invoke request.
func (m *InvokeRequestMessage) PrettyPrint(pr *Printer) {
	pr.Enter("InvokeRequestMessage")
	pr.Line("suppressResponse: %t", m.SuppressResponse)
	pr.Line("timedRequest: %t", m.TimedRequest)
	prettyPrintList(pr, "invokeRequests", m.InvokeRequests, (*CommandDataIB).PrettyPrint)
	pr.Exit()
}

// PrettyPrint writes a human-readable rendering of the invoke response.
func (m *InvokeResponseMessage) PrettyPrint(pr *Printer) {
	pr.Enter("InvokeResponseMessage")
	pr.Line("suppressResponse: %t", m.SuppressResponse)
	prettyPrintList(pr, "invokeResponses", m.InvokeResponses, (*InvokeResponseIB).PrettyPrint)
	pr.Line("moreChunkedMessages: %t", m.MoreChunkedMessages)
	pr.Exit()
}

// CheckSchemaValidity reports whether every response in the batch carries
// exactly one of its two variants.
func (m *InvokeResponseMessage) CheckSchemaValidity() error {
	for i := range m.InvokeResponses {
		if err := m.InvokeResponses[i].CheckSchemaValidity(); err != nil {
			return err
		}
	}
	return nil
}

// PrettyPrint writes a human-readable rendering of the status response.
func (m *StatusResponseMessage) PrettyPrint(pr *Printer) {
	pr.Enter("StatusResponseMessage")
	pr.Line("status: %s (0x%02x)", m.Status, uint8(m.Status))
	pr.Exit()
}

// PrettyPrint writes a human-readable rendering of the timed request.
func (m *TimedRequestMessage) PrettyPrint(pr *Printer) {
	pr.Enter("TimedRequestMessage")
	pr.Line("timeout: %dms", m.Timeout)
	pr.Exit()
}
