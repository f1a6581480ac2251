package message

// InteractionModelRevision is the revision number every top-level message
// stamps at context tag 0xFF. Parsers accept any value here; this package
// only ever emits the revision it implements.
const InteractionModelRevision = 1

// TagInteractionModelRevision is the reserved context tag every top-level
// message structure carries its revision field under.
const TagInteractionModelRevision = 0xFF
