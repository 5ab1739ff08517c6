package models

import "time"

// AuditEvent is one row of the local operation audit trail: what was done
// to the vault and when. Events never carry secret material, only node
// identifiers and operation names.
type AuditEvent struct {
	// ID is the row identifier assigned by the audit database.
	ID int64

	// At is the time the operation completed.
	At time.Time

	// Op names the operation: "unlock", "add_entry", "recycle",
	// "delete_permanently", "empty_recycle_bin", "save" and so on.
	Op string

	// NodeUUID identifies the affected node, when the operation has one.
	NodeUUID string

	// Kind is the affected node's kind ("group", "entry") or empty.
	Kind string

	// Detail is an optional free-form annotation, e.g. the destination
	// path of a save.
	Detail string
}
