// internal/content/record.go
//
// Record is the minimal contract the dashboard, live-sync layer, and
// export utility need from an entity.  Columns/Values exist for the
// exporters: one header row in a stable, UI-facing field order, then one
// stringified row per record.  Entity packages keep the two methods next
// to the struct definition so a field added to the model shows up in
// exports in the same change.
package content

// Record is one UI-facing entity row.
type Record interface {
	// RecordID returns the store-generated id, or "" before creation.
	RecordID() string
	// Columns returns the UI field names in export order.
	Columns() []string
	// Values returns the field values in Columns order.
	Values() []string
}
