// internal/content/form/mapping.go
//
// UI record ↔ store row translation.
//
// The translation must be exhaustive and symmetric: a field present on one
// side and missing after a round trip is a defect.  Keep these two
// functions in lockstep with Row and Item; mapping_test.go asserts the
// round-trip property.
package form

// toItem converts a store row into the UI-facing record.
func toItem(r Row) Item {
	return Item{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		FormURL:     r.FormURL,
		Deadline:    r.Deadline,
		IsRequired:  r.IsRequired,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// toRow converts a UI-facing record into the store row shape.
func toRow(it Item) Row {
	return Row{
		ID:          it.ID,
		Title:       it.Title,
		Description: it.Description,
		Category:    it.Category,
		FormURL:     it.FormURL,
		Deadline:    it.Deadline,
		IsRequired:  it.IsRequired,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}

func toItems(rows []Row) []Item {
	items := make([]Item, len(rows))
	for i, r := range rows {
		items[i] = toItem(r)
	}
	return items
}
