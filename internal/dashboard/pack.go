package dashboard

// Size is a widget footprint in grid units.
type Size struct {
	W int
	H int
}

var (
	// InsertSize is used for widgets added from the picker.
	InsertSize = Size{W: 2, H: 5}
	// DropSize is used for widgets dropped onto the grid. It is one row
	// shorter than InsertSize.
	DropSize = Size{W: 2, H: 4}
)

// Pack computes positions for ids appended after existing in a grid of cols
// columns and returns only the new items. Slots are numbered from
// len(existing), so the batch continues the running tiling left to right,
// top to bottom. Pack does not look at where existing items actually sit.
func Pack(existing []LayoutItem, ids []WidgetID, cols int, size Size) []LayoutItem {
	if cols <= 0 || size.W <= 0 || size.H <= 0 {
		return nil
	}
	w := min(size.W, cols)
	out := make([]LayoutItem, 0, len(ids))
	for k, id := range ids {
		i := len(existing) + k
		out = append(out, LayoutItem{
			ID: id,
			X:  (i * w) % cols,
			Y:  (i * w) / cols * size.H,
			W:  w,
			H:  size.H,
		})
	}
	return out
}
