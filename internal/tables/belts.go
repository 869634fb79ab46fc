package tables

import "log/slog"

// loadBelts ingests the belt geometry table consumed by the beltable flag:
// box count and layout per belt type.
func (x *Index) loadBelts(src Source) {
	t, ok := src.Table(TableBelts)
	if !ok {
		slog.Warn("belt table missing", "table", TableBelts)
		return
	}

	name := ResolveColumn(t, "name", "Name")
	boxes := ResolveColumn(t, "numboxes", "NumBoxes")
	if !name.Found() || !boxes.Found() {
		slog.Warn("belt table unusable, required column missing", "table", TableBelts)
		return
	}

	// Box layout columns only exist in newer formats; the 4-per-row
	// default matches every shipped belt.
	rowSize := ResolveColumn(t, "rowsize", "RowSize")

	for row := 0; row < t.Rows(); row++ {
		n := name.String(row)
		if n == "" {
			continue
		}

		b := &Belt{
			Name:    n,
			Boxes:   boxes.Int32(row),
			RowSize: rowSize.Int32(row),
		}
		if b.RowSize == 0 {
			b.RowSize = 4
		}
		if b.RowSize > 0 {
			b.Rows = (b.Boxes + b.RowSize - 1) / b.RowSize
		}

		x.belts = append(x.belts, b)
	}

	slog.Info("loaded belts", "count", len(x.belts))
}
