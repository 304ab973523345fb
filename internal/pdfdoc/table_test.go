package pdfdoc

import "testing"

func historyColumns() []Column {
	return []Column{
		{Header: "#", Width: 10, Align: AlignCenter},
		{Header: "Amount", Width: 40, Align: AlignRight},
		{Header: "Status", Width: 30, Align: AlignCenter, Bold: true},
	}
}

func TestDataTableEmpty(t *testing.T) {
	table := DataTable{Title: "History", Columns: historyColumns()}

	rec := NewRecorder(A4)
	cur := table.Draw(rec, NewCursor(A4))

	var cells int
	for _, op := range rec.Ops {
		if op.Kind == "cell" {
			cells++
		}
	}
	if cells != len(table.Columns) {
		t.Errorf("cells = %d, want header only (%d)", cells, len(table.Columns))
	}
	if want := headingHeight + DefaultHeaderRowH + sectionGap; cur.Y != float64(want) {
		t.Errorf("cursor = %v, want %v", cur.Y, want)
	}
}

func TestDataTableCellStyle(t *testing.T) {
	table := DataTable{
		Columns: historyColumns(),
		Rows: [][]string{
			{"1", "₹ 10.00", "Paid"},
			{"2", "₹ 20.00", "Failed"},
			{"3", "₹ 30.00"},
		},
		CellStyle: func(_, col int, value string) (CellStyle, bool) {
			if col != 2 {
				return CellStyle{}, false
			}
			return CellStyle{Color: StatusColor(value), Bold: true}, true
		},
	}

	rec := NewRecorder(A4)
	cur := table.Draw(rec, NewCursor(A4))

	if want := DefaultHeaderRowH + 3*DefaultTableRowH + sectionGap; cur.Y != float64(want) {
		t.Errorf("cursor = %v, want %v", cur.Y, want)
	}

	paid, _ := rec.Find("Paid")
	if paid.TextColor != Green || paid.FontStyle != Bold {
		t.Errorf("Paid cell = %+v", paid)
	}
	failed, _ := rec.Find("Failed")
	if failed.TextColor != Red {
		t.Errorf("Failed cell colour = %v", failed.TextColor)
	}
	amount, _ := rec.Find("₹ 20.00")
	if amount.Align != AlignRight || amount.TextColor != Ink {
		t.Errorf("amount cell = %+v", amount)
	}

	// The short row still gets a (blank) status cell with the hook applied.
	var last Op
	for _, op := range rec.Ops {
		if op.Kind == "cell" {
			last = op
		}
	}
	if last.Text != "" || last.TextColor != Amber {
		t.Errorf("missing status cell = %+v", last)
	}
}

func TestDataTableHeaderStyle(t *testing.T) {
	rec := NewRecorder(A4)
	DataTable{Columns: historyColumns()}.Draw(rec, NewCursor(A4))

	h, ok := rec.Find("Amount")
	if !ok {
		t.Fatal("header not drawn")
	}
	if !h.Filled || h.FillColor != Primary || h.TextColor != White || h.Align != AlignCenter {
		t.Errorf("header cell = %+v", h)
	}
}
