package render

import "testing"

func TestBandAxis(t *testing.T) {
	area := Rect{X: 0, Y: 0, W: 100, H: 40}
	a := BandAxis{Margin: 0.1}

	if got := a.BandStart(0, 2, area, EdgeBottom); got != 5 {
		t.Errorf("band 0 start = %v, want 5", got)
	}
	if got := a.BandMiddle(0, 2, area, EdgeBottom); got != 25 {
		t.Errorf("band 0 middle = %v, want 25", got)
	}
	if got := a.BandStart(1, 2, area, EdgeBottom); got != 55 {
		t.Errorf("band 1 start = %v, want 55", got)
	}
	// A left-edge axis spans the area height instead.
	if got := a.BandMiddle(0, 2, area, EdgeLeft); got != 10 {
		t.Errorf("left-edge band 0 middle = %v, want 10", got)
	}
}

func TestLinearAxis(t *testing.T) {
	area := Rect{X: 0, Y: 0, W: 100, H: 100}
	a := LinearAxis{Min: 0, Max: 10}
	if got := a.Coordinate(2.5, area, EdgeLeft); got != 25 {
		t.Errorf("coordinate = %v, want 25", got)
	}
	a.Inverted = true
	if got := a.Coordinate(2.5, area, EdgeLeft); got != 75 {
		t.Errorf("inverted coordinate = %v, want 75", got)
	}
	// A degenerate range must still return finite coordinates.
	flat := LinearAxis{Min: 3, Max: 3}
	if got := flat.Coordinate(3, area, EdgeLeft); got != 0 {
		t.Errorf("degenerate coordinate = %v, want 0", got)
	}
}

func TestFitLinearAxis(t *testing.T) {
	d := NewTable("a", "b", "c")
	d.AddSeries("s0", -2, Absent, 7)
	a := FitLinearAxis(d)
	if a.Min != -2 || a.Max != 7 {
		t.Errorf("fitted axis [%v, %v], want [-2, 7]", a.Min, a.Max)
	}

	empty := NewTable("a")
	empty.AddSeries("s0", Absent)
	a = FitLinearAxis(empty)
	if a.Min == a.Max {
		t.Error("fitted axis must never be degenerate")
	}
}

func TestTableAbsentCells(t *testing.T) {
	d := NewTable("a", "b", "c")
	d.AddSeries("s0", 1, Absent)

	if v, ok := d.Value(0, 0); !ok || v != 1 {
		t.Errorf("Value(0,0) = %v, %v", v, ok)
	}
	if _, ok := d.Value(0, 1); ok {
		t.Error("NaN cell should read as absent")
	}
	if _, ok := d.Value(0, 2); ok {
		t.Error("cell beyond the provided values should read as absent")
	}
	if _, ok := d.Value(1, 0); ok {
		t.Error("out-of-range row should read as absent")
	}
	d.Set(0, 1, 4)
	if v, ok := d.Value(0, 1); !ok || v != 4 {
		t.Errorf("Set did not take: %v, %v", v, ok)
	}
}
