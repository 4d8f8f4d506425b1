package render

// StaggerWidth is the per-series offset, in pixels, applied to a step's
// riser when staggering is enabled.
const StaggerWidth = 5

// Segment is one straight stroke of the stair-shaped connector, in
// drawing-surface coordinates.
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// Band is one category cell's geometry: its pixel span along the
// category axis and the value-axis coordinate of its datum.
type Band struct {
	Start, Middle, End float64
	Value              float64
}

func segment(o Orientation, cat0, val0, cat1, val1 float64) Segment {
	x0, y0 := o.Adapt(cat0, val0)
	x1, y1 := o.Adapt(cat1, val1)
	return Segment{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// stepStart returns the category coordinate the riser and leading bar
// begin at. With staggering the start shifts by series*StaggerWidth,
// clamped so it never crosses back over the previous band's trailing
// edge.
func stepStart(cur Band, prev *Band, stagger bool, series int) float64 {
	if prev == nil || !stagger {
		return cur.Start
	}
	off := float64(series) * StaggerWidth
	if gap := cur.Start - prev.End; off > gap {
		off = gap
	}
	if off < 0 {
		off = 0
	}
	return prev.End + off
}

// AppendStepPath appends the segments drawing cur's step to dst and
// returns the extended slice. With a previous point the path is three
// contiguous segments: the previous band's flat bar extended to the
// (possibly staggered) start, the riser, and cur's own flat bar. With
// no previous point only the flat bar is emitted, leaving a gap.
// Segments come back already adapted to o.
func AppendStepPath(dst []Segment, o Orientation, cur Band, prev *Band, stagger bool, series int) []Segment {
	start := stepStart(cur, prev, stagger, series)
	if prev != nil {
		dst = append(dst,
			segment(o, prev.End, prev.Value, start, prev.Value),
			segment(o, start, prev.Value, start, cur.Value),
		)
	}
	return append(dst, segment(o, start, cur.Value, cur.End, cur.Value))
}
