package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStepPathNoPredecessor(t *testing.T) {
	cur := Band{Start: 10, Middle: 30, End: 50, Value: 80}
	got := AppendStepPath(nil, Portrait, cur, nil, false, 0)
	want := []Segment{{X0: 10, Y0: 80, X1: 50, Y1: 80}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}
}

func TestStepPathContiguous(t *testing.T) {
	prev := Band{Start: 10, Middle: 30, End: 50, Value: 20}
	cur := Band{Start: 60, Middle: 80, End: 100, Value: 70}
	for _, o := range []Orientation{Portrait, Landscape} {
		t.Run(o.String(), func(t *testing.T) {
			got := AppendStepPath(nil, o, cur, &prev, false, 0)
			if len(got) != 3 {
				t.Fatalf("expected 3 segments, got %d", len(got))
			}
			for i := 1; i < len(got); i++ {
				if got[i-1].X1 != got[i].X0 || got[i-1].Y1 != got[i].Y0 {
					t.Errorf("segment %d does not start where segment %d ends: %+v -> %+v",
						i, i-1, got[i-1], got[i])
				}
			}
		})
	}
}

func TestStepPathStagger(t *testing.T) {
	type testcase struct {
		name      string
		prevEnd   float64
		curStart  float64
		series    int
		wantStart float64
	}
	for _, tc := range []testcase{
		{
			name:      "series zero starts at previous trailing edge",
			prevEnd:   45,
			curStart:  55,
			series:    0,
			wantStart: 45,
		},
		{
			name:      "offset within gap applies exactly",
			prevEnd:   45,
			curStart:  55,
			series:    1,
			wantStart: 50,
		},
		{
			name:      "offset wider than gap clamps to band start",
			prevEnd:   45,
			curStart:  48,
			series:    2,
			wantStart: 48,
		},
		{
			name:      "zero gap pins riser to trailing edge",
			prevEnd:   50,
			curStart:  50,
			series:    3,
			wantStart: 50,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			prev := Band{Start: tc.prevEnd - 40, Middle: tc.prevEnd - 20, End: tc.prevEnd, Value: 20}
			cur := Band{Start: tc.curStart, Middle: tc.curStart + 20, End: tc.curStart + 40, Value: 70}
			got := AppendStepPath(nil, Portrait, cur, &prev, true, tc.series)
			if len(got) != 3 {
				t.Fatalf("expected 3 segments, got %d", len(got))
			}
			riser := got[1]
			if riser.X0 != tc.wantStart {
				t.Errorf("riser at %v, want %v", riser.X0, tc.wantStart)
			}
			if riser.X0 < prev.End {
				t.Errorf("riser at %v crosses previous trailing edge %v", riser.X0, prev.End)
			}
		})
	}
}

func TestStepPathOrientationSymmetry(t *testing.T) {
	prev := Band{Start: 10, Middle: 30, End: 50, Value: 20}
	cur := Band{Start: 60, Middle: 80, End: 100, Value: 70}
	portrait := AppendStepPath(nil, Portrait, cur, &prev, true, 2)
	landscape := AppendStepPath(nil, Landscape, cur, &prev, true, 2)
	if len(portrait) != len(landscape) {
		t.Fatalf("segment counts differ: %d vs %d", len(portrait), len(landscape))
	}
	for i := range portrait {
		p, l := portrait[i], landscape[i]
		swapped := Segment{X0: p.Y0, Y0: p.X0, X1: p.Y1, Y1: p.X1}
		if swapped != l {
			t.Errorf("segment %d: landscape %+v is not the axis swap of portrait %+v", i, l, p)
		}
	}
}
