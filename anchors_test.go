package motif

import "testing"

func TestAnchorTable(t *testing.T) {
	var table AnchorTable
	if _, ok := table.First("x"); ok {
		t.Fatalf("empty table should not have anchor x")
	}
	table.Add("x", 10)
	table.Add("y", 5)
	table.Add("x", 20)
	if first, _ := table.First("x"); first != 10 {
		t.Fatalf("got first %v, expected 10", first)
	}
	if last, _ := table.Last("x"); last != 20 {
		t.Fatalf("got last %v, expected 20", last)
	}
	if _, ok := table.Nth("x", 2); ok {
		t.Fatalf("x was recorded only twice")
	}
	c := table.Copy()
	c.Add("x", 30)
	if table.Count("x") != 2 || c.Count("x") != 3 {
		t.Fatalf("copy should not share offsets with the original")
	}
}

func TestShiftKeepsInstructions(t *testing.T) {
	a := Anchor{Name: "x"}
	if shift(a, 10) != Action(a) {
		t.Fatalf("shift should not change instructions")
	}
	n := shift(Note{Time: 5, Length: 1}, 10).(Note)
	if n.Time != 15 || n.Length != 1 {
		t.Fatalf("got %+v, expected time 15 and length 1", n)
	}
}
