package timeslot

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"7:30am - 10am", "ts-1"},
		{"9am", "ts-1"},
		{"10am - 1pm", "ts-2"},
		{"12pm - 3pm", "ts-2"},
		{"1pm - 4pm", "ts-3"},
		{"4pm - 7pm", "ts-4"},
		{"6:45pm", "ts-4"},
		{"11pm", ""},
		{"5am", ""},
		{"", ""},
		{"no time here", ""},
	}
	for _, c := range cases {
		if got := Classify(c.in); got != c.want {
			t.Fatalf("Classify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestClassifyVagueTimeframes(t *testing.T) {
	if got := Classify("morning"); got != "ts-1" {
		t.Fatalf("morning classified as %q", got)
	}
	if got := Classify("Afternoon"); got != "ts-3" {
		t.Fatalf("afternoon classified as %q", got)
	}
	if got := Classify("early evening"); got != "ts-4" {
		t.Fatalf("evening classified as %q", got)
	}
}

func TestSortableHour(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"9am", 9, true},
		{"12am", 0, true},
		{"12pm", 12, true},
		{"3pm", 15, true},
		{"3", 15, true},
		{"6:30", 18, true},
		{"7", 7, true},
		{"no digits", 0, false},
	}
	for _, c := range cases {
		got, ok := SortableHour(c.in)
		if ok != c.ok || got != c.want {
			t.Fatalf("SortableHour(%q) = (%d, %v), want (%d, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestSlotsAreFixed(t *testing.T) {
	if len(Slots) != 4 {
		t.Fatalf("expected 4 slots, got %d", len(Slots))
	}
	if Slots[0].ID != "ts-1" || Slots[3].ID != "ts-4" {
		t.Fatalf("unexpected slot ids: %+v", Slots)
	}
}
