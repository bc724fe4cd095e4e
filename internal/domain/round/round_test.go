package round

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    ID
		wantErr bool
	}{
		{name: "prefixed", in: "J1", want: 1},
		{name: "bare number", in: "1", want: 1},
		{name: "week prefix", in: "Semana_J1", want: 1},
		{name: "lowercase with spaces", in: " j1 ", want: 1},
		{name: "float spelling", in: "12.0", want: 12},
		{name: "two digits", in: "J10", want: 10},
		{name: "empty", in: "", wantErr: true},
		{name: "no digits", in: "Jornada", wantErr: true},
		{name: "zero", in: "J0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedID) {
					t.Fatalf("Parse(%q) expected ErrMalformedID, got %v", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q)=%d want=%d", tt.in, got, tt.want)
			}
		})
	}
}

func TestID_Previous(t *testing.T) {
	if _, ok := ID(1).Previous(); ok {
		t.Fatalf("round 1 must not have a previous round")
	}
	prev, ok := ID(4).Previous()
	if !ok || prev != 3 {
		t.Fatalf("unexpected previous of J4: %v %v", prev, ok)
	}
	if got := ID(7).String(); got != "J7" {
		t.Fatalf("unexpected string: %q", got)
	}
}

func TestOrder_PlacesNineBeforeEight(t *testing.T) {
	ids := []ID{10, 8, 7, 9, 1}
	DefaultOrder().Sort(ids)

	want := []ID{1, 7, 9, 8, 10}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("unexpected order: got=%v want=%v", ids, want)
	}
}

func TestOrder_SwapNeedsBothRounds(t *testing.T) {
	ids := []ID{10, 9, 7}
	DefaultOrder().Sort(ids)

	want := []ID{7, 9, 10}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("unexpected order: got=%v want=%v", ids, want)
	}
}

func TestOverrides_Resolve(t *testing.T) {
	table := DefaultOverrides()

	tests := []struct {
		name         string
		id           ID
		wantPrevious ID
		wantHasPrev  bool
		wantShow     bool
		wantStart    time.Time
	}{
		{name: "first round", id: 1, wantHasPrev: false, wantShow: true},
		{name: "plain round", id: 3, wantPrevious: 2, wantHasPrev: true, wantShow: true},
		{name: "custom start hides previous", id: 5, wantPrevious: 4, wantHasPrev: true, wantShow: false, wantStart: time.Date(2024, 9, 8, 0, 0, 0, 0, time.UTC)},
		{name: "custom previous", id: 8, wantPrevious: 9, wantHasPrev: true, wantShow: true},
		{name: "round nine", id: 9, wantPrevious: 8, wantHasPrev: true, wantShow: false, wantStart: time.Date(2024, 10, 13, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := table.Resolve(tt.id)
			if plan.HasPrevious != tt.wantHasPrev || (tt.wantHasPrev && plan.Previous != tt.wantPrevious) {
				t.Fatalf("unexpected previous: got=%v/%v want=%v/%v", plan.Previous, plan.HasPrevious, tt.wantPrevious, tt.wantHasPrev)
			}
			if plan.ShowPrevious != tt.wantShow {
				t.Fatalf("unexpected show previous: got=%v want=%v", plan.ShowPrevious, tt.wantShow)
			}
			if plan.HasStart != !tt.wantStart.IsZero() || !plan.Start.Equal(tt.wantStart) {
				t.Fatalf("unexpected start: got=%v want=%v", plan.Start, tt.wantStart)
			}
		})
	}
}
