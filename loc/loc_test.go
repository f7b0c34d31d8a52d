package loc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLocation(t *testing.T) {
	const text = "abc\ndef\n\nghi"
	f := NewFile("test.ir", text)
	tests := []struct {
		loc  Loc
		want Location
	}{
		{Loc{}, Location{}},
		{Loc{1, 1}, Location{Path: "test.ir", Line: [2]int{1, 1}, Col: [2]int{1, 1}}},
		{Loc{1, 3}, Location{Path: "test.ir", Line: [2]int{1, 1}, Col: [2]int{1, 3}}},
		{Loc{5, 5}, Location{Path: "test.ir", Line: [2]int{2, 2}, Col: [2]int{1, 1}}},
		{Loc{2, 7}, Location{Path: "test.ir", Line: [2]int{1, 2}, Col: [2]int{2, 3}}},
		{Loc{10, 12}, Location{Path: "test.ir", Line: [2]int{4, 4}, Col: [2]int{1, 3}}},
	}
	for _, test := range tests {
		if diff := cmp.Diff(test.want, f.Location(test.loc)); diff != "" {
			t.Errorf("Location(%v): (-want,+got)\n%s", test.loc, diff)
		}
	}
}

func TestLocationString(t *testing.T) {
	tests := []struct {
		loc  Location
		want string
	}{
		{Location{}, ""},
		{Location{Path: "a.ir", Line: [2]int{3, 3}, Col: [2]int{4, 4}}, "a.ir:3.4"},
		{Location{Path: "a.ir", Line: [2]int{3, 4}, Col: [2]int{4, 1}}, "a.ir:3.4-4.1"},
	}
	for _, test := range tests {
		if got := test.loc.String(); got != test.want {
			t.Errorf("got %q, want %q", got, test.want)
		}
	}
}
