package catalog

import (
	"reflect"
	"testing"
)

func TestSortDurations(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "day values sort after hour values",
			in:   []string{"10", "2", "1 day", "3 day"},
			want: []string{"2", "10", "1 day", "3 day"},
		},
		{
			name: "numeric not lexicographic within a group",
			in:   []string{"12", "3", "7"},
			want: []string{"3", "7", "12"},
		},
		{
			name: "day group ordered by leading number",
			in:   []string{"3 days", "1 day", "2 days"},
			want: []string{"1 day", "2 days", "3 days"},
		},
		{
			name: "empty input",
			in:   nil,
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortDurations(tt.in)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SortDurations(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSortDurationsDoesNotMutateInput(t *testing.T) {
	in := []string{"1 day", "2"}
	SortDurations(in)
	if in[0] != "1 day" || in[1] != "2" {
		t.Errorf("input slice was mutated: %v", in)
	}
}
