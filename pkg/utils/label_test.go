package utils

import "testing"

func TestMergeLabel(t *testing.T) {
	tests := []struct {
		name     string
		existing Label
		incoming Label
		want     Label
	}{
		{
			name:     "both present accumulate",
			existing: Label{Value: "neighbor", Source: "suggest"},
			incoming: Label{Value: "true", Source: "filter"},
			want:     Label{Value: "neighbor|true", Source: "suggest,filter"},
		},
		{
			name:     "empty existing yields incoming",
			existing: Label{},
			incoming: Label{Value: "fallback", Source: "suggest"},
			want:     Label{Value: "fallback", Source: "suggest"},
		},
		{
			name:     "empty incoming yields existing",
			existing: Label{Value: "neighbor", Source: "suggest"},
			incoming: Label{},
			want:     Label{Value: "neighbor", Source: "suggest"},
		},
		{
			name:     "missing source kept from the other side",
			existing: Label{Value: "a"},
			incoming: Label{Value: "b", Source: "filter"},
			want:     Label{Value: "a|b", Source: "filter"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MergeLabel(tt.existing, tt.incoming); got != tt.want {
				t.Errorf("MergeLabel = %+v, want %+v", got, tt.want)
			}
		})
	}
}
