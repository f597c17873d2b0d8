package source

import (
	"testing"
)

func TestSpan_Empty(t *testing.T) {
	tests := []struct {
		name string
		span Span
		want bool
	}{
		{"zero span", Span{}, true},
		{"point span", Span{File: 1, Start: 5, End: 5}, true},
		{"normal span", Span{File: 1, Start: 5, End: 9}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.Empty(); got != tt.want {
				t.Errorf("Empty() = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestSpan_Len(t *testing.T) {
	s := Span{File: 1, Start: 3, End: 10}
	if got := s.Len(); got != 7 {
		t.Errorf("Len() = %d, want 7", got)
	}
}

func TestSpan_Cover(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want Span
	}{
		{
			name: "disjoint later span extends end",
			a:    Span{File: 1, Start: 5, End: 10},
			b:    Span{File: 1, Start: 20, End: 30},
			want: Span{File: 1, Start: 5, End: 30},
		},
		{
			name: "earlier span extends start",
			a:    Span{File: 1, Start: 5, End: 10},
			b:    Span{File: 1, Start: 0, End: 3},
			want: Span{File: 1, Start: 0, End: 10},
		},
		{
			name: "contained span changes nothing",
			a:    Span{File: 1, Start: 5, End: 10},
			b:    Span{File: 1, Start: 6, End: 8},
			want: Span{File: 1, Start: 5, End: 10},
		},
		{
			name: "different file is ignored",
			a:    Span{File: 1, Start: 5, End: 10},
			b:    Span{File: 2, Start: 0, End: 100},
			want: Span{File: 1, Start: 5, End: 10},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cover(tt.b); got != tt.want {
				t.Errorf("Cover() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSpan_String(t *testing.T) {
	s := Span{File: 3, Start: 14, End: 29}
	if got := s.String(); got != "3:14-29" {
		t.Errorf("String() = %q, want %q", got, "3:14-29")
	}
}
