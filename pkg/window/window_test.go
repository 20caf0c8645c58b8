package window

import (
	"errors"
	"reflect"
	"testing"
)

func TestWindows(t *testing.T) {
	tests := []struct {
		name   string
		length int
		size   int
		step   int
		opts   Options
		want   []Span
	}{
		{
			name: "contiguous when step equals size",
			length: 9, size: 3, step: 3,
			want: []Span{{0, 3}, {3, 6}, {6, 9}},
		},
		{
			name: "overlapping",
			length: 10, size: 4, step: 2,
			want: []Span{{0, 4}, {2, 6}, {4, 8}, {6, 10}},
		},
		{
			name: "tail dropped not padded",
			length: 10, size: 4, step: 3,
			want: []Span{{0, 4}, {3, 7}, {6, 10}},
		},
		{
			name: "window larger than sequence",
			length: 3, size: 10, step: 1,
			want: []Span{},
		},
		{
			name: "from end walks backwards",
			length: 10, size: 4, step: 3,
			opts: Options{FromEnd: true},
			want: []Span{{6, 10}, {3, 7}, {0, 4}},
		},
		{
			name: "truncated to num windows",
			length: 10, size: 2, step: 2,
			opts: Options{NumWindows: 2},
			want: []Span{{0, 2}, {2, 4}},
		},
		{
			name: "sub-range in absolute coordinates",
			length: 20, size: 4, step: 4,
			opts: Options{StartIndex: 5, EndIndex: 13},
			want: []Span{{5, 9}, {9, 13}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Windows(tt.length, tt.size, tt.step, tt.opts)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWindowsInvalidConfig(t *testing.T) {
	for _, args := range [][3]int{{10, 0, 1}, {10, 1, 0}, {10, -1, 1}, {-1, 1, 1}} {
		_, err := Windows(args[0], args[1], args[2], Options{})
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Windows(%v) error = %v, want ErrInvalidConfig", args, err)
		}
	}
}

func TestCountMatchesWindows(t *testing.T) {
	for _, args := range [][3]int{{100, 20, 10}, {10, 4, 3}, {9, 3, 3}, {3, 10, 1}, {7, 7, 1}} {
		spans, err := Windows(args[0], args[1], args[2], Options{})
		if err != nil {
			t.Fatal(err)
		}
		if got := Count(args[0], args[1], args[2]); got != len(spans) {
			t.Errorf("Count(%v) = %d, Windows emitted %d", args, got, len(spans))
		}
	}
}

func TestCountLaw(t *testing.T) {
	if got := Count(100, 20, 10); got != 9 {
		t.Errorf("Count(100, 20, 10) = %d, want 9", got)
	}
}
