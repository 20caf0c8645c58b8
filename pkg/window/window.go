/*
Package window generates ordered, optionally overlapping index spans over a
sequence of a given length. It is domain agnostic: it knows nothing about
what the indices point into, and callers use the spans both to slice
sequence data and to label per-window results
*/
package window

import "errors"

// ErrInvalidConfig is returned for a non-positive window size or step.
// This is a caller programming error, not a data-dependent condition
var ErrInvalidConfig = errors.New("invalid window configuration")

// Span is a half-open interval [Start, End) in absolute coordinates of the
// original sequence
type Span struct {
	Start int
	End   int
}

// Options modifies how Windows emits spans
type Options struct {
	// FromEnd anchors the first window at the end of the sequence and walks
	// backwards; spans are emitted in descending Start order. Callers that
	// need ascending order must reverse explicitly
	FromEnd bool
	// NumWindows, if > 0, truncates the result to the first N spans
	NumWindows int
	// StartIndex/EndIndex restrict windowing to a sub-range of the sequence.
	// EndIndex == 0 means the full length. Reported spans are still in
	// absolute coordinates of the original sequence
	StartIndex int
	EndIndex   int
}

// Windows emits the spans of length size covering a sequence of the given
// length, advancing by step. A window never extends past the end of the
// sequence: the tail is dropped, not padded. size > length yields zero
// spans and no error
func Windows(length, size, step int, opts Options) ([]Span, error) {
	if size <= 0 || step <= 0 {
		return nil, ErrInvalidConfig
	}
	if length < 0 {
		return nil, ErrInvalidConfig
	}

	offset := 0
	end := length
	if opts.StartIndex > 0 {
		offset = opts.StartIndex
	}
	if opts.EndIndex > 0 && opts.EndIndex < length {
		end = opts.EndIndex
	}
	if offset > end {
		offset = end
	}
	sliceLen := end - offset

	spans := make([]Span, 0)

	if opts.FromEnd {
		for start := sliceLen - size; start >= 0; start -= step {
			spans = append(spans, Span{Start: offset + start, End: offset + start + size})
		}
	} else {
		for start := 0; start+size <= sliceLen; start += step {
			spans = append(spans, Span{Start: offset + start, End: offset + start + size})
		}
	}

	if opts.NumWindows > 0 && len(spans) > opts.NumWindows {
		spans = spans[:opts.NumWindows]
	}

	return spans, nil
}

// Count returns the number of forward-mode windows for a sequence of the
// given length: floor((length-size)/step) + 1 when length >= size, else 0
func Count(length, size, step int) int {
	if size <= 0 || step <= 0 || length < size {
		return 0
	}
	return (length-size)/step + 1
}
