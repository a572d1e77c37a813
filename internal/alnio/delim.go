package alnio

import (
	"fmt"
	"strings"
)

// DelimiterNotFoundError is returned by SubstringBetween when a
// delimiter does not occur in the searched range.
type DelimiterNotFoundError struct {
	Delim string
	From  int
}

func (e *DelimiterNotFoundError) Error() string {
	return fmt.Sprintf("delimiter %q not found after position %d", e.Delim, e.From)
}

func (e *DelimiterNotFoundError) IsStatsError() {}

// SubstringBetween returns the text of s between the first occurrence of
// start at or after from and the next occurrence of end after it, along
// with the index where end begins.
//
// An empty start means "from position from"; an empty end means "to the
// end of s", in which case the returned index is len(s).
func SubstringBetween(s, start, end string, from int) (string, int, error) {
	if from < 0 || from > len(s) {
		return "", -1, fmt.Errorf("search position %d out of range [0,%d]", from, len(s))
	}

	begin := from
	if start != "" {
		i := strings.Index(s[from:], start)
		if i < 0 {
			return "", -1, &DelimiterNotFoundError{Delim: start, From: from}
		}
		begin = from + i + len(start)
	}

	if end == "" {
		return s[begin:], len(s), nil
	}
	j := strings.Index(s[begin:], end)
	if j < 0 {
		return "", -1, &DelimiterNotFoundError{Delim: end, From: begin}
	}
	return s[begin : begin+j], begin + j, nil
}
