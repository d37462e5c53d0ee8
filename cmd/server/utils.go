package main

import (
	"iter"
	"strings"
)

// byLine yields the newline separated pieces of s.
func byLine(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			piece, rest, found := strings.Cut(s, "\n")
			if !yield(piece) {
				return
			}
			if !found {
				return
			}
			s = rest
		}
	}
}
