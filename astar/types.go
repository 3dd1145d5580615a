// SPDX-License-Identifier: MIT
package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridroute/gridgraph"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrNilCell indicates a nil source or destination.
	ErrNilCell = errors.New("astar: cell is nil")

	// ErrCellNotInGrid indicates a source or destination that is not the
	// Grid's own instance.
	ErrCellNotInGrid = errors.New("astar: cell not owned by grid")

	// ErrExpansionLimit indicates the search stopped after MaxExpansions
	// expansions without settling the destination.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")
)

// TieBreak selects which Cell is expanded next among equal scores.
type TieBreak int

const (
	// TieFirstRecorded picks the Cell that received a score earliest.
	TieFirstRecorded TieBreak = iota
	// TieLastRecorded picks the Cell that received a score latest.
	TieLastRecorded
)

// String implements fmt.Stringer.
func (t TieBreak) String() string {
	switch t {
	case TieFirstRecorded:
		return "first"
	case TieLastRecorded:
		return "last"
	default:
		return fmt.Sprintf("TieBreak(%d)", int(t))
	}
}

// ParseTieBreak maps "first" / "last" to a TieBreak.
func ParseTieBreak(s string) (TieBreak, error) {
	switch s {
	case "first", "":
		return TieFirstRecorded, nil
	case "last":
		return TieLastRecorded, nil
	}
	return TieFirstRecorded, fmt.Errorf("astar: unknown tie-break %q", s)
}

// Heuristic estimates the remaining distance from a Cell to the destination.
type Heuristic func(from, to *gridgraph.Cell) int

// Result contains the outcome of a search.
type Result struct {
	Path     []*gridgraph.Cell // [source, …, dest]; empty when not found
	Found    bool
	Score    int // accumulated score recorded for dest; 0 when not found
	Expanded int // number of Cells expanded
}

// Hops reports the number of links along Path, or -1 when nothing was found.
func (r Result) Hops() int {
	if !r.Found {
		return -1
	}
	return len(r.Path) - 1
}

// Options configures Search.
type Options struct {
	Ctx           context.Context
	TieBreak      TieBreak
	Heuristic     Heuristic
	MaxExpansions int // 0 means unlimited
}

// Option is a functional option for Search.
type Option func(*Options)

// DefaultOptions returns Background context, TieFirstRecorded, Manhattan
// heuristic and no expansion limit.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		TieBreak:      TieFirstRecorded,
		Heuristic:     gridgraph.Manhattan,
		MaxExpansions: 0,
	}
}

// WithContext sets a context checked before every expansion.
// A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTieBreak selects the equal-score policy.
func WithTieBreak(t TieBreak) Option {
	return func(o *Options) {
		o.TieBreak = t
	}
}

// WithHeuristic replaces the Manhattan heuristic. Negative estimates are
// treated as 0. Panics on nil.
func WithHeuristic(h Heuristic) Option {
	if h == nil {
		panic("astar: WithHeuristic(nil)")
	}
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithMaxExpansions caps the number of expanded Cells. Panics on negative n;
// 0 removes the cap.
func WithMaxExpansions(n int) Option {
	if n < 0 {
		panic("astar: WithMaxExpansions(n<0)")
	}
	return func(o *Options) {
		o.MaxExpansions = n
	}
}
