// Package shortestpath defines the configuration options and sentinel
// errors for the Dijkstra implementation.
package shortestpath

import (
	"errors"
	"math"
)

// Unreachable is the distance reported for vertices no path reaches.
const Unreachable = int64(math.MaxInt64)

// Sentinel errors returned by Dijkstra.
var (
	// ErrEmptySource indicates that no source vertex ID was provided.
	ErrEmptySource = errors.New("shortestpath: source vertex ID is empty")

	// ErrNilGraph indicates that a nil adjacency list was passed in.
	ErrNilGraph = errors.New("shortestpath: graph is nil")

	// ErrSourceNotFound indicates that the source vertex does not exist in
	// the given graph.
	ErrSourceNotFound = errors.New("shortestpath: source vertex not found in graph")

	// ErrNegativeWeight indicates that an arc with negative weight was
	// detected; Dijkstra's greedy invariant does not survive them.
	ErrNegativeWeight = errors.New("shortestpath: negative arc weight encountered")

	// ErrBadMaxDistance reports a negative MaxDistance. WithMaxDistance
	// panics with this message: the threshold is static configuration.
	ErrBadMaxDistance = errors.New("shortestpath: MaxDistance must be non-negative")

	// ErrBadInfThreshold reports a non-positive InfArcThreshold, which
	// would make every arc (including zero-weight ones) impassable.
	ErrBadInfThreshold = errors.New("shortestpath: InfArcThreshold must be positive")
)

// Options configures a Dijkstra run.
//
// Source          – starting vertex ID (must be non-empty and present).
// ReturnPath      – if true, return the predecessor map; nil otherwise.
// MaxDistance     – cap on distances to explore; must be ≥ 0.
// InfArcThreshold – arcs with weight ≥ this are impassable; must be > 0.
type Options struct {
	Source          string // the ID of the source vertex
	ReturnPath      bool   // whether to return the predecessor map
	MaxDistance     int64  // maximum distance to explore
	InfArcThreshold int64  // weight threshold above which arcs are walls
}

// Option is a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID. Required.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithReturnPath enables the predecessor map in the result.
// If unset (default), the predecessor map is nil.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance caps exploration: vertices whose shortest distance would
// exceed max are never settled. Panics on a negative value.
// Default is math.MaxInt64 (no cap).
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfArcThreshold treats arcs with weight ≥ threshold as impassable
// walls. Panics on a non-positive value.
// Default is math.MaxInt64 (no walls).
func WithInfArcThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfArcThreshold = threshold
	}
}

// DefaultOptions returns Options initialized with sensible defaults for the
// given source vertex; functional options override from there.
func DefaultOptions(source string) Options {
	return Options{
		Source:          source,
		ReturnPath:      false,
		MaxDistance:     math.MaxInt64,
		InfArcThreshold: math.MaxInt64,
	}
}
