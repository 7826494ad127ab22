package singine

import (
	"github.com/hupe1980/singine/codec"
	"github.com/hupe1980/singine/identity"
)

type options struct {
	codec    codec.Codec
	logger   *Logger
	metrics  MetricsCollector
	counters identity.CounterStore
}

// Option configures Engine construction.
type Option func(*options)

// WithCodec configures the codec used for the persisted path column and for
// report serialization.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithLogger configures the structured logger. If nil is passed, logging is
// disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures metrics collection. If nil is passed, the
// no-op collector is used.
func WithMetricsCollector(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}

// WithCounterStore overrides the inode counter backing identifier minting.
// By default the engine's own SQLite store carries the counter; deployments
// whose processes do not share a database file can point minting at a shared
// store instead (e.g. dynamo.CounterStore).
func WithCounterStore(cs identity.CounterStore) Option {
	return func(o *options) {
		if cs != nil {
			o.counters = cs
		}
	}
}

// queryOptions configure one ShortestPath invocation.
type queryOptions struct {
	edgeType string
	runID    string
}

// QueryOption configures a single shortest-path query.
type QueryOption func(*queryOptions)

// WithEdgeType constrains the loaded edge snapshot to one edge type
// (exact match).
func WithEdgeType(edgeType string) QueryOption {
	return func(o *queryOptions) {
		o.edgeType = edgeType
	}
}

// WithRunID correlates the persisted result row with a pipeline run.
func WithRunID(runID string) QueryOption {
	return func(o *queryOptions) {
		o.runID = runID
	}
}
