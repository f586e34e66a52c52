// ============================================================================
// whilec - WHILE Language Toolchain
// ============================================================================
//
// Package:     oracle
// Description: Accept/reject membership oracle over WHILE inputs
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package oracle

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/whilec/foundation/core/error"
	mdwlog "github.com/msto63/whilec/foundation/core/log"
	"github.com/msto63/whilec/foundation/while"

	"github.com/msto63/whilec/internal/oracle/store"
	"github.com/msto63/whilec/pkg/core/cache"
)

// Source tells where a verdict came from
type Source string

const (
	SourceParser Source = "parser"
	SourceCache  Source = "cache"
	SourceStore  Source = "store"
)

// Verdict is the oracle's answer for one input
type Verdict struct {
	store.Verdict `yaml:",inline"`

	Source        Source `json:"source" yaml:"source"`
	CorrelationID string `json:"correlation_id,omitempty" yaml:"correlation_id,omitempty"`
}

// Stats counts oracle calls by the layer that answered them
type Stats struct {
	Calls     int64
	CacheHits int64
	StoreHits int64
	Parses    int64
	Accepted  int64
	Rejected  int64
}

// Config holds oracle configuration
type Config struct {
	Engine *while.Engine
	Cache  cache.Config
	// Store persists verdicts across runs; nil keeps them in memory only
	Store  store.VerdictStore
	Logger *mdwlog.Logger
}

// Oracle answers whether inputs belong to the WHILE language. Answers are
// cached in memory and, when a store is configured, persisted.
type Oracle struct {
	engine *while.Engine
	cache  *cache.Cache[store.Verdict]
	store  store.VerdictStore
	logger *mdwlog.Logger
	// scope ties keys to the engine limits a verdict was decided under
	scope string

	mu    sync.Mutex
	stats Stats
}

// New creates a new oracle
func New(cfg Config) *Oracle {
	if cfg.Logger == nil {
		cfg.Logger = mdwlog.GetDefault()
	}
	if cfg.Engine == nil {
		cfg.Engine = while.New(while.Options{Logger: cfg.Logger})
	}
	maxLen, maxDepth := cfg.Engine.Limits()
	return &Oracle{
		scope:  fmt.Sprintf("max_input_length=%d,max_depth=%d", maxLen, maxDepth),
		engine: cfg.Engine,
		cache:  cache.New[store.Verdict](cfg.Cache),
		store:  cfg.Store,
		logger: cfg.Logger.WithField("component", "oracle"),
	}
}

// Check decides whether input is a WHILE program. A rejected input is a
// verdict, not an error; errors report cancellation or internal failures.
func (o *Oracle) Check(ctx context.Context, input string) (Verdict, error) {
	corrID := while.CorrelationID(ctx)
	if corrID == "" {
		corrID = uuid.New().String()
		ctx = while.WithCorrelationID(ctx, corrID)
	}
	logger := o.logger.WithCorrelationID(corrID)
	key := cache.Key(input, o.scope)

	o.count(func(s *Stats) { s.Calls++ })

	src := SourceCache
	v, err := o.cache.GetOrSet(key, func() (store.Verdict, error) {
		if v, ok := o.lookup(ctx, key, logger); ok {
			src = SourceStore
			return v, nil
		}
		v, err := o.decide(ctx, key, input)
		if err != nil {
			return v, err
		}
		src = SourceParser
		o.persist(ctx, &v, logger)
		return v, nil
	})
	if err != nil {
		return Verdict{}, err
	}

	switch src {
	case SourceCache:
		o.count(func(s *Stats) { s.CacheHits++ })
	case SourceStore:
		o.count(func(s *Stats) { s.StoreHits++ })
	case SourceParser:
		o.count(func(s *Stats) { s.Parses++ })
	}
	logger.Debug("verdict from "+string(src), mdwlog.Fields{"key": key[:12], "accepted": v.Accepted, "code": v.Code})
	return o.answer(v, src, corrID), nil
}

// lookup reads a persisted verdict. Store failures degrade to a miss.
func (o *Oracle) lookup(ctx context.Context, key string, logger *mdwlog.Logger) (store.Verdict, bool) {
	if o.store == nil {
		return store.Verdict{}, false
	}
	v, err := o.store.Get(ctx, key)
	if err != nil {
		logger.WarnWithErr("verdict store lookup failed", err)
		return store.Verdict{}, false
	}
	if v == nil {
		return store.Verdict{}, false
	}
	return *v, true
}

func (o *Oracle) persist(ctx context.Context, v *store.Verdict, logger *mdwlog.Logger) {
	if o.store == nil {
		return
	}
	if err := o.store.Save(ctx, v); err != nil {
		logger.WarnWithErr("verdict store save failed", err)
	}
}

// Accepts is a convenience wrapper reporting only the verdict
func (o *Oracle) Accepts(ctx context.Context, input string) (bool, error) {
	v, err := o.Check(ctx, input)
	return v.Accepted, err
}

// decide runs the parser and turns the outcome into a verdict
func (o *Oracle) decide(ctx context.Context, key, input string) (store.Verdict, error) {
	v := store.Verdict{
		ID:        uuid.New().String(),
		Key:       key,
		Length:    len(input),
		CheckedAt: time.Now().UTC(),
	}

	err := o.engine.Validate(ctx, input)
	if err == nil {
		v.Accepted = true
		return v, nil
	}

	code := mdwerror.GetCode(err)
	if !code.IsParseFailure() {
		return store.Verdict{}, err
	}
	v.Code = code.String()
	v.Message = err.Error()
	return v, nil
}

func (o *Oracle) answer(v store.Verdict, src Source, corrID string) Verdict {
	if v.Accepted {
		o.count(func(s *Stats) { s.Accepted++ })
	} else {
		o.count(func(s *Stats) { s.Rejected++ })
	}
	return Verdict{Verdict: v, Source: src, CorrelationID: corrID}
}

func (o *Oracle) count(fn func(*Stats)) {
	o.mu.Lock()
	fn(&o.stats)
	o.mu.Unlock()
}

// Stats returns a snapshot of the call counters
func (o *Oracle) Stats() Stats {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.stats
}

// CacheStats returns the in-memory cache statistics
func (o *Oracle) CacheStats() cache.Stats {
	return o.cache.Stats()
}

// Close releases the cache and the store
func (o *Oracle) Close() error {
	o.cache.Close()
	if o.store != nil {
		return o.store.Close()
	}
	return nil
}
