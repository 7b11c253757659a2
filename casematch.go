// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package casematch surfaces similar historical cases during healthcare
// triage. It loads a CSV knowledge base of case records, builds a TF-IDF
// lexical index lazily on first use, and answers top-K cosine-similarity
// queries. The Engine is the assembled entry point; the kb, index, search
// and evidence packages hold the individual pieces.
package casematch

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/poiesic/casematch/core"
	"github.com/poiesic/casematch/evidence"
	"github.com/poiesic/casematch/index"
	"github.com/poiesic/casematch/kb"
	"github.com/poiesic/casematch/search"
)

// Engine wires a knowledge base loader, a lazily built lexical index, and
// an evidence log into one case-matching unit.
type Engine struct {
	loader   *kb.Loader
	searcher *search.Searcher
	evidence *evidence.Log
	logger   *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	logger      *slog.Logger
	maxFeatures int
}

// WithLogger sets a custom logger for every component.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) EngineOption {
	return func(o *engineOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMaxFeatures caps the index vocabulary size.
// Default is index.DefaultMaxFeatures.
func WithMaxFeatures(n int) EngineOption {
	return func(o *engineOptions) {
		o.maxFeatures = n
	}
}

// New creates an Engine over the given knowledge base configuration.
// Nothing is loaded yet; the index is built on the first Search or Stats
// call.
func New(cfg *kb.Config, opts ...EngineOption) (*Engine, error) {
	// Apply options
	options := &engineOptions{
		logger:      slog.Default(),
		maxFeatures: index.DefaultMaxFeatures,
	}
	for _, opt := range opts {
		opt(options)
	}

	loader, err := kb.NewLoader(cfg, kb.WithLogger(options.logger))
	if err != nil {
		return nil, err
	}

	builder, err := index.NewBuilder(
		index.WithMaxFeatures(options.maxFeatures),
		index.WithLogger(options.logger),
	)
	if err != nil {
		return nil, err
	}

	log := evidence.NewLog()
	searcher, err := search.NewSearcher(loader,
		search.WithBuilder(builder),
		search.WithRecorder(log),
		search.WithLogger(options.logger),
	)
	if err != nil {
		return nil, err
	}

	return &Engine{
		loader:   loader,
		searcher: searcher,
		evidence: log,
		logger:   options.logger,
	}, nil
}

// Search returns the topK most similar case records for a free-text query.
func (e *Engine) Search(ctx context.Context, query string, topK int) ([]*core.SearchResult, error) {
	return e.searcher.Search(ctx, query, topK)
}

// Stats reports corpus row and indexed counts.
func (e *Engine) Stats(ctx context.Context) (core.Stats, error) {
	return e.searcher.Stats(ctx)
}

// Searcher returns the underlying searcher.
func (e *Engine) Searcher() *search.Searcher {
	return e.searcher
}

// Evidence returns the evidence log fed by searches.
func (e *Engine) Evidence() *evidence.Log {
	return e.evidence
}

// Reload points the engine at a new remote knowledge base object and
// invalidates the index: the materialized local copy is removed and the
// next query downloads and indexes the new source. Administrative
// operation; not safe to call concurrently with Search or Stats.
func (e *Engine) Reload(remoteURL string) error {
	if remoteURL == "" {
		return errors.New("reload: remote URL required")
	}

	cfg := e.loader.Config()
	cfg.RemoteURL = remoteURL
	if err := os.Remove(cfg.LocalPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	e.searcher.Invalidate()
	e.logger.Info("knowledge base reload scheduled", "url", remoteURL)
	return nil
}
