package search

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"sync"

	"github.com/poiesic/casematch/core"
	"github.com/poiesic/casematch/index"
	"github.com/poiesic/casematch/kb"
)

// evidenceSource tags every breadcrumb emitted by the searcher.
const evidenceSource = "dataset"

// DefaultTopK is the number of results returned when callers have no
// preference.
const DefaultTopK = 3

// Searcher provides top-K lexical similarity search over the knowledge base.
// The index is built lazily on first use and reused for the process
// lifetime; see Invalidate for the explicit rebuild hook.
type Searcher struct {
	loader   *kb.Loader
	builder  *index.Builder
	recorder Recorder
	logger   *slog.Logger

	mu      sync.Mutex
	built   bool
	records []core.CaseRecord
	idx     *index.Index // nil when the corpus is empty
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithRecorder sets the evidence sink receiving one breadcrumb per search.
// Default is a no-op recorder.
func WithRecorder(recorder Recorder) Option {
	return func(s *Searcher) error {
		if recorder == nil {
			recorder = &noopRecorder{}
		}
		s.recorder = recorder
		return nil
	}
}

// WithBuilder sets a custom index builder, e.g. one with a smaller
// vocabulary cap or pool size.
func WithBuilder(builder *index.Builder) Option {
	return func(s *Searcher) error {
		if builder != nil {
			s.builder = builder
		}
		return nil
	}
}

// NewSearcher creates a new searcher over the given knowledge base loader.
func NewSearcher(loader *kb.Loader, opts ...Option) (*Searcher, error) {
	if loader == nil {
		return nil, ErrLoaderRequired
	}

	builder, err := index.NewBuilder()
	if err != nil {
		return nil, err
	}

	s := &Searcher{
		loader:   loader,
		builder:  builder,
		recorder: &noopRecorder{},
		logger:   slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search returns the topK rows most similar to the query, highest score
// first. Scores are cosine similarities in [0,1] rounded to 3 decimals.
// Fewer than topK results are returned when the corpus is smaller; an empty
// corpus yields an empty slice. topK below 1 fails fast.
func (s *Searcher) Search(ctx context.Context, query string, topK int) ([]*core.SearchResult, error) {
	return s.SearchWithMonitor(ctx, query, topK, nil)
}

// SearchWithMonitor is Search with observation hooks for each stage.
func (s *Searcher) SearchWithMonitor(ctx context.Context, query string, topK int, monitor SearchMonitor) ([]*core.SearchResult, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	if err := core.ValidateTopK(topK); err != nil {
		return nil, err
	}

	monitor.Start(query)

	records, idx, err := s.ensureBuilt(ctx)
	if err != nil {
		return nil, err
	}
	monitor.AfterBuild(statsOf(records, idx))

	if idx == nil {
		s.recorder.Record(evidenceSource, "0 similar cases")
		results := []*core.SearchResult{}
		monitor.Finish(results)
		return results, nil
	}

	scores := idx.Scores(query)

	// Stable sort on score descending keeps ties in original row order.
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	if topK > len(order) {
		topK = len(order)
	}

	results := make([]*core.SearchResult, 0, topK)
	for _, row := range order[:topK] {
		results = append(results, &core.SearchResult{
			Record: &records[row],
			Score:  roundScore(scores[row]),
		})
	}

	s.recorder.Record(evidenceSource,
		fmt.Sprintf("%d similar cases", len(results)))
	monitor.Finish(results)

	return results, nil
}

// Stats reports the corpus row count and how many rows are indexed.
// Triggers the same build-on-first-use as Search.
func (s *Searcher) Stats(ctx context.Context) (core.Stats, error) {
	records, idx, err := s.ensureBuilt(ctx)
	if err != nil {
		return core.Stats{}, err
	}
	return statsOf(records, idx), nil
}

// Invalidate clears the built state so the next Search or Stats call
// reloads the source and rebuilds the index. Intended for administrative
// hot swaps of the knowledge base; normal operation never needs it.
func (s *Searcher) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.built = false
	s.records = nil
	s.idx = nil
}

// ensureBuilt loads the corpus and builds the index exactly once.
// Concurrent cold-start callers block on the mutex and observe the finished
// build. An empty corpus leaves the index unset and is re-attempted on the
// next call, so a knowledge base that appears later is still picked up.
func (s *Searcher) ensureBuilt(ctx context.Context) ([]core.CaseRecord, *index.Index, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.built {
		return s.records, s.idx, nil
	}

	records := s.loader.Load(ctx)
	if len(records) == 0 {
		return nil, nil, nil
	}

	idx, err := s.builder.Build(recordPointers(records))
	if err != nil {
		return nil, nil, err
	}

	s.records = records
	s.idx = idx
	s.built = true
	s.logger.Info("knowledge base indexed",
		"rows", len(records),
		"vocabulary", idx.VocabularySize())

	return s.records, s.idx, nil
}

func recordPointers(records []core.CaseRecord) []*core.CaseRecord {
	out := make([]*core.CaseRecord, len(records))
	for i := range records {
		out[i] = &records[i]
	}
	return out
}

func statsOf(records []core.CaseRecord, idx *index.Index) core.Stats {
	stats := core.Stats{Rows: len(records)}
	if idx != nil {
		stats.Indexed = idx.Rows()
	}
	return stats
}

// roundScore clamps a cosine similarity into [0,1] and rounds it to
// 3 decimal places.
func roundScore(score float64) float64 {
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return math.Round(score*1000) / 1000
}
