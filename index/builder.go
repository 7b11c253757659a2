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


package index

import (
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/casematch/core"
)

// Builder assembles an Index from case records.
// Tokenization and vectorization run concurrently on a worker pool; the
// fitted model itself is computed once, sequentially, so the result is
// deterministic regardless of pool size.
type Builder struct {
	maxFeatures int
	poolSize    int
	logger      *slog.Logger
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder) error

// WithMaxFeatures sets the vocabulary size cap.
// Default is DefaultMaxFeatures.
func WithMaxFeatures(n int) BuilderOption {
	return func(b *Builder) error {
		if n < 1 {
			return ErrInvalidMaxFeatures
		}
		b.maxFeatures = n
		return nil
	}
}

// WithPoolSize sets the worker pool size for concurrent vectorization.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) BuilderOption {
	return func(b *Builder) error {
		if size < 1 {
			size = 1
		}
		b.poolSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) BuilderOption {
	return func(b *Builder) error {
		if logger == nil {
			logger = slog.Default()
		}
		b.logger = logger
		return nil
	}
}

// NewBuilder creates a new index builder.
func NewBuilder(opts ...BuilderOption) (*Builder, error) {
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	b := &Builder{
		maxFeatures: DefaultMaxFeatures,
		poolSize:    poolSize,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// Build fits the TF-IDF model over the records and assembles the document
// matrix. An empty record slice yields a nil index, not an error; callers
// must treat the empty corpus as a valid degenerate state.
func (b *Builder) Build(records []*core.CaseRecord) (*Index, error) {
	if len(records) == 0 {
		return nil, nil
	}

	pool, err := ants.NewPool(b.poolSize)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	// Tokenize every record up front so the model fit sees each document
	// exactly once. Each worker writes only its own slot.
	docTerms := make([][]string, len(records))
	var wg sync.WaitGroup
	for i := range records {
		wg.Add(1)
		task := func(i int) func() {
			return func() {
				defer wg.Done()
				docTerms[i] = Terms(records[i].Text())
			}
		}(i)
		if submitErr := pool.Submit(task); submitErr != nil {
			// Pool rejected the task; run it on the caller.
			task()
		}
	}
	wg.Wait()

	model := fitModel(docTerms, b.maxFeatures)

	docs := make([]Vector, len(records))
	for i := range records {
		wg.Add(1)
		task := func(i int) func() {
			return func() {
				defer wg.Done()
				docs[i] = model.transformTerms(docTerms[i])
			}
		}(i)
		if submitErr := pool.Submit(task); submitErr != nil {
			task()
		}
	}
	wg.Wait()

	b.logger.Debug("index built",
		"rows", len(records),
		"vocabulary", model.VocabularySize())

	return &Index{model: model, docs: docs}, nil
}

// Index is the built search structure: the fitted model plus one normalized
// document vector per indexed record. It is immutable once returned by
// Build and safe for concurrent reads.
type Index struct {
	model *Model
	docs  []Vector
}

// Rows returns the number of indexed records.
func (idx *Index) Rows() int {
	return len(idx.docs)
}

// VocabularySize returns the number of fitted vocabulary terms.
func (idx *Index) VocabularySize() int {
	return idx.model.VocabularySize()
}

// Scores vectorizes the query with the fitted model and returns the cosine
// similarity against every indexed row, in row order. A query sharing no
// vocabulary with the corpus scores 0.0 everywhere.
func (idx *Index) Scores(query string) []float64 {
	q := idx.model.Transform(query)
	scores := make([]float64, len(idx.docs))
	if len(q) == 0 {
		return scores
	}
	for i, doc := range idx.docs {
		// Both vectors are unit length, so the dot product is the cosine.
		scores[i] = q.Dot(doc)
	}
	return scores
}
