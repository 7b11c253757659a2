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
	"math"
	"sort"
)

// DefaultMaxFeatures bounds the vocabulary size to keep index memory
// proportional to the corpus rather than to its term combinatorics.
const DefaultMaxFeatures = 30000

// Model holds the fitted vocabulary and inverse-document-frequency weights.
// A Model is immutable after Fit and safe for concurrent Transform calls.
type Model struct {
	vocab map[string]int
	idf   []float64
}

// fitModel builds a Model from per-document term lists.
//
// Every term is kept (minimum document frequency 1). When the vocabulary
// exceeds maxFeatures, the terms with the highest corpus frequency are
// retained, ties broken alphabetically, so the cap is deterministic.
// IDF is smoothed: idf(t) = ln((1+N)/(1+df(t))) + 1.
func fitModel(docTerms [][]string, maxFeatures int) *Model {
	df := make(map[string]int)
	counts := make(map[string]int)
	for _, terms := range docTerms {
		seen := make(map[string]struct{}, len(terms))
		for _, t := range terms {
			counts[t]++
			seen[t] = struct{}{}
		}
		for t := range seen {
			df[t]++
		}
	}

	vocabTerms := make([]string, 0, len(counts))
	for t := range counts {
		vocabTerms = append(vocabTerms, t)
	}

	if maxFeatures > 0 && len(vocabTerms) > maxFeatures {
		sort.Slice(vocabTerms, func(i, j int) bool {
			a, b := vocabTerms[i], vocabTerms[j]
			if counts[a] != counts[b] {
				return counts[a] > counts[b]
			}
			return a < b
		})
		vocabTerms = vocabTerms[:maxFeatures]
	}
	// Column order is alphabetical so the fitted model is reproducible.
	sort.Strings(vocabTerms)

	n := len(docTerms)
	vocab := make(map[string]int, len(vocabTerms))
	idf := make([]float64, len(vocabTerms))
	for col, t := range vocabTerms {
		vocab[t] = col
		idf[col] = math.Log(float64(1+n)/float64(1+df[t])) + 1
	}

	return &Model{vocab: vocab, idf: idf}
}

// VocabularySize returns the number of fitted terms.
func (m *Model) VocabularySize() int {
	return len(m.vocab)
}

// Transform vectorizes text with the fitted vocabulary and IDF weights and
// L2-normalizes the result. Terms outside the vocabulary are ignored; text
// with no known terms yields an empty vector.
func (m *Model) Transform(text string) Vector {
	return m.transformTerms(Terms(text))
}

func (m *Model) transformTerms(terms []string) Vector {
	tf := make(map[int]int)
	for _, t := range terms {
		if col, ok := m.vocab[t]; ok {
			tf[col]++
		}
	}
	if len(tf) == 0 {
		return nil
	}

	vec := make(Vector, 0, len(tf))
	for col, count := range tf {
		vec = append(vec, entry{term: col, weight: float64(count) * m.idf[col]})
	}
	sort.Slice(vec, func(i, j int) bool { return vec[i].term < vec[j].term })
	vec.Normalize()
	return vec
}
