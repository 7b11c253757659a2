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


// Package index builds the sparse lexical vector index over case records.
//
// The index is a TF-IDF weighted term-document matrix over unigrams and
// bigrams of the records' concatenated text. Document vectors are
// L2-normalized at build time so that cosine similarity against a
// normalized query vector reduces to a sparse dot product.
//
// An Index is immutable once built. Queries are vectorized with the same
// fitted vocabulary and inverse-document-frequency weights as the corpus;
// the vocabulary is never re-fit per query, which keeps query and document
// scores comparable.
package index
