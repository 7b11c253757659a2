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


// Package search answers top-K lexical similarity queries over the triage
// knowledge base.
//
// The Searcher owns the lazily built index: the first Search or Stats call
// loads the knowledge base and fits the TF-IDF model, and every later call
// reuses that index for the lifetime of the process. The build-once
// transition is guarded by a mutex so concurrent cold-start callers
// coalesce instead of double-building or observing a half-built index.
//
// Results are ranked by cosine similarity, ties broken by original row
// order. Each search emits one evidence breadcrumb summarizing the result
// count.
package search
