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


// Package kb loads the triage knowledge base from a CSV source.
//
// The loader resolves a location descriptor to a local file: if the
// configured local path exists it is used as-is, otherwise a single
// best-effort download of the remote object is attempted. Loading is
// deliberately forgiving — a missing file, a failed fetch, or unparseable
// rows all degrade to an empty corpus rather than an error, because
// retrieval is best-effort and never load-bearing for the caller.
//
// Column names are flexible: each semantic field accepts several
// case-insensitive aliases (condition/disease/name, symptoms/symptom/
// features, advice/self_care/recommendations, url/link/source), so
// knowledge bases exported from different systems load without
// preprocessing.
package kb
