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


package kb

import "errors"

var (
	// ErrConfigRequired is returned when a Config is not provided.
	ErrConfigRequired = errors.New("kb config required")

	// ErrFetchFailed indicates the remote object could not be downloaded.
	// The loader absorbs this error into its empty-corpus contract; it is
	// surfaced only in logs.
	ErrFetchFailed = errors.New("knowledge base fetch failed")
)
