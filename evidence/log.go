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


// Package evidence collects one-line breadcrumbs describing how answers
// were produced, for display in an evidence panel. The log is an
// append-only in-memory buffer drained by the rendering layer via Snapshot.
package evidence

import "sync"

// Item is one breadcrumb: a source tag plus a short human-readable detail.
type Item struct {
	Source string
	Detail string
}

// Log is a thread-safe in-memory breadcrumb buffer.
// The zero value is not usable; create one with NewLog.
type Log struct {
	mu    sync.Mutex
	items []Item
}

// NewLog creates an empty evidence log.
func NewLog() *Log {
	return &Log{}
}

// Record appends a breadcrumb. Safe for concurrent use.
func (l *Log) Record(source, detail string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append(l.items, Item{Source: source, Detail: detail})
}

// Snapshot returns the accumulated breadcrumbs in insertion order.
// When clear is true the buffer is drained, so each breadcrumb is rendered
// at most once.
func (l *Log) Snapshot(clear bool) []Item {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Item, len(l.items))
	copy(out, l.items)
	if clear {
		l.items = l.items[:0]
	}
	return out
}

// Len returns the number of buffered breadcrumbs.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}
