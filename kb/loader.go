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

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/poiesic/casematch/core"
)

// Loader produces case records from a CSV knowledge base source.
type Loader struct {
	cfg    *Config
	client *http.Client
	logger *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) error {
		if logger == nil {
			logger = slog.Default()
		}
		l.logger = logger
		return nil
	}
}

// WithHTTPClient sets the HTTP client used for the remote fetch.
// Default is a client bounded by the configured FetchTimeout.
func WithHTTPClient(client *http.Client) Option {
	return func(l *Loader) error {
		if client != nil {
			l.client = client
		}
		return nil
	}
}

// NewLoader creates a new knowledge base loader.
func NewLoader(cfg *Config, opts ...Option) (*Loader, error) {
	if cfg == nil {
		return nil, ErrConfigRequired
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	l := &Loader{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.FetchTimeout},
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// Config returns the loader's source configuration.
func (l *Loader) Config() *Config {
	return l.cfg
}

// Load reads the knowledge base and returns its case records in source
// order. Records have every field trimmed, rows with all text fields blank
// are dropped, and each record gets a deterministic content-derived ID.
//
// Load never returns an error: a missing source, a failed fetch, or an
// unreadable file all yield an empty slice. Downstream components must
// treat the empty corpus as a valid, if degenerate, state.
func (l *Loader) Load(ctx context.Context) []core.CaseRecord {
	path := l.ensureLocal(ctx)
	if path == "" {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		l.logger.Warn("knowledge base unreadable", "path", path, "err", err)
		return nil
	}
	defer f.Close()

	return l.parse(f)
}

// ensureLocal resolves the source to a local file path, downloading the
// remote object once if the local copy is absent. Returns "" when no source
// can be obtained.
func (l *Loader) ensureLocal(ctx context.Context) string {
	if _, err := os.Stat(l.cfg.LocalPath); err == nil {
		return l.cfg.LocalPath
	}

	if l.cfg.RemoteURL == "" {
		l.logger.Warn("knowledge base unavailable",
			"path", l.cfg.LocalPath)
		return ""
	}

	if err := fetchRemote(ctx, l.client, l.cfg.RemoteURL, l.cfg.LocalPath); err != nil {
		l.logger.Warn("knowledge base fetch failed",
			"url", l.cfg.RemoteURL, "err", err)
		return ""
	}

	l.logger.Info("knowledge base downloaded",
		"url", l.cfg.RemoteURL, "path", l.cfg.LocalPath)
	return l.cfg.LocalPath
}

// parse reads CSV rows with flexible column naming.
func (l *Loader) parse(r io.Reader) []core.CaseRecord {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		l.logger.Warn("knowledge base header unreadable", "err", err)
		return nil
	}
	cols := resolveColumns(header)

	var records []core.CaseRecord
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Skip the malformed line and keep going; a single bad row
			// must not cost the rest of the corpus.
			l.logger.Warn("skipping malformed row", "err", err)
			continue
		}

		record := core.CaseRecord{
			Condition: field(row, cols.condition),
			Symptoms:  field(row, cols.symptoms),
			Advice:    field(row, cols.advice),
			URL:       field(row, cols.url),
		}
		if record.IsBlank() {
			continue
		}
		record.Id = core.IDFromContent(record.Text())
		records = append(records, record)
	}

	return records
}
