package core

import (
	"encoding/binary"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// CaseRecord is one knowledge base entry: a historical patient/doctor case
// consisting of a condition label, a free-text symptom description, and the
// self-care guidance attached to the case.
type CaseRecord struct {
	Id        ID
	Condition string // Condition or topic label (e.g. "Strep throat"); may be empty
	Symptoms  string // Free-text description of the patient's complaint
	Advice    string // Free-text self-care or clinician guidance
	URL       string // Optional source/reference link; empty means absent
}

// Text returns the concatenated free-text fields used for indexing.
// The separator keeps field boundaries visible in evidence output.
func (r *CaseRecord) Text() string {
	return r.Condition + " | " + r.Symptoms + " | " + r.Advice
}

// IsBlank reports whether all three indexable text fields are empty after
// trimming. Blank records are dropped during load and never indexed.
func (r *CaseRecord) IsBlank() bool {
	return strings.TrimSpace(r.Condition) == "" &&
		strings.TrimSpace(r.Symptoms) == "" &&
		strings.TrimSpace(r.Advice) == ""
}

// SearchResult is one similarity hit with its cosine score.
// Score is in [0,1], rounded to 3 decimals, monotonic with relevance.
type SearchResult struct {
	Record *CaseRecord
	Score  float64
}

// Stats reports corpus introspection counts.
// Indexed is 0 when the index was never built (empty source), otherwise it
// equals Rows.
type Stats struct {
	Rows    int
	Indexed int
}
