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


package core

import "fmt"

// ValidateCaseRecord validates a CaseRecord according to domain rules.
//
// Validation rules:
//   - At least one of Condition, Symptoms, Advice must be non-blank
//
// NOT validated:
//   - URL (optional, any value accepted)
//   - ID (0 is valid before content hashing runs)
func ValidateCaseRecord(record *CaseRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidCaseRecord)
	}

	if record.IsBlank() {
		return fmt.Errorf("%w: %w", ErrInvalidCaseRecord, ErrBlankRecord)
	}

	return nil
}

// ValidateTopK validates a top-K request parameter.
// Values below 1 are a programming-contract violation and fail fast rather
// than being silently coerced.
func ValidateTopK(topK int) error {
	if topK < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidTopK, topK)
	}
	return nil
}
