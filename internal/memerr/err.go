// Copyright 2026 The gomemio Authors.
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

// Package memerr holds the error type used for Init-time OS-call failures
// inside the memory-access layer. Per-read failures never use this type:
// they fold into a short byte count, as required by the layer's contract.
package memerr

import "fmt"

// OpError describes a failed OS call made while constructing a reader
// (open, fstat, mmap). It wraps the underlying error so
// callers can still errors.Is/As against it.
type OpError struct {
	Op   string // e.g. "open", "fstat", "mmap"
	Path string // file path or other operand; may be empty
	Err  error
}

func (e *OpError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("memio: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("memio: %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes the underlying error for errors.Is/As.
func (e *OpError) Unwrap() error { return e.Err }

// New constructs an *OpError.
func New(op, path string, err error) *OpError {
	return &OpError{Op: op, Path: path, Err: err}
}
