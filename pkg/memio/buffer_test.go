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

package memio

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// S1: BufferReader over {0x41, 0x42, 0x43, 0x44}.
func TestBufferReaderS1(t *testing.T) {
	r := NewBufferReader([]byte{0x41, 0x42, 0x43, 0x44})

	dst := make([]byte, 10)
	if n := r.Read(1, dst, 10); n != 3 {
		t.Fatalf("Read(1, _, 10) = %d, want 3", n)
	}
	if diff := cmp.Diff([]byte{0x42, 0x43, 0x44}, dst[:3]); diff != "" {
		t.Errorf("unexpected prefix (-want +got):\n%s", diff)
	}

	if n := r.Read(4, dst, 1); n != 0 {
		t.Fatalf("Read(4, _, 1) = %d, want 0", n)
	}
}

func TestBufferReaderExactAndPastEnd(t *testing.T) {
	r := NewBufferReader([]byte{1, 2, 3})
	dst := make([]byte, 3)
	if n := r.Read(0, dst, 3); n != 3 {
		t.Fatalf("Read(0,_,3) = %d, want 3", n)
	}
	if n := r.Read(3, dst, 1); n != 0 {
		t.Fatalf("Read at end = %d, want 0", n)
	}
	if n := r.Read(100, dst, 1); n != 0 {
		t.Fatalf("Read past end = %d, want 0", n)
	}
}
