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

//go:build linux

package memio

import "testing"

// S4 / property 5: RemoteReader latches idempotently to whichever
// strategy first transfers a non-zero number of bytes, and never calls
// the other strategy again.
func TestRemoteReaderLatchesToFirstSuccess(t *testing.T) {
	var aCalls, bCalls int
	r := &RemoteReader{
		pid: 1234,
		tryA: func(pid int, addr uint64, dst []byte, size int) int {
			aCalls++
			return 4
		},
		tryB: func(pid int, addr uint64, dst []byte, size int) int {
			bCalls++
			return 0
		},
	}

	dst := make([]byte, 4)
	if n := r.Read(0x1000, dst, 4); n != 4 {
		t.Fatalf("first Read = %d, want 4", n)
	}
	if aCalls != 1 || bCalls != 0 {
		t.Fatalf("after first Read: aCalls=%d bCalls=%d, want 1,0", aCalls, bCalls)
	}

	for i := 0; i < 3; i++ {
		r.Read(0x1000, dst, 4)
	}
	if aCalls != 4 || bCalls != 0 {
		t.Fatalf("after 4 Reads total: aCalls=%d bCalls=%d, want 4,0 (B never invoked once A latches)", aCalls, bCalls)
	}
}

func TestRemoteReaderFallsBackToSecondStrategy(t *testing.T) {
	var aCalls, bCalls int
	r := &RemoteReader{
		pid: 1234,
		tryA: func(pid int, addr uint64, dst []byte, size int) int {
			aCalls++
			return 0
		},
		tryB: func(pid int, addr uint64, dst []byte, size int) int {
			bCalls++
			return 2
		},
	}

	dst := make([]byte, 4)
	if n := r.Read(0x1000, dst, 4); n != 2 {
		t.Fatalf("Read = %d, want 2", n)
	}
	if aCalls != 1 || bCalls != 1 {
		t.Fatalf("aCalls=%d bCalls=%d, want 1,1", aCalls, bCalls)
	}

	r.Read(0x1000, dst, 4)
	if aCalls != 1 || bCalls != 2 {
		t.Fatalf("after second Read: aCalls=%d bCalls=%d, want 1,2 (A never retried once B latches)", aCalls, bCalls)
	}
}

func TestRemoteReaderRetriesWhenBothFail(t *testing.T) {
	var aCalls, bCalls int
	r := &RemoteReader{
		pid: 1234,
		tryA: func(pid int, addr uint64, dst []byte, size int) int {
			aCalls++
			return 0
		},
		tryB: func(pid int, addr uint64, dst []byte, size int) int {
			bCalls++
			return 0
		},
	}

	dst := make([]byte, 4)
	r.Read(0x1000, dst, 4)
	r.Read(0x1000, dst, 4)
	if aCalls != 2 || bCalls != 2 {
		t.Fatalf("aCalls=%d bCalls=%d, want 2,2 (both retried every call while unset)", aCalls, bCalls)
	}
}
