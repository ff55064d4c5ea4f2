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
	"os"
	"testing"
)

func TestCreateProcessMemorySelectsLocalForSelf(t *testing.T) {
	r := CreateProcessMemory(os.Getpid())
	if _, ok := r.(*LocalReader); !ok {
		t.Fatalf("CreateProcessMemory(getpid()) = %T, want *LocalReader", r)
	}
}

func TestCreateProcessMemorySelectsRemoteForOtherPid(t *testing.T) {
	other := os.Getpid() + 1
	r := CreateProcessMemory(other)
	if _, ok := r.(*RemoteReader); !ok {
		t.Fatalf("CreateProcessMemory(other pid) = %T, want *RemoteReader", r)
	}
}

func TestCreateProcessMemoryCachedWraps(t *testing.T) {
	r := CreateProcessMemoryCached(os.Getpid())
	if _, ok := r.(*SharedPageCache); !ok {
		t.Fatalf("CreateProcessMemoryCached = %T, want *SharedPageCache", r)
	}
}

func TestCreateProcessMemoryThreadCachedWraps(t *testing.T) {
	r := CreateProcessMemoryThreadCached(os.Getpid())
	if _, ok := r.(*ThreadPageCache); !ok {
		t.Fatalf("CreateProcessMemoryThreadCached = %T, want *ThreadPageCache", r)
	}
}

func TestCreateOfflineMemory(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	r := CreateOfflineMemory(data, 0x2000, 0x2004)
	dst := make([]byte, 2)
	if n := r.Read(0x2001, dst, 2); n != 2 {
		t.Fatalf("Read = %d, want 2", n)
	}
}

func TestCreateFileMemoryMissing(t *testing.T) {
	if _, ok := CreateFileMemory("/nonexistent/path/should/not/exist", 0, 10); ok {
		t.Fatalf("CreateFileMemory: want false for a missing file")
	}
}
