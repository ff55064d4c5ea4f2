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

import "os"

// CreateFileMemory returns a Reader over up to size bytes of the file at
// path starting at byte offset, or (nil, false) if it cannot be opened,
// stat'd, or mapped.
func CreateFileMemory(path string, offset, size uint64) (Reader, bool) {
	return NewFileReader(path, offset, size)
}

// CreateProcessMemory returns a Reader over pid's virtual memory: a
// LocalReader if pid is the calling process, otherwise a RemoteReader.
func CreateProcessMemory(pid int) Reader {
	if pid == os.Getpid() {
		return NewLocalReader(pid)
	}
	return NewRemoteReader(pid)
}

// CreateProcessMemoryCached is like CreateProcessMemory, wrapped in a
// process-wide SharedPageCache.
func CreateProcessMemoryCached(pid int) Reader {
	return NewSharedPageCache(CreateProcessMemory(pid))
}

// CreateProcessMemoryThreadCached is like CreateProcessMemory, wrapped in
// a ThreadPageCache.
func CreateProcessMemoryThreadCached(pid int) Reader {
	return NewThreadPageCache(CreateProcessMemory(pid))
}

// CreateOfflineMemory returns a Reader over an in-RAM snapshot buffer
// exposed as the address range [start, end).
func CreateOfflineMemory(data []byte, start, end uint64) Reader {
	return NewOfflineBufferReader(data, start, end)
}
