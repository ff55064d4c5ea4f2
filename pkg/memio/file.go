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

//go:build !windows

package memio

import (
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/google/gomemio/internal/memerr"
	"github.com/google/gomemio/internal/memlog"
)

// FileReader exposes a window of a file, mapped read-only via mmap, as a
// Reader. Logical address 0 corresponds to the byte at file offset
// offset; mmap requires page-aligned offsets, so the mapping actually
// starts at the containing page and the sub-page remainder (sub) is
// skipped over in the exposed base.
type FileReader struct {
	mapping []byte // the full mmap'd region, [aligned, aligned+mapLen)
	sub     int    // offset - aligned
	size    int    // logical size exposed, len(mapping)-sub
}

var _ Reader = (*FileReader)(nil)

// NewFileReader maps up to size bytes of the file at path starting at
// byte offset, and returns a FileReader over it. It returns (nil, false)
// if the file cannot be opened or stat'd, if offset is beyond the file's
// length, or if the mapping is refused.
func NewFileReader(path string, offset, size uint64) (*FileReader, bool) {
	fd, err := retryEINTR(func() (int, error) {
		return unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	})
	if err != nil {
		memlog.Debugf("memio: open %s: %v", path, memerr.New("open", path, err))
		return nil, false
	}
	defer unix.Close(fd)

	var st unix.Stat_t
	if err := unix.Fstat(fd, &st); err != nil {
		memlog.Debugf("memio: fstat %s: %v", path, memerr.New("fstat", path, err))
		return nil, false
	}
	fileSize := uint64(st.Size)
	if offset >= fileSize {
		return nil, false
	}

	pageSize := uint64(unix.Getpagesize())
	aligned := offset &^ (pageSize - 1)
	sub := offset - aligned

	// Tentative mapped length: everything from aligned to EOF.
	mapLen := fileSize - aligned
	requested := size + sub
	overflowed := requested < size
	if !overflowed && requested < mapLen {
		mapLen = requested
	}

	mapping, err := unix.Mmap(fd, int64(aligned), int(mapLen), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		memlog.Debugf("memio: mmap %s: %v", path, memerr.New("mmap", path, err))
		return nil, false
	}

	return &FileReader{mapping: mapping, sub: int(sub), size: int(mapLen) - int(sub)}, true
}

// Close unmaps the underlying region. After Close, Read always returns 0.
func (f *FileReader) Close() error {
	if f.mapping == nil {
		return nil
	}
	err := unix.Munmap(f.mapping)
	f.mapping = nil
	f.size = 0
	return err
}

// Read implements Reader.
func (f *FileReader) Read(addr uint64, dst []byte, size int) int {
	if f.mapping == nil || addr >= uint64(f.size) {
		return 0
	}
	base := f.sub + int(addr)
	bytesLeft := f.size - int(addr)
	n := size
	if bytesLeft < n {
		n = bytesLeft
	}
	copy(dst[:n], f.mapping[base:base+n])
	return n
}

// retryEINTR retries fn while it fails with EINTR, matching the
// TEMP_FAILURE_RETRY(open(...)) idiom the layer's spec requires for open.
func retryEINTR(fn func() (int, error)) (int, error) {
	for {
		fd, err := fn()
		if err == syscall.EINTR {
			continue
		}
		return fd, err
	}
}
