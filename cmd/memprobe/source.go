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

package main

import (
	"flag"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/google/gomemio/pkg/memio"
)

const unsetPID = -1

// sourceFlags are the flags shared by every subcommand that needs to
// pick a backing Reader: a live process (optionally cached), an offline
// snapshot, or a plain file.
type sourceFlags struct {
	pid      int
	cached   bool
	threaded bool
	offline  string
	file     string
}

func (s *sourceFlags) register(f *flag.FlagSet) {
	f.IntVar(&s.pid, "pid", unsetPID, "read the address space of this process")
	f.BoolVar(&s.cached, "cached", false, "wrap the process reader in a shared page cache")
	f.BoolVar(&s.threaded, "threadcached", false, "wrap the process reader in a per-thread page cache")
	f.StringVar(&s.offline, "offline", "", "read from an offline snapshot file instead of a live process")
	f.StringVar(&s.file, "file", "", "read from a plain file instead of a live process")
}

// open builds a Reader from whichever source flag was set, along with a
// cleanup function the caller must invoke when done.
func (s *sourceFlags) open() (memio.Reader, func(), error) {
	switch {
	case s.offline != "":
		r, ok := memio.NewOfflineReader(s.offline, 0)
		if !ok {
			return nil, nil, fmt.Errorf("could not open offline snapshot %q", s.offline)
		}
		return r, func() { r.Close() }, nil

	case s.file != "":
		r, ok := memio.CreateFileMemory(s.file, 0, ^uint64(0))
		if !ok {
			return nil, nil, fmt.Errorf("could not map file %q", s.file)
		}
		return r, func() {}, nil

	case s.pid != unsetPID:
		var r memio.Reader
		switch {
		case s.cached:
			r = memio.CreateProcessMemoryCached(s.pid)
		case s.threaded:
			r = memio.CreateProcessMemoryThreadCached(s.pid)
		default:
			r = memio.CreateProcessMemory(s.pid)
		}
		log.Debugf("memprobe: reading pid %d (cached=%v threadcached=%v)", s.pid, s.cached, s.threaded)
		return r, func() {}, nil

	default:
		return nil, nil, fmt.Errorf("one of -pid, -offline, or -file is required")
	}
}
