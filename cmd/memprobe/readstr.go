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
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"

	"github.com/google/gomemio/pkg/memio"
)

// readStringCommand implements subcommands.Command for "readstr": read a
// NUL-terminated string at a given address.
type readStringCommand struct {
	sourceFlags
	addr    string
	maxRead int
}

func (*readStringCommand) Name() string     { return "readstr" }
func (*readStringCommand) Synopsis() string { return "read a NUL-terminated string at an address" }
func (*readStringCommand) Usage() string {
	return "readstr -addr=0xADDR (-pid=PID|-offline=PATH|-file=PATH)\n"
}

func (r *readStringCommand) SetFlags(f *flag.FlagSet) {
	r.sourceFlags.register(f)
	f.StringVar(&r.addr, "addr", "", "address to read, decimal or 0x-prefixed hex")
	f.IntVar(&r.maxRead, "maxread", 4096, "maximum bytes to scan looking for the terminator")
}

func (rc *readStringCommand) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	addr, err := strconv.ParseUint(rc.addr, 0, 64)
	if err != nil {
		log.Errorf("memprobe: invalid -addr %q: %v", rc.addr, err)
		return subcommands.ExitUsageError
	}

	reader, cleanup, err := rc.open()
	if err != nil {
		log.Errorf("memprobe: %v", err)
		return subcommands.ExitFailure
	}
	defer cleanup()

	s, ok := memio.ReadString(reader, addr, rc.maxRead)
	if !ok {
		log.Errorf("memprobe: no NUL-terminated string found within %d bytes of 0x%x", rc.maxRead, addr)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(os.Stdout, s)
	return subcommands.ExitSuccess
}
