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
)

// dumpCommand implements subcommands.Command for "dump": hex-dump bytes
// at a given address from any of memprobe's backing sources.
type dumpCommand struct {
	sourceFlags
	addr string
	size int
}

func (*dumpCommand) Name() string     { return "dump" }
func (*dumpCommand) Synopsis() string { return "hex-dump bytes at an address" }
func (*dumpCommand) Usage() string {
	return "dump -addr=0xADDR -size=N (-pid=PID|-offline=PATH|-file=PATH)\n"
}

func (d *dumpCommand) SetFlags(f *flag.FlagSet) {
	d.sourceFlags.register(f)
	f.StringVar(&d.addr, "addr", "", "address to read, decimal or 0x-prefixed hex")
	f.IntVar(&d.size, "size", 64, "number of bytes to read")
}

func (d *dumpCommand) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	addr, err := strconv.ParseUint(d.addr, 0, 64)
	if err != nil {
		log.Errorf("memprobe: invalid -addr %q: %v", d.addr, err)
		return subcommands.ExitUsageError
	}

	r, cleanup, err := d.open()
	if err != nil {
		log.Errorf("memprobe: %v", err)
		return subcommands.ExitFailure
	}
	defer cleanup()

	dst := make([]byte, d.size)
	n := r.Read(addr, dst, d.size)
	if n == 0 && d.size != 0 {
		log.Errorf("memprobe: no bytes available at 0x%x", addr)
		return subcommands.ExitFailure
	}
	if n < d.size {
		log.Warnf("memprobe: short read: got %d of %d requested bytes", n, d.size)
	}

	for off := 0; off < n; off += 16 {
		end := off + 16
		if end > n {
			end = n
		}
		fmt.Fprintf(os.Stdout, "%08x  ", addr+uint64(off))
		for i := off; i < end; i++ {
			fmt.Fprintf(os.Stdout, "%02x ", dst[i])
		}
		fmt.Fprintln(os.Stdout)
	}
	return subcommands.ExitSuccess
}
