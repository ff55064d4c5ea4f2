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

// Command memprobe exercises the memio package from the command line: it
// dumps bytes, or a NUL-terminated string, from a live process, an
// offline snapshot file, or a plain file, at a given address.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&dumpCommand{}, "")
	subcommands.Register(&readStringCommand{}, "")

	flag.Parse()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	os.Exit(int(subcommands.Execute(context.Background())))
}
