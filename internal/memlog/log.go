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

// Package memlog provides the minimal structured logger used internally by
// the memory-access layer. It exists so that initialization failures and
// cache degradations can be reported without pulling the package's hot read
// path through a third-party logging dependency.
package memlog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level is the severity of a log line.
type Level int

const (
	// Debug is for low-level diagnostic detail, e.g. a cache miss fill.
	Debug Level = iota
	// Info is for expected lifecycle events.
	Info
	// Warning is for a degraded-but-recovered condition, e.g. TLS
	// registration failure falling back to uncached reads.
	Warning
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "D"
	case Info:
		return "I"
	case Warning:
		return "W"
	default:
		return "?"
	}
}

// Emitter writes one formatted log line.
type Emitter interface {
	Emit(level Level, timestamp time.Time, format string, args ...interface{})
}

// BasicLogger is an Emitter that serializes writes to an io.Writer behind a
// mutex. It formats lines as "L hh:mm:ss.uuuuuu msg".
type BasicLogger struct {
	mu  sync.Mutex
	out io.Writer
	min Level
}

// NewBasicLogger returns a BasicLogger writing to out, suppressing lines
// below min.
func NewBasicLogger(out io.Writer, min Level) *BasicLogger {
	return &BasicLogger{out: out, min: min}
}

// Default is the package-wide logger used by the memio package. Tests may
// swap it out to capture and assert on emitted lines.
var Default Emitter = NewBasicLogger(os.Stderr, Warning)

// Emit implements Emitter.
func (b *BasicLogger) Emit(level Level, timestamp time.Time, format string, args ...interface{}) {
	if level < b.min {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	hour, minute, second := timestamp.Clock()
	fmt.Fprintf(b.out, "%s %02d:%02d:%02d.%06d %s\n",
		level, hour, minute, second, timestamp.Nanosecond()/1000, fmt.Sprintf(format, args...))
}

// Debugf logs at Debug through Default.
func Debugf(format string, args ...interface{}) {
	Default.Emit(Debug, time.Now(), format, args...)
}

// Infof logs at Info through Default.
func Infof(format string, args ...interface{}) {
	Default.Emit(Info, time.Now(), format, args...)
}

// Warningf logs at Warning through Default.
func Warningf(format string, args ...interface{}) {
	Default.Emit(Warning, time.Now(), format, args...)
}
