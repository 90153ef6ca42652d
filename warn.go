package dirtyconst

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
	"sync/atomic"
)

// Warning describes one suppressed UnsafeReplace call.
type Warning struct {
	// Mode is the mode that suppressed the call (always ModeFrozen today).
	Mode Mode

	// Type is the Go type of the cell's value, e.g. "int" or "[]string".
	Type string

	// File and Line locate the UnsafeReplace call site. Empty/zero if unknown.
	File string
	Line int
}

// Caller returns "file:line", or "" if the call site is unknown.
func (w Warning) Caller() string {
	if w.File == "" {
		return ""
	}
	return w.File + ":" + strconv.Itoa(w.Line)
}

// String renders w as the single line written to stderr by default (without the trailing newline).
func (w Warning) String() string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "dirtyconst: WARNING: replace is disabled in this build mode=%s", w.Mode)
	if w.Type != "" {
		fmt.Fprintf(&b, " type=%s", w.Type)
	}
	if c := w.Caller(); c != "" {
		fmt.Fprintf(&b, " caller=%s", c)
	}
	return b.String()
}

// WarningHandler receives Warnings instead of the default stderr line.
//
// It runs synchronously inside UnsafeReplace and must not block.
type WarningHandler func(Warning)

var (
	handler  atomic.Pointer[WarningHandler]
	warnings atomic.Uint64
)

var (
	outMu sync.Mutex
	out   io.Writer = os.Stderr // swapped by tests
)

// SetWarningHandler installs h as the process-wide Warning handler and returns
// the previous one (nil if the default was in effect).
//
// A nil h restores the default: one line per Warning on os.Stderr.
// Panics in h are recovered and reported to stderr.
func SetWarningHandler(h WarningHandler) (prev WarningHandler) {
	var p *WarningHandler
	if h != nil {
		p = &h
	}
	if old := handler.Swap(p); old != nil {
		return *old
	}
	return nil
}

// WarningCount returns the number of Warnings reported since process start.
//
// It is always zero in the mutable mode.
func WarningCount() uint64 {
	return warnings.Load()
}

func report(w Warning) {
	warnings.Add(1)
	if p := handler.Load(); p != nil {
		callHandler(*p, w)
		return
	}
	writeLine(w.String())
}

func callHandler(h WarningHandler, w Warning) {
	defer func() {
		if r := recover(); r != nil {
			writeLine(fmt.Sprintf("dirtyconst: warning handler panic value=%v", r))
		}
	}()
	h(w)
}

func writeLine(s string) {
	outMu.Lock()
	_, _ = io.WriteString(out, s+"\n")
	outMu.Unlock()
}
