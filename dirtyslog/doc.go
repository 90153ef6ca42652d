// Package dirtyslog routes dirtyconst Warnings to log/slog.
//
// By default dirtyconst writes one plain line to stderr per suppressed
// UnsafeReplace. Services that already log through slog can install a
// handler instead:
//
//	dirtyslog.Install(logger)
package dirtyslog
