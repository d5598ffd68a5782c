// File: api/events.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Readiness/interest mask encodings for the two systems joined by the
// bridge. The reactor and the host loop carry the same two booleans
// (readable-interest, writable-interest) under different bit layouts;
// translation between them lives in the bridge package.

package api

import "golang.org/x/sys/unix"

// EventFlags is the reactor-native event encoding. Only readability and
// writability exist at this layer; error and hangup conditions are not
// represented and are never delivered through a bridge.
type EventFlags uint32

const (
	// EventReadable marks interest in, or readiness for, reading.
	EventReadable EventFlags = 1 << iota
	// EventWritable marks interest in, or readiness for, writing.
	EventWritable
)

// EventMask is the union of all defined reactor event bits.
const EventMask = EventReadable | EventWritable

// PollFlags is the host-loop event encoding, using poll(2) bit values.
type PollFlags uint32

const (
	// PollIn is the host-side readable bit.
	PollIn PollFlags = unix.POLLIN
	// PollOut is the host-side writable bit.
	PollOut PollFlags = unix.POLLOUT
)

// PollMask is the union of all host event bits a bridge forwards.
const PollMask = PollIn | PollOut
