// File: bridge/events.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Mask translation between the reactor encoding and the host poll
// encoding. Both directions are pure, stateless and total: the readable
// and writable bits map across, every other input bit is dropped, and no
// undefined output bit is ever produced.

package bridge

import "github.com/momentics/loopbridge/api"

// PollFromEvents translates a reactor-encoded mask to host poll bits.
func PollFromEvents(in api.EventFlags) api.PollFlags {
	var out api.PollFlags

	if in&api.EventReadable != 0 {
		out |= api.PollIn
	}
	if in&api.EventWritable != 0 {
		out |= api.PollOut
	}

	return out
}

// EventsFromPoll translates host poll bits to a reactor-encoded mask.
func EventsFromPoll(in api.PollFlags) api.EventFlags {
	var out api.EventFlags

	if in&api.PollIn != 0 {
		out |= api.EventReadable
	}
	if in&api.PollOut != 0 {
		out |= api.EventWritable
	}

	return out
}
