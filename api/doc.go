// Package api
// Author: momentics <momentics@gmail.com>
//
// Boundary contracts for loopbridge: event-mask encodings, watch-object
// accessors, the host-loop registration surface, and the backend contract
// a bridge implements on behalf of an embedded reactor.
// All cross-package types live here; api has no implementation code.
package api
