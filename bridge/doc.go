// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package bridge embeds a reactor inside an externally-owned host event
// loop. It implements api.Backend by keeping one host-loop registration
// per started watch, translating interest and readiness masks between the
// two encodings, and forwarding host notifications into the reactor's
// emit/dispatch entry points. The bridge owns no polling of its own and
// never blocks; it runs entirely on the host loop's dispatch thread.
package bridge
