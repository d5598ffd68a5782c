// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package reactor provides a small embedded I/O reactor: callback-bearing
// watch objects for descriptor readiness and signal delivery, a pending
// event queue, and an explicit dispatch pass. The reactor performs no OS
// polling of its own; readiness arrives through an api.Backend, normally
// a bridge into an externally-owned host event loop.
package reactor
