// Copyright 2026 The regflush Authors.
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

package regflush

import (
	"runtime"
	"unsafe"

	"github.com/gcroot/regflush/pkg/gohacks"
)

// FlushAndCall writes the current integer register contents to the stack and
// then invokes fn(data).
//
// Upon return, any pointer-sized value that was held only in a captured
// register when the capture ran has been written to addressable stack
// memory, either directly into the frame-local snapshot buffer or by
// ordinary compiler spilling around the capture and callback calls. A stack
// scan performed by fn, or by anything that runs before this frame is
// popped, will observe it.
//
// fn is called exactly once, on the caller's thread, with data passed
// through unchanged. data may be nil. Ownership of data stays with the
// caller: FlushAndCall neither retains nor frees it, and hides it from
// escape analysis, so the caller must keep the referenced object alive for
// the duration of the call.
//
// FlushAndCall does not allocate, takes no locks and never blocks except
// inside fn. It is safe to call from multiple goroutines at once and safe to
// call again from within fn; every call gets its own snapshot buffer.
func FlushAndCall(fn func(unsafe.Pointer), data unsafe.Pointer) {
	// Locals are zero initialized, so the capture target is deterministic
	// before the capture routine writes it.
	var ctx registerContext
	saveRegisterContext(&ctx)
	fn(gohacks.Noescape(data))
	// The buffer must survive while fn scans; without this the slot is dead
	// after the capture and the compiler may reuse it.
	runtime.KeepAlive(&ctx)
}
