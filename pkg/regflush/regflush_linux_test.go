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

//go:build linux
// +build linux

package regflush

import (
	"runtime"
	"testing"
	"unsafe"

	"golang.org/x/sys/unix"
)

// The callback must run synchronously on the caller's thread; a collector
// relies on scanning the stack of the thread it stopped.
func TestCallbackRunsOnCallersThread(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	caller := unix.Gettid()
	callee := 0
	FlushAndCall(func(data unsafe.Pointer) {
		*(*int)(data) = unix.Gettid()
	}, unsafe.Pointer(&callee))
	if callee != caller {
		t.Errorf("callback ran on tid %d, caller is tid %d", callee, caller)
	}
}
