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

//go:build !amd64 && !arm64
// +build !amd64,!arm64

package regflush

import (
	"unsafe"
)

// savedRegisterCount on architectures without a hand-written capture
// routine. The portable capture records only the stack and buffer
// addresses; the register spill itself comes from the calling convention.
const savedRegisterCount = 2

// saveRegisterContext is the portable capture. Go's internal ABI has no
// callee-saved registers, so the compiler must spill every live register
// value around any call it cannot inline; reaching this function is itself
// the spill. The body populates the buffer so its contents stay
// deterministic.
//
//go:noinline
func saveRegisterContext(buf *registerContext) {
	var anchor int
	buf[0] = uintptr(unsafe.Pointer(&anchor))
	buf[1] = uintptr(unsafe.Pointer(buf))
}
