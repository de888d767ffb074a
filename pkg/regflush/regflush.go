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

// Package regflush forces processor registers onto the stack.
//
// Conservative garbage collectors find roots by scanning stack memory for
// values that look like pointers. A pointer that lives only in a register at
// scan time is invisible to such a scan. FlushAndCall closes that gap: it
// captures the integer register file into a frame-local buffer, which both
// writes the register contents to addressable stack memory and forces the
// compiler to spill any remaining live values, then runs a caller-supplied
// callback. A stack scan performed by the callback, or by anything that runs
// before FlushAndCall returns, will observe every pointer that was register
// resident at the point of the call.
//
// The package performs no scanning itself and has no opinion about stack
// bounds; both belong to the collector.
package regflush

// registerContext is the spill target for saveRegisterContext. Each
// architecture sizes it to hold the registers its capture routine stores.
//
// The buffer is write-only: it is populated once per call and nothing ever
// reads it back or transfers control through it. It exists purely so that
// register contents land in addressable stack memory.
type registerContext [savedRegisterCount]uintptr
