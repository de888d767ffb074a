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

//go:build arm64
// +build arm64

package regflush

// savedRegisterCount is the number of integer registers the arm64 capture
// routine stores: R0 through R17, R19 through R26, R29 (FP), R30 (LR) and
// RSP. R18 is the platform register and never holds Go values, R27 is the
// scratch register addressing the buffer, and R28 holds g; their caller
// values were already spilled at the call boundary where live.
const savedRegisterCount = 29

// saveRegisterContext stores the general purpose integer registers into
// buf. Implemented in regflush_arm64.s.
//
//go:noescape
func saveRegisterContext(buf *registerContext)
