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

//go:build amd64
// +build amd64

package regflush

// savedRegisterCount is the number of integer registers the amd64 capture
// routine stores: BX, CX, DX, SI, DI, BP, SP and R8 through R15. AX is not
// stored because it addresses the buffer, but the caller's AX value was
// already spilled at the call boundary; every register is caller-saved
// under Go's internal ABI.
const savedRegisterCount = 15

// saveRegisterContext stores the general purpose integer registers into
// buf. Implemented in regflush_amd64.s.
//
//go:noescape
func saveRegisterContext(buf *registerContext)
