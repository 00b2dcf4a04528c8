// Copyright © 2024 the RASCSI Authors
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

package scsi

// StatusCode classifies the outcome of a single device command. Every
// command entry point returns a fresh StatusCode instead of storing one on
// the device, so the transport can never read a stale code left over from
// an earlier command.
type StatusCode int

const (
	StatusNoError StatusCode = iota
	StatusNotReady
	StatusInvalidCDB
	StatusInvalidParameter
)

func (s StatusCode) String() string {
	switch s {
	case StatusNoError:
		return "no error"
	case StatusNotReady:
		return "not ready"
	case StatusInvalidCDB:
		return "invalid cdb"
	case StatusInvalidParameter:
		return "invalid parameter"
	default:
		return "unknown"
	}
}
