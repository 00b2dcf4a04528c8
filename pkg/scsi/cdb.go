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

import (
	"bytes"
)

// CDB is a command descriptor block exactly as the transport delivered it.
// The accessors name the fields this target cares about so device code
// never does raw offset arithmetic on command bytes.
type CDB []byte

func (c CDB) OpCode() byte {
	return c[0]
}

// EVPD reports the "enable vital product data" bit of an INQUIRY command.
func (c CDB) EVPD() bool {
	return c[1]&0x01 != 0
}

// LUN returns the logical unit number encoded in bits 7:5 of CDB byte 1,
// per the SCSI-2 six-byte command format.
func (c CDB) LUN() byte {
	return (c[1] >> 5) & 0x07
}

// PageFormat reports the PF bit of a MODE SELECT command. When clear the
// parameter list is vendor specific and this target ignores it.
func (c CDB) PageFormat() bool {
	return c[1]&0x10 != 0
}

// AllocationLength is the most response bytes the initiator is prepared
// to accept for a six-byte command.
func (c CDB) AllocationLength() int {
	return int(c[4])
}

// FixedString space-pads or truncates s to exactly length bytes, the form
// required by the fixed-width identification fields of an INQUIRY response.
func FixedString(s string, length int) []byte {
	p := []byte(s)
	l := len(p)
	if l >= length {
		return p[:length]
	}
	sp := bytes.Repeat([]byte{' '}, length-l)
	return append(p, sp...)
}
