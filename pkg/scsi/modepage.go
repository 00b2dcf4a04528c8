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
	"encoding/binary"
	"errors"
	"io"
)

// ModeParameterHeaderLen is the size of the mode parameter header,
// including the single block descriptor, that precedes the page list of a
// MODE SELECT parameter list.
const ModeParameterHeaderLen = 12

// ErrPageOverrun is returned by PageWalker when a page's declared length
// runs past the end of the parameter list.
var ErrPageOverrun = errors.New("scsi: mode page overruns parameter list")

// ModeParameterHeader is a view over the 12-byte mode parameter header.
type ModeParameterHeader []byte

// BlockLength returns the 24-bit big-endian block length from the block
// descriptor, bytes 9 through 11.
func (h ModeParameterHeader) BlockLength() uint32 {
	return uint32(h[9])<<16 | uint32(h[10])<<8 | uint32(h[11])
}

// ModePage is a single mode page including its two-byte header: code at
// byte 0, then the count of bytes that follow the header at byte 1.
type ModePage []byte

func (p ModePage) Code() byte {
	return p[0]
}

// PayloadLen is the declared number of bytes following the page header.
func (p ModePage) PayloadLen() int {
	return int(p[1])
}

// Uint16At reads a big-endian 16-bit field at off, counted from the start
// of the page. ok is false when the page is too short to hold the field.
func (p ModePage) Uint16At(off int) (v uint16, ok bool) {
	if off < 0 || off+2 > len(p) {
		return 0, false
	}
	return binary.BigEndian.Uint16(p[off : off+2]), true
}

// PageWalker iterates the concatenated mode pages of a parameter list.
type PageWalker struct {
	rest []byte
}

func NewPageWalker(b []byte) *PageWalker {
	return &PageWalker{rest: b}
}

// Next returns the next page, io.EOF once the list is exhausted, or
// ErrPageOverrun when the remaining bytes cannot hold the page they
// declare. A page with zero payload length is returned as its bare
// two-byte header, so the walk always advances and terminates.
func (w *PageWalker) Next() (ModePage, error) {
	if len(w.rest) == 0 {
		return nil, io.EOF
	}
	if len(w.rest) < 2 {
		return nil, ErrPageOverrun
	}
	n := int(w.rest[1]) + 2
	if n > len(w.rest) {
		return nil, ErrPageOverrun
	}
	page := ModePage(w.rest[:n])
	w.rest = w.rest[n:]
	return page, nil
}
