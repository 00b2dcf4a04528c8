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

// Standard INQUIRY response constants, SCSI-2 8.2.5.1.
const (
	// PeripheralNoDevice in byte 0 tells the initiator no device is
	// present at the addressed logical unit.
	PeripheralNoDevice = 0x7f

	// VersionSCSI2 and ResponseFormatSCSI2 advertise a SCSI-2 compliant
	// command system and response layout.
	VersionSCSI2        = 0x02
	ResponseFormatSCSI2 = 0x02

	inquiryIdentityOffset = 8

	// InquiryIdentityLen is the combined width of the padded vendor (8),
	// product (16) and revision (4) identification fields.
	InquiryIdentityLen = 28

	// InquiryMinLen is the smallest buffer an InquiryResponse view can be
	// built over.
	InquiryMinLen = inquiryIdentityOffset + InquiryIdentityLen
)

// InquiryResponse is a view over a transport-owned buffer laid out as a
// standard INQUIRY response. Setters write single fields at their fixed
// offsets; how many leading bytes are meaningful is decided by Len and the
// initiator's allocation length, not by the buffer size.
type InquiryResponse []byte

// Reset zeroes the eight-byte response header. The identity block is
// always overwritten in full, so it needs no clearing.
func (r InquiryResponse) Reset() {
	for i := 0; i < inquiryIdentityOffset; i++ {
		r[i] = 0
	}
}

// SetPeripheral sets the qualifier/device-type byte. The zero value left
// by Reset means "direct-access device, connected".
func (r InquiryResponse) SetPeripheral(v byte) {
	r[0] = v
}

func (r InquiryResponse) SetVersion(v byte) {
	r[2] = v
}

func (r InquiryResponse) SetResponseFormat(v byte) {
	r[3] = v
}

// SetAdditionalLength records how many bytes follow byte 4.
func (r InquiryResponse) SetAdditionalLength(n byte) {
	r[4] = n
}

// SetIdentity writes the 28-byte padded vendor/product/revision block at
// its fixed offset.
func (r InquiryResponse) SetIdentity(id []byte) {
	if len(id) != InquiryIdentityLen {
		panic("scsi: inquiry identity block must be exactly 28 bytes")
	}
	copy(r[inquiryIdentityOffset:inquiryIdentityOffset+InquiryIdentityLen], id)
}

// Len reports how many leading bytes of the response carry data: the
// additional length field plus the five bytes up to and including it.
func (r InquiryResponse) Len() int {
	return int(r[4]) + 5
}
