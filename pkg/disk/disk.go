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

package disk

import (
	"io"

	"github.com/alecthomas/units"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/karrots/RASCSI/pkg/scsi"
	"github.com/karrots/RASCSI/pkg/storage"
)

const (
	// sectorSizeExponent is fixed for every image this device can bind:
	// 512-byte sectors, and MODE SELECT requests to change that are
	// rejected rather than applied.
	sectorSizeExponent = 9
	sectorSize         = 1 << sectorSizeExponent

	// maxImageSize is the addressing ceiling of the short-form READ/WRITE
	// commands this device class implements.
	maxImageSize = 2 * units.TiB

	// inquiryAdditionalLength is chosen to resemble the response of a
	// real rotating drive.
	inquiryAdditionalLength = 122 + 3
)

// Geometry describes the fixed layout of a bound image. Both fields are
// derived once at Open and never mutated while the image stays bound.
// BlockCount is 64 bits wide so an image at the 2 TiB ceiling keeps its
// exact block count.
type Geometry struct {
	SectorSizeExponent int
	BlockCount         uint64
}

func (g Geometry) SectorSize() int {
	return 1 << uint(g.SectorSizeExponent)
}

// Identity is the vendor/product/revision triple reported to initiators.
type Identity struct {
	Vendor   string
	Product  string
	Revision string
}

// Padded renders the identity exactly as it appears at offset 8 of the
// standard INQUIRY response: 8-byte vendor, 16-byte product, 4-byte
// revision, space padded.
func (id Identity) Padded() []byte {
	b := make([]byte, 0, scsi.InquiryIdentityLen)
	b = append(b, scsi.FixedString(id.Vendor, 8)...)
	b = append(b, scsi.FixedString(id.Product, 16)...)
	b = append(b, scsi.FixedString(id.Revision, 4)...)
	return b
}

type Config struct {
	Vendor   string `help:"Inquiry vendor identification" default:"QUANTUM"`
	Product  string `help:"Override the capacity-derived product string" default:""`
	Revision string `help:"Inquiry product revision level" default:"0147"`
	LUN      byte   `help:"Logical unit number presented to initiators" default:"0"`
}

// HardDisk emulates the command-processing core of a SCSI direct-access
// target backed by a raw fixed-sector image. The transport that owns it
// serializes command delivery, so HardDisk keeps no locks of its own.
type HardDisk struct {
	cfg   Config
	ready bool
	url   string
	geom  Geometry
	id    Identity
}

func NewHardDisk(cfg Config) *HardDisk {
	return &HardDisk{cfg: cfg}
}

func (d *HardDisk) Ready() bool {
	return d.ready
}

func (d *HardDisk) Geometry() Geometry {
	return d.geom
}

func (d *HardDisk) Identity() Identity {
	return d.id
}

// URL returns the storage URL of the bound image, or "" when not ready.
func (d *HardDisk) URL() string {
	return d.url
}

// Open validates and binds a backing image. Open must not be called on a
// device that is already ready; that is a caller bug, not a runtime
// condition, and it panics. The storage handle is opened only long enough
// to learn the image size; later commands reopen storage on demand.
func (d *HardDisk) Open(url string) error {
	if d.ready {
		panic("disk: Open called on a ready device")
	}

	obj, err := storage.Open(url)
	if err != nil {
		return errors.Wrap(err, "opening hard disk image read-only")
	}
	size := obj.Size()
	if err := obj.Close(); err != nil {
		return errors.Wrap(err, "closing hard disk image")
	}

	// A driver must never report a negative size, but guard here as well:
	// a negative length passes the modulo and ceiling checks and would
	// bind a ready device with a garbage block count.
	if size <= 0 || size%sectorSize != 0 {
		return errors.Errorf("hard disk image size must be a positive multiple of %d bytes, got %d", sectorSize, size)
	}
	if size > int64(maxImageSize) {
		return errors.Errorf("hard disk image size must not exceed %s, got %d bytes", maxImageSize, size)
	}

	d.geom = Geometry{
		SectorSizeExponent: sectorSizeExponent,
		BlockCount:         uint64(size) >> sectorSizeExponent,
	}

	product := d.cfg.Product
	if product == "" {
		product = productName(d.geom.BlockCount)
	}
	d.id = Identity{
		Vendor:   d.cfg.Vendor,
		Product:  product,
		Revision: d.cfg.Revision,
	}

	d.url = url
	d.ready = true
	return nil
}

// Detach unbinds the image and returns the device to not-ready, so a
// later Open can bind a fresh image.
func (d *HardDisk) Detach() {
	d.ready = false
	d.url = ""
	d.geom = Geometry{}
	d.id = Identity{}
}

// Close implements the controller's device contract.
func (d *HardDisk) Close() error {
	d.Detach()
	return nil
}

// Inquiry answers a standard INQUIRY into buf, which must hold at least
// scsi.InquiryMinLen bytes. It returns the count of meaningful response
// bytes, clamped to the initiator's allocation length. The protocol
// version arguments are reserved for forward compatibility.
func (d *HardDisk) Inquiry(cdb scsi.CDB, buf []byte, major, minor int) (int, scsi.StatusCode) {
	// Vendor-specific inquiry pages are not supported.
	if cdb.EVPD() {
		return 0, scsi.StatusInvalidCDB
	}
	if !d.ready {
		return 0, scsi.StatusNotReady
	}

	rsp := scsi.InquiryResponse(buf)
	rsp.Reset()

	// SCSI-2 4.4.3, incorrect logical unit handling.
	if cdb.LUN() != d.cfg.LUN {
		rsp.SetPeripheral(scsi.PeripheralNoDevice)
	}

	rsp.SetVersion(scsi.VersionSCSI2)
	rsp.SetResponseFormat(scsi.ResponseFormatSCSI2)
	rsp.SetAdditionalLength(inquiryAdditionalLength)
	rsp.SetIdentity(d.id.Padded())

	n := rsp.Len()
	if alloc := cdb.AllocationLength(); n > alloc {
		n = alloc
	}
	return n, scsi.StatusNoError
}

// ModeSelect validates a mode parameter list without ever applying it:
// the sector size of a bound image is fixed, so any request that tries to
// change it is rejected, and every other recognized or unrecognized page
// is tolerated. length is trusted as the true count of parameter bytes in
// buf. The returned bool reports acceptance.
func (d *HardDisk) ModeSelect(cdb scsi.CDB, buf []byte, length int) (bool, scsi.StatusCode) {
	if !cdb.PageFormat() {
		// Unformatted parameter lists (MINIX sends these) are accepted
		// untouched.
		return true, scsi.StatusNoError
	}

	params := buf[:length]
	if len(params) >= scsi.ModeParameterHeaderLen {
		hdr := scsi.ModeParameterHeader(params)
		if hdr.BlockLength() != uint32(d.geom.SectorSize()) {
			// Changing the sector size is not allowed.
			return false, scsi.StatusInvalidParameter
		}
		params = params[scsi.ModeParameterHeaderLen:]
	}

	w := scsi.NewPageWalker(params)
	for {
		page, err := w.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return false, scsi.StatusInvalidParameter
		}

		switch page.Code() {
		case scsi.PageFormatDevice:
			// Bytes 12-13 of the format device page carry the physical
			// sector size, which must match the bound image.
			got, ok := page.Uint16At(12)
			if !ok || got != uint16(d.geom.SectorSize()) {
				return false, scsi.StatusInvalidParameter
			}
		case scsi.PageCDROMParameters:
			// The SONY CDU-541 sets its LBA format and inactivity timer
			// through page 8. Not a hard disk feature; log and move on.
			zap.L().Sugar().Warnf("unhandled CD-ROM parameters mode page: % 02X", []byte(page))
		default:
			zap.L().Sugar().Warnf("unknown MODE SELECT page code 0x%02x", page.Code())
		}
	}

	return true, scsi.StatusNoError
}
