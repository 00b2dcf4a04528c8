// Copyright © 2024 the RASCSI Authors

package scsi

// SCSI operation codes relevant to a direct-access target. Sense and
// status code assignments live at www.t10.org/lists/asc-num.txt.
const (
	TestUnitReady      = 0x00
	RezeroUnit         = 0x01
	RequestSense       = 0x03
	FormatUnit         = 0x04
	ReassignBlocks     = 0x07
	Read6              = 0x08
	Write6             = 0x0a
	Seek6              = 0x0b
	Inquiry            = 0x12
	ModeSelect         = 0x15
	Reserve            = 0x16
	Release            = 0x17
	ModeSense          = 0x1a
	StartStop          = 0x1b
	SendDiagnostic     = 0x1d
	AllowMediumRemoval = 0x1e
	ReadCapacity       = 0x25
	Read10             = 0x28
	Write10            = 0x2a
	Seek10             = 0x2b
	Verify             = 0x2f
	SynchronizeCache   = 0x35
	ModeSelect10       = 0x55
	ModeSense10        = 0x5a
)

// Mode page codes the hard disk device recognizes. Pages outside this set
// are logged and skipped rather than rejected.
const (
	PageFormatDevice    = 0x03
	PageCDROMParameters = 0x08
)
