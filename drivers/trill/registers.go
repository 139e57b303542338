// Command set and buffer geometry constants for the Trill sensor family.

package trill

import "time"

// Default 7-bit I2C addresses per model. Each model answers on a block of
// nine addresses starting at its default (selectable with solder jumpers).
const (
	AddressBar    = 0x20
	AddressSquare = 0x28
	AddressCraft  = 0x30
	AddressRing   = 0x38
	AddressHex    = 0x40
	AddressFlex   = 0x48
)

// Command identifiers, written after the command register offset.
const (
	cmdNone           = 0x00
	cmdMode           = 0x01
	cmdScanSettings   = 0x02
	cmdPrescaler      = 0x03
	cmdNoiseThreshold = 0x04
	cmdIDAC           = 0x05
	cmdBaselineUpdate = 0x06
	cmdMinimumSize    = 0x07
	cmdAutoScanIntvl  = 0x10
	cmdIdentify       = 0xFF
)

// Register offsets. Commands go through the command register; setting the
// pointer to the data offset prepares a centroid read.
const (
	offsetCmd  = 0x00
	offsetData = 0x04
)

// Settling delays required by the sensor firmware: one between consecutive
// commands, a longer one between a command write and its response read.
const (
	cmdDelay  = 15 * time.Millisecond
	readDelay = 25 * time.Millisecond
)

// Centroid response buffer lengths in bytes.
const (
	centroidLengthDefault = 20
	centroidLengthRing    = 24
	centroidLength2D      = 32
)

// Raw/baseline/differential response buffer lengths in bytes.
const (
	rawLengthDefault = 60
	rawLengthBar     = 52
	rawLengthRing    = 56
)

// Touch capacity per sensing axis.
const (
	maxTouch1D = 5
	maxTouch2D = 4
)

// Parameter limits enforced by the encoder.
const (
	prescalerMax = 8
	speedMax     = 3
	bitsMin      = 9
	bitsMax      = 16
)

// sentinel marks "no further touches" in a location slot.
const sentinel = 0xFFFF
