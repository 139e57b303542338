// Package trill provides a driver for the Bela Trill family of capacitive
// touch sensors (Bar, Square, Craft, Ring, Hex, Flex) on an I2C bus.
//
// The sensors compute touch centroids on board; in centroid mode the driver
// reads them as ordered (location, size) pairs along one or two sensing axes:
//
//	d, err := trill.NewBar(bus, trill.AddressBar, trill.ModeCentroid)
//	err = d.Read()
//	for _, t := range d.VerticalTouches() { ... }
//
// NOTE: the sensor firmware cannot serve a response in the same transaction
// as the request, so the driver issues separate write and read transactions
// with a settling delay in between; I2C.Tx is never called with both w and r.
//
// All bus operations are single blocking round trips. A Device instance is
// not safe for concurrent use without external synchronization.
package trill

import (
	"errors"
	"time"

	"tinygo.org/x/drivers"

	"touchcode-go/x/mathx"
)

// DeviceType identifies a sensor model. The numeric values are the type tags
// reported by the identify command.
type DeviceType int8

const (
	DeviceNone DeviceType = iota - 1
	DeviceUnknown
	DeviceBar
	DeviceSquare
	DeviceCraft
	DeviceRing
	DeviceHex
	DeviceFlex
)

// String returns the model's display name.
func (t DeviceType) String() string { return infoFor(t).name }

// Mode selects what the sensor reports. Only ModeCentroid has a decode path
// in this driver; the firmware interprets out-of-range values (ModeAuto
// included) as centroid.
type Mode int8

const (
	ModeAuto Mode = iota - 1
	ModeCentroid
	ModeRaw
	ModeBaseline
	ModeDiff
)

func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeCentroid:
		return "centroid"
	case ModeRaw:
		return "raw"
	case ModeBaseline:
		return "baseline"
	case ModeDiff:
		return "diff"
	default:
		return "Unknown"
	}
}

// Touch is a single centroid: position along the axis and contact size.
// Touches have no identity across reads; every successful Read rebuilds the
// lists in full.
type Touch struct {
	Location uint16
	Size     uint16
}

// Errors returned by the driver.
var (
	ErrTypeMismatch   = errors.New("trill: sensor identifies as a different device type")
	ErrInvalidAddress = errors.New("trill: address outside the model's valid range")
	ErrNotCentroid    = errors.New("trill: device must be in centroid mode")
)

// Device represents one Trill sensor on an I2C bus. Type, firmware version
// and address are fixed at construction; mode changes through SetMode.
type Device struct {
	bus     drivers.I2C
	addr    uint16
	devType DeviceType
	mode    Mode
	version uint8

	vertical   []Touch
	horizontal []Touch

	// Reused response buffer, sized for the largest centroid read.
	buf [centroidLength2D]byte
}

// New connects to the sensor at addr, verifies that it identifies as devType
// and brings it to a ready state: mode set, default scan settings (speed 0,
// 12 bits), baseline update. A type mismatch or any failed transaction aborts
// construction and no Device is returned.
//
// The per-model constructors (NewBar etc.) additionally validate the address
// against the model's range and should be preferred.
func New(bus drivers.I2C, devType DeviceType, addr uint16, mode Mode) (*Device, error) {
	d := &Device{bus: bus, addr: addr, devType: DeviceNone}

	identified, version, err := d.identify()
	if err != nil {
		return nil, err
	}
	if identified != devType {
		return nil, ErrTypeMismatch
	}
	d.devType = identified
	d.version = version

	if err := d.SetMode(mode); err != nil {
		return nil, err
	}
	time.Sleep(cmdDelay)
	if err := d.SetScanSettings(0, 12); err != nil {
		return nil, err
	}
	time.Sleep(cmdDelay)
	if err := d.UpdateBaseline(); err != nil {
		return nil, err
	}
	// Let the baseline settle before the first user interaction.
	time.Sleep(cmdDelay)

	d.vertical = []Touch{}
	d.horizontal = []Touch{}
	return d, nil
}

func newVariant(bus drivers.I2C, devType DeviceType, addr uint16, mode Mode) (*Device, error) {
	first, last := addressRange(devType)
	if !mathx.Between(addr, first, last) {
		return nil, ErrInvalidAddress
	}
	return New(bus, devType, addr, mode)
}

// addressRange returns the model's valid address block, both ends inclusive.
func addressRange(t DeviceType) (first, last uint16) {
	switch t {
	case DeviceBar:
		return AddressBar, AddressBar + 8
	case DeviceSquare:
		return AddressSquare, AddressSquare + 8
	case DeviceCraft:
		return AddressCraft, AddressCraft + 8
	case DeviceRing:
		return AddressRing, AddressRing + 8
	case DeviceHex:
		return AddressHex, AddressHex + 8
	case DeviceFlex:
		return AddressFlex, AddressFlex + 8
	default:
		return 0, 0
	}
}

// NewBar connects to a Trill Bar (addresses 0x20 to 0x28).
func NewBar(bus drivers.I2C, addr uint16, mode Mode) (*Device, error) {
	return newVariant(bus, DeviceBar, addr, mode)
}

// NewSquare connects to a Trill Square (addresses 0x28 to 0x30).
func NewSquare(bus drivers.I2C, addr uint16, mode Mode) (*Device, error) {
	return newVariant(bus, DeviceSquare, addr, mode)
}

// NewCraft connects to a Trill Craft (addresses 0x30 to 0x38). Craft is
// conventionally run in ModeDiff; its centroid path stays unreachable until
// the caller switches to ModeCentroid.
func NewCraft(bus drivers.I2C, addr uint16, mode Mode) (*Device, error) {
	return newVariant(bus, DeviceCraft, addr, mode)
}

// NewRing connects to a Trill Ring (addresses 0x38 to 0x40).
func NewRing(bus drivers.I2C, addr uint16, mode Mode) (*Device, error) {
	return newVariant(bus, DeviceRing, addr, mode)
}

// NewHex connects to a Trill Hex (addresses 0x40 to 0x48).
func NewHex(bus drivers.I2C, addr uint16, mode Mode) (*Device, error) {
	return newVariant(bus, DeviceHex, addr, mode)
}

// NewFlex connects to a Trill Flex (addresses 0x48 to 0x50). Like Craft it is
// conventionally run in ModeDiff.
func NewFlex(bus drivers.I2C, addr uint16, mode Mode) (*Device, error) {
	return newVariant(bus, DeviceFlex, addr, mode)
}

// command writes a fire-and-forget command. No response is requested.
func (d *Device) command(cmd []byte) error {
	return d.bus.Tx(d.addr, cmd, nil)
}

// identify asks the sensor for its type tag and firmware version. The first
// response byte is ignored.
func (d *Device) identify() (DeviceType, uint8, error) {
	if err := d.command(encodeIdentify()); err != nil {
		return DeviceNone, 0, err
	}
	time.Sleep(readDelay)
	r := d.buf[:3]
	if err := d.bus.Tx(d.addr, nil, r); err != nil {
		return DeviceNone, 0, err
	}
	return DeviceType(int8(r[1])), r[2], nil
}

// Read fetches the current centroid buffer and rebuilds both touch lists.
// It fails with ErrNotCentroid unless the device is in centroid mode, and on
// any failure leaves the previous lists untouched.
func (d *Device) Read() error {
	if d.mode != ModeCentroid {
		return ErrNotCentroid
	}
	info := infoFor(d.devType)

	if err := d.command(encodePrepareDataRead()); err != nil {
		return err
	}
	buf := d.buf[:info.centroidLength]
	if err := d.bus.Tx(d.addr, nil, buf); err != nil {
		return err
	}

	d.vertical, d.horizontal = decodeCentroids(info, buf)
	return nil
}

// VerticalTouches returns the touches along the primary axis from the last
// Read, ordered by sensing position. The slice is replaced, not reused, on
// the next Read.
func (d *Device) VerticalTouches() []Touch { return d.vertical }

// HorizontalTouches returns the touches along the secondary axis from the
// last Read. Always empty for one-axis models.
func (d *Device) HorizontalTouches() []Touch { return d.horizontal }

func (d *Device) NumberOfVerticalTouches() int   { return len(d.vertical) }
func (d *Device) NumberOfHorizontalTouches() int { return len(d.horizontal) }

// SetMode switches the sensor's reporting mode and records the value the
// firmware will run with (see encodeMode for the clamp).
func (d *Device) SetMode(mode Mode) error {
	cmd, applied := encodeMode(mode)
	if err := d.command(cmd); err != nil {
		return err
	}
	d.mode = applied
	return nil
}

// SetScanSettings configures scan speed (0 fastest .. 3 slowest) and ADC
// resolution in bits (9..16).
func (d *Device) SetScanSettings(speed, bits uint8) error {
	return d.command(encodeScanSettings(speed, bits))
}

// SetPrescaler sets the capacitance prescaler (max 8).
func (d *Device) SetPrescaler(prescaler uint8) error {
	return d.command(encodePrescaler(prescaler))
}

// SetNoiseThreshold sets the reading noise floor (clamped to 0..255).
func (d *Device) SetNoiseThreshold(threshold int) error {
	return d.command(encodeNoiseThreshold(threshold))
}

// SetIDAC sets the current-source calibration value.
func (d *Device) SetIDAC(value uint8) error {
	return d.command(encodeIDAC(value))
}

// SetMinimumTouchSize sets the smallest contact size reported as a touch.
func (d *Device) SetMinimumTouchSize(size uint16) error {
	return d.command(encodeMinimumSize(size))
}

// SetAutoscanInterval sets the scan interval used in auto mode, in units of
// the sensor's base scan period.
func (d *Device) SetAutoscanInterval(interval uint16) error {
	return d.command(encodeAutoScanInterval(interval))
}

// UpdateBaseline recalibrates the sensor's capacitive baseline. Nothing
// should be touching the sensor when this runs.
func (d *Device) UpdateBaseline() error {
	return d.command(encodeBaselineUpdate())
}

// Introspection. None of these touch the bus.

func (d *Device) Type() DeviceType       { return d.devType }
func (d *Device) Mode() Mode             { return d.mode }
func (d *Device) Address() uint16        { return d.addr }
func (d *Device) FirmwareVersion() uint8 { return d.version }
func (d *Device) NumberOfChannels() int  { return infoFor(d.devType).channels }

// Is1D reports whether the device senses along a single axis. Dimensionality
// is only defined in centroid mode; in any other mode both Is1D and Is2D
// report false.
func (d *Device) Is1D() bool {
	return d.mode == ModeCentroid && infoFor(d.devType).axes == 1
}

// Is2D reports whether the device senses along two orthogonal axes, subject
// to the same centroid-mode requirement as Is1D.
func (d *Device) Is2D() bool {
	return d.mode == ModeCentroid && infoFor(d.devType).axes == 2
}

// NumberOfButtons returns the count of capacitive buttons the model reports
// in centroid mode (two on the Ring, none elsewhere).
func (d *Device) NumberOfButtons() int {
	if d.mode != ModeCentroid {
		return 0
	}
	return infoFor(d.devType).buttons
}
