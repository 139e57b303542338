package trill

import (
	"bytes"
	"testing"
)

func TestCommandFraming(t *testing.T) {
	cases := []struct {
		name string
		got  []byte
		want []byte
	}{
		{"identify", encodeIdentify(), []byte{0x00, 0xFF}},
		{"baseline update", encodeBaselineUpdate(), []byte{0x00, 0x06}},
		{"prepare data read", encodePrepareDataRead(), []byte{0x04}},
		{"scan settings", encodeScanSettings(2, 12), []byte{0x00, 0x02, 2, 12}},
		{"prescaler", encodePrescaler(4), []byte{0x00, 0x03, 4}},
		{"noise threshold", encodeNoiseThreshold(40), []byte{0x00, 0x04, 40}},
		{"idac", encodeIDAC(200), []byte{0x00, 0x05, 200}},
		{"minimum size", encodeMinimumSize(0x1234), []byte{0x00, 0x07, 0x12, 0x34}},
		{"autoscan interval", encodeAutoScanInterval(0x0102), []byte{0x00, 0x10, 0x01, 0x02}},
	}
	for _, tc := range cases {
		if !bytes.Equal(tc.got, tc.want) {
			t.Errorf("%s: got % x, want % x", tc.name, tc.got, tc.want)
		}
	}
}

func TestEncodeModeClampsToCentroid(t *testing.T) {
	cases := []struct {
		in      Mode
		want    []byte
		applied Mode
	}{
		{ModeCentroid, []byte{0x00, 0x01, 0}, ModeCentroid},
		{ModeDiff, []byte{0x00, 0x01, 3}, ModeDiff},
		// Out of the firmware's 0..3 range: encoded as centroid.
		{ModeAuto, []byte{0x00, 0x01, 0}, ModeCentroid},
		{Mode(7), []byte{0x00, 0x01, 0}, ModeCentroid},
	}
	for _, tc := range cases {
		got, applied := encodeMode(tc.in)
		if !bytes.Equal(got, tc.want) || applied != tc.applied {
			t.Errorf("encodeMode(%d) = % x, %d; want % x, %d", tc.in, got, applied, tc.want, tc.applied)
		}
	}
}

func TestParameterClamping(t *testing.T) {
	if got := encodeScanSettings(9, 12); got[2] != 3 {
		t.Errorf("speed not clamped to 3: got %d", got[2])
	}
	if got := encodeScanSettings(0, 4); got[3] != 9 {
		t.Errorf("bits not clamped up to 9: got %d", got[3])
	}
	if got := encodeScanSettings(0, 40); got[3] != 16 {
		t.Errorf("bits not clamped down to 16: got %d", got[3])
	}
	if got := encodePrescaler(200); got[2] != prescalerMax {
		t.Errorf("prescaler not clamped to %d: got %d", prescalerMax, got[2])
	}
	if got := encodeNoiseThreshold(300); got[2] != 255 {
		t.Errorf("noise threshold not clamped to 255: got %d", got[2])
	}
	if got := encodeNoiseThreshold(-5); got[2] != 0 {
		t.Errorf("noise threshold not clamped to 0: got %d", got[2])
	}
	// Minimum size and autoscan interval are split, never clamped.
	if got := encodeMinimumSize(0xFFFF); got[2] != 0xFF || got[3] != 0xFF {
		t.Errorf("minimum size altered: got % x", got[2:])
	}
}
