package trill

import "touchcode-go/x/mathx"

// Command framing: parameterized commands are [offsetCmd, id, params...].
// The lone exception is the data-pointer write, a bare [offsetData] with no
// command id, since it addresses the data register region rather than the
// command channel. None of these builders touch the bus.

// encodeMode returns the mode-set command and the mode as the firmware will
// interpret it. The firmware takes 0..3; anything outside that range (Auto
// included) selects centroid. The range check is shared with the scan-settings
// speed parameter, matching the sensor firmware's validation.
func encodeMode(m Mode) ([]byte, Mode) {
	if !mathx.Between(int8(m), 0, speedMax) {
		m = ModeCentroid
	}
	return []byte{offsetCmd, cmdMode, byte(m)}, m
}

// encodeScanSettings clamps speed to 0..3 and resolution to 9..16 bits.
func encodeScanSettings(speed, bits uint8) []byte {
	if speed > speedMax {
		speed = speedMax
	}
	bits = mathx.Clamp(bits, bitsMin, bitsMax)
	return []byte{offsetCmd, cmdScanSettings, speed, bits}
}

func encodePrescaler(prescaler uint8) []byte {
	if prescaler > prescalerMax {
		prescaler = prescalerMax
	}
	return []byte{offsetCmd, cmdPrescaler, prescaler}
}

func encodeNoiseThreshold(threshold int) []byte {
	threshold = mathx.Clamp(threshold, 0, 255)
	return []byte{offsetCmd, cmdNoiseThreshold, byte(threshold)}
}

// encodeIDAC passes the current-source calibration value through unclamped.
func encodeIDAC(value uint8) []byte {
	return []byte{offsetCmd, cmdIDAC, value}
}

func encodeMinimumSize(size uint16) []byte {
	return []byte{offsetCmd, cmdMinimumSize, byte(size >> 8), byte(size)}
}

func encodeAutoScanInterval(interval uint16) []byte {
	return []byte{offsetCmd, cmdAutoScanIntvl, byte(interval >> 8), byte(interval)}
}

func encodeBaselineUpdate() []byte {
	return []byte{offsetCmd, cmdBaselineUpdate}
}

// encodeIdentify builds the only command that expects a response (3 bytes).
func encodeIdentify() []byte {
	return []byte{offsetCmd, cmdIdentify}
}

func encodePrepareDataRead() []byte {
	return []byte{offsetData}
}
