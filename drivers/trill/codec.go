package trill

// Static per-model facts. The same table feeds buffer sizing, dimensionality
// queries and display names, so the per-type switch lives in one place.
type deviceInfo struct {
	name           string
	centroidLength int // centroid response, bytes
	rawLength      int // raw/baseline/diff response, bytes
	channels       int // capacitive channel count
	axes           int // 0 = not a centroid reporter, 1 or 2 sensing axes
	buttons        int // capacitive buttons reported in centroid mode
}

var deviceInfoTable = map[DeviceType]deviceInfo{
	DeviceBar:     {name: "Trill Bar", centroidLength: centroidLengthDefault, rawLength: rawLengthBar, channels: 26, axes: 1},
	DeviceSquare:  {name: "Trill Square", centroidLength: centroidLength2D, rawLength: rawLengthDefault, channels: 30, axes: 2},
	DeviceCraft:   {name: "Trill Craft", centroidLength: centroidLengthDefault, rawLength: rawLengthDefault, channels: 30, axes: 1},
	DeviceRing:    {name: "Trill Ring", centroidLength: centroidLengthRing, rawLength: rawLengthRing, channels: 30, axes: 1, buttons: 2},
	DeviceHex:     {name: "Trill Hex", centroidLength: centroidLength2D, rawLength: rawLengthDefault, channels: 30, axes: 2},
	DeviceFlex:    {name: "Trill Flex", centroidLength: centroidLengthDefault, rawLength: rawLengthDefault, channels: 30, axes: 1},
	DeviceUnknown: {name: "Unknown", centroidLength: centroidLengthDefault, rawLength: rawLengthDefault, channels: 30},
}

// infoFor looks up the static facts for a device type. Types outside the
// table report as "None" with the default buffer geometry and no axes.
func infoFor(t DeviceType) deviceInfo {
	if info, ok := deviceInfoTable[t]; ok {
		return info
	}
	return deviceInfo{name: "None", centroidLength: centroidLengthDefault, rawLength: rawLengthDefault, channels: 30}
}

// mergeWords pairs consecutive bytes big-endian into 16-bit words:
// word[i] = buf[2i+1] | buf[2i]<<8.
func mergeWords(buf []byte) []uint16 {
	words := make([]uint16, len(buf)/2)
	for i := range words {
		words[i] = uint16(buf[2*i+1]) | uint16(buf[2*i])<<8
	}
	return words
}

// scanTouches walks parallel location/size slots in order and collects
// touches until the sentinel or the axis capacity. Slots past a sentinel are
// never consulted. A sentinel in slot 0 is the no-touch steady state and
// yields an empty (non-nil) list.
func scanTouches(locations, sizes []uint16, maxTouches int) []Touch {
	touches := make([]Touch, 0, maxTouches)
	n := len(locations)
	if n > maxTouches {
		n = maxTouches
	}
	for i := 0; i < n; i++ {
		if locations[i] == sentinel {
			break
		}
		touches = append(touches, Touch{Location: locations[i], Size: sizes[i]})
	}
	return touches
}

// decodeCentroids converts a raw centroid buffer into per-axis touch lists.
// Pure function: no device state is read or written.
//
// One-axis models lay the buffer out as locations then sizes, each
// centroidLength/4 words. Two-axis models use four equal quarters of
// centroidLength/8 words: vertical locations, vertical sizes, horizontal
// locations, horizontal sizes. The Ring buffer carries one extra word pair
// past the five touch slots (its two button readings), so the scan is capped
// at the axis maximum rather than the slot count.
func decodeCentroids(info deviceInfo, buf []byte) (vertical, horizontal []Touch) {
	words := mergeWords(buf)
	switch info.axes {
	case 1:
		half := info.centroidLength / 4
		vertical = scanTouches(words[:half], words[half:], maxTouch1D)
	case 2:
		quarter := info.centroidLength / 8
		half := 2 * quarter
		vertical = scanTouches(words[:quarter], words[quarter:half], maxTouch2D)
		horizontal = scanTouches(words[half:half+quarter], words[half+quarter:], maxTouch2D)
	}
	return vertical, horizontal
}
