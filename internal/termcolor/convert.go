package termcolor

import (
	"fmt"
	"strconv"
	"strings"
)

// RGBToANSI maps an RGB triple onto the xterm 256-color palette.
// Near-neutral colors land on the 24-step grayscale ramp (232-255),
// everything else on the 6x6x6 color cube (16-231).
func RGBToANSI(r, g, b uint8) uint8 {
	lo := float64(min(r, g, b))
	hi := float64(max(r, g, b))

	step := 2.5
	for lo >= step {
		step += 42.5
	}

	if hi < step {
		sum := int(r) + int(g) + int(b)
		return uint8(232 + sum/33) //nolint:gosec // G115: sum/33 <= 23
	}

	q := func(v uint8) int { return 6 * int(v) / 256 }
	return uint8(16 + 36*q(r) + 6*q(g) + q(b)) //nolint:gosec // G115: at most 231
}

// HexToANSI converts a hex color code ("#ff0000", "ff0000", or the "f00"
// shorthand) to a 256-color palette index.
func HexToANSI(code string) (uint8, error) {
	code = strings.TrimPrefix(code, "#")

	if len(code) == 3 {
		code = string([]byte{code[0], code[0], code[1], code[1], code[2], code[2]})
	}
	if len(code) != 6 {
		return 0, fmt.Errorf("%w: hex code %q must have 3 or 6 digits", ErrInvalidColor, code)
	}

	var rgb [3]uint8
	for i := range rgb {
		v, err := strconv.ParseUint(code[2*i:2*i+2], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("%w: hex code %q: %v", ErrInvalidColor, code, err)
		}
		rgb[i] = uint8(v)
	}
	return RGBToANSI(rgb[0], rgb[1], rgb[2]), nil
}

// LookupColor resolves a system color name or a hex code to a palette index.
func LookupColor(name string) (uint8, error) {
	if i, ok := colorIndex(name); ok {
		return i, nil
	}
	i, err := HexToANSI(name)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", name, err)
	}
	return i, nil
}
