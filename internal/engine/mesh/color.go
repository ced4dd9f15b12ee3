package mesh

import (
	"fmt"
	"strconv"
	"strings"
)

// RGBA is a colour with float components in [0, 1].
type RGBA [4]float32

// ParseHex parses "#rgb" or "#rrggbb" (the leading '#' is optional) into an
// opaque colour.
func ParseHex(s string) (RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return RGBA{}, fmt.Errorf("invalid hex colour %q", s)
	}

	var c RGBA
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGBA{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
		}
		c[i] = float32(v) / 255
	}
	c[3] = 1
	return c, nil
}

// Hex formats the RGB part as "#rrggbb".
func (c RGBA) Hex() string {
	var b strings.Builder
	b.WriteByte('#')
	for i := 0; i < 3; i++ {
		fmt.Fprintf(&b, "%02x", int(clamp01(c[i])*255+0.5))
	}
	return b.String()
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
