package common

// HexToRGB splits a 0xRRGGBB color into normalized red, green and blue components.
//
// Parameters:
//   - hex: the packed 24-bit color
//
// Returns:
//   - [3]float32: the color as (r, g, b) in [0, 1]
func HexToRGB(hex uint32) [3]float32 {
	return [3]float32{
		float32((hex>>16)&0xff) / 255,
		float32((hex>>8)&0xff) / 255,
		float32(hex&0xff) / 255,
	}
}

// RGBToHex packs normalized red, green and blue components into a 0xRRGGBB color.
// Components outside [0, 1] are clamped.
//
// Parameters:
//   - rgb: the color as (r, g, b)
//
// Returns:
//   - uint32: the packed 24-bit color
func RGBToHex(rgb [3]float32) uint32 {
	var hex uint32
	for _, c := range rgb {
		hex = hex<<8 | uint32(Clamp(c, 0, 1)*255+0.5)
	}
	return hex
}
