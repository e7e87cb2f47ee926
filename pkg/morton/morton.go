// Package morton implements Z-order (Morton) bit interleaving for two and
// three axes.
//
// The narrow variants (three or four bits per axis) back the 8-per-axis
// blocks used by package zarray. The wider variants combine 4-bit tiers and
// are general-purpose utilities. All functions are total: bits beyond the
// documented width are discarded, never reported.
package morton

// spread2 places the four bits of a nibble at stride 2.
var spread2 = [16]uint8{
	0b00000000, 0b00000001, 0b00000100, 0b00000101,
	0b00010000, 0b00010001, 0b00010100, 0b00010101,
	0b01000000, 0b01000001, 0b01000100, 0b01000101,
	0b01010000, 0b01010001, 0b01010100, 0b01010101,
}

// spread3 places the four bits of a nibble at stride 3.
var spread3 = [16]uint16{
	0b000000000000, 0b000000000001, 0b000000001000, 0b000000001001,
	0b000001000000, 0b000001000001, 0b000001001000, 0b000001001001,
	0b001000000000, 0b001000000001, 0b001000001000, 0b001000001001,
	0b001001000000, 0b001001000001, 0b001001001000, 0b001001001001,
}

// Block slot counts for 8x8 and 8x8x8 blocks.
const (
	BlockSlots2 = 64
	BlockSlots3 = 512
)

// reverse2 maps a 6-bit block code to its packed 0byyyxxx coordinate.
var reverse2 [BlockSlots2]uint8

// reverse3 maps a 9-bit block code to its packed 0bzzzyyyxxx coordinate.
var reverse3 [BlockSlots3]uint16

func init() {
	for y := uint8(0); y < 8; y++ {
		for x := uint8(0); x < 8; x++ {
			reverse2[Encode2x4(x, y)] = y<<3 | x
		}
	}
	for z := uint8(0); z < 8; z++ {
		for y := uint8(0); y < 8; y++ {
			for x := uint8(0); x < 8; x++ {
				reverse3[Encode3x4(x, y, z)] = uint16(z)<<6 | uint16(y)<<3 | uint16(x)
			}
		}
	}
}

// Encode2x4 interleaves the low 4 bits of x and y into 0byxyxyxyx.
func Encode2x4(x, y uint8) uint8 {
	return spread2[x&0x0F] | spread2[y&0x0F]<<1
}

// Encode2x8 interleaves two full bytes into a 16-bit code.
func Encode2x8(x, y uint8) uint16 {
	return uint16(Encode2x4(x>>4, y>>4))<<8 | uint16(Encode2x4(x, y))
}

// Encode2x16 interleaves two 16-bit coordinates into a 32-bit code.
func Encode2x16(x, y uint16) uint32 {
	return uint32(Encode2x8(uint8(x>>8), uint8(y>>8)))<<16 | uint32(Encode2x8(uint8(x), uint8(y)))
}

// Decode2x6 is the inverse of Encode2x4 restricted to 3 bits per axis.
// Only the low 6 bits of code are used.
func Decode2x6(code uint8) (x, y uint8) {
	p := reverse2[code&0x3F]
	return p & 0x07, (p >> 3) & 0x07
}

// Decode2x16 is the inverse of Encode2x8.
func Decode2x16(code uint16) (x, y uint8) {
	return uint8(compact2(uint32(code))), uint8(compact2(uint32(code) >> 1))
}

// Decode2x32 is the inverse of Encode2x16.
func Decode2x32(code uint32) (x, y uint16) {
	return compact2(code), compact2(code >> 1)
}

// Encode3x4 interleaves the low 4 bits of x, y and z into a 12-bit code with
// x on bit 0, y on bit 1 and z on bit 2 of every triple.
func Encode3x4(x, y, z uint8) uint16 {
	return spread3[x&0x0F] | spread3[y&0x0F]<<1 | spread3[z&0x0F]<<2
}

// Encode3x8 interleaves three bytes into a 24-bit code.
func Encode3x8(x, y, z uint8) uint32 {
	return uint32(Encode3x4(x>>4, y>>4, z>>4))<<12 | uint32(Encode3x4(x, y, z))
}

// Decode3x9 is the inverse of Encode3x4 restricted to 3 bits per axis.
// Only the low 9 bits of code are used.
func Decode3x9(code uint16) (x, y, z uint8) {
	p := reverse3[code&0x1FF]
	return uint8(p & 0x07), uint8((p >> 3) & 0x07), uint8((p >> 6) & 0x07)
}

// Decode3x24 is the inverse of Encode3x8. Bits above 24 are ignored.
func Decode3x24(code uint32) (x, y, z uint8) {
	code &= 0x00FFFFFF
	return compact3(code), compact3(code >> 1), compact3(code >> 2)
}

// Block2 returns the slot of (x, y) inside an 8x8 block.
func Block2(x, y uint) uint {
	return uint(Encode2x4(uint8(x&0x07), uint8(y&0x07)))
}

// Block3 returns the slot of (x, y, z) inside an 8x8x8 block.
func Block3(x, y, z uint) uint {
	return uint(Encode3x4(uint8(x&0x07), uint8(y&0x07), uint8(z&0x07)))
}

// compact2 gathers the even bits of v into the low half.
func compact2(v uint32) uint16 {
	v &= 0x55555555
	v = (v | v>>1) & 0x33333333
	v = (v | v>>2) & 0x0F0F0F0F
	v = (v | v>>4) & 0x00FF00FF
	v = (v | v>>8) & 0x0000FFFF
	return uint16(v)
}

// compact3 gathers every third bit of v, starting at bit 0.
func compact3(v uint32) uint8 {
	v &= 0x09249249
	v = (v ^ (v >> 2)) & 0x030C30C3
	v = (v ^ (v >> 4)) & 0x0300F00F
	v = (v ^ (v >> 8)) & 0xFF0000FF
	v = (v ^ (v >> 16)) & 0x000003FF
	return uint8(v)
}
