package cpu

// SignExtend widens the low bits of x to 16 bits, copying bit bits-1 upwards.
func SignExtend(x uint16, bits uint) uint16 {
	if bits == 0 || bits >= 16 {
		return x
	}
	if (x>>(bits-1))&1 != 0 {
		x |= 0xFFFF << bits
	}
	return x
}

// Signed interprets a word as two's complement.
func Signed(x uint16) int16 {
	return int16(x)
}
