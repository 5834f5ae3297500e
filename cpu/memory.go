package cpu

// MemorySize is the number of 16-bit cells in the address space.
const MemorySize = 1 << 16

// Conventional memory map.
const (
	TrapVectorTable uint16 = 0x0000
	InterruptTable  uint16 = 0x0100
	SystemSpace     uint16 = 0x0200
	UserSpace       uint16 = 0x3000
	DeviceRegisters uint16 = 0xFE00
)

// Memory is the flat word-addressed store. Code and data share it.
type Memory [MemorySize]uint16

// Read returns the word at addr.
func (m *Memory) Read(addr uint16) uint16 {
	return m[addr]
}

// Write stores val at addr.
func (m *Memory) Write(addr, val uint16) {
	m[addr] = val
}

// Slice copies count words starting at addr. Addresses wrap at the top of memory.
func (m *Memory) Slice(addr uint16, count int) []uint16 {
	out := make([]uint16, count)
	for i := range out {
		out[i] = m[addr]
		addr++
	}
	return out
}
