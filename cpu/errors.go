package cpu

import (
	"errors"
	"fmt"
)

var (
	// ErrReservedOpcode matches any *ReservedOpcodeError.
	ErrReservedOpcode = errors.New("reserved opcode")
	// ErrUnknownTrap matches any *TrapError.
	ErrUnknownTrap = errors.New("unknown trap vector")
)

// ReservedOpcodeError is returned when RTI or RES is executed.
type ReservedOpcodeError struct {
	Op      Opcode
	Address uint16
}

func (e *ReservedOpcodeError) Error() string {
	return fmt.Sprintf("reserved opcode %s at 0x%04X", e.Op, e.Address)
}

// Is lets errors.Is match ErrReservedOpcode.
func (e *ReservedOpcodeError) Is(target error) bool {
	return target == ErrReservedOpcode
}

// TrapError is returned for a TRAP with a vector that has no routine.
type TrapError struct {
	Vector  uint8
	Address uint16
}

func (e *TrapError) Error() string {
	return fmt.Sprintf("unknown trap vector 0x%02X at 0x%04X", e.Vector, e.Address)
}

// Is lets errors.Is match ErrUnknownTrap.
func (e *TrapError) Is(target error) bool {
	return target == ErrUnknownTrap
}
