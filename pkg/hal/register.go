package hal

import "fmt"

// RegAddress identifies a register on a banked device. The low byte holds the
// register offset inside its bank, the next byte holds the bank number.
type RegAddress uint16

// NewRegAddress combines a bank and an in-bank offset.
func NewRegAddress(bank uint8, offset uint8) RegAddress {
	return RegAddress(uint16(bank)<<8 | uint16(offset))
}

// Bank returns the bank the register lives in.
func (a RegAddress) Bank() uint8 {
	return uint8(a >> 8)
}

// Offset returns the register offset inside its bank.
func (a RegAddress) Offset() uint8 {
	return uint8(a)
}

// ToByte returns the byte that is put on the bus to address the register.
func (a RegAddress) ToByte() byte {
	return a.Offset()
}

// Split decomposes the address into the bytes the transport needs
func (a RegAddress) Split() (offset uint8, bank uint8) {
	return a.Offset(), a.Bank()
}

func (a RegAddress) String() string {
	return fmt.Sprintf("%d:0x%02x", a.Bank(), a.Offset())
}
