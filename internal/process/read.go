package process

import (
	"encoding/binary"
	"fmt"
	"math"
)

// ReadU8 reads one unsigned byte.
func ReadU8(r Reader, addr Address) (uint8, error) {
	var b [1]byte
	if err := r.Read(addr, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadI8 reads one signed byte.
func ReadI8(r Reader, addr Address) (int8, error) {
	v, err := ReadU8(r, addr)
	return int8(v), err
}

// ReadI32 reads a little-endian signed 32-bit integer.
func ReadI32(r Reader, addr Address) (int32, error) {
	var b [4]byte
	if err := r.Read(addr, b[:]); err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(b[:])), nil
}

// ReadF32 reads a little-endian IEEE 754 single.
func ReadF32(r Reader, addr Address) (float32, error) {
	var b [4]byte
	if err := r.Read(addr, b[:]); err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b[:])), nil
}

// ReadPointer reads a 64-bit pointer. A nil pointer is reported as an error
// because nothing useful can be dereferenced through it.
func ReadPointer(r Reader, addr Address) (Address, error) {
	var b [8]byte
	if err := r.Read(addr, b[:]); err != nil {
		return 0, err
	}
	p := Address(binary.LittleEndian.Uint64(b[:]))
	if p == 0 {
		return 0, fmt.Errorf("nil pointer at %s", addr)
	}
	return p, nil
}

// Deref follows a pointer chain: each offset is added to the current address
// and the pointer stored there becomes the next address.
func Deref(r Reader, base Address, offsets ...int64) (Address, error) {
	addr := base
	for _, off := range offsets {
		next, err := ReadPointer(r, addr.Add(off))
		if err != nil {
			return 0, err
		}
		addr = next
	}
	return addr, nil
}
