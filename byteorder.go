package lisaobj

import (
	"encoding/binary"
	"unsafe"
)

// On-disk fields in a Lisa object file are always big-endian, regardless of
// host architecture. encoding/binary.BigEndian already does the right thing
// on both little- and big-endian hosts; this init check exists only to give
// the module an explicit, documented analogue of the original C sources'
// compile-time "PDP-11 not supported" guard, which Go has no portable way
// to express at build time.
func init() {
	var x uint16 = 1
	b := (*[2]byte)(unsafe.Pointer(&x))
	switch {
	case b[0] == 1: // little-endian
	case b[1] == 1: // big-endian
	default:
		panic("lisaobj: host byte order is neither big- nor little-endian")
	}
}

func u16FromBE(b []byte) uint16 { return binary.BigEndian.Uint16(b) }
func u32FromBE(b []byte) uint32 { return binary.BigEndian.Uint32(b) }

func i16FromBE(b []byte) int16 { return int16(binary.BigEndian.Uint16(b)) }
func i32FromBE(b []byte) int32 { return int32(binary.BigEndian.Uint32(b)) }

func putU16BE(b []byte, v uint16) { binary.BigEndian.PutUint16(b, v) }
func putU32BE(b []byte, v uint32) { binary.BigEndian.PutUint32(b, v) }
