package pack

import "errors"

var (
	// ErrUnsupportedTable is returned when a caller-supplied Table's
	// Version is not 1.
	ErrUnsupportedTable = errors.New("pack: unsupported table version")
	// ErrBadAlignment is returned when a packed or unpacked buffer has an
	// odd length.
	ErrBadAlignment = errors.New("pack: buffer length must be even")
	// ErrBufferTooSmall is returned when Pack's destination cannot hold
	// the worst-case output for the given input, or when a packed stream
	// decodes to more bytes than Unpack's or UnpackTrailing's output holds.
	ErrBufferTooSmall = errors.New("pack: destination buffer too small")
	// ErrTruncated is returned when Unpack runs out of packed input
	// before the destination buffer is completely filled.
	ErrTruncated = errors.New("pack: packed stream ran out before output was filled")
)

func wordsFor(table *Table) (*[256]uint16, error) {
	if table == nil {
		return &DefaultWords, nil
	}
	if table.Version != 1 {
		return nil, ErrUnsupportedTable
	}
	return &table.Words, nil
}

// swap16 exchanges the high and low bytes of a 16-bit value. Dictionary
// words are stored with their bytes in the opposite order from how they
// must be written into the unpacked stream; swap16 is the conversion
// between the two, applied at every dictionary hit by both Pack and
// Unpack.
func swap16(w uint16) uint16 {
	return w<<8 | w>>8
}

// Unpack decodes packed into unpacked using table (or the built-in
// SYSTEM.UNPACK dictionary if table is nil). len(unpacked) must equal the
// exact decoded size the caller expects (as recorded, for example, in a
// PackedCode block's CSize field); Unpack fills it completely or returns
// ErrTruncated.
//
// The algorithm scans both buffers backwards, matching the Lisa Workshop
// linker's packer instruction for instruction: a footer byte encodes how
// many of the final flag byte's bits are meaningful (and whether a slack
// byte precedes it), every subsequent flag byte covers a full 8 decisions,
// and each set bit pulls one dictionary word rather than two literal
// bytes. A dictionary word is byte-swapped before the two bytes it
// contributes are written out, so the word's low byte lands at the lower
// output address; this little-endian placement of a big-endian-sourced
// word is part of the wire format, not an artifact.
func Unpack(packed []byte, unpacked []byte, table *Table) error {
	n, err := unpackInto(packed, unpacked, table)
	if err != nil {
		return err
	}
	if n != len(unpacked) {
		return ErrTruncated
	}
	return nil
}

// UnpackTrailing decodes packed into the trailing n bytes of a buffer of
// the given capacity, for callers that do not know the exact decoded size
// ahead of time (a standalone packed stream, unlike a PackedCode block,
// carries no size field). It returns the bytes actually produced, which
// may be fewer than capacity; if the stream decodes to more than capacity
// bytes it returns ErrBufferTooSmall.
func UnpackTrailing(packed []byte, capacity int, table *Table) ([]byte, error) {
	if capacity%2 != 0 {
		return nil, ErrBadAlignment
	}
	buf := make([]byte, capacity)
	n, err := unpackInto(packed, buf, table)
	if err != nil {
		return nil, err
	}
	return buf[capacity-n:], nil
}

// unpackInto runs the backward dictionary scan, writing into the trailing
// bytes of unpacked and returning how many bytes were written. It does not
// itself require unpacked to be exactly filled; Unpack enforces that.
func unpackInto(packed []byte, unpacked []byte, table *Table) (int, error) {
	if len(packed)%2 != 0 || len(unpacked)%2 != 0 {
		return 0, ErrBadAlignment
	}
	words, err := wordsFor(table)
	if err != nil {
		return 0, err
	}
	if len(packed) == 0 {
		return 0, nil
	}

	p := len(packed) - 1
	u := len(unpacked) - 1

	final := packed[p]
	p--
	var maxBit int
	if final%2 == 1 {
		maxBit = int(final-1) / 2
	} else {
		maxBit = int(final) / 2
		p-- // skip slack byte
	}

	for p > 0 {
		flags := packed[p]
		p--
		for i := 0; i <= maxBit; i++ {
			if u < 0 {
				return 0, ErrBufferTooSmall
			}
			if flags&(1<<uint(i)) != 0 {
				if p < 0 {
					return 0, ErrTruncated
				}
				idx := packed[p]
				p--
				word := swap16(words[idx])
				unpacked[u] = byte(word >> 8)
				u--
				unpacked[u] = byte(word)
				u--
			} else {
				if p < 1 {
					return 0, ErrTruncated
				}
				unpacked[u] = packed[p]
				u--
				p--
				unpacked[u] = packed[p]
				u--
				p--
			}
		}
		if maxBit < 7 {
			maxBit = 7
		}
	}

	return len(unpacked) - 1 - u, nil
}

// pairIndex reports whether the two-byte sequence (first, second), taken in
// the order they appear in the unpacked stream, matches a dictionary
// entry, and if so at which index.
//
// On a dictionary hit, Unpack writes swap16(words[idx]) into the stream
// low-byte-first: the stream's first (lower-address) byte is the low byte
// of the swapped word, and its second byte is the high byte. A candidate
// pair therefore matches entry idx when first == low byte of
// swap16(words[idx]) and second == its high byte.
func pairIndex(words *[256]uint16, first, second byte) (uint8, bool) {
	for i, w := range words {
		sw := swap16(w)
		if byte(sw) == first && byte(sw>>8) == second {
			return uint8(i), true
		}
	}
	return 0, false
}

// Pack encodes input into dst using table (or the default dictionary),
// returning the number of bytes written. It is the exact inverse of
// Unpack: Unpack(Pack(x), y, table) reproduces x in y for any even-length
// x, given a destination at least MaxPackedSize(len(input)) bytes long.
// Pack builds its output forward, the mirror of Unpack's backward scan.
func Pack(input []byte, dst []byte, table *Table) (int, error) {
	if len(input)%2 != 0 {
		return 0, ErrBadAlignment
	}
	words, err := wordsFor(table)
	if err != nil {
		return 0, err
	}
	need := MaxPackedSize(len(input))
	if len(dst) < need {
		return 0, ErrBufferTooSmall
	}

	type decision struct {
		hit    bool
		idx    uint8
		first  byte
		second byte
	}

	var decisions []decision
	for i := 0; i+1 < len(input); i += 2 {
		first, second := input[i], input[i+1]
		if idx, ok := pairIndex(words, first, second); ok {
			decisions = append(decisions, decision{hit: true, idx: idx})
		} else {
			decisions = append(decisions, decision{first: first, second: second})
		}
	}

	n := 0
	emit := func(b byte) { dst[n] = b; n++ }

	i := 0
	for i < len(decisions) {
		group := decisions[i:]
		width := 8
		if len(group) < 8 {
			width = len(group)
		}
		group = group[:width]

		// Within a group, the decoder reads the flags byte first and then
		// walks bit 0 upward, consuming data nearest the flags byte
		// first. That data is the group's LAST pair in forward order, so
		// bit i of flags describes the pair at local index (width-1-i),
		// and in the array the flags byte itself comes after all of the
		// group's data, not before it.
		var flags byte
		for j, d := range group {
			if d.hit {
				flags |= 1 << uint(width-1-j)
			}
		}
		for _, d := range group {
			if d.hit {
				emit(d.idx)
			} else {
				emit(d.first)
				emit(d.second)
			}
		}
		emit(flags)
		i += width
	}

	lastWidth := len(decisions) % 8
	var maxBit int
	if lastWidth == 0 {
		maxBit = 7
	} else {
		maxBit = lastWidth - 1
	}
	// The footer encodes maxBit for the final (first-decoded) flag byte as
	// footer = 2*maxBit+1 (odd, no slack byte) or 2*maxBit (even, preceded
	// by one slack byte). Either form is decodable; which one to use is
	// forced by the parity of the byte count emitted so far, since the
	// decoder requires the whole packed buffer to have even length.
	if n%2 == 1 {
		emit(byte(2*maxBit + 1))
	} else {
		emit(0) // slack byte
		emit(byte(2 * maxBit))
	}

	return n, nil
}

// MaxPackedSize returns the largest number of bytes Pack can produce for an
// input of the given length: worst case every pair is a literal miss (all
// input bytes copied through, plus one flag byte per group of 8 pairs,
// rounded up to cover a partial final group) plus the two footer bytes.
func MaxPackedSize(inputLen int) int {
	return inputLen + (inputLen+15)/16 + 2
}
