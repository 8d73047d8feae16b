package pack

import (
	"bytes"
	"errors"
	"testing"
)

func TestUnpackPureLiteralRun(t *testing.T) {
	packed := []byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x00, 0x07}
	want := []byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88}
	got := make([]byte, len(want))
	if err := Unpack(packed, got, nil); err != nil {
		t.Fatalf("Unpack: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("got % x, want % x", got, want)
	}
}

func TestUnpackDictionaryHit(t *testing.T) {
	// flags byte 0x01 selects dictionary index 0 (word 0x0000) for the
	// single decision; footer 0x01 marks max_bit=0, no slack byte. The
	// leading zero byte is never read by the backward scan and stands in
	// for whatever precedes this stream in a larger buffer.
	packed := []byte{0x00, 0x00, 0x01, 0x01}
	want := []byte{0x00, 0x00}
	got := make([]byte, len(want))
	if err := Unpack(packed, got, nil); err != nil {
		t.Fatalf("Unpack: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("got % x, want % x", got, want)
	}
}

func TestUnpackRejectsUnsupportedTableVersion(t *testing.T) {
	table := &Table{Version: 2}
	got := make([]byte, 2)
	if err := Unpack([]byte{0x00, 0x00, 0x01, 0x01}, got, table); !errors.Is(err, ErrUnsupportedTable) {
		t.Fatalf("err = %v, want ErrUnsupportedTable", err)
	}
}

func TestPackRejectsUnsupportedTableVersion(t *testing.T) {
	table := &Table{Version: 3}
	dst := make([]byte, MaxPackedSize(4))
	if _, err := Pack([]byte{1, 2, 3, 4}, dst, table); !errors.Is(err, ErrUnsupportedTable) {
		t.Fatalf("err = %v, want ErrUnsupportedTable", err)
	}
}

func TestPackRejectsOddLengthInput(t *testing.T) {
	dst := make([]byte, MaxPackedSize(3))
	if _, err := Pack([]byte{1, 2, 3}, dst, nil); !errors.Is(err, ErrBadAlignment) {
		t.Fatalf("err = %v, want ErrBadAlignment", err)
	}
}

func TestPackOutputIsAlwaysEvenLength(t *testing.T) {
	for n := 0; n <= 64; n += 2 {
		input := make([]byte, n)
		for i := range input {
			input[i] = byte(i*37 + 11)
		}
		dst := make([]byte, MaxPackedSize(n))
		got, err := Pack(input, dst, nil)
		if err != nil {
			t.Fatalf("Pack(len %d): %v", n, err)
		}
		if got%2 != 0 {
			t.Errorf("Pack(len %d) produced %d bytes, want even", n, got)
		}
	}
}

func TestPackFooterParityEncodesMaxBit(t *testing.T) {
	// Three literal pairs: the final flag group has width 3 (maxBit 2), and
	// six literal bytes plus one flag byte leave an odd count, so the footer
	// takes the odd form 2*2+1 with no slack byte.
	input := []byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66}
	dst := make([]byte, MaxPackedSize(len(input)))
	n, err := Pack(input, dst, nil)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	if dst[n-1] != 5 {
		t.Errorf("footer = %d, want 5 (odd form, maxBit 2)", dst[n-1])
	}

	// One dictionary pair: index byte plus flag byte leave an even count, so
	// the footer takes the even form 2*0 preceded by a zero slack byte.
	input = []byte{0x00, 0x00} // dictionary entry 0
	n, err = Pack(input, dst, nil)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	if dst[n-1] != 0 {
		t.Errorf("footer = %d, want 0 (even form, maxBit 0)", dst[n-1])
	}
	if dst[n-2] != 0 {
		t.Errorf("slack byte = %d, want 0", dst[n-2])
	}
}

func roundTrip(t *testing.T, table *Table, input []byte) {
	t.Helper()
	dst := make([]byte, MaxPackedSize(len(input)))
	n, err := Pack(input, dst, table)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	got := make([]byte, len(input))
	if err := Unpack(dst[:n], got, table); err != nil {
		t.Fatalf("Unpack: %v", err)
	}
	if !bytes.Equal(got, input) {
		t.Errorf("round trip mismatch: got % x, want % x", got, input)
	}
}

func TestRoundTripDefaultTable(t *testing.T) {
	cases := [][]byte{
		{},
		{0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88},
		{0x20, 0x20, 0xAA, 0xBB},
		{0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20},
		bytes.Repeat([]byte{0x00, 0x00, 0x01, 0x02, 0x20, 0x20, 0x03, 0x04}, 5),
	}
	for i, c := range cases {
		roundTrip(t, nil, c)
		_ = i
	}
}

func TestRoundTripCustomTable(t *testing.T) {
	table := Default()
	table.Words[5] = 0x1234
	input := bytes.Repeat([]byte{0x12, 0x34, 0xDE, 0xAD}, 3)
	roundTrip(t, table, input)
}

func TestUnpackReportsTruncatedStream(t *testing.T) {
	got := make([]byte, 4)
	if err := Unpack([]byte{0x01, 0x01}, got, nil); !errors.Is(err, ErrTruncated) {
		t.Fatalf("err = %v, want ErrTruncated", err)
	}
}

func TestUnpackRejectsOddLengthBuffers(t *testing.T) {
	got := make([]byte, 2)
	if err := Unpack([]byte{0x00, 0x00, 0x01}, got, nil); !errors.Is(err, ErrBadAlignment) {
		t.Fatalf("err = %v, want ErrBadAlignment", err)
	}
}

func TestUnpackTrailingExactCapacity(t *testing.T) {
	packed := []byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x00, 0x07}
	out, err := UnpackTrailing(packed, 8, nil)
	if err != nil {
		t.Fatalf("UnpackTrailing: %v", err)
	}
	want := []byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88}
	if !bytes.Equal(out, want) {
		t.Errorf("got % x, want % x", out, want)
	}
}
