package lisaobj

import "fmt"

// BlockKind identifies the payload shape of a Block, taken from a one-byte
// tag in the block header. The set is closed: it includes the two
// recognized-but-undocumented reserved kinds (OldExecutable, PhysicalExec),
// and the parser rejects any tag outside it as malformed.
type BlockKind uint8

const (
	EOFMark          BlockKind = 0x00
	ModuleName       BlockKind = 0x80
	EndBlock         BlockKind = 0x81
	EntryPoint       BlockKind = 0x82
	External         BlockKind = 0x83
	StartAddress     BlockKind = 0x84
	CodeBlock        BlockKind = 0x85
	Relocation       BlockKind = 0x86
	CommonRelocation BlockKind = 0x87
	ShortExternal    BlockKind = 0x89
	OldExecutable    BlockKind = 0x8F
	UnitBlock        BlockKind = 0x92
	PhysicalExec     BlockKind = 0x97
	Executable       BlockKind = 0x98
	VersionCtrl      BlockKind = 0x99
	SegmentTable     BlockKind = 0x9A
	UnitTable        BlockKind = 0x9B
	SegLocation      BlockKind = 0x9C
	UnitLocation     BlockKind = 0x9D
	StringBlock      BlockKind = 0x9E
	PackedCode       BlockKind = 0xA0
	PackTableKind    BlockKind = 0xA1
	OSData           BlockKind = 0xB2
)

var blockKindNames = [...]struct {
	k BlockKind
	s string
}{
	{EOFMark, "EOFMark"},
	{ModuleName, "ModuleName"},
	{EndBlock, "EndBlock"},
	{EntryPoint, "EntryPoint"},
	{External, "External"},
	{StartAddress, "StartAddress"},
	{CodeBlock, "CodeBlock"},
	{Relocation, "Relocation"},
	{CommonRelocation, "CommonRelocation"},
	{ShortExternal, "ShortExternal"},
	{OldExecutable, "OldExecutable"},
	{UnitBlock, "UnitBlock"},
	{PhysicalExec, "PhysicalExec"},
	{Executable, "Executable"},
	{VersionCtrl, "VersionCtrl"},
	{SegmentTable, "SegmentTable"},
	{UnitTable, "UnitTable"},
	{SegLocation, "SegLocation"},
	{UnitLocation, "UnitLocation"},
	{StringBlock, "StringBlock"},
	{PackedCode, "PackedCode"},
	{PackTableKind, "PackTable"},
	{OSData, "OSData"},
}

func (k BlockKind) String() string {
	for _, n := range blockKindNames {
		if n.k == k {
			return n.s
		}
	}
	return fmt.Sprintf("Unknown($%02x)", uint8(k))
}

func (k BlockKind) known() bool {
	for _, n := range blockKindNames {
		if n.k == k {
			return true
		}
	}
	return false
}

// UnitType distinguishes the three kinds of Lisa Pascal unit.
type UnitType uint16

const (
	RegularUnit   UnitType = 0
	IntrinsicUnit UnitType = 1
	SharedUnit    UnitType = 2
)

var unitTypeNames = [...]struct {
	t UnitType
	s string
}{
	{RegularUnit, "Regular"},
	{IntrinsicUnit, "Intrinsic"},
	{SharedUnit, "Shared"},
}

func (t UnitType) String() string {
	for _, n := range unitTypeNames {
		if n.t == t {
			return n.s
		}
	}
	return fmt.Sprintf("Unknown($%04x)", uint16(t))
}
