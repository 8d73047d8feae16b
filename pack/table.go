// Package pack implements the Lisa Workshop linker's code compression
// scheme: a backwards-scanning, dictionary-driven byte packer/unpacker.
package pack

// DefaultWords is the 256-entry dictionary built into the Lisa Workshop
// linker as SYSTEM.UNPACK, used whenever an object file does not supply its
// own PackTable. Transcribed verbatim from the Lisa Workshop linker's
// SYSTEM.UNPACK resource.
var DefaultWords = [256]uint16{
	0x0000, 0x2020, 0xC1FC, 0x670E, 0x007A, 0x422D, 0x2070, 0x226E,
	0x0000, 0x504F, 0x0005, 0x2006, 0xFFE2, 0x0006, 0x2007, 0x5340,
	0xE340, 0xFFE4, 0xFFEA, 0x2F0E, 0x18F0, 0x6702, 0x3F2C, 0x0030,
	0x6000, 0x6008, 0x8001, 0x3200, 0x0022, 0x2E9F, 0x000A, 0x2045,
	0x102C, 0x205F, 0x0016, 0x102E, 0x0010, 0x6E12, 0x3F2D, 0x1F3C,
	0x4A50, 0x0018, 0x0008, 0x2F3C, 0x3F00, 0x001A, 0x6700, 0x3D40,
	0x486D, 0x0034, 0x6608, 0xA07C, 0x422E, 0xFFD0, 0x0C6E, 0x426E,
	0xFFD2, 0x4A6E, 0xFFD4, 0x1028, 0x22D8, 0x2D5F, 0xFFE6, 0xDEFC,
	0x001C, 0x41EE, 0xB06E, 0x2F2B, 0xBE6E, 0x00FF, 0x7E01, 0x6706,
	0x670A, 0x2068, 0xFFFA, 0x2F28, 0x4250, 0x6710, 0x2D40, 0x302C,
	0x6708, 0x2F2C, 0xFFFC, 0x30BC, 0x4E5E, 0x201F, 0x2D48, 0x2F0B,
	0x48C0, 0x302E, 0xFFCA, 0x2F10, 0x6600, 0x426C, 0x41ED, 0x0C47,
	0x2053, 0x6EFA, 0xFFEC, 0x2F08, 0xFFF6, 0x0014, 0x206C, 0x0001,
	0x3D6E, 0x1F2E, 0x000E, 0x486E, 0x6002, 0x0024, 0x2050, 0x0098,
	0xFFE8, 0x00C2, 0x3F28, 0x3091, 0x2046, 0xC001, 0x4CDF, 0x0009,
	0x4441, 0x4247, 0x266D, 0x0A3C, 0x3F07, 0x002C, 0x302D, 0x4868,
	0x56C0, 0x20D9, 0xA08C, 0x4A10, 0xFFDA, 0xFFF2, 0x286E, 0xFFEE,
	0x2F2D, 0x6604, 0x6004, 0xFFFF, 0xFFC0, 0x3F2E, 0x670C, 0x2F0C,
	0x0002, 0x2F00, 0x2047, 0x0020, 0x000C, 0x000F, 0x0003, 0x3D7C,
	0xA0AC, 0x5247, 0xA0AE, 0x3F3C, 0x600C, 0x001E, 0xA0C0, 0x0012,
	0x202E, 0x1D7C, 0x0C2C, 0x41E8, 0xA022, 0x0032, 0xFFDC, 0xFFF4,
	0x0130, 0x266E, 0xFFDE, 0x4EBA, 0x4E75, 0xA028, 0x3940, 0x7000,
	0xA030, 0xFFF8, 0x2F07, 0xFFC4, 0xA034, 0x486C, 0x6712, 0x56C1,
	0x0F18, 0x4A6F, 0x206D, 0xA03C, 0x4400, 0xE540, 0xFFE0, 0x57C0,
	0x4E56, 0xFFFE, 0x41FA, 0x3028, 0x2E1F, 0x2054, 0x0C40, 0x4EF9,
	0x7FFF, 0x0240, 0x1B7C, 0x206E, 0x544F, 0x4267, 0xA050, 0x4880,
	0x48E7, 0x6906, 0x0074, 0x57C1, 0x487A, 0xFFF0, 0xA05C, 0x2F2E,
	0x101F, 0x6704, 0x046A, 0xFFD6, 0x322E, 0x0A00, 0x0158, 0x0116,
	0x2005, 0x6006, 0x5C4F, 0xFFC8, 0x0004, 0x397C, 0x6B18, 0x0026,
	0x42A7, 0xFFCC, 0x3F06, 0x206B, 0x422C, 0x4ED0, 0x1800, 0x285F,
	0x4EAD, 0x5240, 0x286D, 0xA060, 0x0050, 0xFFD8, 0x0007, 0x43EE,
	0xFFCE, 0x302B, 0x0028, 0xF000, 0x41EC, 0x102D, 0x2F06, 0x197C,
}

// Table is a 256-entry dictionary as carried by an object file's PackTable
// block: a version word followed by 256 16-bit words (big-endian on disk,
// already decoded here). A per-file table only takes effect when
// Version == 1; anything else is rejected by Pack/Unpack.
type Table struct {
	Version uint32
	Words   [256]uint16
}

// Default returns the built-in SYSTEM.UNPACK dictionary as a Table.
func Default() *Table {
	return &Table{Version: 1, Words: DefaultWords}
}
