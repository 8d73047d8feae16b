package lisaobj

// JTSegVariant describes one segment's slot in the executable's jump-table
// segment variant array.
type JTSegVariant struct {
	SegmentAddr  uint32
	SizePacked   uint16
	SizeUnpacked uint16
	MemLoc       uint32
}

// JTVariant describes one jump-table entry's variant record.
type JTVariant struct {
	JumpL   uint16
	AbsAddr uint32
}

// ExecutablePayload is the richest block shape: a fixed header followed by
// two independently length-prefixed tables. Both counts must be decoded and
// consumed before the table that follows can be located, since neither
// table's start offset is known ahead of time.
type ExecutablePayload struct {
	JTLaddr     uint32
	JTSize      uint32
	DataSize    uint32
	MainSize    uint32
	JTSegDelta  uint32
	StkSegDelta uint32
	DynStack    uint32
	MaxStack    uint32
	MinHeap     uint32
	MaxHeap     uint32

	JTSegVariantTable []JTSegVariant
	JTVariantTable    []JTVariant
}
