package lisaobj

// cursor is a small forward-reading helper over a block's payload bytes.
// Payloads are already in memory, so fields are read straight out of the
// slice rather than through an io.Reader.
type cursor struct {
	b   []byte
	pos int
}

func (c *cursor) remaining() int { return len(c.b) - c.pos }

func (c *cursor) name() Name {
	var n Name
	copy(n[:], c.b[c.pos:c.pos+8])
	c.pos += 8
	return n
}

func (c *cursor) u16() uint16 {
	v := u16FromBE(c.b[c.pos : c.pos+2])
	c.pos += 2
	return v
}

func (c *cursor) u32() uint32 {
	v := u32FromBE(c.b[c.pos : c.pos+4])
	c.pos += 4
	return v
}

func (c *cursor) u8() uint8 {
	v := c.b[c.pos]
	c.pos++
	return v
}

func (c *cursor) bytes(n int) []byte {
	v := c.b[c.pos : c.pos+n]
	c.pos += n
	return v
}

// decodePayload normalizes a block's payload bytes (big-endian on disk)
// into the typed variant named by kind. payload is the block's bytes
// excluding the 4-byte header, i.e. len(payload) == size-4.
func decodePayload(kind BlockKind, offset int64, payload []byte) (any, error) {
	c := &cursor{b: payload}
	switch kind {
	case EOFMark:
		return EOFMarkPayload{}, nil

	case ModuleName:
		if len(payload) < 20 {
			return nil, malformedAt(offset, "ModuleName block too small", len(payload))
		}
		return ModuleNamePayload{ModuleName: c.name(), SegmentName: c.name(), CSize: c.u32()}, nil

	case EndBlock:
		if len(payload) < 4 {
			return nil, malformedAt(offset, "EndBlock block too small", len(payload))
		}
		return EndBlockPayload{CSize: c.u32()}, nil

	case EntryPoint:
		if len(payload) < 20 {
			return nil, malformedAt(offset, "EntryPoint block too small", len(payload))
		}
		return EntryPointPayload{LinkName: c.name(), UserName: c.name(), Loc: c.u32()}, nil

	case External:
		if len(payload) < 16 {
			return nil, malformedAt(offset, "External block too small", len(payload))
		}
		count := (len(payload) - externalRefHeaderSize) / 4
		link, user := c.name(), c.name()
		refs := make([]uint32, count)
		for i := range refs {
			refs[i] = c.u32()
		}
		return ExternalPayload{LinkName: link, UserName: user, Ref: refs}, nil

	case StartAddress:
		if len(payload) < 8 {
			return nil, malformedAt(offset, "StartAddress block too small", len(payload))
		}
		return StartAddressPayload{Start: c.u32(), GSize: c.u32()}, nil

	case CodeBlock:
		if len(payload) < 4 {
			return nil, malformedAt(offset, "CodeBlock block too small", len(payload))
		}
		addr := c.u32()
		return CodeBlockPayload{Addr: addr, Code: c.bytes(c.remaining())}, nil

	case Relocation:
		count := len(payload) / 4
		refs := make([]uint32, count)
		for i := range refs {
			refs[i] = c.u32()
		}
		return RelocationPayload{Ref: refs}, nil

	case CommonRelocation:
		if len(payload) < 8 {
			return nil, malformedAt(offset, "CommonRelocation block too small", len(payload))
		}
		count := (len(payload) - 8) / 4
		name := c.name()
		refs := make([]uint32, count)
		for i := range refs {
			refs[i] = c.u32()
		}
		return CommonRelocationPayload{CommonName: name, Ref: refs}, nil

	case ShortExternal:
		if len(payload) < 16 {
			return nil, malformedAt(offset, "ShortExternal block too small", len(payload))
		}
		count := (len(payload) - 16) / 2
		link, user := c.name(), c.name()
		refs := make([]uint16, count)
		for i := range refs {
			refs[i] = c.u16()
		}
		return ShortExternalPayload{LinkName: link, UserName: user, ShortRef: refs}, nil

	case UnitBlock:
		if len(payload) < 26 {
			return nil, malformedAt(offset, "UnitBlock block too small", len(payload))
		}
		name := c.name()
		code, text, tsize, gsize := c.u32(), c.u32(), c.u32(), c.u32()
		ut := UnitType(c.u16())
		return UnitBlockPayload{UnitName: name, CodeAddr: code, TextAddr: text, TextSize: tsize, GlobalSize: gsize, UnitType: ut}, nil

	case Executable:
		if len(payload) < 40 {
			return nil, malformedAt(offset, "Executable block too small", len(payload))
		}
		var p ExecutablePayload
		p.JTLaddr = c.u32()
		p.JTSize = c.u32()
		p.DataSize = c.u32()
		p.MainSize = c.u32()
		p.JTSegDelta = c.u32()
		p.StkSegDelta = c.u32()
		p.DynStack = c.u32()
		p.MaxStack = c.u32()
		p.MinHeap = c.u32()
		p.MaxHeap = c.u32()

		if c.remaining() < 2 {
			return nil, malformedAt(offset, "Executable missing JTSegVariantTable count", nil)
		}
		numSegs := int(c.u16())
		if c.remaining() < numSegs*12 {
			return nil, malformedAt(offset, "Executable JTSegVariantTable truncated", numSegs)
		}
		segs := make([]JTSegVariant, numSegs)
		for i := range segs {
			segs[i] = JTSegVariant{SegmentAddr: c.u32(), SizePacked: c.u16(), SizeUnpacked: c.u16(), MemLoc: c.u32()}
		}
		p.JTSegVariantTable = segs

		if c.remaining() < 2 {
			return nil, malformedAt(offset, "Executable missing JTVariantTable count", nil)
		}
		numDescriptors := int(c.u16())
		if c.remaining() < numDescriptors*6 {
			return nil, malformedAt(offset, "Executable JTVariantTable truncated", numDescriptors)
		}
		variants := make([]JTVariant, numDescriptors)
		for i := range variants {
			variants[i] = JTVariant{JumpL: c.u16(), AbsAddr: c.u32()}
		}
		p.JTVariantTable = variants
		return p, nil

	case VersionCtrl:
		if len(payload) < 24 {
			return nil, malformedAt(offset, "VersionCtrl block too small", len(payload))
		}
		var p VersionCtrlPayload
		p.SysNum, p.MinSys, p.MaxSys = c.u32(), c.u32(), c.u32()
		p.Reserved[0], p.Reserved[1], p.Reserved[2] = c.u32(), c.u32(), c.u32()
		return p, nil

	case SegmentTable:
		if c.remaining() < 2 {
			return nil, malformedAt(offset, "SegmentTable missing count", nil)
		}
		n := int(c.u16())
		if c.remaining() < n*18 {
			return nil, malformedAt(offset, "SegmentTable truncated", n)
		}
		entries := make([]SegmentTableEntry, n)
		for i := range entries {
			entries[i] = SegmentTableEntry{SegName: c.name(), SegNumber: c.u16(), Version1: c.u32(), Version2: c.u32()}
		}
		return SegmentTablePayload{Entries: entries}, nil

	case UnitTable:
		if c.remaining() < 4 {
			return nil, malformedAt(offset, "UnitTable missing header", nil)
		}
		n := int(c.u16())
		maxUnit := c.u16()
		if c.remaining() < n*12 {
			return nil, malformedAt(offset, "UnitTable truncated", n)
		}
		entries := make([]UnitTableEntry, n)
		for i := range entries {
			entries[i] = UnitTableEntry{UnitName: c.name(), UnitNumber: c.u16(), UnitType: UnitType(c.u16())}
		}
		return UnitTablePayload{MaxUnit: maxUnit, Entries: entries}, nil

	case SegLocation:
		if c.remaining() < 2 {
			return nil, malformedAt(offset, "SegLocation missing count", nil)
		}
		n := int(c.u16())
		if c.remaining() < n*28 {
			return nil, malformedAt(offset, "SegLocation truncated", n)
		}
		entries := make([]SegLocationEntry, n)
		for i := range entries {
			entries[i] = SegLocationEntry{
				SegName:      c.name(),
				SegNumber:    c.u16(),
				Version1:     c.u32(),
				Version2:     c.u32(),
				FileNumber:   c.u16(),
				FileLocation: c.u32(),
				SizePacked:   c.u16(),
				SizeUnpacked: c.u16(),
			}
		}
		return SegLocationPayload{Entries: entries}, nil

	case UnitLocation:
		if c.remaining() < 2 {
			return nil, malformedAt(offset, "UnitLocation missing count", nil)
		}
		n := int(c.u16())
		if c.remaining() < n*16 {
			return nil, malformedAt(offset, "UnitLocation truncated", n)
		}
		entries := make([]UnitLocationEntry, n)
		for i := range entries {
			entries[i] = UnitLocationEntry{
				UnitName:   c.name(),
				UnitNumber: c.u16(),
				FileNumber: c.u8(),
				UnitType:   UnitType(c.u8()),
				DataSize:   c.u32(),
			}
		}
		return UnitLocationPayload{Entries: entries}, nil

	case StringBlock:
		if c.remaining() < 2 {
			return nil, malformedAt(offset, "StringBlock missing count", nil)
		}
		n := int(c.u16())
		if c.remaining() < n*6 {
			return nil, malformedAt(offset, "StringBlock truncated", n)
		}
		entries := make([]StringBlockEntry, n)
		for i := range entries {
			entries[i] = StringBlockEntry{FileNumber: c.u16(), NameAddr: c.u32()}
		}
		return StringBlockPayload{Entries: entries}, nil

	case PackedCode:
		if len(payload) < 8 {
			return nil, malformedAt(offset, "PackedCode block too small", len(payload))
		}
		addr, csize := c.u32(), c.u32()
		return PackedCodePayload{Addr: addr, CSize: csize, Code: c.bytes(c.remaining())}, nil

	case PackTableKind:
		if len(payload) < 4+512 {
			return nil, malformedAt(offset, "PackTable block too small", len(payload))
		}
		var t PackTable
		t.Version = c.u32()
		for i := range t.Words {
			t.Words[i] = c.u16()
		}
		return PackTablePayload{Table: t}, nil

	case OSData:
		if len(payload) < 16 {
			return nil, malformedAt(offset, "OSData block too small", len(payload))
		}
		var p OSDataPayload
		copy(p.Bitmap[:], payload[:16])
		return p, nil

	case OldExecutable, PhysicalExec:
		return RawPayload{Bytes: payload}, nil

	default:
		return nil, malformedAt(offset, "unrecognized block kind", kind)
	}
}
