package lisaobj

import (
	"fmt"
	"io"
)

// Render writes a deterministic, human-readable rendering of a single
// block to w: one header line naming the kind, tag byte, offset, and total
// size, then one indented line per field in on-disk order. Addresses and
// version words print as $-prefixed hex, counts and sizes as decimal, and
// 8-byte names print quoted with their space padding trimmed. Render never
// returns an error: the two kinds it cannot interpret (OldExecutable,
// PhysicalExec) print UNIMPLEMENTED instead of failing.
func (b *Block) Render(w io.Writer) {
	fmt.Fprintf(w, "%s ($%02X), offset %d, %d total bytes\n", b.Kind, byte(b.Kind), b.Offset, b.Size)

	switch p := b.Payload.(type) {
	case EOFMarkPayload:
		// nothing further to print

	case ModuleNamePayload:
		fmt.Fprintf(w, "\tModuleName: '%s'\n", p.ModuleName)
		fmt.Fprintf(w, "\tSegmentName: '%s'\n", p.SegmentName)
		fmt.Fprintf(w, "\tCSize: %d\n", p.CSize)

	case EndBlockPayload:
		fmt.Fprintf(w, "\tCSize: %d\n", p.CSize)

	case EntryPointPayload:
		fmt.Fprintf(w, "\tLinkName: '%s'\n", p.LinkName)
		fmt.Fprintf(w, "\tUserName: '%s'\n", p.UserName)
		fmt.Fprintf(w, "\tLoc: $%08x\n", p.Loc)

	case ExternalPayload:
		fmt.Fprintf(w, "\tLinkName: '%s'\n", p.LinkName)
		fmt.Fprintf(w, "\tUserName: '%s'\n", p.UserName)
		fmt.Fprintf(w, "\tnRefs: %d\n", len(p.Ref))
		for i, r := range p.Ref {
			fmt.Fprintf(w, "\t\tRef[%d]: %d\n", i, r)
		}

	case StartAddressPayload:
		fmt.Fprintf(w, "\tStart: $%08x\n", p.Start)
		fmt.Fprintf(w, "\tGSize: %d\n", p.GSize)

	case CodeBlockPayload:
		fmt.Fprintf(w, "\tAddr: $%08x\n", p.Addr)
		fmt.Fprintf(w, "\t%d code bytes\n", len(p.Code))

	case RelocationPayload:
		fmt.Fprintf(w, "\tnRefs: %d\n", len(p.Ref))
		for i, r := range p.Ref {
			fmt.Fprintf(w, "\t\tRef[%d]: %d\n", i, r)
		}

	case CommonRelocationPayload:
		fmt.Fprintf(w, "\tCommonName: '%s'\n", p.CommonName)
		fmt.Fprintf(w, "\tnRefs: %d\n", len(p.Ref))
		for i, r := range p.Ref {
			fmt.Fprintf(w, "\t\tRef[%d]: %d\n", i, r)
		}

	case ShortExternalPayload:
		fmt.Fprintf(w, "\tLinkName: '%s'\n", p.LinkName)
		fmt.Fprintf(w, "\tUserName: '%s'\n", p.UserName)
		fmt.Fprintf(w, "\tnShortRefs: %d\n", len(p.ShortRef))
		for i, r := range p.ShortRef {
			fmt.Fprintf(w, "\t\tShortRef[%d]: %d\n", i, r)
		}

	case UnitBlockPayload:
		fmt.Fprintf(w, "\tUnitName: '%s'\n", p.UnitName)
		fmt.Fprintf(w, "\tCodeAddr: $%08x\n", p.CodeAddr)
		fmt.Fprintf(w, "\tTextAddr: $%08x\n", p.TextAddr)
		fmt.Fprintf(w, "\tTextSize: %d\n", p.TextSize)
		fmt.Fprintf(w, "\tGlobalSize: %d\n", p.GlobalSize)
		fmt.Fprintf(w, "\tUnitType: %s\n", p.UnitType)

	case ExecutablePayload:
		fmt.Fprintf(w, "\tJTLaddr: $%08x\n", p.JTLaddr)
		fmt.Fprintf(w, "\tJTSize: %d\n", p.JTSize)
		fmt.Fprintf(w, "\tDataSize: %d\n", p.DataSize)
		fmt.Fprintf(w, "\tMainSize: %d\n", p.MainSize)
		fmt.Fprintf(w, "\tJTSegDelta: %d\n", p.JTSegDelta)
		fmt.Fprintf(w, "\tStkSegDelta: %d\n", p.StkSegDelta)
		fmt.Fprintf(w, "\tDynStack: %d\n", p.DynStack)
		fmt.Fprintf(w, "\tMaxStack: %d\n", p.MaxStack)
		fmt.Fprintf(w, "\tMinHeap: %d\n", p.MinHeap)
		fmt.Fprintf(w, "\tMaxHeap: %d\n", p.MaxHeap)

		fmt.Fprintf(w, "\tnumSegs: %d\n", len(p.JTSegVariantTable))
		for i, s := range p.JTSegVariantTable {
			fmt.Fprintf(w, "\t[%d]{\n", i)
			fmt.Fprintf(w, "\t\tSegmentAddr: $%08x\n", s.SegmentAddr)
			fmt.Fprintf(w, "\t\tSizePacked: %d\n", s.SizePacked)
			fmt.Fprintf(w, "\t\tSizeUnpacked: %d\n", s.SizeUnpacked)
			fmt.Fprintf(w, "\t\tMemLoc: $%08x\n", s.MemLoc)
			fmt.Fprintf(w, "\t}\n")
		}

		fmt.Fprintf(w, "\tnumDescriptors: %d\n", len(p.JTVariantTable))
		for i, v := range p.JTVariantTable {
			fmt.Fprintf(w, "\t[%d]{\n", i)
			fmt.Fprintf(w, "\t\tJumpL: $%04x\n", v.JumpL)
			fmt.Fprintf(w, "\t\tAbsAddr: $%08x\n", v.AbsAddr)
			fmt.Fprintf(w, "\t}\n")
		}

	case VersionCtrlPayload:
		fmt.Fprintf(w, "\tsysNum: $%08x\n", p.SysNum)
		fmt.Fprintf(w, "\tminSys: $%08x\n", p.MinSys)
		fmt.Fprintf(w, "\tmaxSys: $%08x\n", p.MaxSys)
		fmt.Fprintf(w, "\tReserv1: $%08x\n", p.Reserved[0])
		fmt.Fprintf(w, "\tReserv2: $%08x\n", p.Reserved[1])
		fmt.Fprintf(w, "\tReserv3: $%08x\n", p.Reserved[2])

	case SegmentTablePayload:
		fmt.Fprintf(w, "\tnSegments: %d\n", len(p.Entries))
		for i, e := range p.Entries {
			fmt.Fprintf(w, "\t[%d]{\n", i)
			fmt.Fprintf(w, "\t\tSegName: '%s'\n", e.SegName)
			fmt.Fprintf(w, "\t\tSegNumber: %d\n", e.SegNumber)
			fmt.Fprintf(w, "\t\tVersion1: $%08x\n", e.Version1)
			fmt.Fprintf(w, "\t\tVersion2: $%08x\n", e.Version2)
			fmt.Fprintf(w, "\t}\n")
		}

	case UnitTablePayload:
		fmt.Fprintf(w, "\tnUnits: %d\n", len(p.Entries))
		fmt.Fprintf(w, "\tmaxunit: %d\n", p.MaxUnit)
		for i, e := range p.Entries {
			fmt.Fprintf(w, "\t[%d]{\n", i)
			fmt.Fprintf(w, "\t\tUnitName: '%s'\n", e.UnitName)
			fmt.Fprintf(w, "\t\tUnitNumber: %d\n", e.UnitNumber)
			fmt.Fprintf(w, "\t\tUnitType: %s\n", e.UnitType)
			fmt.Fprintf(w, "\t}\n")
		}

	case SegLocationPayload:
		fmt.Fprintf(w, "\tnSegments: %d\n", len(p.Entries))
		for i, e := range p.Entries {
			fmt.Fprintf(w, "\t[%d]{\n", i)
			fmt.Fprintf(w, "\t\tSegName: '%s'\n", e.SegName)
			fmt.Fprintf(w, "\t\tSegNumber: %d\n", e.SegNumber)
			fmt.Fprintf(w, "\t\tVersion1: $%08x\n", e.Version1)
			fmt.Fprintf(w, "\t\tVersion2: $%08x\n", e.Version2)
			fmt.Fprintf(w, "\t\tFileNumber: %d\n", e.FileNumber)
			fmt.Fprintf(w, "\t\tFileLocation: %d\n", e.FileLocation)
			fmt.Fprintf(w, "\t\tSizePacked: %d\n", e.SizePacked)
			fmt.Fprintf(w, "\t\tSizeUnpacked: %d\n", e.SizeUnpacked)
			fmt.Fprintf(w, "\t}\n")
		}

	case UnitLocationPayload:
		fmt.Fprintf(w, "\tnUnits: %d\n", len(p.Entries))
		for i, e := range p.Entries {
			fmt.Fprintf(w, "\t[%d]{\n", i)
			fmt.Fprintf(w, "\t\tUnitName: '%s'\n", e.UnitName)
			fmt.Fprintf(w, "\t\tUnitNumber: %d\n", e.UnitNumber)
			fmt.Fprintf(w, "\t\tFileNumber: %d\n", e.FileNumber)
			fmt.Fprintf(w, "\t\tUnitType: %s\n", e.UnitType)
			fmt.Fprintf(w, "\t\tDataSize: %d\n", e.DataSize)
			fmt.Fprintf(w, "\t}\n")
		}

	case StringBlockPayload:
		fmt.Fprintf(w, "\tnStrings: %d\n", len(p.Entries))
		for i, e := range p.Entries {
			fmt.Fprintf(w, "\t[%d]{\n", i)
			fmt.Fprintf(w, "\t\tFileNumber: %d\n", e.FileNumber)
			fmt.Fprintf(w, "\t\tNameAddr: %d\n", e.NameAddr)
			name, err := b.owner.PascalStringAt(int64(e.NameAddr))
			if err != nil {
				name = "" // unresolvable offsets render as an empty name
			}
			fmt.Fprintf(w, "\t\tName: '%s'\n", name)
			fmt.Fprintf(w, "\t}\n")
		}

	case PackedCodePayload:
		fmt.Fprintf(w, "\taddr: $%08x\n", p.Addr)
		fmt.Fprintf(w, "\tcsize: %d\n", p.CSize)
		fmt.Fprintf(w, "\t%d packed bytes\n", len(p.Code))

	case PackTablePayload:
		fmt.Fprintf(w, "\tpackversion: %d\n", p.Table.Version)
		if p.Table.Version == 1 {
			for i := 0; i < len(p.Table.Words); i += 8 {
				fmt.Fprintf(w, "\t\t")
				for j := 0; j < 8; j++ {
					if j > 0 {
						fmt.Fprintf(w, " ")
					}
					fmt.Fprintf(w, "$%04x", p.Table.Words[i+j])
				}
				fmt.Fprintf(w, "\n")
			}
		}

	case OSDataPayload:
		fmt.Fprintf(w, "\t% x\n", p.Bitmap[:])

	default:
		fmt.Fprintf(w, "\tUNIMPLEMENTED\n")
	}
}
