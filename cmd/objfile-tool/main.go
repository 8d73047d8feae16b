// Command objfile-tool inspects Lisa Workshop object files.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/eschaton/lisaobj"
	"github.com/eschaton/lisaobj/pack"
)

const (
	exOK        = 0
	exUsage     = 64
	exNoInput   = 66
	exCantCreat = 73
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s <path> dump|extract\n", filepath.Base(os.Args[0]))
}

func main() {
	flag.Usage = usage
	flag.Parse()
	args := flag.Args()
	if len(args) != 2 {
		usage()
		os.Exit(exUsage)
	}
	path, cmd := args[0], args[1]

	of, err := lisaobj.Open(path)
	if err != nil {
		log.Printf("%s: %v", path, err)
		os.Exit(exNoInput)
	}
	defer of.Close()

	switch cmd {
	case "dump":
		dump(of)
	case "extract":
		if err := extract(of, path); err != nil {
			log.Printf("%s: %v", path, err)
			os.Exit(exCantCreat)
		}
	default:
		usage()
		os.Exit(exUsage)
	}
	os.Exit(exOK)
}

func dump(of *lisaobj.ObjectFile) {
	for _, b := range of.Blocks {
		b.Render(os.Stdout)
	}
}

// extractState tracks the module currently being buffered while walking
// the block sequence.
type extractState struct {
	module  string
	segment string
	addr    uint32
	code    []byte
	table   *pack.Table
}

func extract(of *lisaobj.ObjectFile, path string) error {
	var cur *extractState
	var table *pack.Table // carries forward to modules that define no PackTable of their own
	for _, b := range of.Blocks {
		switch p := b.Payload.(type) {
		case lisaobj.ModuleNamePayload:
			cur = &extractState{module: p.ModuleName.String(), segment: p.SegmentName.String(), table: table}

		case lisaobj.PackTablePayload:
			table = &pack.Table{Version: p.Table.Version, Words: p.Table.Words}
			if cur != nil {
				cur.table = table
			}

		case lisaobj.CodeBlockPayload:
			if cur == nil {
				continue
			}
			if cur.addr == 0 {
				cur.addr = p.Addr
			}
			cur.code = append(cur.code, p.Code...)

		case lisaobj.PackedCodePayload:
			if cur == nil {
				continue
			}
			if cur.addr == 0 {
				cur.addr = p.Addr
			}
			unpacked := make([]byte, p.CSize)
			if err := pack.Unpack(p.Code, unpacked, cur.table); err != nil {
				return fmt.Errorf("unpacking code for module %q: %w", cur.module, err)
			}
			cur.code = append(cur.code, unpacked...)

		case lisaobj.EndBlockPayload:
			if cur == nil {
				continue
			}
			if err := writeExtracted(path, cur); err != nil {
				return err
			}
			cur = nil
		}
	}
	return nil
}

func writeExtracted(path string, s *extractState) error {
	name := path + "-" + s.module
	if s.segment != "" {
		name += "-" + s.segment
	}
	if s.addr != 0 {
		name += fmt.Sprintf("-$%x", s.addr)
	}
	name += ".bin"
	return os.WriteFile(name, s.code, 0o644)
}
