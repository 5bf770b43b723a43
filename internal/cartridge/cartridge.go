// Package cartridge implements iNES ROM loading and the bank-switching
// mapper variants that sit between the cartridge's PRG/CHR storage and the
// rest of the console.
package cartridge

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Mirroring selects how the PPU's four logical nametables fold onto its
// 2KB of physical VRAM.
type Mirroring uint8

const (
	Horizontal Mirroring = iota
	Vertical
	SingleScreen0
	SingleScreen1
	FourScreen
)

// nametableOffsets maps each Mirroring mode to the four logical
// nametables' base offsets into the PPU's 2KB VRAM.
var nametableOffsets = map[Mirroring][4]uint16{
	Horizontal:    {0x000, 0x000, 0x400, 0x400},
	Vertical:      {0x000, 0x400, 0x000, 0x400},
	SingleScreen0: {0x000, 0x000, 0x000, 0x000},
	SingleScreen1: {0x400, 0x400, 0x400, 0x400},
	FourScreen:    {0x000, 0x400, 0x800, 0xC00},
}

// NametableIndex maps a PPU address in $2000-$3EFF to an index into 2KB
// of physical nametable RAM, per the cartridge's current mirroring mode.
func NametableIndex(m Mirroring, addr uint16) uint16 {
	rel := (addr - 0x2000) % 0x1000
	table := rel / 0x400
	within := rel % 0x400
	return nametableOffsets[m][table] + within
}

// Mapper translates CPU and PPU addresses into offsets within the
// cartridge's PRG/CHR storage, and owns whatever bank-select state that
// translation depends on. Every mapper variant implements all seven
// methods; WritePRG/WriteCHR are no-ops for mappers with no writable
// banking registers or read-only CHR.
type Mapper interface {
	ReadPRG(prg []uint8, addr uint16) uint8
	WritePRG(prg []uint8, addr uint16, value uint8)
	ReadCHR(chr []uint8, addr uint16) uint8
	WriteCHR(chr []uint8, addr uint16, value uint8)
	Mirroring() Mirroring
	OnScanline()
	PollIRQ() bool
}

const (
	prgRAMSize  = 0x2000
	prgBankSize = 0x4000
	chrBankSize = 0x2000
)

// Cartridge owns a ROM image's PRG-ROM, CHR-ROM-or-RAM, a fixed 8KB
// PRG-RAM window at $6000-$7FFF (independent of any mapper), and the
// Mapper that interprets bank-select writes.
type Cartridge struct {
	PRG []uint8
	CHR []uint8

	hasCHRRAM bool
	prgRAM    [prgRAMSize]uint8
	mapper    Mapper
}

// ReadPRG dispatches a CPU read in $4020-$FFFF. $6000-$7FFF hits the
// cartridge's PRG-RAM window directly, bypassing the mapper.
func (c *Cartridge) ReadPRG(addr uint16) uint8 {
	switch {
	case addr >= 0x6000 && addr < 0x8000:
		return c.prgRAM[addr-0x6000]
	case addr >= 0x8000:
		return c.mapper.ReadPRG(c.PRG, addr)
	default:
		return 0
	}
}

// WritePRG dispatches a CPU write in $4020-$FFFF.
func (c *Cartridge) WritePRG(addr uint16, value uint8) {
	switch {
	case addr >= 0x6000 && addr < 0x8000:
		c.prgRAM[addr-0x6000] = value
	case addr >= 0x8000:
		c.mapper.WritePRG(c.PRG, addr, value)
	}
}

// ReadCHR dispatches a PPU pattern-table read in $0000-$1FFF.
func (c *Cartridge) ReadCHR(addr uint16) uint8 {
	return c.mapper.ReadCHR(c.CHR, addr)
}

// WriteCHR dispatches a PPU pattern-table write; a no-op unless the
// cartridge's CHR storage is RAM.
func (c *Cartridge) WriteCHR(addr uint16, value uint8) {
	if c.hasCHRRAM {
		c.mapper.WriteCHR(c.CHR, addr, value)
	}
}

// Mirroring reports the nametable layout the mapper currently selects.
func (c *Cartridge) Mirroring() Mirroring { return c.mapper.Mirroring() }

// OnScanline notifies scanline-counting mappers (MMC3) that the PPU has
// finished rendering one scanline, for IRQ scheduling.
func (c *Cartridge) OnScanline() { c.mapper.OnScanline() }

// PollIRQ reports whether the mapper is holding its IRQ line; polling does
// not clear it.
func (c *Cartridge) PollIRQ() bool { return c.mapper.PollIRQ() }

const (
	flags6VerticalBit   = 1 << 0
	flags6RAMBit        = 1 << 1
	flags6TrainerBit    = 1 << 2
	flags6FourScreenBit = 1 << 3
)

// LoadFromReader parses an iNES 1.0 image and constructs the appropriate
// Mapper for its header-declared mapper number. iNES 2.0 images (flags7
// bits 2-3 == 0b10) are rejected, matching the Non-goal of staying within
// the original format.
func LoadFromReader(r io.Reader) (*Cartridge, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cartridge: read: %w", err)
	}
	if len(data) < 16 || !bytes.Equal(data[:4], []byte("NES\x1A")) {
		return nil, fmt.Errorf("cartridge: missing iNES magic")
	}

	prgBanks := int(data[4])
	chrBanks := int(data[5])
	if prgBanks == 0 {
		return nil, fmt.Errorf("cartridge: zero PRG-ROM banks")
	}
	flags6 := data[6]
	flags7 := data[7]
	if flags7&0x0C == 0x08 {
		return nil, fmt.Errorf("cartridge: iNES 2.0 images are not supported")
	}

	mapperID := (flags7 & 0xF0) | (flags6 >> 4)

	var mirror Mirroring
	switch {
	case flags6&flags6FourScreenBit != 0:
		mirror = FourScreen
	case flags6&flags6VerticalBit != 0:
		mirror = Vertical
	default:
		mirror = Horizontal
	}

	offset := 16
	if flags6&flags6TrainerBit != 0 {
		offset += 512
	}

	prgSize := prgBanks * prgBankSize
	if offset+prgSize > len(data) {
		return nil, fmt.Errorf("cartridge: truncated PRG-ROM")
	}
	prg := make([]uint8, prgSize)
	copy(prg, data[offset:offset+prgSize])
	offset += prgSize

	var chr []uint8
	hasCHRRAM := chrBanks == 0
	if hasCHRRAM {
		chr = make([]uint8, chrBankSize)
	} else {
		chrSize := chrBanks * chrBankSize
		if offset+chrSize > len(data) {
			return nil, fmt.Errorf("cartridge: truncated CHR-ROM")
		}
		chr = make([]uint8, chrSize)
		copy(chr, data[offset:offset+chrSize])
	}

	mapper, err := newMapper(mapperID, mirror, prgBanks, chrBanks)
	if err != nil {
		return nil, err
	}

	return &Cartridge{PRG: prg, CHR: chr, hasCHRRAM: hasCHRRAM, mapper: mapper}, nil
}

// LoadFromFile opens path and parses it as an iNES image.
func LoadFromFile(path string) (*Cartridge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cartridge: open %s: %w", path, err)
	}
	defer f.Close()
	return LoadFromReader(f)
}

func newMapper(id uint8, mirror Mirroring, prgBanks, chrBanks int) (Mapper, error) {
	switch id {
	case 0:
		return newNROM(mirror, prgBanks), nil
	case 1:
		return newMMC1(mirror, prgBanks), nil
	case 2, 66:
		return newUxROM(mirror, prgBanks), nil
	case 3:
		return newCNROM(mirror, chrBanks), nil
	case 4:
		return newMMC3(mirror, prgBanks), nil
	default:
		return nil, fmt.Errorf("cartridge: unsupported mapper %d", id)
	}
}

// Empty returns a minimal, synthetic NROM cartridge whose reset vector
// points at a one-instruction JMP-to-self loop at $FF00, for exercising
// the console with no real ROM loaded.
func Empty() *Cartridge {
	prg := make([]uint8, prgBankSize)
	// JMP $FF00 at $FF00 itself (the single 16KB bank is mirrored at $C000).
	idx := 0xFF00 - 0xC000
	prg[idx] = 0x4C
	binary.LittleEndian.PutUint16(prg[idx+1:idx+3], 0xFF00)
	// Reset vector -> $FF00.
	binary.LittleEndian.PutUint16(prg[0x3FFC:0x3FFE], 0xFF00)

	return &Cartridge{
		PRG:       prg,
		CHR:       make([]uint8, chrBankSize),
		hasCHRRAM: true,
		mapper:    newNROM(Horizontal, 1),
	}
}
