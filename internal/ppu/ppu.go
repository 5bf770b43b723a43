// Package ppu implements the Ricoh 2C02 picture processing unit: a
// cycle-driven scanline renderer producing a 256x240 RGBA framebuffer,
// background/sprite pipelines, sprite-0 hit and overflow detection, and
// vertical-blank NMI generation.
package ppu

import "gones/internal/cartridge"

const (
	Width  = 256
	Height = 240

	dotsPerScanline    = 341
	scanlinesPerFrame  = 262
	visibleScanlines   = 240
	postRenderScanline = 240
	vblankStartLine    = 241
	preRenderLine      = 261
)

// Cartridge is the subset of cartridge.Cartridge the PPU needs: pattern
// table access and the current mirroring mode.
type Cartridge interface {
	ReadCHR(addr uint16) uint8
	WriteCHR(addr uint16, value uint8)
	Mirroring() cartridge.Mirroring
	OnScanline()
}

type spriteState struct {
	x      uint8
	tileLo uint8
	tileHi uint8
	attr   uint8
	isZero bool
}

// PPU is the full picture-processing unit state.
type PPU struct {
	ctrl   ctrl
	mask   mask
	status uint8

	oamAddr uint8
	oam     [256]uint8
	secOAM  [32]uint8

	nametables [0x800]uint8
	palettes   [32]uint8

	v, t vramAddr
	x    uint8
	w    bool

	readBuffer uint8

	scanline int
	dot      int
	frame    uint64
	oddFrame bool

	nmiOccurred bool

	tileShiftLo, tileShiftHi uint16
	attrShiftLo, attrShiftHi uint16

	nextTile, nextAttr, nextLo, nextHi uint8

	spriteCount    int
	sprites        [8]spriteState
	spriteZeroLine bool

	oamOverflow bool

	front, back [Width * Height]uint32
}

// New returns a PPU in its power-on state.
func New() *PPU {
	p := &PPU{}
	p.Reset()
	return p
}

// Reset puts the PPU into its post-power-up state: pre-render line start,
// status set to $A0, scroll latch cleared, nametables and palette RAM
// zeroed. OAM is
// left untouched, matching real hardware.
func (p *PPU) Reset() {
	p.scanline = preRenderLine
	p.dot = 0
	p.frame = 0
	p.oddFrame = false
	p.status = 0xA0
	p.ctrl, p.mask = 0, 0
	p.v, p.t, p.x, p.w = vramAddr{}, vramAddr{}, 0, false
	p.nametables = [0x800]uint8{}
	p.palettes = [32]uint8{}
	p.nmiOccurred = false
}

// PollNMI reports and clears a pending NMI request raised at the start
// of vertical blank.
func (p *PPU) PollNMI() bool {
	v := p.nmiOccurred
	p.nmiOccurred = false
	return v
}

// FrameBuffer returns the most recently completed frame's pixels, packed
// 0xAARRGGBB, row-major.
func (p *PPU) FrameBuffer() []uint32 { return p.front[:] }

// Read services a CPU read of $2000-$2007 (mirrored every 8 bytes through
// $3FFF).
func (p *PPU) Read(cart Cartridge, addr uint16) uint8 {
	switch addr & 0x07 {
	case 2:
		v := p.status
		p.status &^= 0x80
		p.w = false
		return v
	case 4:
		return p.oam[p.oamAddr]
	case 7:
		return p.readData(cart)
	default:
		return 0
	}
}

func (p *PPU) readData(cart Cartridge) uint8 {
	addr := p.v.addr()
	var value uint8
	if addr >= 0x3F00 {
		value = p.readPalette(addr)
		p.readBuffer = p.readVRAM(cart, addr-0x1000)
	} else {
		value = p.readBuffer
		p.readBuffer = p.readVRAM(cart, addr)
	}
	p.v.bits += p.ctrl.addrInc()
	return value
}

// Write services a CPU write to $2000-$2007.
func (p *PPU) Write(cart Cartridge, addr uint16, value uint8) {
	switch addr & 0x07 {
	case 0:
		p.ctrl = ctrl(value)
		p.t.bits = (p.t.bits &^ 0x0C00) | (uint16(value&0x03) << 10)
	case 1:
		p.mask = mask(value)
	case 3:
		p.oamAddr = value
	case 4:
		p.oam[p.oamAddr] = value
		p.oamAddr++
	case 5:
		if !p.w {
			p.t.setCoarseX(uint16(value >> 3))
			p.x = value & 0x07
		} else {
			p.t.setCoarseY(uint16(value >> 3))
			p.t.setFineY(uint16(value & 0x07))
		}
		p.w = !p.w
	case 6:
		if !p.w {
			p.t.bits = (p.t.bits & 0x00FF) | (uint16(value&0x3F) << 8)
		} else {
			p.t.bits = (p.t.bits & 0x7F00) | uint16(value)
			p.v = p.t
		}
		p.w = !p.w
	case 7:
		p.writeVRAM(cart, p.v.addr(), value)
		p.v.bits += p.ctrl.addrInc()
	}
}

func (p *PPU) readVRAM(cart Cartridge, addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return cart.ReadCHR(addr)
	case addr < 0x3F00:
		return p.nametables[cartridge.NametableIndex(cart.Mirroring(), addr)]
	default:
		return p.readPalette(addr)
	}
}

func (p *PPU) writeVRAM(cart Cartridge, addr uint16, value uint8) {
	switch {
	case addr < 0x2000:
		cart.WriteCHR(addr, value)
	case addr < 0x3F00:
		p.nametables[cartridge.NametableIndex(cart.Mirroring(), addr)] = value
	default:
		p.writePalette(addr, value)
	}
}

func palIndex(addr uint16) uint16 {
	i := addr & 0x1F
	if i == 0x10 || i == 0x14 || i == 0x18 || i == 0x1C {
		i &^= 0x10
	}
	return i
}

func (p *PPU) readPalette(addr uint16) uint8 { return p.palettes[palIndex(addr)] }

func (p *PPU) writePalette(addr uint16, value uint8) { p.palettes[palIndex(addr)] = value }

// OAMDMAWrite is the OAM-side half of a $4014 DMA transfer: one byte
// written at the DMA unit's current OAM offset.
func (p *PPU) OAMDMAWrite(offset uint8, value uint8) {
	p.oam[offset] = value
}
