package ppu

// Tick advances the PPU by one dot (one pixel-clock), the unit the Bus
// drives three of per CPU cycle. The scanline/dot grid is 262x341, with
// scanline 261 acting as the pre-render line and 240 as post-render.
func (p *PPU) Tick(cart Cartridge) {
	rendering := p.mask.rendering()
	onRenderLine := p.scanline < visibleScanlines || p.scanline == preRenderLine

	if p.dot == 1 && p.scanline >= 0 && p.scanline < visibleScanlines && rendering {
		p.evaluateSprites()
		p.fetchSprites(cart)
	}

	if rendering && onRenderLine {
		p.tickBackground(cart)
	}

	// MMC3-style scanline counters approximate the PPU's A12 rising edge
	// as one clock per rendered scanline at dot 260, where the sprite
	// pattern fetches for the next scanline begin.
	if p.dot == 260 && rendering && onRenderLine {
		cart.OnScanline()
	}

	if p.scanline < visibleScanlines && p.dot >= 1 && p.dot <= Width {
		p.renderPixel()
	}

	if p.scanline == vblankStartLine && p.dot == 1 {
		p.status |= 0x80
		if p.ctrl.nmiEnabled() {
			p.nmiOccurred = true
		}
	}

	if p.scanline == preRenderLine && p.dot == 1 {
		p.status &^= 0xE0
		p.front, p.back = p.back, p.front
	}

	// Odd-frame dot skip: the pre-render line's last dot is omitted every
	// other frame while rendering is enabled, keeping the PPU/CPU clock
	// ratio exact over a pair of frames.
	if p.scanline == preRenderLine && p.dot == 339 && p.oddFrame && rendering {
		p.dot = 340
	}

	p.dot++
	if p.dot >= dotsPerScanline {
		p.dot = 0
		p.scanline++
		if p.scanline >= scanlinesPerFrame {
			p.scanline = 0
			p.frame++
			p.oddFrame = !p.oddFrame
		}
	}
}

func (p *PPU) tickBackground(cart Cartridge) {
	if (p.dot >= 1 && p.dot <= Width) || (p.dot >= 321 && p.dot <= 336) {
		p.shiftBackground()
		switch (p.dot - 1) % 8 {
		case 1:
			p.nextTile = p.readVRAM(cart, p.v.tileAddr())
		case 3:
			attr := p.readVRAM(cart, p.v.attrAddr())
			shift := ((p.v.coarseY()>>1)&1)<<1 | ((p.v.coarseX() >> 1) & 1)
			p.nextAttr = (attr >> (shift * 2)) & 0x03
		case 5:
			base := p.ctrl.bgPatternTable()
			p.nextLo = p.readVRAM(cart, base+uint16(p.nextTile)*16+p.v.fineY())
		case 7:
			base := p.ctrl.bgPatternTable()
			p.nextHi = p.readVRAM(cart, base+uint16(p.nextTile)*16+p.v.fineY()+8)
			p.loadShiftRegisters()
			p.v.incCoarseX()
		}
	}
	if p.dot == Width {
		p.v.incY()
	}
	if p.dot == Width+1 {
		p.v.copyX(p.t)
	}
	if p.scanline == preRenderLine && p.dot >= 280 && p.dot <= 304 {
		p.v.copyY(p.t)
	}
}

func (p *PPU) shiftBackground() {
	p.tileShiftLo <<= 1
	p.tileShiftHi <<= 1
	p.attrShiftLo <<= 1
	p.attrShiftHi <<= 1
}

func (p *PPU) loadShiftRegisters() {
	p.tileShiftLo = (p.tileShiftLo &^ 0x00FF) | uint16(p.nextLo)
	p.tileShiftHi = (p.tileShiftHi &^ 0x00FF) | uint16(p.nextHi)

	var lo, hi uint16
	if p.nextAttr&0x01 != 0 {
		lo = 0x00FF
	}
	if p.nextAttr&0x02 != 0 {
		hi = 0x00FF
	}
	p.attrShiftLo = (p.attrShiftLo &^ 0x00FF) | lo
	p.attrShiftHi = (p.attrShiftHi &^ 0x00FF) | hi
}

func (p *PPU) backgroundPixel() (pixel, palette uint8) {
	if !p.mask.showBg() {
		return 0, 0
	}
	bit := uint(15 - p.x)
	lo := (p.tileShiftLo >> bit) & 1
	hi := (p.tileShiftHi >> bit) & 1
	alo := (p.attrShiftLo >> bit) & 1
	ahi := (p.attrShiftHi >> bit) & 1
	return uint8(lo | hi<<1), uint8(alo | ahi<<1)
}

// evaluateSprites fills secondary OAM with the up-to-8 sprites that
// intersect the current scanline, setting the overflow flag if a ninth
// would have qualified.
func (p *PPU) evaluateSprites() {
	p.oamOverflow = false
	p.spriteZeroLine = false
	height := p.ctrl.spriteHeight()

	n := 0
	for i := 0; i < 64; i++ {
		y := int(p.oam[i*4])
		row := p.scanline - y
		if row < 0 || row >= height {
			continue
		}
		if n >= 8 {
			p.oamOverflow = true
			p.status |= 0x20
			break
		}
		if i == 0 {
			p.spriteZeroLine = true
		}
		off := n * 4
		copy(p.secOAM[off:off+4], p.oam[i*4:i*4+4])
		n++
	}
	p.spriteCount = n
}

func reverseBits(b uint8) uint8 {
	var r uint8
	for i := 0; i < 8; i++ {
		r = (r << 1) | (b & 1)
		b >>= 1
	}
	return r
}

// fetchSprites loads pattern data for every sprite secondary OAM picked
// up this scanline, applying flip and 8x16 addressing.
func (p *PPU) fetchSprites(cart Cartridge) {
	height := p.ctrl.spriteHeight()
	for i := 0; i < p.spriteCount; i++ {
		off := i * 4
		y := int(p.secOAM[off])
		tileIdx := p.secOAM[off+1]
		attr := p.secOAM[off+2]
		x := p.secOAM[off+3]

		row := p.scanline - y
		if attr&0x80 != 0 {
			row = height - 1 - row
		}

		var base, tile uint16
		if height == 16 {
			base = uint16(tileIdx&0x01) << 12
			tile = uint16(tileIdx &^ 0x01)
			if row >= 8 {
				tile++
				row -= 8
			}
		} else {
			base = p.ctrl.spritePatternTable()
			tile = uint16(tileIdx)
		}

		lo := p.readVRAM(cart, base+tile*16+uint16(row))
		hi := p.readVRAM(cart, base+tile*16+uint16(row)+8)
		if attr&0x40 != 0 {
			lo, hi = reverseBits(lo), reverseBits(hi)
		}

		p.sprites[i] = spriteState{
			x: x, tileLo: lo, tileHi: hi, attr: attr,
			isZero: i == 0 && p.spriteZeroLine,
		}
	}
}

func (p *PPU) spritePixel(x int) (pixel, palette, priority uint8, isZero bool) {
	if !p.mask.showSprites() {
		return 0, 0, 0, false
	}
	for i := 0; i < p.spriteCount; i++ {
		s := &p.sprites[i]
		col := x - int(s.x)
		if col < 0 || col > 7 {
			continue
		}
		lo := (s.tileLo >> uint(7-col)) & 1
		hi := (s.tileHi >> uint(7-col)) & 1
		px := lo | hi<<1
		if px == 0 {
			continue
		}
		return px, s.attr & 0x03, (s.attr >> 5) & 1, s.isZero
	}
	return 0, 0, 0, false
}

// renderPixel resolves the background/sprite mux for the pixel at the
// current dot and writes it into the back framebuffer, setting sprite-0
// hit the instant both layers are simultaneously opaque at this dot.
func (p *PPU) renderPixel() {
	x := p.dot - 1
	y := p.scanline

	bgPixel, bgPal := p.backgroundPixel()
	if x < 8 && !p.mask.showBgLeft() {
		bgPixel = 0
	}

	spPixel, spPal, spPriority, spZero := p.spritePixel(x)
	if x < 8 && !p.mask.showSpritesLeft() {
		spPixel = 0
	}

	if bgPixel != 0 && spPixel != 0 && spZero && x != 255 && p.mask.rendering() {
		p.status |= 0x40
	}

	var colorIndex uint8
	switch {
	case bgPixel == 0 && spPixel == 0:
		colorIndex = p.readPalette(0x3F00)
	case bgPixel == 0:
		colorIndex = p.readPalette(0x3F10 + uint16(spPal)*4 + uint16(spPixel))
	case spPixel == 0:
		colorIndex = p.readPalette(0x3F00 + uint16(bgPal)*4 + uint16(bgPixel))
	case spPriority == 0:
		colorIndex = p.readPalette(0x3F10 + uint16(spPal)*4 + uint16(spPixel))
	default:
		colorIndex = p.readPalette(0x3F00 + uint16(bgPal)*4 + uint16(bgPixel))
	}

	p.back[y*Width+x] = nesPalette[colorIndex&0x3F]
}
