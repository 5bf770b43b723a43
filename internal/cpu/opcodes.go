package cpu

// AddrMode names the 6502's addressing modes, including the two modes
// (Accumulator, Implied) that never touch memory.
type AddrMode uint8

const (
	IMP AddrMode = iota
	ACC
	IMM
	ZEP
	ZPX
	ZPY
	IZX
	IZY
	ABS
	ABX
	ABY
	IND
	REL
)

// addrModes maps each of the 256 opcodes to its addressing mode. Indexed
// [hi nibble][lo nibble] in the usual 6502 opcode matrix layout, flattened
// row-major (opcode = hi*16+lo).
var addrModes = [256]AddrMode{
	// 0x00-0x0F
	IMP, IZX, IMP, IZX, ZEP, ZEP, ZEP, ZEP, IMP, IMM, ACC, IMM, ABS, ABS, ABS, ABS,
	// 0x10-0x1F
	REL, IZY, IMP, IZY, ZPX, ZPX, ZPX, ZPX, IMP, ABY, IMP, ABY, ABX, ABX, ABX, ABX,
	// 0x20-0x2F
	ABS, IZX, IMP, IZX, ZEP, ZEP, ZEP, ZEP, IMP, IMM, ACC, IMM, ABS, ABS, ABS, ABS,
	// 0x30-0x3F
	REL, IZY, IMP, IZY, ZPX, ZPX, ZPX, ZPX, IMP, ABY, IMP, ABY, ABX, ABX, ABX, ABX,
	// 0x40-0x4F
	IMP, IZX, IMP, IZX, ZEP, ZEP, ZEP, ZEP, IMP, IMM, ACC, IMM, ABS, ABS, ABS, ABS,
	// 0x50-0x5F
	REL, IZY, IMP, IZY, ZPX, ZPX, ZPX, ZPX, IMP, ABY, IMP, ABY, ABX, ABX, ABX, ABX,
	// 0x60-0x6F
	IMP, IZX, IMP, IZX, ZEP, ZEP, ZEP, ZEP, IMP, IMM, ACC, IMM, IND, ABS, ABS, ABS,
	// 0x70-0x7F
	REL, IZY, IMP, IZY, ZPX, ZPX, ZPX, ZPX, IMP, ABY, IMP, ABY, ABX, ABX, ABX, ABX,
	// 0x80-0x8F
	IMM, IZX, IMM, IZX, ZEP, ZEP, ZEP, ZEP, IMP, IMM, IMP, IMM, ABS, ABS, ABS, ABS,
	// 0x90-0x9F
	REL, IZY, IMP, IZY, ZPX, ZPX, ZPY, ZPY, IMP, ABY, IMP, ABY, ABX, ABX, ABY, ABY,
	// 0xA0-0xAF
	IMM, IZX, IMM, IZX, ZEP, ZEP, ZEP, ZEP, IMP, IMM, IMP, IMM, ABS, ABS, ABS, ABS,
	// 0xB0-0xBF
	REL, IZY, IMP, IZY, ZPX, ZPX, ZPY, ZPY, IMP, ABY, IMP, ABY, ABX, ABX, ABY, ABY,
	// 0xC0-0xCF
	IMM, IZX, IMM, IZX, ZEP, ZEP, ZEP, ZEP, IMP, IMM, IMP, IMM, ABS, ABS, ABS, ABS,
	// 0xD0-0xDF
	REL, IZY, IMP, IZY, ZPX, ZPX, ZPX, ZPX, IMP, ABY, IMP, ABY, ABX, ABX, ABX, ABX,
	// 0xE0-0xEF
	IMM, IZX, IMM, IZX, ZEP, ZEP, ZEP, ZEP, IMP, IMM, IMP, IMM, ABS, ABS, ABS, ABS,
	// 0xF0-0xFF
	REL, IZY, IMP, IZY, ZPX, ZPX, ZPX, ZPX, IMP, ABY, IMP, ABY, ABX, ABX, ABX, ABX,
}

// opExtraCycles is the per-opcode count of dummy bus ticks spent after the
// opcode function returns: the cycles a real 6502 spends on an instruction
// that the addressing-mode decode and the opcode body don't already
// account for via their own Read/Write/Tick calls. Read-type instructions
// already pay their own conditional page-cross tick inside the opcode body
// (tickCrossPage), so only the fixed, mode-dependent remainder lives here.
var opExtraCycles = buildExtraCycles()

type opKind uint8

const (
	kindControl  opKind = iota // branches, jumps, stack ops, flags, transfers: extra fixed per-opcode, set explicitly
	kindRead                   // loads, ALU ops reading from memory or A
	kindStore                  // stores
	kindRMW      // single read-modify-write (shifts, INC/DEC)
	kindComboRMW // unofficial RMW-then-ALU pair (SLO/RLA/SRE/RRA/DCP/ISB)
)

func extraForMode(mode AddrMode, kind opKind) uint8 {
	switch kind {
	case kindRead:
		switch mode {
		case ZPX, ZPY, IZX:
			return 1
		default:
			return 0
		}
	case kindStore:
		switch mode {
		case ZPX, ZPY, IZX, ABX, ABY, IZY:
			return 1
		default:
			return 0
		}
	case kindRMW:
		switch mode {
		case ACC, ZEP, ABS:
			return 1
		case ZPX, ABX, ABY:
			return 2
		case IZX, IZY:
			return 3
		default:
			return 1
		}
	case kindComboRMW:
		switch mode {
		case ZPX, ABX, ABY, IZX, IZY:
			return 1
		default:
			return 0
		}
	}
	return 0
}

func buildExtraCycles() [256]uint8 {
	var t [256]uint8

	readOps := []uint8{
		0xA9, 0xA5, 0xB5, 0xAD, 0xBD, 0xB9, 0xA1, 0xB1, // LDA
		0xA2, 0xA6, 0xB6, 0xAE, 0xBE, // LDX
		0xA0, 0xA4, 0xB4, 0xAC, 0xBC, // LDY
		0x69, 0x65, 0x75, 0x6D, 0x7D, 0x79, 0x61, 0x71, // ADC
		0xE9, 0xEB, 0xE5, 0xF5, 0xED, 0xFD, 0xF9, 0xE1, 0xF1, // SBC
		0x29, 0x25, 0x35, 0x2D, 0x3D, 0x39, 0x21, 0x31, // AND
		0x09, 0x05, 0x15, 0x0D, 0x1D, 0x19, 0x01, 0x11, // ORA
		0x49, 0x45, 0x55, 0x4D, 0x5D, 0x59, 0x41, 0x51, // EOR
		0xC9, 0xC5, 0xD5, 0xCD, 0xDD, 0xD9, 0xC1, 0xD1, // CMP
		0xE0, 0xE4, 0xEC, // CPX
		0xC0, 0xC4, 0xCC, // CPY
		0x24, 0x2C, // BIT
		0xA3, 0xA7, 0xB3, 0xB7, 0xAF, 0xBF, // LAX
	}
	for _, op := range readOps {
		t[op] = extraForMode(addrModes[op], kindRead)
	}

	storeOps := []uint8{
		0x85, 0x95, 0x8D, 0x9D, 0x99, 0x81, 0x91, // STA
		0x86, 0x96, 0x8E, // STX
		0x84, 0x94, 0x8C, // STY
		0x87, 0x97, 0x8F, 0x83, // SAX
	}
	for _, op := range storeOps {
		t[op] = extraForMode(addrModes[op], kindStore)
	}

	rmwOps := []uint8{
		0x0A, 0x06, 0x16, 0x0E, 0x1E, // ASL
		0x4A, 0x46, 0x56, 0x4E, 0x5E, // LSR
		0x2A, 0x26, 0x36, 0x2E, 0x3E, // ROL
		0x6A, 0x66, 0x76, 0x6E, 0x7E, // ROR
		0xE6, 0xF6, 0xEE, 0xFE, // INC
		0xC6, 0xD6, 0xCE, 0xDE, // DEC
	}
	for _, op := range rmwOps {
		t[op] = extraForMode(addrModes[op], kindRMW)
	}

	comboOps := []uint8{
		0x07, 0x17, 0x0F, 0x1F, 0x1B, 0x03, 0x13, // SLO
		0x27, 0x37, 0x2F, 0x3F, 0x3B, 0x23, 0x33, // RLA
		0x47, 0x57, 0x4F, 0x5F, 0x5B, 0x43, 0x53, // SRE
		0x67, 0x77, 0x6F, 0x7F, 0x7B, 0x63, 0x73, // RRA
		0xC7, 0xD7, 0xCF, 0xDF, 0xDB, 0xC3, 0xD3, // DCP
		0xE7, 0xF7, 0xEF, 0xFF, 0xFB, 0xE3, 0xF3, // ISB
	}
	for _, op := range comboOps {
		t[op] = extraForMode(addrModes[op], kindComboRMW)
	}

	implied1 := []uint8{
		0x18, 0x38, 0x58, 0x78, 0xB8, 0xD8, 0xF8, // flags
		0xAA, 0xA8, 0xBA, 0x8A, 0x9A, 0x98, // transfers
		0xE8, 0xC8, 0xCA, 0x88, // INX/INY/DEX/DEY
	}
	for _, op := range implied1 {
		t[op] = 1
	}

	// NOP/SKB/TOP bodies (nop, top) already tick once for their operand
	// cycle; only the zero-page,X SKB forms spend one more.
	for _, op := range []uint8{0x14, 0x34, 0x54, 0x74, 0xD4, 0xF4} { // SKB zp,X
		t[op] = 1
	}

	t[0x48] = 1 // PHA
	t[0x08] = 1 // PHP
	t[0x68] = 2 // PLA
	t[0x28] = 2 // PLP
	t[0x20] = 1 // JSR
	t[0x60] = 3 // RTS
	t[0x40] = 2 // RTI
	t[0x00] = 0 // BRK: fully accounted for inside serviceInterrupt

	// STP/KIL: hardware hangs the bus forever; no extra tick is needed
	// since the opcode function panics before Step ever reaches this loop.
	for _, op := range []uint8{0x02, 0x12, 0x22, 0x32, 0x42, 0x52, 0x62, 0x72, 0x92, 0xB2, 0xD2, 0xF2} {
		t[op] = 0
	}

	return t
}

type opEntry struct {
	exec  func(*CPU, Bus)
	extra uint8
}

var opTable [256]opEntry

func init() {
	for i := range opTable {
		opTable[i] = opEntry{exec: opFuncs[i], extra: opExtraCycles[i]}
	}
}

// addressing resolves c.opAddr and c.crossedPage for the given opcode per
// its addressing mode, consuming operand bytes from the instruction stream.
// It reproduces the classic indirect-JMP page-wrap bug verbatim.
func (c *CPU) addressing(op uint8, bus Bus) {
	c.opMode = addrModes[op]
	c.crossedPage = false

	switch c.opMode {
	case IMP, ACC:
		// no operand
	case IMM:
		c.opAddr = c.PC
		c.PC++
	case ZEP:
		c.opAddr = uint16(c.fetchByte(bus))
	case ZPX:
		c.opAddr = uint16(c.fetchByte(bus) + c.X)
	case ZPY:
		c.opAddr = uint16(c.fetchByte(bus) + c.Y)
	case IZX:
		base := c.fetchByte(bus) + c.X
		lo := uint16(bus.Read(uint16(base)))
		hi := uint16(bus.Read(uint16(base + 1)))
		c.opAddr = (hi << 8) | lo
	case IZY:
		base := c.fetchByte(bus)
		lo := uint16(bus.Read(uint16(base)))
		hi := uint16(bus.Read(uint16(base + 1)))
		baseAddr := (hi << 8) | lo
		c.opAddr = baseAddr + uint16(c.Y)
		c.checkPage(baseAddr, c.opAddr)
	case ABS:
		c.opAddr = c.fetchWord(bus)
	case ABX:
		base := c.fetchWord(bus)
		c.opAddr = base + uint16(c.X)
		c.checkPage(base, c.opAddr)
	case ABY:
		base := c.fetchWord(bus)
		c.opAddr = base + uint16(c.Y)
		c.checkPage(base, c.opAddr)
	case IND:
		base := c.fetchWord(bus)
		lo := uint16(bus.Read(base))
		hi := uint16(bus.Read((base & 0xFF00) | ((base + 1) & 0x00FF)))
		c.opAddr = (hi << 8) | lo
	case REL:
		rel := int8(c.fetchByte(bus))
		c.opAddr = uint16(int32(c.PC) + int32(rel))
		c.checkPage(c.PC, c.opAddr)
	}
}

func (c *CPU) getOperand(bus Bus) uint8 {
	if c.opMode == ACC {
		return c.A
	}
	return bus.Read(c.opAddr)
}

// --- arithmetic / logic ---

func (c *CPU) adc(bus Bus) {
	c._adc(c.getOperand(bus))
	c.tickCrossPage(bus)
}

func (c *CPU) sbc(bus Bus) {
	c._adc(^c.getOperand(bus))
	c.tickCrossPage(bus)
}

func (c *CPU) _adc(op uint8) {
	carry := uint16(0)
	if c.P.C {
		carry = 1
	}
	sum := uint16(c.A) + uint16(op) + carry
	result := uint8(sum)
	c.P.C = sum > 0xFF
	c.P.V = (^(c.A ^ op) & (c.A ^ result) & 0x80) != 0
	c.A = result
	c.P.setZN(c.A)
}

func (c *CPU) and(bus Bus) {
	c.A &= c.getOperand(bus)
	c.P.setZN(c.A)
	c.tickCrossPage(bus)
}

func (c *CPU) ora(bus Bus) {
	c.A |= c.getOperand(bus)
	c.P.setZN(c.A)
	c.tickCrossPage(bus)
}

func (c *CPU) eor(bus Bus) {
	c.A ^= c.getOperand(bus)
	c.P.setZN(c.A)
	c.tickCrossPage(bus)
}

func (c *CPU) inc(bus Bus) {
	v := bus.Read(c.opAddr) + 1
	bus.Write(c.opAddr, v)
	c.P.setZN(v)
}

func (c *CPU) dec(bus Bus) {
	v := bus.Read(c.opAddr) - 1
	bus.Write(c.opAddr, v)
	c.P.setZN(v)
}

func (c *CPU) inx(_ Bus) { c.X++; c.P.setZN(c.X) }
func (c *CPU) iny(_ Bus) { c.Y++; c.P.setZN(c.Y) }
func (c *CPU) dex(_ Bus) { c.X--; c.P.setZN(c.X) }
func (c *CPU) dey(_ Bus) { c.Y--; c.P.setZN(c.Y) }

func (c *CPU) rol(bus Bus) {
	in := c.getOperand(bus)
	oldCarry := uint8(0)
	if c.P.C {
		oldCarry = 1
	}
	c.P.C = in&0x80 != 0
	out := (in << 1) | oldCarry
	c.writeBack(bus, out)
	c.P.setZN(out)
}

func (c *CPU) ror(bus Bus) {
	in := c.getOperand(bus)
	oldCarry := uint8(0)
	if c.P.C {
		oldCarry = 0x80
	}
	c.P.C = in&0x01 != 0
	out := (in >> 1) | oldCarry
	c.writeBack(bus, out)
	c.P.setZN(out)
}

func (c *CPU) asl(bus Bus) {
	in := c.getOperand(bus)
	c.P.C = in&0x80 != 0
	out := in << 1
	c.writeBack(bus, out)
	c.P.setZN(out)
}

func (c *CPU) lsr(bus Bus) {
	in := c.getOperand(bus)
	c.P.C = in&0x01 != 0
	out := in >> 1
	c.writeBack(bus, out)
	c.P.setZN(out)
}

func (c *CPU) writeBack(bus Bus, v uint8) {
	if c.opMode == ACC {
		c.A = v
		return
	}
	bus.Write(c.opAddr, v)
}

// --- branch / jump ---

func (c *CPU) _branch(taken bool, bus Bus) {
	if taken {
		bus.Tick()
		c.PC = c.opAddr
		c.tickCrossPage(bus)
	}
}

func (c *CPU) bcc(bus Bus) { c._branch(!c.P.C, bus) }
func (c *CPU) bcs(bus Bus) { c._branch(c.P.C, bus) }
func (c *CPU) beq(bus Bus) { c._branch(c.P.Z, bus) }
func (c *CPU) bne(bus Bus) { c._branch(!c.P.Z, bus) }
func (c *CPU) bmi(bus Bus) { c._branch(c.P.N, bus) }
func (c *CPU) bpl(bus Bus) { c._branch(!c.P.N, bus) }
func (c *CPU) bvc(bus Bus) { c._branch(!c.P.V, bus) }
func (c *CPU) bvs(bus Bus) { c._branch(c.P.V, bus) }

func (c *CPU) jmp(_ Bus) { c.PC = c.opAddr }

func (c *CPU) jsr(bus Bus) {
	c.pushWord(c.PC-1, bus)
	c.PC = c.opAddr
}

func (c *CPU) rts(bus Bus) {
	c.PC = c.popWord(bus) + 1
}

func (c *CPU) rti(bus Bus) {
	c.P = StatusFromByte(c.popByte(bus))
	c.PC = c.popWord(bus)
}

func (c *CPU) brk(bus Bus) {
	c.PC++
	c.serviceInterrupt(bus, irqVector, true)
}

// --- load / store / transfer ---

func (c *CPU) lda(bus Bus) { c.A = c.getOperand(bus); c.P.setZN(c.A); c.tickCrossPage(bus) }
func (c *CPU) ldx(bus Bus) { c.X = c.getOperand(bus); c.P.setZN(c.X); c.tickCrossPage(bus) }
func (c *CPU) ldy(bus Bus) { c.Y = c.getOperand(bus); c.P.setZN(c.Y); c.tickCrossPage(bus) }

func (c *CPU) sta(bus Bus) { bus.Write(c.opAddr, c.A) }
func (c *CPU) stx(bus Bus) { bus.Write(c.opAddr, c.X) }
func (c *CPU) sty(bus Bus) { bus.Write(c.opAddr, c.Y) }

func (c *CPU) tax(_ Bus) { c.X = c.A; c.P.setZN(c.X) }
func (c *CPU) tay(_ Bus) { c.Y = c.A; c.P.setZN(c.Y) }
func (c *CPU) tsx(_ Bus) { c.X = c.SP; c.P.setZN(c.X) }
func (c *CPU) txs(_ Bus) { c.SP = c.X }
func (c *CPU) txa(_ Bus) { c.A = c.X; c.P.setZN(c.A) }
func (c *CPU) tya(_ Bus) { c.A = c.Y; c.P.setZN(c.A) }

func (c *CPU) pha(bus Bus) { c.pushByte(c.A, bus) }
func (c *CPU) php(bus Bus) {
	c.pushByte(c.P.ToByte()|0x10, bus)
}
func (c *CPU) pla(bus Bus) { c.A = c.popByte(bus); c.P.setZN(c.A) }
func (c *CPU) plp(bus Bus) { c.P = StatusFromByte(c.popByte(bus)) }

// --- flags / compare ---

func (c *CPU) clc(_ Bus) { c.P.C = false }
func (c *CPU) cld(_ Bus) { c.P.D = false }
func (c *CPU) cli(_ Bus) { c.P.I = false }
func (c *CPU) clv(_ Bus) { c.P.V = false }
func (c *CPU) sec(_ Bus) { c.P.C = true }
func (c *CPU) sed(_ Bus) { c.P.D = true }
func (c *CPU) sei(_ Bus) { c.P.I = true }

func (c *CPU) _cmp(reg, op uint8) {
	c.P.C = reg >= op
	c.P.Z = reg == op
	c.P.N = (reg-op)&0x80 != 0
}

func (c *CPU) cmp(bus Bus) { c._cmp(c.A, c.getOperand(bus)); c.tickCrossPage(bus) }
func (c *CPU) cpx(bus Bus) { c._cmp(c.X, c.getOperand(bus)) }
func (c *CPU) cpy(bus Bus) { c._cmp(c.Y, c.getOperand(bus)) }

func (c *CPU) bit(bus Bus) {
	op := c.getOperand(bus)
	c.P.Z = (c.A & op) == 0
	c.P.N = op&0x80 != 0
	c.P.V = op&0x40 != 0
}

func (c *CPU) nop(bus Bus) { bus.Tick() }

// --- documented unofficial opcodes ---

func (c *CPU) top(bus Bus) {
	bus.Tick()
	c.tickCrossPage(bus)
}

func (c *CPU) lax(bus Bus) {
	c.lda(bus)
	c.X = c.A
}

func (c *CPU) sax(bus Bus) {
	bus.Write(c.opAddr, c.A&c.X)
}

func (c *CPU) dcp(bus Bus) { c.dec(bus); c.cmp(bus) }
func (c *CPU) isb(bus Bus) { c.inc(bus); c.sbc(bus) }
func (c *CPU) slo(bus Bus) { c.asl(bus); c.ora(bus) }
func (c *CPU) rla(bus Bus) { c.rol(bus); c.and(bus) }
func (c *CPU) sre(bus Bus) { c.lsr(bus); c.eor(bus) }
func (c *CPU) rra(bus Bus) { c.ror(bus); c.adc(bus) }

func (c *CPU) stp(_ Bus) {
	panic("illegal opcode executed")
}

// opFuncs maps each opcode to its execution function. Unofficial opcodes
// not listed explicitly (several NOP/SKB/LAX/SAX duplicates share a
// handful of real addressing-mode variants) are filled in by name below;
// entries left at their zero value default to nop, matching the several
// genuinely unused slots in the 6502's opcode matrix.
var opFuncs = buildOpFuncs()

func buildOpFuncs() [256]func(*CPU, Bus) {
	var t [256]func(*CPU, Bus)
	for i := range t {
		t[i] = (*CPU).nop
	}

	set := func(op uint8, f func(*CPU, Bus)) { t[op] = f }

	set(0x00, (*CPU).brk)
	set(0x01, (*CPU).ora)
	set(0x05, (*CPU).ora)
	set(0x06, (*CPU).asl)
	set(0x08, (*CPU).php)
	set(0x09, (*CPU).ora)
	set(0x0A, (*CPU).asl)
	set(0x0D, (*CPU).ora)
	set(0x0E, (*CPU).asl)

	set(0x10, (*CPU).bpl)
	set(0x11, (*CPU).ora)
	set(0x15, (*CPU).ora)
	set(0x16, (*CPU).asl)
	set(0x18, (*CPU).clc)
	set(0x19, (*CPU).ora)
	set(0x1D, (*CPU).ora)
	set(0x1E, (*CPU).asl)

	set(0x20, (*CPU).jsr)
	set(0x21, (*CPU).and)
	set(0x24, (*CPU).bit)
	set(0x25, (*CPU).and)
	set(0x26, (*CPU).rol)
	set(0x28, (*CPU).plp)
	set(0x29, (*CPU).and)
	set(0x2A, (*CPU).rol)
	set(0x2C, (*CPU).bit)
	set(0x2D, (*CPU).and)
	set(0x2E, (*CPU).rol)

	set(0x30, (*CPU).bmi)
	set(0x31, (*CPU).and)
	set(0x35, (*CPU).and)
	set(0x36, (*CPU).rol)
	set(0x38, (*CPU).sec)
	set(0x39, (*CPU).and)
	set(0x3D, (*CPU).and)
	set(0x3E, (*CPU).rol)

	set(0x40, (*CPU).rti)
	set(0x41, (*CPU).eor)
	set(0x45, (*CPU).eor)
	set(0x46, (*CPU).lsr)
	set(0x48, (*CPU).pha)
	set(0x49, (*CPU).eor)
	set(0x4A, (*CPU).lsr)
	set(0x4C, (*CPU).jmp)
	set(0x4D, (*CPU).eor)
	set(0x4E, (*CPU).lsr)

	set(0x50, (*CPU).bvc)
	set(0x51, (*CPU).eor)
	set(0x55, (*CPU).eor)
	set(0x56, (*CPU).lsr)
	set(0x58, (*CPU).cli)
	set(0x59, (*CPU).eor)
	set(0x5D, (*CPU).eor)
	set(0x5E, (*CPU).lsr)

	set(0x60, (*CPU).rts)
	set(0x61, (*CPU).adc)
	set(0x65, (*CPU).adc)
	set(0x66, (*CPU).ror)
	set(0x68, (*CPU).pla)
	set(0x69, (*CPU).adc)
	set(0x6A, (*CPU).ror)
	set(0x6C, (*CPU).jmp)
	set(0x6D, (*CPU).adc)
	set(0x6E, (*CPU).ror)

	set(0x70, (*CPU).bvs)
	set(0x71, (*CPU).adc)
	set(0x75, (*CPU).adc)
	set(0x76, (*CPU).ror)
	set(0x78, (*CPU).sei)
	set(0x79, (*CPU).adc)
	set(0x7D, (*CPU).adc)
	set(0x7E, (*CPU).ror)

	set(0x81, (*CPU).sta)
	set(0x83, (*CPU).sax)
	set(0x84, (*CPU).sty)
	set(0x85, (*CPU).sta)
	set(0x86, (*CPU).stx)
	set(0x87, (*CPU).sax)
	set(0x88, (*CPU).dey)
	set(0x8A, (*CPU).txa)
	set(0x8C, (*CPU).sty)
	set(0x8D, (*CPU).sta)
	set(0x8E, (*CPU).stx)
	set(0x8F, (*CPU).sax)

	set(0x90, (*CPU).bcc)
	set(0x91, (*CPU).sta)
	set(0x94, (*CPU).sty)
	set(0x95, (*CPU).sta)
	set(0x96, (*CPU).stx)
	set(0x97, (*CPU).sax)
	set(0x98, (*CPU).tya)
	set(0x99, (*CPU).sta)
	set(0x9A, (*CPU).txs)
	set(0x9D, (*CPU).sta)

	set(0xA0, (*CPU).ldy)
	set(0xA1, (*CPU).lda)
	set(0xA2, (*CPU).ldx)
	set(0xA3, (*CPU).lax)
	set(0xA4, (*CPU).ldy)
	set(0xA5, (*CPU).lda)
	set(0xA6, (*CPU).ldx)
	set(0xA7, (*CPU).lax)
	set(0xA8, (*CPU).tay)
	set(0xA9, (*CPU).lda)
	set(0xAA, (*CPU).tax)
	set(0xAC, (*CPU).ldy)
	set(0xAD, (*CPU).lda)
	set(0xAE, (*CPU).ldx)
	set(0xAF, (*CPU).lax)

	set(0xB0, (*CPU).bcs)
	set(0xB1, (*CPU).lda)
	set(0xB3, (*CPU).lax)
	set(0xB4, (*CPU).ldy)
	set(0xB5, (*CPU).lda)
	set(0xB6, (*CPU).ldx)
	set(0xB7, (*CPU).lax)
	set(0xB8, (*CPU).clv)
	set(0xB9, (*CPU).lda)
	set(0xBA, (*CPU).tsx)
	set(0xBC, (*CPU).ldy)
	set(0xBD, (*CPU).lda)
	set(0xBE, (*CPU).ldx)
	set(0xBF, (*CPU).lax)

	set(0xC0, (*CPU).cpy)
	set(0xC1, (*CPU).cmp)
	set(0xC3, (*CPU).dcp)
	set(0xC4, (*CPU).cpy)
	set(0xC5, (*CPU).cmp)
	set(0xC6, (*CPU).dec)
	set(0xC7, (*CPU).dcp)
	set(0xC8, (*CPU).iny)
	set(0xC9, (*CPU).cmp)
	set(0xCA, (*CPU).dex)
	set(0xCC, (*CPU).cpy)
	set(0xCD, (*CPU).cmp)
	set(0xCE, (*CPU).dec)
	set(0xCF, (*CPU).dcp)

	set(0xD0, (*CPU).bne)
	set(0xD1, (*CPU).cmp)
	set(0xD3, (*CPU).dcp)
	set(0xD5, (*CPU).cmp)
	set(0xD6, (*CPU).dec)
	set(0xD7, (*CPU).dcp)
	set(0xD8, (*CPU).cld)
	set(0xD9, (*CPU).cmp)
	set(0xDB, (*CPU).dcp)
	set(0xDD, (*CPU).cmp)
	set(0xDE, (*CPU).dec)
	set(0xDF, (*CPU).dcp)

	set(0xE0, (*CPU).cpx)
	set(0xE1, (*CPU).sbc)
	set(0xE3, (*CPU).isb)
	set(0xE4, (*CPU).cpx)
	set(0xE5, (*CPU).sbc)
	set(0xE6, (*CPU).inc)
	set(0xE7, (*CPU).isb)
	set(0xE8, (*CPU).inx)
	set(0xE9, (*CPU).sbc)
	set(0xEA, (*CPU).nop)
	set(0xEB, (*CPU).sbc) // undocumented SBC immediate duplicate
	set(0xEC, (*CPU).cpx)
	set(0xED, (*CPU).sbc)
	set(0xEE, (*CPU).inc)
	set(0xEF, (*CPU).isb)

	set(0xF0, (*CPU).beq)
	set(0xF1, (*CPU).sbc)
	set(0xF3, (*CPU).isb)
	set(0xF5, (*CPU).sbc)
	set(0xF6, (*CPU).inc)
	set(0xF7, (*CPU).isb)
	set(0xF8, (*CPU).sed)
	set(0xF9, (*CPU).sbc)
	set(0xFB, (*CPU).isb)
	set(0xFD, (*CPU).sbc)
	set(0xFE, (*CPU).inc)
	set(0xFF, (*CPU).isb)

	// STP/KIL and documented NOP/SKB/SKW families over the remaining
	// official-NOP-shaped slots (02/12/22/.../1A/3A/.../04/44/64/0C/1C...).
	for _, op := range []uint8{0x02, 0x12, 0x22, 0x32, 0x42, 0x52, 0x62, 0x72, 0x92, 0xB2, 0xD2, 0xF2} {
		set(op, (*CPU).stp)
	}
	for _, op := range []uint8{0x1A, 0x3A, 0x5A, 0x7A, 0xDA, 0xFA} {
		set(op, (*CPU).nop)
	}
	for _, op := range []uint8{0x80, 0x82, 0x89, 0xC2, 0xE2, 0x04, 0x44, 0x64, 0x14, 0x34, 0x54, 0x74, 0xD4, 0xF4} {
		set(op, (*CPU).nop)
	}
	for _, op := range []uint8{0x0C, 0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC} {
		set(op, (*CPU).top)
	}
	for _, op := range []uint8{0x03, 0x13} {
		set(op, (*CPU).slo)
	}
	set(0x07, (*CPU).slo)
	set(0x17, (*CPU).slo)
	set(0x0F, (*CPU).slo)
	set(0x1F, (*CPU).slo)
	set(0x1B, (*CPU).slo)
	for _, op := range []uint8{0x23, 0x33} {
		set(op, (*CPU).rla)
	}
	set(0x27, (*CPU).rla)
	set(0x37, (*CPU).rla)
	set(0x2F, (*CPU).rla)
	set(0x3F, (*CPU).rla)
	set(0x3B, (*CPU).rla)
	for _, op := range []uint8{0x43, 0x53} {
		set(op, (*CPU).sre)
	}
	set(0x47, (*CPU).sre)
	set(0x57, (*CPU).sre)
	set(0x4F, (*CPU).sre)
	set(0x5F, (*CPU).sre)
	set(0x5B, (*CPU).sre)
	for _, op := range []uint8{0x63, 0x73} {
		set(op, (*CPU).rra)
	}
	set(0x67, (*CPU).rra)
	set(0x77, (*CPU).rra)
	set(0x6F, (*CPU).rra)
	set(0x7F, (*CPU).rra)
	set(0x7B, (*CPU).rra)

	return t
}
