// Package cpu implements the Ricoh 2A03's 6502-derived CPU core.
package cpu

// Bus is the memory/IO surface the CPU drives. Read and Write each advance
// the rest of the system by one CPU cycle (3 PPU dots, 1 APU clock) before
// returning a value; Tick advances the system without touching memory, for
// dummy cycles that real hardware spends with the bus idle.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)
	Tick()
}

const (
	stackBase   = 0x0100
	nmiVector   = 0xFFFA
	resetVector = 0xFFFC
	irqVector   = 0xFFFE
)

// Status is the 6502 processor status register, kept as discrete flags
// rather than a raw byte so the rest of the CPU can read/write them
// directly; ToByte/FromByte handle the packed representation.
type Status struct {
	N, V, B, D, I, Z, C bool
}

// ToByte packs the flags into the serialized form read by PHP/BRK and
// $2002-adjacent status snapshots. Bit 5 is always set.
func (s Status) ToByte() uint8 {
	var b uint8 = 0x20
	if s.N {
		b |= 0x80
	}
	if s.V {
		b |= 0x40
	}
	if s.B {
		b |= 0x10
	}
	if s.D {
		b |= 0x08
	}
	if s.I {
		b |= 0x04
	}
	if s.Z {
		b |= 0x02
	}
	if s.C {
		b |= 0x01
	}
	return b
}

// StatusFromByte unpacks a status byte. B is always cleared: the flag only
// ever exists in the serialized byte, pushed as 1 for BRK/PHP and 0 for
// IRQ/NMI, never held live in the register file.
func StatusFromByte(b uint8) Status {
	return Status{
		N: b&0x80 != 0,
		V: b&0x40 != 0,
		B: false,
		D: b&0x08 != 0,
		I: b&0x04 != 0,
		Z: b&0x02 != 0,
		C: b&0x01 != 0,
	}
}

func (s *Status) setZN(v uint8) {
	s.Z = v == 0
	s.N = v&0x80 != 0
}

// CPU is the register file and scratch decode state for one instruction.
// It holds no reference to the Bus: every method that needs one receives
// it as a parameter, so the Bus is free to own the CPU's siblings (PPU,
// APU, Cartridge) without a cyclic reference back.
type CPU struct {
	A, X, Y uint8
	PC      uint16
	SP      uint8
	P       Status

	op          uint8
	opMode      AddrMode
	opAddr      uint16
	crossedPage bool
}

// New returns a CPU in its power-up state. Reset(bus) must be called before
// stepping to load PC from the reset vector.
func New() *CPU {
	return &CPU{SP: 0xFD, P: StatusFromByte(0x34)}
}

// Snapshot is a point-in-time view of the register file, for debugging and tests.
// Cycle accounting lives on the Bus (see gones/internal/bus.Bus.Cycles), the
// only place that actually ticks per access; the CPU has no counter of its
// own to go stale.
type Snapshot struct {
	A, X, Y uint8
	PC      uint16
	SP      uint8
	P       uint8
}

func (c *CPU) Snapshot() Snapshot {
	return Snapshot{A: c.A, X: c.X, Y: c.Y, PC: c.PC, SP: c.SP, P: c.P.ToByte()}
}

// IRQMasked reports whether the I flag currently blocks IRQ servicing.
func (c *CPU) IRQMasked() bool { return c.P.I }

// Reset services the RESET vector: registers return to their power-up
// values (SP=$FD), 5 dummy cycles stand in for the two internal cycles and
// the three suppressed stack pushes, then the vector is loaded.
func (c *CPU) Reset(bus Bus) {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFD
	c.P = StatusFromByte(0x34)

	bus.Tick()
	bus.Tick()
	bus.Tick()
	bus.Tick()
	bus.Tick()
	lo := uint16(bus.Read(resetVector))
	hi := uint16(bus.Read(resetVector + 1))
	c.PC = (hi << 8) | lo
}

// NMI services a non-maskable interrupt.
func (c *CPU) NMI(bus Bus) {
	c.serviceInterrupt(bus, nmiVector, false)
}

// IRQ services a maskable interrupt; callers must have already checked
// that the I flag is clear and that some source is asserting IRQ.
func (c *CPU) IRQ(bus Bus) {
	c.serviceInterrupt(bus, irqVector, false)
}

func (c *CPU) serviceInterrupt(bus Bus, vector uint16, brk bool) {
	bus.Tick()
	if !brk {
		bus.Tick()
	}
	c.pushWord(c.PC, bus)
	b := c.P.B
	c.P.B = brk
	c.pushByte(c.P.ToByte(), bus)
	c.P.B = b
	c.P.I = true
	lo := uint16(bus.Read(vector))
	hi := uint16(bus.Read(vector + 1))
	c.PC = (hi << 8) | lo
}

// Step fetches, decodes and executes one instruction, ticking bus for
// every memory access plus any documented extra/page-cross cycles.
func (c *CPU) Step(bus Bus) {
	c.op = c.fetchByte(bus)
	c.addressing(c.op, bus)

	opTable[c.op].exec(c, bus)

	for i := uint8(0); i < opTable[c.op].extra; i++ {
		bus.Tick()
	}
}

func (c *CPU) fetchByte(bus Bus) uint8 {
	b := bus.Read(c.PC)
	c.PC++
	return b
}

func (c *CPU) fetchWord(bus Bus) uint16 {
	lo := uint16(bus.Read(c.PC))
	hi := uint16(bus.Read(c.PC + 1))
	c.PC += 2
	return (hi << 8) | lo
}

func (c *CPU) readWord(addr uint16, bus Bus) uint16 {
	lo := uint16(bus.Read(addr))
	hi := uint16(bus.Read(addr + 1))
	return (hi << 8) | lo
}

func (c *CPU) pushByte(b uint8, bus Bus) {
	bus.Write(stackBase+uint16(c.SP), b)
	c.SP--
}

func (c *CPU) popByte(bus Bus) uint8 {
	c.SP++
	return bus.Read(stackBase + uint16(c.SP))
}

func (c *CPU) pushWord(w uint16, bus Bus) {
	c.pushByte(uint8(w>>8), bus)
	c.pushByte(uint8(w), bus)
}

func (c *CPU) popWord(bus Bus) uint16 {
	lo := uint16(c.popByte(bus))
	hi := uint16(c.popByte(bus))
	return (hi << 8) | lo
}

func (c *CPU) tickCrossPage(bus Bus) {
	if c.crossedPage {
		bus.Tick()
	}
}

func (c *CPU) checkPage(a, b uint16) {
	c.crossedPage = a&0xFF00 != b&0xFF00
}
