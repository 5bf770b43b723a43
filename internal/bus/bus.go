// Package bus implements the NES's shared CPU-side memory map: 2KB of
// internal RAM, the PPU/APU register windows, OAM-DMA, and the cartridge
// space, and arbitrates the cycle-by-cycle ticking that keeps the PPU and
// APU exactly in lockstep with the CPU's clock.
package bus

import (
	"gones/internal/apu"
	"gones/internal/cartridge"
	"gones/internal/input"
	"gones/internal/ppu"
)

// Bus owns every subsystem but the CPU, which drives it by exclusive
// reference one instruction at a time (see gones/internal/cpu.Bus).
type Bus struct {
	ram [0x0800]uint8

	PPU  *ppu.PPU
	APU  *apu.APU
	Cart *cartridge.Cartridge
	Pad  *input.Joystick

	cycles uint64
}

// New wires up a Bus with a fresh PPU, APU and Joystick and the given
// cartridge.
func New(cart *cartridge.Cartridge) *Bus {
	return &Bus{
		PPU:  ppu.New(),
		APU:  apu.New(),
		Cart: cart,
		Pad:  input.New(),
	}
}

// Cycles reports the total number of CPU cycles ticked since the last
// Reset.
func (b *Bus) Cycles() uint64 { return b.cycles }

// SwapCartridge replaces the loaded cartridge, used by the LoadCart
// control event; the caller is responsible for servicing RESET afterward.
func (b *Bus) SwapCartridge(cart *cartridge.Cartridge) { b.Cart = cart }

// Reset clears PPU/APU/Joystick state, matching the RESET control event's
// effect on everything the CPU itself doesn't own.
func (b *Bus) Reset() {
	b.PPU.Reset()
	b.APU.Reset()
	b.Pad.Reset()
	b.cycles = 0
}

// tick advances the system clock by one CPU cycle: 3 PPU dots, 1 APU
// clock, then services any pending DMC sample-byte request per §4.2.
func (b *Bus) tick() {
	b.cycles++
	b.PPU.Tick(b.Cart)
	b.PPU.Tick(b.Cart)
	b.PPU.Tick(b.Cart)
	b.APU.Tick()

	if addr, ok := b.APU.DMCRequest(); ok {
		b.PPU.Tick(b.Cart)
		value := b.inspect(addr)
		b.PPU.Tick(b.Cart)
		b.APU.DMCDeliver(value)
	}
}

// Tick implements cpu.Bus: a dummy cycle with no memory access.
func (b *Bus) Tick() { b.tick() }

// Read implements cpu.Bus, decoding a CPU-side address and advancing the
// clock by one cycle.
func (b *Bus) Read(addr uint16) uint8 {
	b.tick()
	return b.decodeRead(addr)
}

// Write implements cpu.Bus. A write to $4014 triggers OAM-DMA, which runs
// to completion inside this call: the CPU is "halted" for the duration
// simply because control doesn't return to CPU.Step until the transfer's
// 513/514 cycles have all been ticked.
func (b *Bus) Write(addr uint16, value uint8) {
	if addr == 0x4014 {
		b.oamDMA(value)
		return
	}
	b.tick()
	b.decodeWrite(addr, value)
}

// inspect reads a CPU-side address without ticking the clock, for the
// DMC sample fetch, which accounts for its own cycles separately.
func (b *Bus) inspect(addr uint16) uint8 { return b.decodeRead(addr) }

func (b *Bus) decodeRead(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return b.ram[addr&0x07FF]
	case addr < 0x4000:
		return b.PPU.Read(b.Cart, addr)
	case addr == 0x4015:
		return b.APU.ReadStatus()
	case addr == 0x4016:
		return b.Pad.Read(addr)
	case addr == 0x4017:
		return b.Pad.Read(addr)
	case addr < 0x4020:
		return 0
	default:
		return b.Cart.ReadPRG(addr)
	}
}

func (b *Bus) decodeWrite(addr uint16, value uint8) {
	switch {
	case addr < 0x2000:
		b.ram[addr&0x07FF] = value
	case addr < 0x4000:
		b.PPU.Write(b.Cart, addr, value)
	case addr == 0x4016:
		b.Pad.Write(addr, value)
	case addr < 0x4018:
		b.APU.Write(addr, value)
	case addr < 0x4020:
		// APU/IO test registers: unimplemented, writes ignored.
	default:
		b.Cart.WritePRG(addr, value)
	}
}

// oamDMA performs a $4014 OAM-DMA transfer: a 1-cycle stall (2 if the
// current cycle is odd) followed by 256 paired read-from-CPU-page /
// write-to-OAM cycles, for 513 or 514 total CPU cycles.
func (b *Bus) oamDMA(page uint8) {
	odd := b.cycles%2 == 1
	b.tick()
	if odd {
		b.tick()
	}

	base := uint16(page) << 8
	for i := 0; i < 256; i++ {
		b.tick()
		data := b.decodeRead(base + uint16(i))
		b.tick()
		b.PPU.OAMDMAWrite(uint8(i), data)
	}
}

// PollNMI reports and clears an NMI edge raised by the PPU at the start
// of vertical blank.
func (b *Bus) PollNMI() bool { return b.PPU.PollNMI() }

// IRQPending reports whether any IRQ source (APU frame sequencer, DMC, or
// mapper) currently holds the level-triggered IRQ line.
func (b *Bus) IRQPending() bool {
	return b.APU.FrameIRQ() || b.APU.DMCIRQ() || b.Cart.PollIRQ()
}

// SetButtons updates one controller port's live button state.
func (b *Bus) SetButtons(port int, buttons input.Buttons) { b.Pad.SetButtons(port, buttons) }
