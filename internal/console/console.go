// Package console wires the CPU and Bus into the single entry point the
// outer GUI layer talks to: a cycle-stepped emulation loop plus the
// control-event queue (LoadCart, AudioCtrl, Inputs, Reset, Pause, Step)
// that is the only way the outside world reaches into the core.
package console

import (
	"fmt"
	"io"

	"gones/internal/bus"
	"gones/internal/cartridge"
	"gones/internal/cpu"
	"gones/internal/input"
)

// cyclesPerFrame is the NTSC NES's CPU cycle count per 60 Hz video frame.
const cyclesPerFrame = 29781

// eventKind tags a pending control-queue entry.
type eventKind int

const (
	eventLoadCart eventKind = iota
	eventAudioCtrl
	eventInputs
	eventReset
	eventPause
	eventStep
)

type event struct {
	kind eventKind
	cart io.Reader
	mute [5]bool
	p0   input.Buttons
	p1   input.Buttons
}

// Console owns the CPU and Bus and drains the control-event queue between
// instructions, never mid-instruction, per the core's single-threaded
// scheduling model.
type Console struct {
	bus *bus.Bus
	cpu *cpu.CPU

	events chan event
	paused bool

	loadErr error
}

// New returns a Console with cart already loaded and RESET serviced.
func New(cart *cartridge.Cartridge) *Console {
	c := &Console{
		bus:    bus.New(cart),
		cpu:    cpu.New(),
		events: make(chan event, 64),
	}
	c.cpu.Reset(c.bus)
	return c
}

// LoadCart enqueues a LoadCart control event: on success the cartridge is
// replaced and RESET is serviced; on failure the previous cartridge is
// retained and the error is available from LastLoadError.
func (c *Console) LoadCart(r io.Reader) { c.enqueue(event{kind: eventLoadCart, cart: r}) }

// AudioCtrl enqueues an AudioCtrl control event muting/unmuting individual
// channels in Pulse1, Pulse2, Triangle, Noise, DMC order.
func (c *Console) AudioCtrl(mute [5]bool) { c.enqueue(event{kind: eventAudioCtrl, mute: mute}) }

// SetInputs enqueues an Inputs control event setting both controllers'
// current button state.
func (c *Console) SetInputs(p0, p1 input.Buttons) {
	c.enqueue(event{kind: eventInputs, p0: p0, p1: p1})
}

// Reset enqueues a Reset control event.
func (c *Console) Reset() { c.enqueue(event{kind: eventReset}) }

// Pause enqueues a Pause control event, toggling the paused flag.
func (c *Console) Pause() { c.enqueue(event{kind: eventPause}) }

// Step enqueues a Step control event: while paused, executes exactly one
// CPU instruction and its associated ticks.
func (c *Console) Step() { c.enqueue(event{kind: eventStep}) }

func (c *Console) enqueue(e event) {
	select {
	case c.events <- e:
	default:
		// Queue full: the producer is outpacing the emulation loop by more
		// than 64 events. Drop the oldest rather than block the UI thread.
		<-c.events
		c.events <- e
	}
}

// LastLoadError reports the error from the most recent LoadCart event, if
// it failed; nil otherwise.
func (c *Console) LastLoadError() error { return c.loadErr }

// Paused reports whether the Pause event has suppressed CPU execution.
func (c *Console) Paused() bool { return c.paused }

func (c *Console) drainEvents() {
	for {
		select {
		case e := <-c.events:
			c.handle(e)
		default:
			return
		}
	}
}

func (c *Console) handle(e event) {
	switch e.kind {
	case eventLoadCart:
		cart, err := cartridge.LoadFromReader(e.cart)
		if err != nil {
			c.loadErr = fmt.Errorf("console: load cartridge: %w", err)
			return
		}
		c.loadErr = nil
		c.bus.SwapCartridge(cart)
		c.doReset()
	case eventAudioCtrl:
		c.bus.APU.SetChannelMute(e.mute)
	case eventInputs:
		c.bus.SetButtons(0, e.p0)
		c.bus.SetButtons(1, e.p1)
	case eventReset:
		c.doReset()
	case eventPause:
		c.paused = !c.paused
		if c.paused {
			c.bus.APU.ClearAudio()
		}
	case eventStep:
		if c.paused {
			c.executeInstruction()
		}
	}
}

// doReset services RESET: PPU/APU/Joystick are cleared, the CPU reloads PC
// from the reset vector, and the cycle counter returns to zero.
func (c *Console) doReset() {
	c.bus.Reset()
	c.cpu.Reset(c.bus)
}

// executeInstruction runs one CPU instruction plus the interrupt dispatch
// that follows it: an NMI edge takes priority, otherwise a held IRQ line
// is serviced if the I flag doesn't mask it.
func (c *Console) executeInstruction() {
	c.cpu.Step(c.bus)
	if c.bus.PollNMI() {
		c.cpu.NMI(c.bus)
	} else if !c.cpu.IRQMasked() && c.bus.IRQPending() {
		c.cpu.IRQ(c.bus)
	}
}

// RunFrame advances the emulation by one video frame's worth of CPU
// cycles (29,781 on NTSC), draining the control-event queue between every
// instruction. While paused, no instructions execute; Step events are the
// only way to advance.
func (c *Console) RunFrame() {
	c.drainEvents()
	if c.paused {
		return
	}
	target := c.bus.Cycles() + cyclesPerFrame
	for c.bus.Cycles() < target {
		c.executeInstruction()
		c.drainEvents()
		if c.paused {
			return
		}
	}
	c.bus.APU.EndFrame()
}

// FrameBuffer returns the PPU's most recently completed frame, 256x240
// pixels packed 0xAARRGGBB row-major.
func (c *Console) FrameBuffer() []uint32 { return c.bus.PPU.FrameBuffer() }

// SetSampleRate configures the APU resampler's host output rate.
func (c *Console) SetSampleRate(hz float64) { c.bus.APU.SetSampleRate(hz) }

// ReadSamples drains up to len(buf) samples of resampled mono 16-bit PCM;
// while paused this always returns 0, since RunFrame never advances the
// resampler's clock.
func (c *Console) ReadSamples(buf []int16) int { return c.bus.APU.ReadSamples(buf) }

// SamplesAvail reports how many resampled PCM samples are ready to read.
func (c *Console) SamplesAvail() int { return c.bus.APU.SamplesAvail() }
