// Package apu implements the Ricoh 2A03's integrated audio processing
// unit: two pulse channels, a triangle channel, a noise channel, a delta
// modulation channel, the frame sequencer that clocks their envelope/
// length/sweep units, and the mixer feeding a band-limited resampler.
package apu

import "gones/internal/blip"

// APU owns the five sound channels, the frame sequencer, and the
// resampler that turns their mixed output into host-rate PCM.
type APU struct {
	pulse1, pulse2 pulse
	triangle       triangle
	noise          noise
	dmc            dmc

	seq sequencer

	evenCycle bool

	resampler *blip.Resampler

	channelMute [5]bool
}

// New returns an APU in its power-up state, with a resampler that holds up
// to 8192 output samples (several frames' worth) between drains.
func New() *APU {
	a := &APU{
		noise:     newNoise(),
		seq:       newSequencer(),
		resampler: blip.NewResampler(8192),
	}
	a.pulse2.channel2 = true
	return a
}

// Reset returns the APU to its power-up state, clearing channel state and
// the resampler's buffered audio.
func (a *APU) Reset() {
	*a = APU{
		noise:     newNoise(),
		seq:       newSequencer(),
		resampler: a.resampler,
	}
	a.pulse2.channel2 = true
	a.resampler.Clear()
}

// SetSampleRate configures the resampler's host output rate.
func (a *APU) SetSampleRate(hz float64) { a.resampler.SetRate(hz) }

// SetChannelMute implements the AudioCtrl control event: index order is
// Pulse1, Pulse2, Triangle, Noise, DMC; a muted channel still advances its
// internal state, only its contribution to the mix is silenced.
func (a *APU) SetChannelMute(mute [5]bool) { a.channelMute = mute }

// Tick advances the APU by one CPU cycle: the frame sequencer and
// triangle channel every cycle, the remaining channels every other cycle,
// then mixes and feeds the resampler exactly one sample per cycle.
func (a *APU) Tick() {
	a.seq.tick(a)
	a.triangle.tick()

	if a.evenCycle {
		a.pulse1.tick()
		a.pulse2.tick()
		a.noise.tick()
		a.dmc.tick()
	}
	a.evenCycle = !a.evenCycle

	a.resampler.AddSample(a.mix())
}

func (a *APU) clockEnvelopes() {
	a.pulse1.clockEnvelope()
	a.pulse2.clockEnvelope()
	a.noise.clockEnvelope()
	a.triangle.clockLinear()
}

func (a *APU) clockLengthAndSweep() {
	a.pulse1.clockLength()
	a.pulse1.clockSweep()
	a.pulse2.clockLength()
	a.pulse2.clockSweep()
	a.triangle.clockLength()
	a.noise.clockLength()
}

func (a *APU) mix() float32 {
	p1, p2 := uint8(0), uint8(0)
	if !a.channelMute[0] {
		p1 = a.pulse1.output()
	}
	if !a.channelMute[1] {
		p2 = a.pulse2.output()
	}
	t, n, d := uint8(0), uint8(0), uint8(0)
	if !a.channelMute[2] {
		t = a.triangle.output()
	}
	if !a.channelMute[3] {
		n = a.noise.output()
	}
	if !a.channelMute[4] {
		d = a.dmc.output()
	}
	return pulseTable[p1+p2] + tndTable[3*t+2*n+d]
}

// Write dispatches a CPU write to one of the APU's registers ($4000-$4013,
// $4015, $4017).
func (a *APU) Write(addr uint16, v uint8) {
	switch addr {
	case 0x4000:
		a.pulse1.writeControl(v)
	case 0x4001:
		a.pulse1.writeSweep(v)
	case 0x4002:
		a.pulse1.writeTimerLow(v)
	case 0x4003:
		a.pulse1.writeTimerHigh(v)
	case 0x4004:
		a.pulse2.writeControl(v)
	case 0x4005:
		a.pulse2.writeSweep(v)
	case 0x4006:
		a.pulse2.writeTimerLow(v)
	case 0x4007:
		a.pulse2.writeTimerHigh(v)
	case 0x4008:
		a.triangle.writeControl(v)
	case 0x400A:
		a.triangle.writeTimerLow(v)
	case 0x400B:
		a.triangle.writeTimerHigh(v)
	case 0x400C:
		a.noise.writeControl(v)
	case 0x400E:
		a.noise.writePeriod(v)
	case 0x400F:
		a.noise.writeLength(v)
	case 0x4010:
		a.dmc.writeControl(v)
	case 0x4011:
		a.dmc.writeDirectLoad(v)
	case 0x4012:
		a.dmc.writeSampleAddr(v)
	case 0x4013:
		a.dmc.writeSampleLength(v)
	case 0x4015:
		a.pulse1.setEnabled(v&0x01 != 0)
		a.pulse2.setEnabled(v&0x02 != 0)
		a.triangle.setEnabled(v&0x04 != 0)
		a.noise.setEnabled(v&0x08 != 0)
		a.dmc.setEnabled(v&0x10 != 0)
		a.dmc.irqFlag = false
	case 0x4017:
		a.seq.write(v, a)
	}
}

// ReadStatus services a CPU read of $4015: length-counter-active bits for
// each channel plus the frame and DMC IRQ flags. Reading clears the frame
// IRQ flag (the DMC IRQ flag is cleared only by a $4015 write or by a
// $4010 write with the IRQ-enable bit clear).
func (a *APU) ReadStatus() uint8 {
	var v uint8
	if a.pulse1.length > 0 {
		v |= 0x01
	}
	if a.pulse2.length > 0 {
		v |= 0x02
	}
	if a.triangle.length > 0 {
		v |= 0x04
	}
	if a.noise.length > 0 {
		v |= 0x08
	}
	if a.dmc.active() {
		v |= 0x10
	}
	if a.seq.irqFlag {
		v |= 0x40
	}
	if a.dmc.irqFlag {
		v |= 0x80
	}
	a.seq.irqFlag = false
	return v
}

// FrameIRQ reports whether the frame sequencer's IRQ line is asserted
// (level-triggered, like DMC IRQ: it stays set until $4015/$4017 clears
// it, not merely until polled).
func (a *APU) FrameIRQ() bool { return a.seq.irqFlag }

// DMCIRQ reports whether the DMC's sample-end IRQ line is asserted.
func (a *APU) DMCIRQ() bool { return a.dmc.irqFlag }

// DMCRequest reports whether the memory reader needs a sample byte and,
// if so, the CPU-space address to fetch it from. The bus calls this once
// per tick per §4.2 and feeds the result back through DMCDeliver.
func (a *APU) DMCRequest() (addr uint16, ok bool) {
	if !a.dmc.wantsFetch() {
		return 0, false
	}
	return a.dmc.requestAddress(), true
}

// DMCDeliver supplies the byte fetched for the address DMCRequest returned.
func (a *APU) DMCDeliver(b uint8) { a.dmc.deliver(b) }

// EndFrame flushes the resampler's accumulated clocks, making newly
// produced samples available to ReadSamples.
func (a *APU) EndFrame() { a.resampler.EndFrame() }

// ReadSamples drains up to len(buf) samples of mono 16-bit PCM.
func (a *APU) ReadSamples(buf []int16) int { return a.resampler.ReadSamples(buf) }

// SamplesAvail reports how many resampled PCM samples are ready to read.
func (a *APU) SamplesAvail() int { return a.resampler.Avail() }

// ClocksNeeded reports how many more Tick calls are needed before n more
// samples become available after EndFrame.
func (a *APU) ClocksNeeded(n int) int { return a.resampler.ClocksNeeded(n) }

// ClearAudio discards buffered resampler state, used when the console is
// paused so stale audio doesn't play back when it resumes.
func (a *APU) ClearAudio() { a.resampler.Clear() }
