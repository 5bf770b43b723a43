package apu

// cpuFrequency is the NTSC NES CPU's native clock rate in Hz.
const cpuFrequency = 1789773.0

// quarterPeriod is the non-integer number of CPU cycles between frame
// sequencer steps (CPU_FREQ/240); tracked as a floating counter decremented
// every cycle, per the reference frame counter rather than a fixed-point
// rational accumulator.
const quarterPeriod = cpuFrequency / 240.0

// sequencer drives the APU's quarter/half-frame clocks (envelope/linear
// and length/sweep respectively) and the 4-step mode's frame IRQ.
type sequencer struct {
	counter  float64
	step     int
	fiveStep bool
	irqInhibit bool
	irqFlag  bool
}

func newSequencer() sequencer {
	return sequencer{counter: quarterPeriod}
}

func (s *sequencer) reset() {
	*s = newSequencer()
}

// write services a $4017 write: selects 4-step (bit7 clear) or 5-step
// (bit7 set) mode, sets the IRQ inhibit flag, and resets the step counter.
// If 5-step mode is selected, one (LENGTH|ENVELOPE) clock fires immediately
// rather than waiting for the sequencer to reach it naturally.
func (s *sequencer) write(value uint8, apu *APU) {
	s.fiveStep = value&0x80 != 0
	s.irqInhibit = value&0x40 != 0
	if s.irqInhibit {
		s.irqFlag = false
	}
	s.step = 0
	s.counter = quarterPeriod
	if s.fiveStep {
		apu.clockEnvelopes()
		apu.clockLengthAndSweep()
	}
}

// tick advances the sequencer by one CPU cycle, firing quarter/half-frame
// clocks on the step boundaries the 4-step or 5-step pattern names.
func (s *sequencer) tick(apu *APU) {
	s.counter--
	if s.counter > 0 {
		return
	}
	s.counter += quarterPeriod

	if s.fiveStep {
		switch s.step {
		case 0, 2:
			apu.clockEnvelopes()
			apu.clockLengthAndSweep()
		case 1, 4:
			apu.clockEnvelopes()
		case 3:
			// no clocks on step 3 of the 5-step sequence
		}
		s.step++
		if s.step >= 5 {
			s.step = 0
		}
		return
	}

	switch s.step {
	case 0, 2:
		apu.clockEnvelopes()
	case 1:
		apu.clockEnvelopes()
		apu.clockLengthAndSweep()
	case 3:
		apu.clockEnvelopes()
		apu.clockLengthAndSweep()
		if !s.irqInhibit {
			s.irqFlag = true
		}
	}
	s.step++
	if s.step >= 4 {
		s.step = 0
	}
}
