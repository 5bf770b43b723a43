package apu

// lengthTable maps the 5-bit length-counter-load field of $4003/$4007/
// $400B/$400F to the number of frame-sequencer length clocks the channel
// plays for.
var lengthTable = [32]uint8{
	10, 254, 20, 2, 40, 4, 80, 6,
	160, 8, 60, 10, 14, 12, 26, 14,
	12, 16, 24, 8, 48, 6, 96, 4,
	192, 2, 72, 16, 28, 32, 52, 2,
}

// dutyTable holds the 8-step waveform for each of the 4 duty-cycle
// selections a pulse channel's $4000/$4004 bits 6-7 choose between.
var dutyTable = [4][8]uint8{
	{0, 0, 0, 0, 0, 0, 0, 1}, // 12.5%
	{0, 0, 0, 0, 0, 0, 1, 1}, // 25%
	{0, 0, 0, 0, 1, 1, 1, 1}, // 50%
	{1, 1, 1, 1, 1, 1, 0, 0}, // 75% (25% inverted)
}

// triangleTable is the 32-step up-then-down staircase the triangle
// channel's sequencer cycles through.
var triangleTable = [32]uint8{
	15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0,
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
}

// noisePeriodTable is the NTSC noise-channel timer-period lookup for the
// 4-bit period index in $400E.
var noisePeriodTable = [16]uint16{
	4, 8, 16, 32, 64, 96, 128, 160,
	202, 254, 380, 508, 762, 1016, 2034, 4068,
}

// dmcRateTable is the NTSC DMC output-timer period lookup for the 4-bit
// rate index in $4010.
var dmcRateTable = [16]uint16{
	428, 380, 340, 320, 286, 254, 226, 214,
	190, 160, 142, 128, 106, 84, 72, 54,
}

// pulseTable and tndTable are the NES's non-linear DAC mixing curves,
// precomputed once at package load from the documented formulas so the
// hot per-cycle mixer is a pair of table lookups.
var (
	pulseTable [31]float32
	tndTable   [203]float32
)

func init() {
	for i := range pulseTable {
		if i == 0 {
			continue
		}
		pulseTable[i] = float32(95.52 / (8128.0/float64(i) + 100.0))
	}
	for i := range tndTable {
		if i == 0 {
			continue
		}
		tndTable[i] = float32(163.67 / (24329.0/float64(i) + 100.0))
	}
}
