// Package blip implements a band-limited synthesis buffer for converting a
// stream of delta-coded digital samples into an audio-rate PCM signal,
// ported from blargg's blip_buf algorithm.
package blip

const (
	maxRatio = 1 << 20
	// preShift keeps samples*timeUnit within int64 for a full 8192-sample
	// frame (ClocksNeeded/EndFrame arithmetic).
	preShift = 29
	timeBits = preShift + 20
	timeUnit = int64(1) << timeBits
	bassShift = 9
	phaseBits = 5
	phaseCount = 1 << phaseBits
	deltaBits = 15
	deltaUnit = 1 << deltaBits
	fracBits  = timeBits - preShift
	endFrameExtra = 2
	halfWidth     = 8
	bufExtra      = halfWidth*2 + endFrameExtra
)

// Blip is a band-limited impulse-synthesis buffer. Samples are added as
// deltas at a fractional clock time via AddDelta; ReadSamples drains the
// accumulated, filtered PCM signal.
type Blip struct {
	factor     int64
	offset     int64
	avail      int
	size       int
	integrator int32
	buf        []int32
}

// New allocates a buffer able to hold up to size samples between calls to
// ReadSamples.
func New(size int) *Blip {
	b := &Blip{
		size:   size,
		factor: timeUnit / maxRatio,
		buf:    make([]int32, size+bufExtra),
	}
	b.offset = b.factor / 2
	return b
}

// SetRates configures the clock-to-sample-rate ratio. clockRate is the
// input signal's native rate (the NES CPU frequency); sampleRate is the
// desired PCM output rate.
func (b *Blip) SetRates(clockRate, sampleRate float64) {
	factor := float64(timeUnit) * sampleRate / clockRate
	b.factor = int64(factor)
	if float64(b.factor) < factor {
		b.factor++
	}
}

// Clear discards any buffered, unread samples.
func (b *Blip) Clear() {
	b.offset = b.factor / 2
	b.avail = 0
	b.integrator = 0
	for i := range b.buf {
		b.buf[i] = 0
	}
}

// ClocksNeeded returns how many more source clocks must elapse (passed to
// EndFrame) before samples additional PCM samples become available.
func (b *Blip) ClocksNeeded(samples int) int {
	needed := int64(samples) * timeUnit
	if needed < b.offset {
		return 0
	}
	return int((needed - b.offset + b.factor - 1) / b.factor)
}

// EndFrame finishes a frame of t input clocks, making any newly produced
// samples available to ReadSamples/SamplesAvail.
func (b *Blip) EndFrame(t int) {
	off := int64(t)*b.factor + b.offset
	b.avail += int(off >> timeBits)
	b.offset = off & (timeUnit - 1)
}

// SamplesAvail returns the number of samples ready to be read.
func (b *Blip) SamplesAvail() int { return b.avail }

// RemoveSamples discards the first count samples after reading them out
// via a separate path (used by ReadSamples internally, exposed for tests).
func (b *Blip) RemoveSamples(count int) {
	remain := b.avail + bufExtra - count
	copy(b.buf[:remain], b.buf[count:count+remain])
	for i := remain; i < len(b.buf); i++ {
		b.buf[i] = 0
	}
	b.avail -= count
}

// ReadSamples integrates and clamps up to count samples into out, returning
// the number written. When stereo is true, samples are written to every
// other slot of out (interleaved stereo with a silent channel).
func (b *Blip) ReadSamples(out []int16, count int, stereo bool) int {
	if count > b.avail {
		count = b.avail
	}
	if count <= 0 {
		return 0
	}

	step := 1
	if stereo {
		step = 2
	}

	sum := b.integrator
	idx := 0
	for i := 0; i < count; i++ {
		s := sum >> deltaBits
		sum += int32(b.buf[i])
		if s < -32768 {
			s = -32768
		} else if s > 32767 {
			s = 32767
		}
		out[idx] = int16(s)
		idx += step
		sum -= s << (deltaBits - bassShift)
	}
	b.integrator = sum
	b.RemoveSamples(count)
	return count
}

// blStep is the 33-row half-sinc interpolation kernel: row i and its
// mirrored reverse half together form the windowed-sinc impulse response
// used to band-limit each injected delta.
var blStep = [phaseCount + 1][halfWidth]int32{
	{43, -115, 350, -488, 1136, -914, 5861, 21022},
	{44, -118, 348, -473, 1076, -799, 5274, 21001},
	{45, -121, 344, -454, 1011, -677, 4706, 20936},
	{46, -122, 336, -431, 942, -549, 4156, 20829},
	{47, -123, 327, -404, 868, -418, 3629, 20679},
	{47, -122, 316, -375, 792, -285, 3124, 20488},
	{47, -120, 303, -344, 714, -151, 2644, 20256},
	{46, -117, 289, -310, 634, -17, 2188, 19985},
	{46, -114, 273, -275, 553, 117, 1758, 19675},
	{44, -108, 255, -237, 471, 247, 1356, 19327},
	{43, -103, 237, -199, 390, 373, 981, 18944},
	{42, -98, 218, -160, 310, 495, 633, 18527},
	{40, -91, 198, -121, 231, 611, 314, 18078},
	{38, -84, 178, -81, 153, 722, 22, 17599},
	{36, -76, 157, -43, 80, 824, -241, 17092},
	{34, -68, 135, -3, 8, 919, -476, 16559},
	{32, -61, 114, 34, -60, 1006, -683, 16001},
	{29, -52, 92, 70, -123, 1083, -862, 15422},
	{27, -44, 71, 106, -184, 1152, -1015, 14824},
	{25, -36, 51, 139, -239, 1211, -1142, 14210},
	{22, -27, 30, 171, -290, 1261, -1244, 13580},
	{20, -20, 9, 200, -335, 1301, -1322, 12939},
	{18, -12, -10, 227, -375, 1331, -1376, 12290},
	{15, -4, -29, 252, -409, 1351, -1408, 11634},
	{13, 3, -46, 274, -436, 1361, -1419, 10974},
	{11, 9, -62, 293, -457, 1362, -1410, 10313},
	{9, 16, -77, 310, -472, 1354, -1383, 9654},
	{7, 22, -90, 324, -479, 1337, -1339, 8998},
	{6, 26, -102, 334, -480, 1312, -1280, 8350},
	{4, 31, -112, 341, -474, 1278, -1205, 7709},
	{3, 35, -122, 345, -462, 1237, -1119, 7081},
	{1, 40, -130, 346, -443, 1190, -1021, 6467},
	{0, 43, -136, 343, -420, 1136, -914, 5861},
}

// AddDelta injects a unit impulse of the given signed amplitude at
// fractional source-clock time t, spreading it across the 16-sample
// window the half-sinc kernel covers. The kernel phase nearest the
// impulse's fractional position is blended with its neighbor via interp
// so the impulse response doesn't snap to a 32-step phase grid.
func (b *Blip) AddDelta(time int, delta int32) {
	fixed := (int64(time)*b.factor + b.offset) >> preShift
	out := int(fixed>>fracBits) + b.avail

	phaseShift := fracBits - phaseBits
	phase := int((fixed >> phaseShift) & (phaseCount - 1))

	in := &blStep[phase]
	next := &blStep[phase+1]
	rev := &blStep[phaseCount-phase]
	revNext := &blStep[phaseCount-phase-1]

	interp := int32((fixed >> (phaseShift - deltaBits)) & (deltaUnit - 1))
	delta2 := (delta * interp) >> deltaBits
	delta -= delta2

	for i := 0; i < halfWidth; i++ {
		b.buf[out+i] += in[i]*delta + next[i]*delta2
	}
	for i := 0; i < halfWidth; i++ {
		b.buf[out+halfWidth+i] += rev[halfWidth-1-i]*delta + revNext[halfWidth-1-i]*delta2
	}
}
