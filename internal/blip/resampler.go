package blip

// cpuFrequency is the NTSC NES CPU's native clock rate in Hz, the source
// rate every Resampler is built against.
const cpuFrequency = 1789773.0

// Resampler turns the APU's per-cycle mixed output sample (a float in
// [0,1]) into delta events fed to the underlying Blip buffer, only
// emitting a delta when the signal actually changes level.
type Resampler struct {
	blip       *Blip
	lastSample float32
	clocks     int
}

// NewResampler allocates a resampler backed by a Blip buffer sized to hold
// size output samples between EndFrame/ReadSamples calls.
func NewResampler(size int) *Resampler {
	return &Resampler{blip: New(size)}
}

// SetRate configures the resampler's output rate.
func (r *Resampler) SetRate(sampleRate float64) {
	r.blip.SetRates(cpuFrequency, sampleRate)
}

// AddSample records the APU's instantaneous mixed output for the clock
// that has just elapsed.
func (r *Resampler) AddSample(s float32) {
	if s != r.lastSample {
		delta := (s - r.lastSample) * 32767
		r.blip.AddDelta(r.clocks, int32(delta))
		r.lastSample = s
	}
	r.clocks++
}

// ClocksNeeded reports how many more clocks of AddSample must occur before
// samples additional output samples are available.
func (r *Resampler) ClocksNeeded(samples int) int {
	return r.blip.ClocksNeeded(samples)
}

// EndFrame closes out the accumulated clocks, making their samples
// available, and resets the clock counter for the next frame.
func (r *Resampler) EndFrame() {
	r.blip.EndFrame(r.clocks)
	r.clocks = 0
}

// ReadSamples drains up to len(buf) samples of mono 16-bit PCM.
func (r *Resampler) ReadSamples(buf []int16) int {
	return r.blip.ReadSamples(buf, len(buf), false)
}

// Clear discards any buffered state, used on Console Reset.
func (r *Resampler) Clear() {
	r.blip.Clear()
	r.lastSample = 0
	r.clocks = 0
}

// Avail reports the number of samples ready to be read.
func (r *Resampler) Avail() int { return r.blip.SamplesAvail() }
