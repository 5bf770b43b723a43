package blip

import "testing"

// TestClocksNeededProducesEnoughForAFullBuffer mirrors the canonical
// blip_buf sanity check: after configuring the NTSC CPU rate against a
// 44.1kHz output rate, feeding exactly the clock count ClocksNeeded(4096)
// reports (as a stream of unchanging samples, which still advances the
// resampler's internal clock) must make at least 4096 samples available.
func TestClocksNeededProducesEnoughForAFullBuffer(t *testing.T) {
	r := NewResampler(8192)
	r.SetRate(44100.0)

	need := r.ClocksNeeded(4096)
	if need <= 0 {
		t.Fatalf("ClocksNeeded(4096) = %d, want a positive clock count", need)
	}
	for i := 0; i < need; i++ {
		r.AddSample(0.5)
	}
	r.EndFrame()

	if avail := r.Avail(); avail < 4096 {
		t.Errorf("Avail() = %d after feeding ClocksNeeded(4096) clocks, want >= 4096", avail)
	}
}

func TestReadSamplesDrainsAvailableCount(t *testing.T) {
	r := NewResampler(8192)
	r.SetRate(44100.0)
	need := r.ClocksNeeded(100)
	for i := 0; i < need; i++ {
		r.AddSample(float32(i%2) * 0.1)
	}
	r.EndFrame()

	buf := make([]int16, r.Avail())
	n := r.ReadSamples(buf)
	if n != len(buf) {
		t.Errorf("ReadSamples returned %d, want %d (len of destination buffer)", n, len(buf))
	}
	if r.Avail() != 0 {
		t.Errorf("Avail() = %d after draining all samples, want 0", r.Avail())
	}
}

func TestClearResetsAvailability(t *testing.T) {
	r := NewResampler(8192)
	r.SetRate(44100.0)
	need := r.ClocksNeeded(10)
	for i := 0; i < need; i++ {
		r.AddSample(0.3)
	}
	r.EndFrame()
	if r.Avail() == 0 {
		t.Fatalf("Avail() = 0 before Clear, test setup didn't produce samples")
	}
	r.Clear()
	if r.Avail() != 0 {
		t.Errorf("Avail() = %d after Clear, want 0", r.Avail())
	}
}
