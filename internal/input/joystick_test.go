package input

import "testing"

// TestShiftOutSequenceMatchesButtonOrder exercises the controller port's
// canonical 8-bit readout order (A,B,Select,Start,Up,Down,Left,Right) for
// a button pattern with only A and Up held, which should read out as
// 1,0,0,0,1,0,0,0 on the active-high CPU-visible bit.
func TestShiftOutSequenceMatchesButtonOrder(t *testing.T) {
	j := New()
	j.SetButtons(0, Buttons{A: true, Up: true})
	j.Write(0x4016, 0x01) // strobe high: continuously reloads
	j.Write(0x4016, 0x00) // strobe low: latches the shift register

	want := []uint8{1, 0, 0, 0, 1, 0, 0, 0}
	for i, w := range want {
		got := j.Read(0x4016) & 0x01
		if got != w {
			t.Errorf("bit %d = %d, want %d", i, got, w)
		}
	}
}

func TestOpenBusBit6IsAlwaysSet(t *testing.T) {
	j := New()
	v := j.Read(0x4016)
	if v&0x40 == 0 {
		t.Errorf("Read(0x4016) = %#02x, want bit 6 set (open bus)", v)
	}
}

func TestStrobeHighKeepsReloadingButtonA(t *testing.T) {
	j := New()
	j.SetButtons(0, Buttons{A: true})
	j.Write(0x4016, 0x01)
	for i := 0; i < 3; i++ {
		if got := j.Read(0x4016) & 0x01; got != 1 {
			t.Errorf("read %d while strobing = %d, want 1 (button A held)", i, got)
		}
	}
}

func TestPort1IndependentOfPort0(t *testing.T) {
	j := New()
	j.SetButtons(0, Buttons{A: true})
	j.SetButtons(1, Buttons{B: true})
	j.Write(0x4016, 0x01)
	j.Write(0x4016, 0x00)

	if got := j.Read(0x4016) & 0x01; got != 1 {
		t.Errorf("port 0 bit 0 = %d, want 1 (A pressed)", got)
	}
	if got := j.Read(0x4017) & 0x01; got != 0 {
		t.Errorf("port 1 bit 0 = %d, want 0 (A not pressed on port 1)", got)
	}
}

func TestResetClearsButtonsAndStrobe(t *testing.T) {
	j := New()
	j.SetButtons(0, Buttons{A: true})
	j.Write(0x4016, 0x01)
	j.Reset()
	j.Write(0x4016, 0x00)
	if got := j.Read(0x4016) & 0x01; got != 0 {
		t.Errorf("bit 0 after Reset = %d, want 0 (buttons cleared)", got)
	}
}
