package apu

import "testing"

func TestPulseLengthCounterLoadsFromTable(t *testing.T) {
	a := New()
	a.Write(0x4015, 0x01) // enable pulse1
	a.Write(0x4000, 0x00) // duty/envelope, halt clear
	a.Write(0x4003, 0x08) // length load index 1 -> lengthTable[1] = 254
	if a.pulse1.length != lengthTable[1] {
		t.Errorf("pulse1.length = %d, want %d", a.pulse1.length, lengthTable[1])
	}
}

func TestDisablingChannelViaStatusClearsLength(t *testing.T) {
	a := New()
	a.Write(0x4015, 0x01)
	a.Write(0x4003, 0x08)
	if a.pulse1.length == 0 {
		t.Fatalf("setup failed: pulse1.length is 0 before disabling")
	}
	a.Write(0x4015, 0x00)
	if a.pulse1.length != 0 {
		t.Errorf("pulse1.length = %d after disabling via $4015, want 0", a.pulse1.length)
	}
}

func TestFrameSequencerFourStepAssertsIRQOnStepThree(t *testing.T) {
	a := New()
	a.Write(0x4017, 0x00) // 4-step mode, IRQ enabled
	for i := 0.0; i < 4*quarterPeriod+10; i++ {
		a.Tick()
	}
	if !a.FrameIRQ() {
		t.Errorf("FrameIRQ() = false after a full 4-step sequence, want true")
	}
}

func TestFrameSequencerIRQInhibitSuppressesIRQ(t *testing.T) {
	a := New()
	a.Write(0x4017, 0x40) // 4-step mode, IRQ inhibited
	for i := 0.0; i < 4*quarterPeriod+10; i++ {
		a.Tick()
	}
	if a.FrameIRQ() {
		t.Errorf("FrameIRQ() = true with the inhibit bit set, want false")
	}
}

func TestReadStatusClearsFrameIRQButNotDMCIRQ(t *testing.T) {
	a := New()
	a.seq.irqFlag = true
	a.dmc.irqFlag = true

	status := a.ReadStatus()
	if status&0x40 == 0 {
		t.Fatalf("ReadStatus() bit 6 clear, want set (frame IRQ was pending)")
	}
	if a.FrameIRQ() {
		t.Errorf("FrameIRQ() still true after ReadStatus, want cleared")
	}
	if !a.DMCIRQ() {
		t.Errorf("DMCIRQ() cleared by a status read, want it to persist until acknowledged")
	}
}

func TestDMCRequestDeliverProtocol(t *testing.T) {
	a := New()
	a.Write(0x4012, 0x00) // sample addr = 0xC000
	a.Write(0x4013, 0x00) // sample length = 1 byte
	a.Write(0x4015, 0x10) // enable DMC

	addr, ok := a.DMCRequest()
	if !ok {
		t.Fatalf("DMCRequest() ok=false immediately after enabling with a pending sample")
	}
	if addr != 0xC000 {
		t.Errorf("DMCRequest() addr = %#04x, want 0xC000", addr)
	}
	if _, ok := a.DMCRequest(); ok {
		t.Errorf("DMCRequest() ok=true while a fetch is already in flight, want false")
	}
	a.DMCDeliver(0xFF)
	if a.dmc.active() {
		t.Errorf("dmc still active after delivering the only byte of a 1-byte sample")
	}
}

func TestMixerRespectsChannelMute(t *testing.T) {
	a := New()
	a.Write(0x4015, 0x01)
	a.Write(0x4000, 0xDF) // 75% duty (nonzero at sequence position 0), constant volume 15
	a.Write(0x4002, 0x00)
	a.Write(0x4003, 0x09) // timer period 0x100 (clears muting), length load index 1

	unmuted := a.mix()
	if unmuted == 0 {
		t.Fatalf("mix() = 0 with pulse1 at max volume and unmuted, want nonzero")
	}

	a.SetChannelMute([5]bool{true, true, true, true, true})
	muted := a.mix()
	if muted != 0 {
		t.Errorf("mix() = %v with all channels muted, want 0", muted)
	}
}
