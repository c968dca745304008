package ds1302

import "time"

// Minimum timings from the datasheet (2V column, worst case). The chip has
// no way to report a violation; running faster than this silently corrupts
// data, so these are floors, not targets.
const (
	tCC  = 4 * time.Microsecond // chip-enable high to first clock edge
	tCWH = 4 * time.Microsecond // chip-enable inactive between sessions
	tCH  = 1 * time.Microsecond // clock high pulse width (tCH=1000ns, tCDH=800ns)
	tCL  = 1 * time.Microsecond // clock low pulse width (tCL=1000ns, tCDD=800ns)
	tDC  = 1 * time.Microsecond // data setup before the rising edge (tDC=200ns)
)

// start opens a transfer session. The pin directions are set on every
// session rather than once at Configure: the chip's internal pull-downs keep
// it disabled while the host pins float, so there is no init to get wrong.
func (d *Device) start() {
	d.ce.Set(false)
	d.ce.ConfigureOutput()

	d.clk.Set(false)
	d.clk.ConfigureOutput()

	d.io.ConfigureOutput()

	d.ce.Set(true)
	d.delay(tCC)
}

// stop closes the session by dropping chip-enable.
func (d *Device) stop() {
	d.ce.Set(false)
	d.delay(tCWH)
}

// writeByte clocks one byte out on the data line, least-significant bit
// first; the chip samples on the rising edge. With release set, the data
// line is switched to input after the final rising edge instead of lowering
// the clock. The datasheet requires releasing the line before the falling
// edge when a read follows, otherwise both ends drive it for a moment. The
// clock is left high in that case, which is what readByte expects.
func (d *Device) writeByte(data uint8, release bool) {
	for i := 0; i < 8; i++ {
		d.io.Set(data&(1<<i) != 0)
		d.delay(tDC)

		d.clk.Set(true)
		d.delay(tCH)

		if release && i == 7 {
			d.io.ConfigureInput()
		} else {
			d.clk.Set(false)
			d.delay(tCL)
		}
	}
}

// readByte clocks one byte in, least-significant bit first. The chip puts
// each bit on the data line at the falling edge, so the line is sampled
// after clocking low. The clock must already be high on entry, which the
// preceding writeByte with release set guarantees.
func (d *Device) readByte() uint8 {
	var data uint8
	for i := 0; i < 8; i++ {
		d.clk.Set(true)
		d.delay(tCH)

		d.clk.Set(false)
		d.delay(tCL)

		if d.io.Get() {
			data |= 1 << i
		}
	}
	return data
}

// burstRead fills buf with the eight clock registers in one session. The
// chip copies all of them to an internal snapshot when the command byte
// lands, so the fields cannot roll over between bytes.
func (d *Device) burstRead(buf *[8]uint8) {
	d.start()
	d.writeByte(RegClockBurstRead, true)
	for i := range buf {
		buf[i] = d.readByte()
	}
	d.stop()
}

// burstWrite replaces all eight clock registers in one session.
func (d *Device) burstWrite(buf *[8]uint8) {
	d.start()
	d.writeByte(RegClockBurstWrite, false)
	for _, b := range buf {
		d.writeByte(b, false)
	}
	d.stop()
}

// readRegister reads a single clock or RAM register. The read flag in the
// address is forced on.
func (d *Device) readRegister(address uint8) uint8 {
	d.start()
	d.writeByte(address|readBit, true)
	data := d.readByte()
	d.stop()
	return data
}

// writeRegister writes a single clock or RAM register. The read flag in the
// address is forced off.
func (d *Device) writeRegister(address, data uint8) {
	d.start()
	d.writeByte(address&^uint8(readBit), false)
	d.writeByte(data, false)
	d.stop()
}
