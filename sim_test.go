package ds1302

import "time"

// A pin-level model of the chip, driven entirely by edges on the fake pins.
// It samples the data line on rising clock edges and shifts read data out on
// falling edges, which is exactly the contract the driver has to meet, so
// the device tests exercise the real bit sequencing end to end.

type simChip struct {
	io  *simPin
	clk *simPin
	ce  *simPin

	clock   [8]uint8 // seconds..year, enable - burst order
	trickle uint8
	ram     [31]uint8

	// wpStuck makes the enable register read back protected no matter what
	// is written, modelling a chip that refuses to unprotect.
	wpStuck bool

	sessions  int
	inSession bool

	bitCount int
	shift    uint8
	haveCmd  bool
	writeCmd uint8

	reading    bool
	burst      bool
	byteIndex  int
	outByte    uint8
	outBit     int
	snapshot   [8]uint8
	driveLevel bool
}

func newSimChip() *simChip {
	c := &simChip{}
	c.io = &simPin{chip: c, role: 'i'}
	c.clk = &simPin{chip: c, role: 'c'}
	c.ce = &simPin{chip: c, role: 'e'}
	return c
}

func (c *simChip) wp() bool {
	return c.wpStuck || c.clock[7]&writeProtect != 0
}

func (c *simChip) sessionStart() {
	c.inSession = true
	c.sessions++
	c.bitCount = 0
	c.shift = 0
	c.haveCmd = false
	c.reading = false
	c.burst = false
	c.byteIndex = 0
	c.outBit = 0
}

func (c *simChip) sampleIO() bool {
	if c.io.output {
		return c.io.level
	}
	return c.driveLevel
}

func (c *simChip) risingEdge() {
	if !c.inSession || c.reading {
		return
	}
	if c.sampleIO() {
		c.shift |= 1 << c.bitCount
	}
	c.bitCount++
	if c.bitCount == 8 {
		b := c.shift
		c.bitCount = 0
		c.shift = 0
		if !c.haveCmd {
			c.latchCommand(b)
		} else {
			c.dataByte(b)
		}
	}
}

func (c *simChip) fallingEdge() {
	if !c.inSession || !c.reading {
		return
	}
	c.driveLevel = c.outByte&(1<<c.outBit) != 0
	c.outBit++
	if c.outBit == 8 {
		c.outBit = 0
		if c.burst {
			c.byteIndex++
			if c.byteIndex < 8 {
				c.outByte = c.snapshot[c.byteIndex]
			}
		}
	}
}

func (c *simChip) latchCommand(cmd uint8) {
	c.haveCmd = true
	switch cmd {
	case RegClockBurstRead:
		c.reading = true
		c.burst = true
		c.snapshot = c.clock
		if c.wpStuck {
			c.snapshot[7] = writeProtect
		}
		c.byteIndex = 0
		c.outByte = c.snapshot[0]
	case RegClockBurstWrite:
		c.burst = true
		c.byteIndex = 0
	default:
		if cmd&readBit != 0 {
			c.reading = true
			c.outByte = c.readAddr(cmd &^ uint8(readBit))
		} else {
			c.writeCmd = cmd
		}
	}
}

func (c *simChip) dataByte(b uint8) {
	if c.burst {
		if c.byteIndex < 8 && !c.wp() {
			c.clock[c.byteIndex] = b
		}
		c.byteIndex++
		return
	}
	c.writeAddr(c.writeCmd, b)
}

func (c *simChip) readAddr(addr uint8) uint8 {
	switch {
	case addr == RegEnable:
		if c.wpStuck {
			return writeProtect
		}
		return c.clock[7]
	case addr >= RegSeconds && addr <= RegYear:
		return c.clock[(addr-RegSeconds)/2]
	case addr == RegTrickle:
		return c.trickle
	case addr >= RegRAMStart && addr <= RegRAMEnd:
		return c.ram[(addr-RegRAMStart)/2]
	}
	return 0
}

func (c *simChip) writeAddr(addr, b uint8) {
	if addr == RegEnable {
		if !c.wpStuck {
			c.clock[7] = b
		}
		return
	}
	if c.wp() {
		return
	}
	switch {
	case addr >= RegSeconds && addr <= RegYear:
		c.clock[(addr-RegSeconds)/2] = b
	case addr == RegTrickle:
		c.trickle = b
	case addr >= RegRAMStart && addr <= RegRAMEnd:
		c.ram[(addr-RegRAMStart)/2] = b
	}
}

// simPin wires one line of the interface to the chip model. Clock and
// chip-enable edges drive the state machine; the data line returns whatever
// the chip drives once the host releases it.
type simPin struct {
	chip   *simChip
	role   rune // 'i' data, 'c' clock, 'e' chip-enable
	level  bool
	output bool
}

func (p *simPin) ConfigureInput()  { p.output = false }
func (p *simPin) ConfigureOutput() { p.output = true }

func (p *simPin) Set(level bool) {
	if p.level == level {
		return
	}
	p.level = level
	switch p.role {
	case 'c':
		if level {
			p.chip.risingEdge()
		} else {
			p.chip.fallingEdge()
		}
	case 'e':
		if level {
			p.chip.sessionStart()
		} else {
			p.chip.inSession = false
		}
	}
}

func (p *simPin) Get() bool {
	if p.role == 'i' && !p.output {
		return p.chip.driveLevel
	}
	return p.level
}

// deadPin models a wire with no chip on the other end: it reads a constant
// level no matter what was clocked out.
type deadPin struct {
	level bool
}

func (p *deadPin) ConfigureInput()  {}
func (p *deadPin) ConfigureOutput() {}
func (p *deadPin) Set(bool)         {}
func (p *deadPin) Get() bool        { return p.level }

func newSimDevice(chip *simChip) *Device {
	d := New(chip.io, chip.clk, chip.ce)
	err := d.Configure(Config{Delay: func(time.Duration) {}})
	if err != nil {
		panic(err)
	}
	return d
}
