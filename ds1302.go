// Package ds1302 implements a driver for the DS1302 Real-Time Clock.
//
// The DS1302 speaks a proprietary 3-wire protocol: a bidirectional data
// line, a clock line and a chip-enable line. It is not I2C, not SPI and not
// 1-Wire, so the driver bit-bangs the protocol itself over any three GPIO
// pins. Time fields always move through the chip's burst mode, which
// transfers all eight clock registers against one internal snapshot so a
// digit cannot roll over halfway through a transfer.
//
// The chip's trickle charger is not configured beyond forcing it off, and
// the 31 RAM bytes get no dedicated API (the raw register calls can reach
// them one byte at a time).
//
// Datasheet: https://www.analog.com/media/en/technical-documentation/data-sheets/DS1302.pdf
package ds1302

import "time"

// Datetime is the broken-down calendar record held by the clock registers.
type Datetime struct {
	Seconds uint8 // 0-59
	Minutes uint8 // 0-59
	Hour    uint8 // 0-23
	Weekday uint8 // 1-7, day 1 is whatever the application anchors it to
	Day     uint8 // 1-31
	Month   uint8 // 1-12
	Year    uint8 // years since 1970; the chip stores 2000-2099
}

// Device is a DS1302 on three GPIO pins. Operations are blocking bit-banged
// transfers with busy-wait delays and must not be invoked concurrently; the
// driver does no locking of its own.
type Device struct {
	io    Pin
	clk   Pin
	ce    Pin
	delay func(time.Duration)

	configured bool
}

// Config holds the optional settings for Configure.
type Config struct {
	// Delay busy-waits for at least the given duration between pin edges.
	// Left nil, time.Sleep is used, which is fine on microcontrollers where
	// a microsecond sleep spins. Longer delays only make transfers slower;
	// shorter ones violate the datasheet.
	Delay func(time.Duration)
}

// New creates a driver from the three lines of the interface: data, clock
// and chip-enable. Configure must be called before any transfer.
func New(io, clk, ce Pin) *Device {
	return &Device{
		io:  io,
		clk: clk,
		ce:  ce,
	}
}

// Configure binds the driver to its pins. The pins themselves are not
// touched here: every session sets directions from scratch, and until then
// the chip's internal pull-downs keep it disabled.
func (d *Device) Configure(cfg Config) error {
	if d.io == nil || d.clk == nil || d.ce == nil {
		return ErrNotConfigured
	}
	d.delay = cfg.Delay
	if d.delay == nil {
		d.delay = time.Sleep
	}
	d.configured = true
	return nil
}

// ChipPresent reports whether the driver has been bound to pins. It is not
// a live probe of the chip; ReadTime returning ErrNoResponse is the closest
// thing to one.
func (d *Device) ChipPresent() bool {
	return d.configured
}

// ReadTime returns the calendar record from the clock registers, read in a
// single burst.
func (d *Device) ReadTime() (Datetime, error) {
	if !d.configured {
		return Datetime{}, ErrNotConfigured
	}
	var buf [8]uint8
	d.burstRead(&buf)
	if floating(buf[:]) {
		return Datetime{}, ErrNoResponse
	}
	return decodeClock(buf), nil
}

// WriteTime replaces the clock registers with the given record in a single
// burst. Write-protect is cleared first (and verified), the trickle charger
// is forced off, and the written image has the clock-halt flag clear, so the
// oscillator runs afterwards.
func (d *Device) WriteTime(t Datetime) error {
	if !d.configured {
		return ErrNotConfigured
	}
	if !valid(t) {
		return ErrInvalidTime
	}

	d.writeRegister(RegEnable, 0x00)
	if d.readRegister(RegEnable)&writeProtect != 0 {
		return ErrWriteProtected
	}
	d.writeRegister(RegTrickle, 0x00)

	buf := encodeClock(t)
	d.burstWrite(&buf)
	return nil
}

// Now returns the current time. The chip keeps no zone; the result is UTC
// by convention, matching Set.
func (d *Device) Now() (time.Time, error) {
	t, err := d.ReadTime()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(1970+int(t.Year), time.Month(t.Month), int(t.Day),
		int(t.Hour), int(t.Minutes), int(t.Seconds), 0, time.UTC), nil
}

// Set writes the given time to the chip, truncated to whole seconds. Times
// outside the chip's 2000-2099 range return ErrInvalidTime.
func (d *Device) Set(t time.Time) error {
	t = t.UTC()
	year := t.Year() - 1970
	if year < 0 || year > 0xFF {
		return ErrInvalidTime
	}
	return d.WriteTime(Datetime{
		Seconds: uint8(t.Second()),
		Minutes: uint8(t.Minute()),
		Hour:    uint8(t.Hour()),
		Weekday: uint8(t.Weekday()) + 1, // anchor day 1 on Sunday
		Day:     uint8(t.Day()),
		Month:   uint8(t.Month()),
		Year:    uint8(year),
	})
}

// Halt writes zero to the enable register, clearing write-protect. Despite
// the name it does not set the clock-halt flag in the seconds register, so
// the oscillator keeps running. Use Halted to inspect the actual flag.
func (d *Device) Halt() error {
	if !d.configured {
		return ErrNotConfigured
	}
	d.writeRegister(RegEnable, 0x00)
	return nil
}

// Halted reports whether the oscillator is stopped, from the clock-halt
// flag in the seconds register.
func (d *Device) Halted() (bool, error) {
	if !d.configured {
		return false, ErrNotConfigured
	}
	return d.readRegister(RegSeconds)&clockHalt != 0, nil
}

// ReadRegister reads one clock or RAM register. The read flag in the
// address is forced, so RegSeconds and RegSeconds|1 behave the same.
func (d *Device) ReadRegister(address uint8) (uint8, error) {
	if !d.configured {
		return 0, ErrNotConfigured
	}
	return d.readRegister(address), nil
}

// WriteRegister writes one clock or RAM register. Time fields should go
// through WriteTime instead, which transfers them atomically; this call is
// for the enable and trickle registers and the RAM bytes.
func (d *Device) WriteRegister(address, data uint8) error {
	if !d.configured {
		return ErrNotConfigured
	}
	d.writeRegister(address, data)
	return nil
}

// valid reports whether every field of t fits its register.
func valid(t Datetime) bool {
	return t.Seconds <= 59 &&
		t.Minutes <= 59 &&
		t.Hour <= 23 &&
		t.Weekday >= 1 && t.Weekday <= 7 &&
		t.Day >= 1 && t.Day <= 31 &&
		t.Month >= 1 && t.Month <= 12 &&
		t.Year >= yearOffset && t.Year <= yearOffset+99
}

// floating reports whether a burst image looks like an undriven data line
// rather than clock data. An absent or unpowered chip leaves the line to
// the host's pull resistors, which read as a constant level on every bit. A
// real image can never be uniform: a running clock has month and date of at
// least one, and 0xFF is not valid BCD in any register.
func floating(buf []uint8) bool {
	for _, b := range buf {
		if b != buf[0] {
			return false
		}
	}
	return buf[0] == 0x00 || buf[0] == 0xFF
}
