package ds1302

// Command/address bytes. Bit 7 is always set, bit 6 selects the RAM space
// instead of the clock space, and bit 0 is the read flag. The driver forces
// the read flag itself, so either form of an address may be passed in.
const (
	RegSeconds = 0x80 // Seconds register, bit 7 is the clock-halt flag
	RegMinutes = 0x82 // Minutes register
	RegHours   = 0x84 // Hours register, 12-hour or 24-hour layout
	RegDate    = 0x86 // Day of month register
	RegMonth   = 0x88 // Month register
	RegDay     = 0x8A // Day of week register
	RegYear    = 0x8C // Year register, counted from 2000
	RegEnable  = 0x8E // Control register, bit 7 is write-protect
	RegTrickle = 0x90 // Trickle charger configuration

	RegClockBurstWrite = 0xBE // Command: write all eight clock registers
	RegClockBurstRead  = 0xBF // Command: read all eight clock registers

	RegRAMStart      = 0xC0 // First of the 31 RAM bytes
	RegRAMEnd        = 0xFC // Last of the 31 RAM bytes
	RegRAMBurstWrite = 0xFE // Command: write all RAM bytes
	RegRAMBurstRead  = 0xFF // Command: read all RAM bytes
)

// Bits within the command byte and the clock registers.
const (
	readBit = 1 << 0 // read transfer when set, write when clear
	ramBit  = 1 << 6 // RAM space when set, clock space when clear

	clockHalt    = 1 << 7 // seconds register: oscillator stopped
	hourMode12   = 1 << 7 // hours register: 12-hour layout when set
	hourPM       = 1 << 5 // hours register, 12-hour layout only: PM when set
	writeProtect = 1 << 7 // enable register: registers read-only when set
)
