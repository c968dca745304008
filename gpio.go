package ds1302

// Pin is one GPIO line of the 3-wire interface. The data line is switched
// between output and input mid-transfer, so direction control is part of the
// contract; the clock and chip-enable lines only ever use ConfigureOutput.
type Pin interface {
	// ConfigureInput switches the line to a high-impedance input.
	ConfigureInput()
	// ConfigureOutput switches the line to a driven output.
	ConfigureOutput()
	// Set drives the line high (true) or low (false).
	Set(level bool)
	// Get reads the current level of the line.
	Get() bool
}
