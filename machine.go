//go:build tinygo
// +build tinygo

package ds1302

import "machine"

type machinePin struct {
	pin machine.Pin
}

// MachinePin wraps a machine.Pin so it can be handed to New. Any three GPIO
// pins of the board can be used.
func MachinePin(p machine.Pin) Pin {
	return machinePin{pin: p}
}

func (m machinePin) ConfigureInput() {
	m.pin.Configure(machine.PinConfig{Mode: machine.PinInput})
}

func (m machinePin) ConfigureOutput() {
	m.pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
}

func (m machinePin) Set(level bool) {
	m.pin.Set(level)
}

func (m machinePin) Get() bool {
	return m.pin.Get()
}
