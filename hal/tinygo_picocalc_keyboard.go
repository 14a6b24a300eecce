//go:build tinygo && baremetal && picocalc

package hal

import (
	"errors"
	"machine"
	"sync"
	"time"
)

const (
	picoCalcKbdAddr uint16 = 0x1F
	picoCalcKbdCmd         = 0x09
)

// Key codes reported by the keyboard MCU.
const (
	picoCalcKeyLeft  byte = 0xB4
	picoCalcKeyUp    byte = 0xB5
	picoCalcKeyDown  byte = 0xB6
	picoCalcKeyRight byte = 0xB7
)

// FIFO event types.
const (
	picoCalcKeyPressed  byte = 0x01
	picoCalcKeyHold     byte = 0x02
	picoCalcKeyReleased byte = 0x03
)

type i2cKeyboard struct {
	i2c   *machine.I2C
	write [1]byte
	read  [2]byte

	mu   sync.Mutex
	held [NumButtons]bool
}

func initI2CKeyboard() (*i2cKeyboard, error) {
	write := [1]byte{picoCalcKbdCmd}

	// Prefer I2C1 (PicoCalc wiring); some TinyGo targets expose only I2C0.
	for _, bus := range []*machine.I2C{machine.I2C1, machine.I2C0} {
		if bus == nil {
			continue
		}
		for _, freq := range []uint32{100_000, 400_000} {
			if err := bus.Configure(machine.I2CConfig{
				SCL:       machine.GP7,
				SDA:       machine.GP6,
				Frequency: freq,
			}); err != nil {
				continue
			}

			k := &i2cKeyboard{i2c: bus, write: write}

			// The keyboard MCU can be slow to respond after power-up.
			const probeTries = 50
			for i := 0; i < probeTries; i++ {
				if err := k.i2c.Tx(picoCalcKbdAddr, k.write[:], k.read[:]); err == nil {
					return k, nil
				}
				time.Sleep(10 * time.Millisecond)
			}
		}
	}

	return nil, errors.New("I2C unavailable")
}

// poll drains one FIFO event and updates the held set.
func (k *i2cKeyboard) poll() {
	if err := k.i2c.Tx(picoCalcKbdAddr, k.write[:], k.read[:]); err != nil {
		return
	}
	event, code := k.read[0], k.read[1]
	if event == 0 && code == 0 {
		return
	}

	b, ok := picoCalcButton(code)
	if !ok {
		return
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	switch event {
	case picoCalcKeyPressed, picoCalcKeyHold:
		k.held[b] = true
	case picoCalcKeyReleased:
		k.held[b] = false
	}
}

func (k *i2cKeyboard) isHeld(b Button) bool {
	if b >= NumButtons {
		return false
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.held[b]
}

func picoCalcButton(code byte) (Button, bool) {
	switch code {
	case picoCalcKeyUp:
		return ButtonUp, true
	case picoCalcKeyDown:
		return ButtonDown, true
	case picoCalcKeyLeft:
		return ButtonLeft, true
	case picoCalcKeyRight:
		return ButtonRight, true
	case 'q', 'Q':
		return ButtonL, true
	case 'e', 'E':
		return ButtonR, true
	default:
		return 0, false
	}
}
