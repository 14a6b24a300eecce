//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

// Screen geometry of the handheld's 8-bit bitmap mode.
const (
	ScreenWidth  = 240
	ScreenHeight = 160
)

// tinyGoVBlank approximates the panel refresh with a 60 Hz ticker.
type tinyGoVBlank struct {
	t *time.Ticker
}

func newTinyGoVBlank() *tinyGoVBlank {
	return &tinyGoVBlank{t: time.NewTicker(time.Second / 60)}
}

func (v *tinyGoVBlank) WaitForVBlank() { <-v.t.C }

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

// UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
func newUARTLogger() *uartLogger {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	return &uartLogger{uart: uart}
}
