//go:build tinygo && baremetal

package hal

import "machine"

// uartLogger writes CRLF-terminated lines, which serial terminals expect.
// UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
type uartLogger struct {
	uart *machine.UART
}

func newUARTLogger() *uartLogger {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	return &uartLogger{uart: uart}
}

func (l *uartLogger) WriteLineString(s string) {
	_, _ = l.uart.Write([]byte(s))
	_, _ = l.uart.Write(crlf)
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	_, _ = l.uart.Write(b)
	_, _ = l.uart.Write(crlf)
}

var crlf = []byte{'\r', '\n'}
