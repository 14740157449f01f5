package output

import "sync"

// Global printer instance for convenience functions
var (
	globalPrinter *Printer
	globalMu      sync.RWMutex
)

func init() {
	globalPrinter = NewPrinter()
}

// SetGlobalPrinter sets the global printer instance.
func SetGlobalPrinter(printer *Printer) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalPrinter = printer
}

// GetGlobalPrinter returns the current global printer instance.
func GetGlobalPrinter() *Printer {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalPrinter
}

// Print outputs text using the global printer.
func Print(text string) {
	GetGlobalPrinter().Print(text)
}

// Printf outputs formatted text using the global printer.
func Printf(format string, args ...interface{}) {
	GetGlobalPrinter().Printf(format, args...)
}

// Println outputs text with newline using the global printer.
func Println(text string) {
	GetGlobalPrinter().Println(text)
}

// Error outputs error text using the global printer.
func Error(text string) {
	GetGlobalPrinter().Error(text)
}
