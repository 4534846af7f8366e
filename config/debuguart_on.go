//go:build !nodebuguart

package config

// DebugUARTEnabled selects real debug UART traffic.
const DebugUARTEnabled = true
