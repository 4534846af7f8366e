//go:build nodebuguart

package config

// DebugUARTEnabled is false: the debug transport compiles to no-ops.
const DebugUARTEnabled = false
