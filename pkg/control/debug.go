package control

// DebugChecks controls how invariant violations are handled.
// When true, violations panic so contract bugs surface immediately during
// development. When false, violations are reported to the errors handler
// and ignored.
var DebugChecks = false

// SetDebugChecks enables or disables fatal invariant checking.
func SetDebugChecks(enabled bool) {
	DebugChecks = enabled
}
