package ndslice

// DiagnosticCode classifies a non-fatal setup condition.
type DiagnosticCode uint8

const (
	// DiagDegenerateRange reports a data-derived range that was widened.
	DiagDegenerateRange DiagnosticCode = iota + 1
	// DiagConstantColumn reports a dimension whose column holds one value.
	DiagConstantColumn
	// DiagClampedRows reports rows outside explicit edges that were placed
	// in the nearest edge bin.
	DiagClampedRows
)

func (c DiagnosticCode) String() string {
	switch c {
	case DiagDegenerateRange:
		return "degenerate_range"
	case DiagConstantColumn:
		return "constant_column"
	case DiagClampedRows:
		return "clamped_rows"
	default:
		return "unknown"
	}
}

// Diagnostic is a warning produced by Setup. Setup still succeeds.
type Diagnostic struct {
	Code      DiagnosticCode
	Dimension string
	Message   string
}

func (d Diagnostic) String() string {
	return d.Code.String() + ": " + d.Message
}
