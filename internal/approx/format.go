package approx

import "fmt"

// Floating-point "exact" matches are rarely bit-identical to zero, so error
// display is tiered instead of printed raw.
const (
	exactErrorCutoff = 1e-16
	tinyErrorCutoff  = 1e-8
)

// FormatError renders an approximation error for display, shared by every
// shell: "=0" for effectively exact matches, "<0.00000001" for errors too
// small to print meaningfully, otherwise the value with 8 decimal digits.
func FormatError(err float64) string {
	switch {
	case err < exactErrorCutoff:
		return "=0"
	case err < tinyErrorCutoff:
		return "<0.00000001"
	default:
		return fmt.Sprintf("≈%.8f", err)
	}
}
