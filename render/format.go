package render

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders numbers with locale digit grouping
type Formatter struct {
	printer *message.Printer
}

// NewFormatter creates a formatter for tag
func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{printer: message.NewPrinter(tag)}
}

// Int formats n with thousands separators
func (f *Formatter) Int(n int64) string {
	return f.printer.Sprintf("%d", n)
}

// Round formats v rounded half away from zero
func (f *Formatter) Round(v float64) string {
	return f.Int(int64(math.Round(v)))
}

// Float formats v with two decimals
func (f *Formatter) Float(v float64) string {
	return f.printer.Sprintf("%.2f", v)
}

// Ratio formats "cur/max" with both sides rounded
func (f *Formatter) Ratio(cur, limit float64) string {
	return f.Round(cur) + "/" + f.Round(limit)
}
