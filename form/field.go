package form

import (
	"github.com/vortex-fintech/brinput/digits"
	"github.com/vortex-fintech/brinput/postalcode"
	"github.com/vortex-fintech/brinput/taxid"
)

// Field holds the masked value of one input. The caller feeds every change
// through Set and renders Value; there is no subscription or re-render loop.
// A Field is not safe for concurrent use.
type Field struct {
	mask  func(string) string
	value string
}

func NewField(mask func(string) string) *Field {
	if mask == nil {
		mask = func(s string) string { return s }
	}
	return &Field{mask: mask}
}

func NewTaxIDField() *Field      { return NewField(taxid.Mask) }
func NewPostalCodeField() *Field { return NewField(postalcode.Mask) }

// Set masks raw, stores the result and returns it.
func (f *Field) Set(raw string) string {
	f.value = f.mask(raw)
	return f.value
}

func (f *Field) Value() string { return f.value }

// Digits returns the stored value with separators removed.
func (f *Field) Digits() string { return digits.Only(f.value) }
