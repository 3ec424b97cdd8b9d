package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaxIDField_Keystrokes(t *testing.T) {
	f := NewTaxIDField()
	typed := ""
	want := []string{
		"5", "52", "529", "529.9", "529.98", "529.982", "529.982.2",
		"529.982.24", "529.982.247", "529.982.247-2", "529.982.247-25",
	}
	for i, c := range "52998224725" {
		typed = f.Value() + string(c)
		assert.Equal(t, want[i], f.Set(typed))
	}
	assert.Equal(t, "529.982.247-25", f.Value())
	assert.Equal(t, "52998224725", f.Digits())

	assert.Equal(t, "529.982.247-25", f.Set(typed+"9"), "extra digits are dropped")
}

func TestPostalCodeField_PasteAndDelete(t *testing.T) {
	f := NewPostalCodeField()
	assert.Equal(t, "01310-930", f.Set("CEP: 01310 930"))
	assert.Equal(t, "01310930", f.Digits())

	// deleting the last digit leaves a dangling hyphen which the mask removes
	assert.Equal(t, "01310", f.Set("01310-"))
	assert.Equal(t, "", f.Set(""))
	assert.Equal(t, "", f.Digits())
}

func TestNewField_NilMaskIsIdentity(t *testing.T) {
	f := NewField(nil)
	assert.Equal(t, "abc 1", f.Set("abc 1"))
	assert.Equal(t, "1", f.Digits())
}
