package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratePaymentReference(t *testing.T) {
	ref := GeneratePaymentReference(83.52)

	assert.Regexp(t, regexp.MustCompile(`^qr_payment_[0-9a-f]{8}_83$`), ref)

	// tokens differ between calls
	assert.NotEqual(t, ref, GeneratePaymentReference(83.52))
}

func TestPtrHelpers(t *testing.T) {
	s := StrPtr("x")
	assert.Equal(t, "x", *s)
	assert.Equal(t, "x", PtrString(s))
	assert.Equal(t, "", PtrString(nil))
	assert.Equal(t, 3, *IntPtr(3))
}
