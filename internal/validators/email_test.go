package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "lena@example.com", NormalizeEmail("  Lena@Example.COM "))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestIsEmailSyntaxValid(t *testing.T) {
	assert.True(t, IsEmailSyntaxValid("lena@example.com"))
	assert.True(t, IsEmailSyntaxValid("lena+tag@sub.example.com"))

	assert.False(t, IsEmailSyntaxValid("lena"))
	assert.False(t, IsEmailSyntaxValid("lena@"))
	assert.False(t, IsEmailSyntaxValid(""))
}
