package identity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	cases := []string{"Jane@X.com", "  admin@etec.lk ", "A@B.com", "mixed.Case@Example.COM"}
	for _, in := range cases {
		assert.Equal(t, strings.ToLower(strings.TrimSpace(in)), Normalize(in))
	}
}

func TestNormalizeRegNo(t *testing.T) {
	cases := []string{"et-0001", " Et-0002 ", "ET-0003"}
	for _, in := range cases {
		assert.Equal(t, strings.ToUpper(strings.TrimSpace(in)), Normalize(in))
	}
}

func TestNormalizeEmpty(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   "))
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, in := range []string{"Jane@X.com", "et-0001", "", "  spaced@mail.org  "} {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("jane@x.com"))
	assert.True(t, IsEmail("a@b.co"))
	assert.False(t, IsEmail("not-an-email"))
	assert.False(t, IsEmail("sp ace@x.com"))
	assert.False(t, IsEmail("jane@x"))
}
