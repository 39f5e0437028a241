package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "foo@bar.com", NormalizeEmail("  Foo@Bar.COM "))
	assert.Equal(t, "foo@bar.com", NormalizeEmail("foo@bar.com"))
	assert.Equal(t, "", NormalizeEmail("   "))
}
