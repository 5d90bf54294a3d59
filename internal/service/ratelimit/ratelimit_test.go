package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowConsumesBucket(t *testing.T) {
	l := New()

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("client-a", 3, 0))
	}
	assert.False(t, l.Allow("client-a", 3, 0))
}

func TestAllowKeysAreIndependent(t *testing.T) {
	l := New()

	for i := 0; i < 3; i++ {
		l.Allow("client-a", 3, 0)
	}
	assert.False(t, l.Allow("client-a", 3, 0))
	assert.True(t, l.Allow("client-b", 3, 0))
}
