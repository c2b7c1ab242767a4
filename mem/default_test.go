package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefault_LazyInstall tests that a Heap is installed on first read and
// that subsequent reads return the same mechanism.
func TestDefault_LazyInstall(t *testing.T) {
	d := Default()
	require.NotNil(t, d, "Default should never return nil")
	require.IsType(t, (*Heap)(nil), d, "initial default should be a Heap")

	assert.Equal(t, d, Default(), "repeated reads should return the identical mechanism")
}

// TestSetDefault_SwapAndRestore tests installing and restoring the default.
func TestSetDefault_SwapAndRestore(t *testing.T) {
	counting := NewCounting(NewHeap())

	prev := SetDefault(counting)
	defer SetDefault(prev)

	require.NotNil(t, prev, "previous default should be returned")
	assert.Equal(t, Mechanism(counting), Default(), "installed mechanism should be read back")

	restored := SetDefault(prev)
	assert.Equal(t, Mechanism(counting), restored, "SetDefault should return what it replaced")
	assert.Equal(t, prev, Default())
}

// TestSetDefault_NilRestoresHeap tests the nil fallback.
func TestSetDefault_NilRestoresHeap(t *testing.T) {
	prev := SetDefault(NewCounting(nil))
	defer SetDefault(prev)

	SetDefault(nil)
	assert.IsType(t, (*Heap)(nil), Default(), "nil should restore a Heap default")
}

// TestOr_Fallback tests the constructor fallback rule.
func TestOr_Fallback(t *testing.T) {
	m := NewHeap()
	assert.Equal(t, Mechanism(m), Or(m), "non-nil mechanism should pass through")
	assert.Equal(t, Default(), Or(nil), "nil should fall back to the default")
}
