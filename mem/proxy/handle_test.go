package proxy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/memkit/mem"
)

// TestHandle_Construction tests default, explicit, and nil-fallback binding.
func TestHandle_Construction(t *testing.T) {
	assert.Equal(t, mem.Default(), NewHandle().Mechanism(), "NewHandle should bind the process default")

	m := mem.NewCounting(nil)
	h := HandleFor(m)
	assert.True(t, h.Is(m), "HandleFor should bind the given mechanism")

	assert.Equal(t, mem.Default(), HandleFor(nil).Mechanism(), "nil mechanism should fall back to the default")
}

// TestHandle_EraseOverRoundTrip tests conversion between the typed and
// type-erased forms.
func TestHandle_EraseOverRoundTrip(t *testing.T) {
	m := mem.NewCounting(nil)

	a := For[int](m)
	h := a.Erase()
	require.Equal(t, a.Mechanism(), h.Mechanism(), "Erase must preserve the mechanism")

	b := Over[float64](h)
	assert.Equal(t, mem.Mechanism(m), b.Mechanism(), "Over must preserve the mechanism")
	assert.True(t, Same(a, b), "the round trip must stay Same throughout")
	assert.True(t, Same(a, h), "Same compares handles and proxies alike")
}

// TestHandle_Equality tests that handle equality is mechanism identity.
func TestHandle_Equality(t *testing.T) {
	m1 := mem.NewCounting(nil)
	m2 := mem.NewCounting(nil)

	h1 := HandleFor(m1)
	h2 := HandleFor(m2)
	h3 := h1

	assert.True(t, h1 != h2, "handles over distinct mechanisms must differ")
	assert.True(t, h1 == h3, "a copied handle must compare equal")
	assert.False(t, Same(h1, h2))
	assert.True(t, Same(h1, h3))
}
