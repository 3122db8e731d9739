package universe

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/namepool/model/types"
)

// hundred returns a universe of exactly 100 names: 5+5 given names x 10 families.
func hundred(options ...Option) *Universe {
	var families []string
	for i := 0; i < 10; i++ {
		families = append(families, fmt.Sprintf("F%d", i))
	}
	return New([]string{"A0", "A1", "A2", "A3", "A4"}, []string{"B0", "B1", "B2", "B3", "B4"}, families, options...)
}

func TestNew_Order(t *testing.T) {
	u := New([]string{"Raj", "Om"}, []string{"Isha"}, []string{"Shah", "Vyas"})
	require.Equal(t, 6, u.Size())
	expect := []string{"Raj Shah", "Raj Vyas", "Om Shah", "Om Vyas", "Isha Shah", "Isha Vyas"}
	for i, name := range expect {
		actual, err := u.NameAt(i)
		require.NoError(t, err)
		assert.Equal(t, name, actual)
	}
}

func TestNew_DropsRepeats(t *testing.T) {
	u := New([]string{"Jaya", "Raj", "Raj"}, []string{"Jaya"}, []string{"Shah"})
	assert.Equal(t, 2, u.Size())
	name, _ := u.NameAt(1)
	assert.Equal(t, "Raj Shah", name)
}

func TestUniverse_NameAt_OutOfRange(t *testing.T) {
	u := hundred()
	for _, index := range []int{-1, 100, 1000} {
		_, err := u.NameAt(index)
		require.Error(t, err)
		assert.Equal(t, types.KindOutOfRange, types.KindOf(err))
	}
}

func TestFingerprint(t *testing.T) {
	// empty list hashes to the FNV-1a 64 offset basis
	assert.Equal(t, uint64(14695981039346656037), Fingerprint(nil))
	assert.NotEqual(t, Fingerprint([]string{"ab", "c"}), Fingerprint([]string{"a", "bc"}))
	assert.NotEqual(t, Fingerprint([]string{"a", "b"}), Fingerprint([]string{"b", "a"}))
	assert.Equal(t, Fingerprint([]string{"a", "b"}), Fingerprint([]string{"a", "b"}))

	// single byte "a" then separator, computed by hand
	const prime = 1099511628211
	expect := uint64(14695981039346656037)
	for _, b := range []byte{'a', 0xFF} {
		expect ^= uint64(b)
		expect *= prime
	}
	assert.Equal(t, expect, Fingerprint([]string{"a"}))
}

func TestDefault(t *testing.T) {
	u := Default()
	assert.Same(t, u, Default())
	assert.Greater(t, u.Size(), 70000)
	assert.Equal(t, DefaultMaxBatch, u.MaxBatch())
	assert.Equal(t, Fingerprint(u.names), u.Fingerprint())
	seen := map[string]bool{}
	for _, name := range u.names {
		require.False(t, seen[name], name)
		seen[name] = true
	}

	custom := NewDefault(WithMaxBatch(10))
	assert.Equal(t, u.Fingerprint(), custom.Fingerprint())
	assert.Equal(t, 10, custom.MaxBatch())
}

func TestUniverse_Sample(t *testing.T) {
	u := hundred(WithMaxBatch(50))
	var testCases = []struct {
		description string
		count       int
		expectLen   int
	}{
		{description: "zero", count: 0, expectLen: 0},
		{description: "negative", count: -3, expectLen: 0},
		{description: "above max batch", count: 51, expectLen: 0},
		{description: "one", count: 1, expectLen: 1},
		{description: "max batch", count: 50, expectLen: 50},
	}
	for _, testCase := range testCases {
		actual := u.Sample(testCase.count, rand.New(rand.NewSource(7)))
		assert.Len(t, actual, testCase.expectLen, testCase.description)
		seen := map[string]bool{}
		for _, name := range actual {
			assert.False(t, seen[name], testCase.description)
			seen[name] = true
		}
	}

	// count above size is rejected even if max batch allows it
	assert.Empty(t, hundred().Sample(101, nil))
	assert.Len(t, hundred().Sample(100, nil), 100)
}

func TestUniverse_Sample_Deterministic(t *testing.T) {
	u := hundred()
	first := u.Sample(10, rand.New(rand.NewSource(42)))
	second := u.Sample(10, rand.New(rand.NewSource(42)))
	assert.Equal(t, first, second)

	seeded := hundred(WithRandom(func() *rand.Rand { return rand.New(rand.NewSource(42)) }))
	assert.Equal(t, first, seeded.Sample(10, nil))
}
