package usedset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/namepool/model/types"
)

func TestSet_Basics(t *testing.T) {
	s := New(13)
	assert.Equal(t, 13, s.Size())
	assert.Equal(t, 0, s.Population())
	assert.Len(t, s.Bytes(), 2)

	s.Set(0)
	s.Set(9)
	s.Set(9)
	s.Set(12)
	s.Set(13) // out of range, ignored
	s.Set(-1)

	assert.True(t, s.Get(0))
	assert.True(t, s.Get(9))
	assert.False(t, s.Get(1))
	assert.False(t, s.Get(13))
	assert.Equal(t, 3, s.Population())
	assert.Equal(t, 10, s.Remaining())
	assert.Equal(t, []byte{0x01, 0x12}, s.Bytes())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 10, 11}, s.UnusedIndices())
}

func TestFromBytes(t *testing.T) {
	var testCases = []struct {
		description string
		size        int
		raw         []byte
		expectUsed  int
		expectErr   bool
	}{
		{description: "empty universe", size: 0, raw: []byte{}, expectUsed: 0},
		{description: "exact bytes", size: 16, raw: []byte{0xFF, 0x01}, expectUsed: 9},
		{description: "stray tail bits ignored", size: 10, raw: []byte{0x00, 0xFC}, expectUsed: 0},
		{description: "multi word", size: 80, raw: []byte{1, 0, 0, 0, 0, 0, 0, 0x80, 3, 0}, expectUsed: 4},
		{description: "too short", size: 17, raw: []byte{0, 0}, expectErr: true},
		{description: "too long", size: 8, raw: []byte{0, 0}, expectErr: true},
	}
	for _, testCase := range testCases {
		actual, err := FromBytes(testCase.size, testCase.raw)
		if testCase.expectErr {
			require.Error(t, err, testCase.description)
			assert.Equal(t, types.KindInternal, types.KindOf(err), testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expectUsed, actual.Population(), testCase.description)
		assert.Equal(t, testCase.raw, actual.Bytes(), testCase.description)
	}
}

func TestSet_Clone(t *testing.T) {
	s := New(100)
	s.Set(5)
	clone := s.Clone()
	clone.Set(6)
	assert.False(t, s.Get(6))
	assert.Equal(t, 1, s.Population())
	assert.Equal(t, 2, clone.Population())
	assert.False(t, s.Equal(clone))

	s.Set(6)
	assert.True(t, s.Equal(clone))
}

func TestSet_FullUniverse(t *testing.T) {
	s := New(100)
	for i := 0; i < 100; i++ {
		s.Set(i)
	}
	assert.Equal(t, 0, s.Remaining())
	assert.Empty(t, s.UnusedIndices())
	assert.Len(t, s.Bytes(), 13)
}
