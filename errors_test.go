package ati

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexErrorMessage(t *testing.T) {
	err := &IndexError{Index: -4, Len: 3}
	assert.Equal(t, "index out of range [-4] with length 3", err.Error())

	err = &IndexError{Index: 3, Len: 3}
	assert.Equal(t, "index out of range [3] with length 3", err.Error())

	err = &IndexError{BigIndex: math.MaxUint64, Big: true, Len: 2}
	assert.Equal(t, "index out of range [18446744073709551615] with length 2", err.Error())
}

func TestIsOutOfRange(t *testing.T) {
	_, err := TryAt([]int{1, 2}, 5)
	require.Error(t, err)

	assert.True(t, IsOutOfRange(err))
	assert.True(t, IsOutOfRange(fmt.Errorf("access failed: %w", err)))
	assert.False(t, IsOutOfRange(errors.New("access failed")))
	assert.False(t, IsOutOfRange(nil))
}

// TestIndexErrorGolden pins the rendered message for every failure
// shape against a golden file. Regenerate with:
//
//	go test . -update
func TestIndexErrorGolden(t *testing.T) {
	fail := func(length int, i int64) error {
		_, err := Offset(length, i)
		return err
	}

	cases := []struct {
		name string
		err  error
	}{
		{"past end", fail(3, 3)},
		{"before start", fail(3, -4)},
		{"empty forward", fail(0, 0)},
		{"empty backward", fail(0, -1)},
		{"max int64", fail(2, math.MaxInt64)},
		{"min int64", fail(2, math.MinInt64)},
		{"max uint64", func() error { _, err := Offset(2, uint64(math.MaxUint64)); return err }()},
	}

	var buf bytes.Buffer
	for _, c := range cases {
		require.Error(t, c.err, c.name)
		fmt.Fprintf(&buf, "%s: %s\n", c.name, c.err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "index_errors", buf.Bytes())
}
