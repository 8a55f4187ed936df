// FILE: lixenwraith/natsort/sort_test.go
package natsort

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSorted(t *testing.T) {
	items := []string{"num5.10", "num-3", "num5.3", "num2"}

	t.Run("Float", func(t *testing.T) {
		out, err := Sorted(items, DefaultOptions(), false)
		require.NoError(t, err)
		assert.Equal(t, []string{"num-3", "num2", "num5.10", "num5.3"}, out)
		assert.Equal(t, []string{"num5.10", "num-3", "num5.3", "num2"}, items, "input must not be modified")
	})

	t.Run("Version", func(t *testing.T) {
		assert.Equal(t, []string{"num2", "num5.3", "num5.10", "num-3"}, VersionSorted(items, false))
		assert.Equal(t,
			[]string{"num3.4.1", "num3.4.2", "num4.0.2"},
			VersionSorted([]string{"num4.0.2", "num3.4.1", "num3.4.2"}, false))
	})

	t.Run("Reverse", func(t *testing.T) {
		out, err := Sorted(items, DefaultOptions(), true)
		require.NoError(t, err)
		assert.Equal(t, []string{"num5.3", "num5.10", "num2", "num-3"}, out)
	})

	t.Run("StableUnderReverse", func(t *testing.T) {
		in := []string{"a01", "a1", "b"}
		out, err := Sorted(in, DefaultOptions(), false)
		require.NoError(t, err)
		assert.Equal(t, []string{"a01", "a1", "b"}, out)

		out, err = Sorted(in, DefaultOptions(), true)
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "a01", "a1"}, out)
	})

	t.Run("Empty", func(t *testing.T) {
		out, err := Sorted(nil, DefaultOptions(), false)
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("InvalidOptions", func(t *testing.T) {
		_, err := Sorted(items, Options{NumberKind: NumberKind(3)}, false)
		assert.ErrorIs(t, err, ErrInvalidConfig)
		_, err = IndexSorted(items, Options{NumberKind: NumberKind(3)}, false)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestSortBy(t *testing.T) {
	type release struct {
		Name string
		Tag  string
	}
	releases := []release{
		{"gamma", "v1.10.0"},
		{"alpha", "v1.2.0"},
		{"beta", "v1.9.3"},
	}

	out, err := SortBy(releases, func(r release) Value { return Text(r.Tag) }, VersionOptions(), false)
	require.NoError(t, err)
	names := make([]string, len(out))
	for i, r := range out {
		names[i] = r.Name
	}
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, names)

	pairs := [][]string{{"b", "x2"}, {"a", "x10"}, {"a", "x9"}}
	sorted, err := SortBy(pairs, func(p []string) Value { return Strings(p...) }, DefaultOptions(), false)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "x9"}, {"a", "x10"}, {"b", "x2"}}, sorted)
}

func TestIndexSorted(t *testing.T) {
	index, err := IndexSorted([]string{"num3", "num5", "num2"}, DefaultOptions(), false)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1}, index)

	out, err := OrderByIndex([]string{"foo", "bar", "baz"}, index)
	require.NoError(t, err)
	assert.Equal(t, []string{"baz", "foo", "bar"}, out)

	assert.Equal(t, []int{1, 2, 0}, IndexVersionSorted([]string{"1.10", "1.2", "1.9"}, false))
	assert.Equal(t, []int{0, 2, 1}, IndexVersionSorted([]string{"1.10", "1.2", "1.9"}, true))

	index, err = IndexSortBy([]int{30, -4, 7}, func(i int) Value { return Int(int64(i)) }, DefaultOptions(), false)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0}, index)
}

func TestOrderByIndex(t *testing.T) {
	t.Run("LengthMismatch", func(t *testing.T) {
		_, err := OrderByIndex([]string{"a", "b"}, []int{0})
		assert.ErrorIs(t, err, ErrIndexLength)
	})

	t.Run("OutOfRange", func(t *testing.T) {
		_, err := OrderByIndex([]string{"a", "b"}, []int{0, 2})
		assert.ErrorIs(t, err, ErrIndexRange)
		_, err = OrderByIndex([]string{"a", "b"}, []int{-1, 0})
		assert.ErrorIs(t, err, ErrIndexRange)
	})

	t.Run("Repeated", func(t *testing.T) {
		out, err := OrderByIndex([]string{"a", "b"}, []int{1, 1})
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "b"}, out)
	})
}

// Plain MAJOR.MINOR.PATCH strings must sort the same way semver orders them.
func TestVersionSortedMatchesSemver(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1024))
	seen := make(map[string]bool)
	var items []string
	for len(items) < 200 {
		s := fmt.Sprintf("%d.%d.%d", rng.IntN(4), rng.IntN(15), rng.IntN(25))
		if !seen[s] {
			seen[s] = true
			items = append(items, s)
		}
	}

	versions := make([]*semver.Version, len(items))
	for i, s := range items {
		v, err := semver.NewVersion(s)
		require.NoError(t, err, s)
		versions[i] = v
	}
	sort.Sort(semver.Collection(versions))

	want := make([]string, len(versions))
	for i, v := range versions {
		want[i] = v.Original()
	}
	assert.Equal(t, want, VersionSorted(items, false))
}
