package libversion

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func raws(vs []Version) []string {
	var out []string
	for _, v := range vs {
		out = append(out, v.Raw)
	}
	return out
}

func versionsOf(raws ...string) []Version {
	var out []Version
	for _, r := range raws {
		out = append(out, NewVersion(r, NoFlags))
	}
	return out
}

func TestSort(t *testing.T) {
	expected := []string{"1.0alpha", "1.0", "1.0patch1", "1.0a", "1.1"}

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		input := append([]string(nil), expected...)
		rng.Shuffle(len(input), func(i, j int) { input[i], input[j] = input[j], input[i] })

		vs := versionsOf(input...)
		Sort(vs)
		if d := cmp.Diff(expected, raws(vs)); d != "" {
			t.Fatalf("unexpected order for input %v (-want +got):\n%s", input, d)
		}
	}
}

func TestSort_StableForEqualVersions(t *testing.T) {
	vs := versionsOf("1.00", "0.9", "1.0", "1", "01.0.0")
	Sort(vs)
	assert.Equal(t, []string{"0.9", "1.00", "1.0", "1", "01.0.0"}, raws(vs))
}

func TestSortDescending(t *testing.T) {
	vs := versionsOf("1.0", "2.0alpha1", "1.0.0", "2.0", "0.1")
	SortDescending(vs)
	assert.Equal(t, []string{"2.0", "2.0alpha1", "1.0", "1.0.0", "0.1"}, raws(vs))
}

func TestSortStrings(t *testing.T) {
	vs := []string{"1.0p1", "1.0", "1.0p2"}
	SortStrings(vs, NoFlags)
	assert.Equal(t, []string{"1.0p1", "1.0p2", "1.0"}, vs)

	SortStrings(vs, PIsPatch)
	assert.Equal(t, []string{"1.0", "1.0p1", "1.0p2"}, vs)
}

func TestMaxMin(t *testing.T) {
	_, ok := Max()
	assert.False(t, ok)
	_, ok = Min()
	assert.False(t, ok)

	vs := versionsOf("1.0", "1.0rc1", "1.0.1", "1.0.01", "0.9")

	best, ok := Max(vs...)
	assert.True(t, ok)
	assert.Equal(t, "1.0.1", best.Raw)

	worst, ok := Min(vs...)
	assert.True(t, ok)
	assert.Equal(t, "0.9", worst.Raw)
}
