package ga_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/supernode/ga"
)

func TestFitnessCache_TransformMap(t *testing.T) {
	c := ga.NewFitnessCache(true)
	c.RecordTransform("[(0,0)]", "[(0,1)]")

	_, ok := c.Transformed("[(0,0)]")
	assert.False(t, ok, "the repaired text has no fitness yet")

	c.Put("[(0,1)]", 3)
	f, ok := c.Transformed("[(0,0)]")
	assert.True(t, ok)
	assert.Equal(t, 3, f)

	// Only the first mapping is kept.
	c.RecordTransform("[(0,0)]", "[(0,2)]")
	c.Put("[(0,2)]", 9)
	f, _ = c.Transformed("[(0,0)]")
	assert.Equal(t, 3, f)
	assert.Equal(t, 2, c.Size())
	assert.Zero(t, c.Variants().Transformed)
}

func TestFitnessCache_Variants(t *testing.T) {
	c := ga.NewFitnessCache(false)
	c.RecordTransform("a", "b")
	c.RecordTransform("a", "c")
	c.RecordTransform("a", "c")
	c.RecordTransform("d", "e")
	c.RecordTransform("f", "f")

	_, ok := c.Transformed("a")
	assert.False(t, ok)
	assert.Equal(t, ga.VariantStats{
		Transformed:  2,
		Results:      3,
		MoreThanOne:  1,
		MaxVariants:  2,
		MeanVariants: 1.5,
	}, c.Variants())
}

func TestCacheStats_Add(t *testing.T) {
	s := ga.CacheStats{CacheAccesses: 1, Evaluations: 2}
	s.Add(ga.CacheStats{CacheAccesses: 3, PostTransformCacheAccesses: 1, TransformMapUses: 4, Evaluations: 5})
	assert.Equal(t, ga.CacheStats{CacheAccesses: 4, PostTransformCacheAccesses: 1, TransformMapUses: 4, Evaluations: 7}, s)
}
