// File: cache.go
// Role: FitnessCache, text-keyed fitness memo plus the repair transform map.
// Concurrency:
//   - Owned by one SearchLoop; not safe for concurrent use.

package ga

// CacheStats counts cache traffic. The search loop resets it every generation.
type CacheStats struct {
	// CacheAccesses counts hits on the text as evaluated.
	CacheAccesses int
	// PostTransformCacheAccesses counts hits on the text after repair.
	PostTransformCacheAccesses int
	// TransformMapUses counts pre-repair texts answered through the transform map.
	TransformMapUses int
	// Evaluations counts calls to evaluate, hits included.
	Evaluations int
}

// Add accumulates o into s.
func (s *CacheStats) Add(o CacheStats) {
	s.CacheAccesses += o.CacheAccesses
	s.PostTransformCacheAccesses += o.PostTransformCacheAccesses
	s.TransformMapUses += o.TransformMapUses
	s.Evaluations += o.Evaluations
}

// VariantStats summarises how many distinct repaired texts each pre-repair
// text produced while the transform map was disabled.
type VariantStats struct {
	Transformed  int     // pre-repair texts seen to change
	Results      int     // distinct repaired texts over all of them
	MoreThanOne  int     // pre-repair texts with more than one repaired form
	MaxVariants  int     // largest number of repaired forms for one text
	MeanVariants float64 // Results / Transformed
}

// FitnessCache memoises fitness by chromosome text for the lifetime of one
// experiment; entries are never evicted.
type FitnessCache struct {
	fitness       map[string]int
	transform     map[string]string
	variants      map[string]map[string]struct{}
	saveTransform bool
}

// NewFitnessCache returns an empty cache. With saveTransform the first
// pre-repair → post-repair mapping of each text is kept and reused.
func NewFitnessCache(saveTransform bool) *FitnessCache {
	return &FitnessCache{
		fitness:       make(map[string]int),
		transform:     make(map[string]string),
		variants:      make(map[string]map[string]struct{}),
		saveTransform: saveTransform,
	}
}

// Get returns the cached fitness of text.
func (c *FitnessCache) Get(text string) (int, bool) {
	f, ok := c.fitness[text]

	return f, ok
}

// Put stores the fitness of a repaired text.
func (c *FitnessCache) Put(text string, fitness int) {
	c.fitness[text] = fitness
}

// Transformed returns the cached fitness of whatever pre was repaired into,
// when the transform map is enabled and knows pre.
func (c *FitnessCache) Transformed(pre string) (int, bool) {
	if !c.saveTransform {
		return 0, false
	}
	post, ok := c.transform[pre]
	if !ok {
		return 0, false
	}

	return c.Get(post)
}

// RecordTransform notes that pre was repaired into post. Equal texts are ignored.
func (c *FitnessCache) RecordTransform(pre, post string) {
	if pre == post {
		return
	}
	if c.saveTransform {
		if _, seen := c.transform[pre]; !seen {
			c.transform[pre] = post
		}
		return
	}
	set, ok := c.variants[pre]
	if !ok {
		set = make(map[string]struct{})
		c.variants[pre] = set
	}
	set[post] = struct{}{}
}

// Size returns the number of cached fitness entries.
func (c *FitnessCache) Size() int { return len(c.fitness) }

// Variants summarises the variant sets collected with the transform map disabled.
func (c *FitnessCache) Variants() VariantStats {
	var v VariantStats
	v.Transformed = len(c.variants)
	for _, set := range c.variants {
		n := len(set)
		v.Results += n
		if n > 1 {
			v.MoreThanOne++
		}
		if n > v.MaxVariants {
			v.MaxVariants = n
		}
	}
	if v.Transformed > 0 {
		v.MeanVariants = float64(v.Results) / float64(v.Transformed)
	}

	return v
}
