package ga

import "time"

// GenerationRecord is one line of the result stream: the state after a
// generation has been evaluated.
type GenerationRecord struct {
	Run        int
	Generation int
	Elapsed    time.Duration

	GlobalBest    int
	GlobalAverage float64
	GlobalWorst   int
	RunBest       int
	RunAverage    float64
	RunWorst      int
	GenBest       int
	GenAverage    float64
	GenWorst      int

	GlobalBestChromosome string
	RunBestChromosome    string
	GenBestChromosome    string

	Stats     CacheStats
	CacheSize int
}

// RecordSink consumes generation records in order.
type RecordSink interface {
	Record(rec GenerationRecord) error
}

// RecordSinkFunc adapts a function to RecordSink.
type RecordSinkFunc func(rec GenerationRecord) error

// Record calls f.
func (f RecordSinkFunc) Record(rec GenerationRecord) error { return f(rec) }

// Summary is what a finished search reports.
type Summary struct {
	BestFitness    int
	BestChromosome string
	WorstFitness   int
	RunBest        []int
	Stats          CacheStats
	CacheSize      int
	Variants       VariantStats
	Elapsed        time.Duration
}
