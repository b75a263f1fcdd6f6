// SPDX-License-Identifier: MIT

// Package store archives finished experiment summaries in a bolthold
// database so results can be listed after the process exits.
package store

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/timshannon/bolthold"
	"go.etcd.io/bbolt"

	"github.com/katalvlaran/supernode/ga"
)

// ErrNotFound is returned when no record has the requested id.
var ErrNotFound = stderrors.New("store: record not found")

// Record is one archived experiment.
type Record struct {
	ID         uint64 `json:"id" boltholdKey:"ID"`
	Label      string `json:"label"`
	Source     string `json:"source" boltholdIndex:"Source"`
	Strategy   string `json:"strategy" boltholdIndex:"Strategy"`
	GraphSize  int    `json:"graphSize"`
	ResultFile string `json:"resultFile,omitempty"`

	Params ga.Params `json:"params"`

	BestFitness    int           `json:"bestFitness"`
	BestChromosome string        `json:"bestChromosome"`
	WorstFitness   int           `json:"worstFitness"`
	RunBest        []int         `json:"runBest"`
	Stats          ga.CacheStats `json:"stats"`
	CacheSize      int           `json:"cacheSize"`

	Elapsed   time.Duration `json:"elapsed"`
	CreatedAt int64         `json:"createdAt" boltholdIndex:"CreatedAt"`
}

// FromSummary builds a record for a finished search.
func FromSummary(label, source string, graphSize int, p ga.Params, s ga.Summary) *Record {
	return &Record{
		Label:          label,
		Source:         source,
		Strategy:       string(p.Strategy),
		GraphSize:      graphSize,
		Params:         p,
		BestFitness:    s.BestFitness,
		BestChromosome: s.BestChromosome,
		WorstFitness:   s.WorstFitness,
		RunBest:        append([]int(nil), s.RunBest...),
		Stats:          s.Stats,
		CacheSize:      s.CacheSize,
		Elapsed:        s.Elapsed,
	}
}

// Filter narrows List. Empty fields match everything; Limit 0 means no limit.
type Filter struct {
	Source   string
	Strategy string
	Limit    int
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger. The default discards output.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// Store is an open archive. It is safe for concurrent use.
type Store struct {
	db  *bolthold.Store
	log logrus.FieldLogger
	now func() time.Time
}

// Open opens or creates the archive at path.
func Open(path string, opts ...Option) (*Store, error) {
	s := &Store{now: time.Now}
	discard := logrus.New()
	discard.Out = io.Discard
	s.log = discard
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.WithField("module", "store")

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create archive directory for %s", path)
	}
	db, err := bolthold.Open(path, 0o644, &bolthold.Options{
		Encoder: json.Marshal,
		Decoder: json.Unmarshal,
		Options: &bbolt.Options{
			Timeout:      5 * time.Second,
			NoGrowSync:   bbolt.DefaultOptions.NoGrowSync,
			FreelistType: bbolt.DefaultOptions.FreelistType,
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open archive %s", path)
	}
	s.db = db

	return s, nil
}

// Save inserts rec under a fresh id and writes the id back into rec.
func (s *Store) Save(rec *Record) error {
	if rec.CreatedAt == 0 {
		rec.CreatedAt = s.now().UnixNano()
	}
	if err := s.db.Insert(bolthold.NextSequence(), rec); err != nil {
		return errors.Wrap(err, "failed to insert record")
	}
	// write back id to db
	if err := s.db.Update(rec.ID, rec); err != nil {
		return errors.Wrapf(err, "failed to update record %d", rec.ID)
	}
	s.log.WithFields(logrus.Fields{"id": rec.ID, "experiment": rec.Label}).Debug("archived")

	return nil
}

// Get loads the record with the given id.
func (s *Store) Get(id uint64) (*Record, error) {
	rec := &Record{}
	if err := s.db.Get(id, rec); err != nil {
		if stderrors.Is(err, bolthold.ErrNotFound) {
			return nil, errors.WithMessagef(ErrNotFound, "id %d", id)
		}
		return nil, errors.Wrapf(err, "failed to get record %d", id)
	}

	return rec, nil
}

// List returns matching records, newest first.
func (s *Store) List(f Filter) ([]*Record, error) {
	var q *bolthold.Query
	and := func(field, value string) {
		if value == "" {
			return
		}
		if q == nil {
			q = bolthold.Where(field).Eq(value)
			return
		}
		q = q.And(field).Eq(value)
	}
	and("Source", f.Source)
	and("Strategy", f.Strategy)
	if q == nil {
		q = &bolthold.Query{}
	}
	q = q.SortBy("CreatedAt", "ID").Reverse()
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	var recs []*Record
	if err := s.db.Find(&recs, q); err != nil {
		return nil, errors.Wrap(err, "failed to list records")
	}

	return recs, nil
}

// Delete removes the record with the given id.
func (s *Store) Delete(id uint64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.db.Delete(id, &Record{}); err != nil {
		return errors.Wrapf(err, "failed to delete record %d", id)
	}

	return nil
}

// Close releases the database file.
func (s *Store) Close() error {
	return errors.Wrap(s.db.Close(), "failed to close archive")
}
