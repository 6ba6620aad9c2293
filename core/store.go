package core

import (
	"strings"

	"github.com/Noth1ngLol/Llol/internal/codec"
	"github.com/Noth1ngLol/Llol/internal/lock"
	"github.com/Noth1ngLol/Llol/internal/logger"
	"github.com/Noth1ngLol/Llol/internal/record"
	"github.com/Noth1ngLol/Llol/internal/structured"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Store holds the metadata records of one GGUF file in file order.
//
// Every mutating method re-encodes the whole record set and overwrites the
// source file before returning. If that save fails the in-memory records
// keep the change while the file on disk is left in an undefined state
// (unchanged with atomic saves).
type Store struct {
	path    string
	header  codec.Header
	records []record.Record
	keyDir  KeyDir
	opts    options
	log     *logrus.Entry
}

// Open parses the file at path into a new Store.
func Open(path string, opts ...Option) (*Store, error) {
	s := &Store{
		path: path,
		log:  logger.For("store").WithField("file", path),
	}
	for _, opt := range opts {
		opt(&s.opts)
	}

	f, err := codec.ReadFile(path)
	if err != nil {
		return nil, err
	}

	s.header = f.Header
	s.records = f.Records
	s.rebuildKeyDir()

	if f.Header.TensorCount != 0 {
		s.log.Warnf("File declares %d tensors; the tensor section is not preserved and will be dropped on save", f.Header.TensorCount)
	}
	if len(s.keyDir) != len(s.records) {
		s.log.Warnf("File contains duplicate keys (%d records, %d distinct keys)", len(s.records), len(s.keyDir))
	}
	s.log.Debugf("Opened: version %d, %d records", f.Header.Version, len(f.Records))

	return s, nil
}

func (s *Store) Path() string {
	return s.path
}

// Header returns the header as read at open time.
func (s *Store) Header() codec.Header {
	return s.header
}

func (s *Store) Len() int {
	return len(s.records)
}

// Records returns a copy of all records in order.
func (s *Store) Records() []record.Record {
	out := make([]record.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Get returns the record for key. With duplicate keys the last occurrence
// wins.
func (s *Store) Get(key string) (record.Record, bool) {
	entry, ok := s.keyDir[key]
	if !ok {
		return record.Record{}, false
	}
	return s.records[entry.Last], true
}

// Search returns copies of every record whose key contains substr
// (case-sensitive), in storage order.
func (s *Store) Search(substr string) []record.Record {
	var matches []record.Record
	for _, rec := range s.records {
		if strings.Contains(rec.Key, substr) {
			matches = append(matches, rec)
		}
	}
	return matches
}

// Upsert replaces the value and value type of key in place, or appends a new
// record when the key is absent, then saves.
func (s *Store) Upsert(key string, value record.Value, valueType string) error {
	s.upsert(key, value, valueType)
	return s.Save()
}

func (s *Store) upsert(key string, value record.Value, valueType string) {
	if value == nil {
		value = record.Null{}
	}

	if entry, ok := s.keyDir[key]; ok {
		s.records[entry.Last].Value = value
		s.records[entry.Last].ValueType = valueType
		s.log.WithField("key", key).Debug("Modified record")
		return
	}

	s.records = append(s.records, record.Record{Key: key, Value: value, ValueType: valueType})
	s.keyDir.add(key, len(s.records)-1)
	s.log.WithField("key", key).Debug("Added record")
}

// Remove deletes every record whose key equals key, then saves. Removing an
// absent key leaves the records unchanged.
func (s *Store) Remove(key string) error {
	s.remove(key)
	return s.Save()
}

func (s *Store) remove(key string) {
	entry, ok := s.keyDir[key]
	if !ok {
		s.log.WithField("key", key).Debug("Remove of absent key")
		return
	}

	kept := s.records[:0]
	for _, rec := range s.records {
		if rec.Key != key {
			kept = append(kept, rec)
		}
	}
	// Clear the tail so dropped values can be collected.
	for i := len(kept); i < len(s.records); i++ {
		s.records[i] = record.Record{}
	}
	s.records = kept
	s.rebuildKeyDir()

	s.log.WithField("key", key).Debugf("Removed %d record(s)", entry.Count)
}

// Replace swaps the whole record set for records, then saves.
func (s *Store) Replace(records []record.Record) error {
	s.records = make([]record.Record, len(records))
	copy(s.records, records)
	s.rebuildKeyDir()
	return s.Save()
}

// Apply runs a batch: modifications, then additions, then removals, all in
// memory, followed by one save. An invalid item aborts the batch before
// anything changes.
func (s *Store) Apply(b Batch) error {
	type change struct {
		key       string
		value     record.Value
		valueType string
	}

	changes := make([]change, 0, len(b.Modify)+len(b.Add))
	for _, items := range [][]BatchItem{b.Modify, b.Add} {
		for _, it := range items {
			v, vt, err := it.value()
			if err != nil {
				return errors.Wrapf(err, "batch item %q", it.Key)
			}
			changes = append(changes, change{it.Key, v, vt})
		}
	}

	for _, c := range changes {
		s.upsert(c.key, c.value, c.valueType)
	}
	for _, key := range b.Remove {
		s.remove(key)
	}

	s.log.Infof("Applied batch: %d modified, %d added, %d removed", len(b.Modify), len(b.Add), len(b.Remove))
	return s.Save()
}

func (s *Store) structuredFormat(path string) structured.Format {
	if s.opts.format != nil {
		return *s.opts.format
	}
	return structured.FormatFromPath(path)
}

// Export writes all records to dest in structured form. The GGUF file is not
// touched.
func (s *Store) Export(dest string) error {
	format := s.structuredFormat(dest)
	if err := structured.WriteFile(dest, s.records, format); err != nil {
		return errors.Wrapf(err, "exporting to %s", dest)
	}
	s.log.WithField("dest", dest).Infof("Exported %d records as %v", len(s.records), format)
	return nil
}

// Import replaces all records with the structured records read from src,
// then saves. It is always a full replace, never a merge.
func (s *Store) Import(src string) error {
	format := s.structuredFormat(src)
	records, err := structured.ReadFile(src, format)
	if err != nil {
		return errors.Wrapf(err, "importing from %s", src)
	}
	s.log.WithField("src", src).Infof("Importing %d records as %v", len(records), format)
	return s.Replace(records)
}

// Save encodes all records and overwrites the source file. The encoding is
// done in memory first, so an unencodable value never reaches the file.
func (s *Store) Save() error {
	data, err := codec.EncodeToBytes(s.records)
	if err != nil {
		return errors.Wrap(err, "encoding metadata")
	}

	lf, err := lock.LockFile(s.path)
	if err != nil {
		return err
	}
	defer lock.UnlockFile(lf)

	if err := codec.WriteFile(s.path, data, s.opts.atomicSave); err != nil {
		return errors.Wrapf(err, "writing %s", s.path)
	}

	s.log.Debugf("Saved %d records (%d bytes)", len(s.records), len(data))
	return nil
}

func (s *Store) rebuildKeyDir() {
	s.keyDir = make(KeyDir, len(s.records))
	for i, rec := range s.records {
		s.keyDir.add(rec.Key, i)
	}
}
