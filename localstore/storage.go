package localstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Storage is the local key-value mirror of in-memory state: a single JSON
// file holding one encoded record per key. Writes are best-effort, callers
// are expected to swallow persistence errors.
type Storage struct {
	mu   sync.Mutex
	path string
	data map[string]json.RawMessage
}

func Open(path string) (*Storage, error) {
	s := &Storage{
		path: path,
		data: map[string]json.RawMessage{},
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, errors.Wrap(err, "failed to read storage file")
	}
	if err = json.Unmarshal(raw, &s.data); err != nil {
		// A corrupt file behaves like an empty one, same as a cleared
		// browser storage would.
		log.WithError(err).Error("storage file is not valid json, starting empty")
		s.data = map[string]json.RawMessage{}
	}
	return s, nil
}

// Get decodes the record under key into out. The first result is false when
// the key is absent.
func (s *Storage) Get(key string, out interface{}) (bool, error) {
	s.mu.Lock()
	raw, ok := s.data[key]
	s.mu.Unlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, errors.Wrapf(err, "failed to decode record %v", key)
	}
	return true, nil
}

func (s *Storage) Put(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode record %v", key)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = raw
	return s.flush()
}

func (s *Storage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[key]; !ok {
		return nil
	}
	delete(s.data, key)
	return s.flush()
}

func (s *Storage) flush() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode storage")
	}
	tmp := s.path + ".tmp"
	if err = os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrap(err, "failed to create storage dir")
	}
	if err = os.WriteFile(tmp, raw, 0o644); err != nil {
		return errors.Wrap(err, "failed to write storage file")
	}
	return errors.Wrap(os.Rename(tmp, s.path), "failed to replace storage file")
}
