package filestore

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
)

const (
	KeySports      = "sports"
	KeyTeams       = "teams"
	KeyTournaments = "tournaments"
	KeyMatches     = "matches"
	KeyDiscipline  = "disciplinary_actions"
)

// Store keeps one JSON document per collection key under dir. Every save
// rewrites the whole collection through a temp file and rename, so readers
// never observe a partial document.
type Store struct {
	dir string
	mu  sync.Mutex
}

func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("data directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create data directory %s", dir)
	}

	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load decodes the snapshot stored under key into dst. It reports false
// when no snapshot exists yet.
func (s *Store) Load(key string, dst any) (bool, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "read snapshot %s", key)
	}
	if err := sonic.Unmarshal(data, dst); err != nil {
		return false, errors.Wrapf(err, "decode snapshot %s", key)
	}

	return true, nil
}

// Save replaces the snapshot stored under key with value.
func (s *Store) Save(key string, value any) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(value); err != nil {
		return errors.Wrapf(err, "encode snapshot %s", key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, key+"-*.tmp")
	if err != nil {
		return errors.Wrapf(err, "create temp snapshot %s", key)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(buf.B); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, "write snapshot %s", key)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, "sync snapshot %s", key)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "close snapshot %s", key)
	}
	if err := os.Rename(tmpName, s.path(key)); err != nil {
		return errors.Wrapf(err, "replace snapshot %s", key)
	}

	return nil
}
