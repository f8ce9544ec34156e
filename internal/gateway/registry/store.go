package registry

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github/chapool/evm-gateway/internal/gateway"
)

const (
	storeDirPerm  = 0o755
	storeFilePerm = 0o644
)

// chainsFile is the on-disk layout:
//
//	[[config]]
//	node_url = "http://localhost:8545"
//	denom = "ether"
//	ticker = "Eth"
type chainsFile struct {
	Config []gateway.ChainConfig `toml:"config"`
}

// FileStore keeps chain configs in a TOML file. Appends rewrite the whole
// file through a temporary file and an atomic rename, so readers never see a
// half-written file.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store backed by the TOML file at path.
// The file does not need to exist yet.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the location of the backing file.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads all persisted configs. A missing file yields an empty list.
func (s *FileStore) Load(_ context.Context) ([]gateway.ChainConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.read()
	if err != nil {
		return nil, err
	}

	return file.Config, nil
}

// Append adds config to the end of the persisted list.
func (s *FileStore) Append(ctx context.Context, config gateway.ChainConfig) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "append cancelled")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.read()
	if err != nil {
		return err
	}

	file.Config = append(file.Config, config)

	return s.write(file)
}

func (s *FileStore) read() (*chainsFile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &chainsFile{}, nil
		}
		return nil, errors.Wrapf(err, "failed to read chains file %s", s.path)
	}

	var file chainsFile
	if _, err := toml.Decode(string(data), &file); err != nil {
		return nil, errors.Wrapf(err, "failed to parse chains file %s", s.path)
	}

	return &file, nil
}

func (s *FileStore) write(file *chainsFile) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(file); err != nil {
		return errors.Wrap(err, "failed to encode chains file")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, storeDirPerm); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "failed to create temporary chains file")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // already renamed on success

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return errors.Wrap(err, "failed to write temporary chains file")
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return errors.Wrap(err, "failed to sync temporary chains file")
	}

	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "failed to close temporary chains file")
	}

	if err := os.Chmod(tmpName, storeFilePerm); err != nil {
		return errors.Wrap(err, "failed to set chains file permissions")
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		return errors.Wrapf(err, "failed to replace chains file %s", s.path)
	}

	return nil
}
