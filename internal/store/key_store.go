package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/Kriegslustig/lamport"
	"github.com/Kriegslustig/lamport/internal/crypto"
)

const (
	secretExt = ".sec"
	publicExt = ".pub"
)

var (
	// ErrKeyNotFound is returned when no key with the requested name exists.
	ErrKeyNotFound = errors.New("key not found")
	// ErrKeyExists is returned by Save when a key with that name already
	// exists; Lamport keys are never overwritten in place.
	ErrKeyExists = errors.New("key already exists")
	// ErrInvalidName is returned for names that are empty or contain a path
	// separator.
	ErrInvalidName = errors.New("invalid key name")
)

// KeyFileStore stores key pairs as raw files under a directory.
type KeyFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewKeyFileStore returns a store rooted at dir. The directory is created on
// first write.
func NewKeyFileStore(dir string) *KeyFileStore { return &KeyFileStore{dir: dir} }

// Dir returns the directory the store writes to.
func (s *KeyFileStore) Dir() string { return s.dir }

func (s *KeyFileStore) path(name, ext string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(s.dir, name+ext), nil
}

// Save writes both halves of kp under name.
func (s *KeyFileStore) Save(name string, kp *lamport.KeyPair) error {
	sec, err := s.path(name, secretExt)
	if err != nil {
		return err
	}
	pub, _ := s.path(name, publicExt)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	if _, err := os.Stat(sec); err == nil {
		return fmt.Errorf("%w: %q", ErrKeyExists, name)
	}
	if err := writeFile(pub, kp.Public.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing public key: %w", err)
	}
	if err := writeFile(sec, kp.Secret.Bytes(), 0o600); err != nil {
		return fmt.Errorf("writing secret key: %w", err)
	}
	return nil
}

// LoadSecret reads the secret key called name. The caller should Wipe it
// once done.
func (s *KeyFileStore) LoadSecret(name string) (*lamport.SecretKey, error) {
	b, err := s.load(name, secretExt)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(b)
	return lamport.SecretKeyFromBytes(b)
}

// LoadPublic reads the public key called name.
func (s *KeyFileStore) LoadPublic(name string) (*lamport.PublicKey, error) {
	b, err := s.load(name, publicExt)
	if err != nil {
		return nil, err
	}
	return lamport.PublicKeyFromBytes(b)
}

// List returns the names of all stored public keys, sorted.
func (s *KeyFileStore) List() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), publicExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), publicExt))
	}
	sort.Strings(names)
	return names, nil
}

func (s *KeyFileStore) load(name, ext string) ([]byte, error) {
	p, err := s.path(name, ext)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, name)
	}
	return b, err
}
