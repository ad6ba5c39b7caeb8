package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	kerrors "github.com/PolarWolf314/zlang/internal/errors"
	"github.com/PolarWolf314/zlang/internal/memory"
	"github.com/PolarWolf314/zlang/internal/secrets"
	"github.com/PolarWolf314/zlang/internal/utils"
)

// writeFile persists envelopes; tests replace it to simulate write failures.
var writeFile = utils.WriteFileAtomic

// Options selects the store to open.
type Options struct {
	// Dir is the data directory holding the profiles.
	Dir string

	// Profile names the memory store within Dir.
	Profile string

	// Key encrypts and decrypts the profile's envelope. Open keeps a copy.
	Key secrets.Key

	// Discard starts from an empty memory without reading the existing
	// envelope. The envelope is overwritten by the next mutation.
	Discard bool
}

// Store is an open, locked profile. Every mutation is persisted before it
// returns; a mutation that cannot be persisted is rolled back.
type Store struct {
	mu      sync.Mutex
	dir     string
	profile string
	key     secrets.Key
	mem     *memory.Memory
	lock    *profileLock
}

// Open locks the profile and loads its memory. A profile without an
// envelope opens empty and is not written until the first mutation or Init.
func Open(ctx context.Context, opts Options) (*Store, error) {
	if err := ValidateProfile(opts.Profile); err != nil {
		return nil, err
	}

	log.Debugf("Acquiring lock for profile %q", opts.Profile)
	lock, err := acquireLock(ctx, lockPath(opts.Dir, opts.Profile))
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: locking profile %q: %v", kerrors.ErrIO, opts.Profile, err)
	}

	s := &Store{
		dir:     opts.Dir,
		profile: opts.Profile,
		key:     opts.Key,
		lock:    lock,
	}

	mem := memory.New()
	if !opts.Discard {
		mem, err = s.load()
		if err != nil {
			s.Close()
			return nil, err
		}
	}
	s.mem = mem

	log.Debugf("Opened profile %q with %d notes", opts.Profile, mem.Len())
	return s, nil
}

func (s *Store) load() (*memory.Memory, error) {
	envelope, err := os.ReadFile(s.envelopePath())
	if os.IsNotExist(err) {
		return memory.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", kerrors.ErrIO, s.envelopePath(), err)
	}
	return secrets.Decrypt(envelope, s.key)
}

// Close releases the profile lock and wipes the key copy. It is safe to call
// more than once.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.key.Wipe()
	if s.lock == nil {
		return nil
	}
	err := s.lock.release()
	s.lock = nil
	log.Debugf("Closed profile %q", s.profile)
	return err
}

// Profile returns the name of the open profile.
func (s *Store) Profile() string {
	return s.profile
}

// Path returns the profile's envelope file.
func (s *Store) Path() string {
	return s.envelopePath()
}

func (s *Store) envelopePath() string {
	return EnvelopePath(s.dir, s.profile)
}

// persist encrypts m and atomically replaces the envelope file.
func (s *Store) persist(m *memory.Memory) error {
	envelope, err := secrets.Encrypt(m, s.key)
	if err != nil {
		return err
	}
	if err := writeFile(s.envelopePath(), envelope, 0600); err != nil {
		return fmt.Errorf("%w: writing %s: %v", kerrors.ErrIO, s.envelopePath(), err)
	}
	log.Tracef("Persisted %d bytes for profile %q", len(envelope), s.profile)
	return nil
}

// mutate applies fn to the memory and persists the result. If persisting
// fails the memory is restored to its state before fn ran.
func (s *Store) mutate(fn func(m *memory.Memory) bool) error {
	before := s.mem.Clone()
	if changed := fn(s.mem); !changed {
		return nil
	}
	if err := s.persist(s.mem); err != nil {
		log.Warnf("Rolling back profile %q: %v", s.profile, err)
		s.mem = before
		return err
	}
	return nil
}

// Init writes the current memory if the profile has no envelope yet.
func (s *Store) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if utils.FileExists(s.envelopePath()) {
		return nil
	}
	return s.persist(s.mem)
}

// Save stores a note under itemKey and persists.
func (s *Store) Save(itemKey, value string, tags []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mutate(func(m *memory.Memory) bool {
		m.Save(itemKey, value, tags)
		return true
	})
}

// Undo reverts the latest history entry and persists. ok is false, and
// nothing is written, when the history is empty.
func (s *Store) Undo() (entry string, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.mutate(func(m *memory.Memory) bool {
		entry, ok = m.Undo()
		return ok
	})
	if err != nil {
		return "", false, err
	}
	return entry, ok, nil
}

// Get looks up a single note.
func (s *Store) Get(itemKey string) (memory.Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mem.Get(itemKey)
}

// Search returns notes containing keyword in their key, value or tags.
func (s *Store) Search(keyword string) []memory.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mem.Search(keyword)
}

// FilterByTag returns notes carrying exactly tag.
func (s *Store) FilterByTag(tag string) []memory.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mem.FilterByTag(tag)
}

// Entries returns every note sorted by key.
func (s *Store) Entries() []memory.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mem.Entries()
}

// Memory returns a copy of the current memory.
func (s *Store) Memory() *memory.Memory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mem.Clone()
}

// Export returns a fresh envelope of the current memory.
func (s *Store) Export() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return secrets.Encrypt(s.mem, s.key)
}

// ExportTo writes an envelope of the current memory to path.
func (s *Store) ExportTo(path string) error {
	envelope, err := s.Export()
	if err != nil {
		return err
	}
	if err := writeFile(path, envelope, 0600); err != nil {
		return fmt.Errorf("%w: writing %s: %v", kerrors.ErrIO, path, err)
	}
	return nil
}

// Import replaces the memory with the contents of envelope and persists.
// Nothing changes if the envelope does not decrypt under the store key.
func (s *Store) Import(envelope []byte) error {
	imported, err := secrets.Decrypt(envelope, s.key)
	if err != nil {
		return err
	}

	return s.Replace(imported)
}

// Replace swaps in m wholesale and persists.
func (s *Store) Replace(m *memory.Memory) error {
	replacement := m.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mutate(func(m *memory.Memory) bool {
		*m = *replacement
		return true
	})
}

// Decode decrypts envelope under the store key without touching the store.
func (s *Store) Decode(envelope []byte) (*memory.Memory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return secrets.Decrypt(envelope, s.key)
}

// ImportFrom reads an envelope from path and imports it.
func (s *Store) ImportFrom(path string) error {
	envelope, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: reading %s: %v", kerrors.ErrIO, path, err)
	}
	return s.Import(envelope)
}
