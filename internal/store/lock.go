package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rogpeppe/go-internal/lockedfile"
)

// profileLock is an exclusive advisory lock on a profile directory. The OS
// releases it when the holding process exits.
type profileLock struct {
	f *lockedfile.File
}

func (l *profileLock) release() error {
	if l == nil || l.f == nil {
		return fmt.Errorf("nil internal locked file")
	}
	err := l.f.Close()
	l.f = nil
	return err
}

// acquireLock blocks until the lock at filePath is held or ctx is done.
func acquireLock(ctx context.Context, filePath string) (*profileLock, error) {
	if err := os.MkdirAll(filepath.Dir(filePath), 0o700); err != nil {
		return nil, err
	}
	cf := make(chan *lockedfile.File)
	cerr := make(chan error)
	go func() {
		f, err := lockedfile.Create(filePath)
		if err != nil {
			cerr <- err
		} else {
			cf <- f
		}
	}()

	select {
	case f := <-cf:
		// Holder details ease debugging a stuck lock. Not fatal if
		// they cannot be written.
		fmt.Fprintf(f, "PID=%d\n", os.Getpid())
		host, _ := os.Hostname()
		fmt.Fprintf(f, "Host=%q\n", host)
		return &profileLock{f: f}, nil

	case err := <-cerr:
		return nil, err

	case <-ctx.Done():
		// The file may still open later. Close it if it does.
		go func() {
			select {
			case <-cerr:
			case f := <-cf:
				f.Close()
			}
		}()
		return nil, ctx.Err()
	}
}
