package file

import (
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"
)

const (
	LockFileName = ".target-salesforce.lock"

	AcquireLockFailureFormat = "Could not lock input %s"
	InputLockedErrorFormat   = "Input %s is already being uploaded by another run"
)

// LockPath is the lock file guarding an input directory, or the directory holding an
// input archive.
func LockPath(input string) string {
	if info, err := os.Stat(input); err == nil && info.IsDir() {
		return filepath.Join(input, LockFileName)
	}
	return filepath.Join(filepath.Dir(input), LockFileName)
}

// LockInput takes an exclusive, non-blocking lock on input. The caller must Unlock it.
func LockInput(input string) (*flock.Flock, error) {
	lock := flock.New(LockPath(input))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, errors.Wrapf(err, AcquireLockFailureFormat, input)
	}
	if !locked {
		return nil, errors.Errorf(InputLockedErrorFormat, input)
	}
	return lock, nil
}
