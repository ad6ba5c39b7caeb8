package workflows

import (
	"context"
	"fmt"
	"os"

	"github.com/PolarWolf314/zlang/internal/audit"
	"github.com/PolarWolf314/zlang/internal/configs"
	kerrors "github.com/PolarWolf314/zlang/internal/errors"
	"github.com/PolarWolf314/zlang/internal/memory"
	"github.com/PolarWolf314/zlang/internal/secrets"
	"github.com/PolarWolf314/zlang/internal/store"
)

// RecoverOptions configures the recover workflow.
type RecoverOptions struct {
	// BackupPath is an exported envelope to restore. Empty means the active
	// profile starts empty.
	BackupPath string

	// OldKeyPath is a copy of the master key the backup was encrypted
	// under. If empty, the current master key is tried.
	OldKeyPath string
}

// RecoverResult contains the outcome of a recover operation.
type RecoverResult struct {
	// Profile is the profile whose store was rewritten.
	Profile string

	// Token is the recovery token that authorised the recovery.
	Token secrets.RecoveryToken

	// RestoredNotes is the number of notes restored from the backup.
	RestoredNotes int

	// Restored indicates a backup was restored.
	Restored bool
}

// Recover replaces the master key with a fresh one and rewrites the active
// profile's store under it, restoring a backup when one is given.
//
// The backup is decrypted before anything on disk changes. Other profiles
// stay encrypted under the discarded key.
//
// Returns ErrRecoveryTokenNotFound or ErrInvalidRecoveryToken if the
// recovery token is unusable.
// Returns ErrBackupUnrecoverable if a backup is given but no old key can be
// loaded.
func Recover(ctx context.Context, opts RecoverOptions) (*RecoverResult, error) {
	settings := configs.ZlangSettings

	token, err := secrets.ReadRecoveryToken(settings.RecoveryPath())
	if err != nil {
		return nil, err
	}

	config, err := configs.LoadUserConfig()
	if err != nil {
		return nil, err
	}
	profile := config.Store.ActiveProfile

	restored := memory.New()
	if opts.BackupPath != "" {
		restored, err = decryptBackup(opts)
		if err != nil {
			return nil, err
		}
	}

	newKey, err := secrets.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("generating master key: %w", err)
	}
	defer newKey.Wipe()

	s, err := store.Open(ctx, store.Options{
		Dir:     settings.DataDir,
		Profile: profile,
		Key:     newKey,
		Discard: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening profile %q: %w", profile, err)
	}
	defer s.Close()

	swap, err := installKey(settings.MasterKeyPath(), newKey)
	if err != nil {
		return nil, err
	}
	log.Infof("Replaced master key at %s", settings.MasterKeyPath())

	// The profile still holds data under the old key until this succeeds.
	if err := s.Replace(restored); err != nil {
		swap.rollback()
		return nil, fmt.Errorf("writing profile %q: %w", profile, err)
	}
	swap.commit()

	audit.Log(audit.EventRecovered)

	return &RecoverResult{
		Profile:       profile,
		Token:         token,
		RestoredNotes: restored.Len(),
		Restored:      opts.BackupPath != "",
	}, nil
}

func decryptBackup(opts RecoverOptions) (*memory.Memory, error) {
	envelope, err := os.ReadFile(opts.BackupPath)
	if err != nil {
		return nil, fmt.Errorf("%w: reading backup %s: %v", kerrors.ErrIO, opts.BackupPath, err)
	}

	oldKeyPath := opts.OldKeyPath
	if oldKeyPath == "" {
		oldKeyPath = configs.ZlangSettings.MasterKeyPath()
	}
	oldKey, err := secrets.ReadKeyFile(oldKeyPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrBackupUnrecoverable, err)
	}
	defer oldKey.Wipe()

	m, err := secrets.Decrypt(envelope, oldKey)
	if err != nil {
		return nil, fmt.Errorf("decrypting backup: %w", err)
	}
	return m, nil
}
