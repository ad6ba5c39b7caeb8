package secrets

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	kerrors "github.com/PolarWolf314/zlang/internal/errors"
	"github.com/PolarWolf314/zlang/internal/utils"
	"github.com/google/uuid"
)

// RecoveryToken is the durable anchor created at onboarding. It is stored
// apart from the key and the envelope and outlives the loss of either.
type RecoveryToken struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewRecoveryToken creates a token with a random UUID.
func NewRecoveryToken() RecoveryToken {
	return RecoveryToken{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
}

// Validate checks the token is structurally usable.
func (t RecoveryToken) Validate() error {
	if _, err := uuid.Parse(t.ID); err != nil {
		return fmt.Errorf("%w: id %q is not a UUID", kerrors.ErrInvalidRecoveryToken, t.ID)
	}
	if t.CreatedAt.IsZero() {
		return fmt.Errorf("%w: missing createdAt", kerrors.ErrInvalidRecoveryToken)
	}
	return nil
}

// WriteRecoveryToken stores the token at path as indented JSON.
func WriteRecoveryToken(path string, t RecoveryToken) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode recovery token: %w", err)
	}
	if err := utils.WriteFileAtomic(path, append(data, '\n'), 0600); err != nil {
		return fmt.Errorf("%w: writing recovery token: %v", kerrors.ErrIO, err)
	}
	return nil
}

// ReadRecoveryToken loads and validates the token at path.
//
// Returns ErrRecoveryTokenNotFound if the file is missing and
// ErrInvalidRecoveryToken if it cannot be parsed or validated.
func ReadRecoveryToken(path string) (RecoveryToken, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return RecoveryToken{}, fmt.Errorf("%w: %s", kerrors.ErrRecoveryTokenNotFound, path)
	}
	if err != nil {
		return RecoveryToken{}, fmt.Errorf("%w: reading recovery token: %v", kerrors.ErrIO, err)
	}

	var t RecoveryToken
	if err := json.Unmarshal(data, &t); err != nil {
		return RecoveryToken{}, fmt.Errorf("%w: %v", kerrors.ErrInvalidRecoveryToken, err)
	}
	if err := t.Validate(); err != nil {
		return RecoveryToken{}, err
	}

	return t, nil
}
