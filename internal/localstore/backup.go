package localstore

import (
	"encoding/json"

	"finsense/internal/backup"
	apperrors "finsense/internal/errors"
	"finsense/internal/models"
)

// Export produces a versioned snapshot of everything stored. It always
// succeeds on a healthy backend: a missing profile is exported as absent,
// after one attempt to recover it from the legacy session key (repairing
// the canonical key when found).
func (s *Store) Export() (*backup.Snapshot, error) {
	user, err := s.User()
	if err != nil {
		return nil, err
	}
	if user == nil {
		if user, err = s.recoverLegacyUser(); err != nil {
			return nil, err
		}
	}

	txns, err := s.readTransactions()
	if err != nil {
		return nil, err
	}
	if txns == nil {
		txns = []models.Transaction{}
	}

	goals, err := s.Goals()
	if err != nil {
		return nil, err
	}

	return &backup.Snapshot{
		Version:      backup.Version,
		Date:         s.now(),
		User:         user,
		Transactions: txns,
		Goals:        goals,
	}, nil
}

// Import validates and restores a snapshot. Each top-level field is
// replaced only when present in the snapshot; absent fields are left
// untouched. Validation failures leave stored data unchanged. A restored
// user is mirrored to the legacy session key so a running session
// recognizes the identity immediately.
func (s *Store) Import(snap *backup.Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}

	if snap.User != nil {
		if err := s.write(keyUser, snap.User); err != nil {
			return err
		}
		if err := s.write(keySessionUser, snap.User); err != nil {
			return err
		}
	}
	if snap.Transactions != nil {
		txns := snap.Transactions
		for i := range txns {
			txns[i].Category = nil // stored rows never carry the join
		}
		if err := s.write(keyTransactions, txns); err != nil {
			return err
		}
	}
	if snap.Goals != nil {
		if err := s.write(keyGoals, snap.Goals); err != nil {
			return err
		}
	}
	return nil
}

// recoverLegacyUser reads the session key and repairs the canonical key
// when a profile is found there.
func (s *Store) recoverLegacyUser() (*models.User, error) {
	data, ok, err := s.kv.Get(keySessionUser)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !ok {
		return nil, nil
	}

	var user *models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, nil // unreadable legacy value; export without a user
	}
	if user != nil {
		if err := s.kv.Set(keyUser, data); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return user, nil
}
