package localstore

import (
	"encoding/json"
	"strconv"

	apperrors "finsense/internal/errors"
)

// schemaVersion is the current localstore schema.
const schemaVersion = 1

// migrations run in order against stores below the current schema
// version. Each entry documents one historical shape change.
var migrations = []struct {
	version int
	apply   func(s *Store) error
}{
	// v1: the profile used to live under the session key "user" only.
	// Copy it to the canonical key so later reads have one source of
	// truth.
	{version: 1, apply: migrateLegacyUserKey},
}

func (s *Store) migrate() error {
	current, err := s.currentVersion()
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		if err := m.apply(s); err != nil {
			return err
		}
		if err := s.kv.Set(keySchemaVersion, []byte(strconv.Itoa(m.version))); err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return nil
}

func (s *Store) currentVersion() (int, error) {
	data, ok, err := s.kv.Get(keySchemaVersion)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !ok {
		return 0, nil
	}
	v, err := strconv.Atoi(string(data))
	if err != nil {
		return 0, nil
	}
	return v, nil
}

func migrateLegacyUserKey(s *Store) error {
	_, ok, err := s.kv.Get(keyUser)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if ok {
		return nil
	}

	legacy, ok, err := s.kv.Get(keySessionUser)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !ok || !json.Valid(legacy) {
		return nil
	}

	if err := s.kv.Set(keyUser, legacy); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
