package localstore

import (
	"testing"

	"finsense/internal/backup"
	"finsense/internal/kvstore"
	"finsense/internal/models"
	"finsense/internal/testutil"
)

func TestStore_Export(t *testing.T) {
	t.Run("exports everything stored", func(t *testing.T) {
		s := openTestStore(t)

		testutil.AssertNoError(t, s.SaveUser(&models.User{Name: "Alex", Email: "alex@test.com"}))
		_, err := s.AddTransaction(models.Transaction{CategoryID: "1", Amount: 100})
		testutil.AssertNoError(t, err)
		_, err = s.AddGoal(models.Goal{Name: "Trip", TargetAmount: 5000})
		testutil.AssertNoError(t, err)

		snap, err := s.Export()
		testutil.AssertNoError(t, err)

		if snap.Version != backup.Version {
			t.Errorf("expected version %d, got %d", backup.Version, snap.Version)
		}
		if snap.User == nil || snap.User.Name != "Alex" {
			t.Errorf("expected the profile, got %+v", snap.User)
		}
		if len(snap.Transactions) != 1 || len(snap.Goals) != 1 {
			t.Errorf("expected 1 transaction and 1 goal, got %d and %d",
				len(snap.Transactions), len(snap.Goals))
		}
	})

	t.Run("empty store exports empty lists and no user", func(t *testing.T) {
		s := openTestStore(t)

		snap, err := s.Export()
		testutil.AssertNoError(t, err)

		if snap.User != nil {
			t.Errorf("expected no user, got %+v", snap.User)
		}
		if snap.Transactions == nil || len(snap.Transactions) != 0 {
			t.Errorf("expected an empty transaction list, got %+v", snap.Transactions)
		}
	})

	t.Run("recovers the profile from the legacy session key", func(t *testing.T) {
		kv := kvstore.NewMemStore()
		s, err := Open(kv)
		testutil.AssertNoError(t, err)

		// The legacy key appears after open, e.g. written by an old
		// session layer still running alongside.
		if err := kv.Set("user", []byte(`{"name":"Legacy","email":"legacy@test.com"}`)); err != nil {
			t.Fatalf("failed to seed legacy key: %v", err)
		}

		snap, err := s.Export()
		testutil.AssertNoError(t, err)

		if snap.User == nil || snap.User.Name != "Legacy" {
			t.Errorf("expected the legacy profile, got %+v", snap.User)
		}

		// The canonical key is repaired as a side effect.
		user, err := s.User()
		testutil.AssertNoError(t, err)
		if user == nil || user.Name != "Legacy" {
			t.Errorf("expected the canonical key repaired, got %+v", user)
		}
	})
}

func TestStore_Import(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		source := openTestStore(t)
		testutil.AssertNoError(t, source.SaveUser(&models.User{Name: "Alex", Email: "alex@test.com"}))
		_, err := source.AddTransaction(models.Transaction{CategoryID: "1", Amount: 100})
		testutil.AssertNoError(t, err)
		_, err = source.AddGoal(models.Goal{Name: "Trip", TargetAmount: 5000})
		testutil.AssertNoError(t, err)

		snap, err := source.Export()
		testutil.AssertNoError(t, err)

		target := openTestStore(t)
		testutil.AssertNoError(t, target.Import(snap))

		user, err := target.User()
		testutil.AssertNoError(t, err)
		if user == nil || user.Name != "Alex" {
			t.Errorf("expected restored profile, got %+v", user)
		}
		txns, err := target.Transactions()
		testutil.AssertNoError(t, err)
		if len(txns) != 1 || txns[0].Amount != 100 {
			t.Errorf("expected restored transactions, got %+v", txns)
		}
		goals, err := target.Goals()
		testutil.AssertNoError(t, err)
		if len(goals) != 1 || goals[0].Name != "Trip" {
			t.Errorf("expected restored goals, got %+v", goals)
		}
	})

	t.Run("restored user is mirrored to the session key", func(t *testing.T) {
		kv := kvstore.NewMemStore()
		s, err := Open(kv)
		testutil.AssertNoError(t, err)

		snap := &backup.Snapshot{
			Version: backup.Version,
			User:    &models.User{Name: "Alex", Email: "alex@test.com"},
		}
		testutil.AssertNoError(t, s.Import(snap))

		data, ok, err := kv.Get("user")
		testutil.AssertNoError(t, err)
		if !ok || len(data) == 0 {
			t.Error("expected the session key to be written")
		}
	})

	t.Run("partial snapshot leaves absent sections untouched", func(t *testing.T) {
		s := openTestStore(t)
		_, err := s.AddGoal(models.Goal{Name: "Keep", TargetAmount: 100})
		testutil.AssertNoError(t, err)

		snap := &backup.Snapshot{
			Version:      backup.Version,
			Transactions: []models.Transaction{{CategoryID: "1", Amount: 10}},
		}
		testutil.AssertNoError(t, s.Import(snap))

		goals, err := s.Goals()
		testutil.AssertNoError(t, err)
		if len(goals) != 1 || goals[0].Name != "Keep" {
			t.Errorf("expected goals untouched, got %+v", goals)
		}
		txns, err := s.Transactions()
		testutil.AssertNoError(t, err)
		if len(txns) != 1 {
			t.Errorf("expected imported transactions, got %+v", txns)
		}
	})

	t.Run("validation failure leaves stored data unchanged", func(t *testing.T) {
		s := openTestStore(t)
		_, err := s.AddTransaction(models.Transaction{CategoryID: "1", Amount: 100})
		testutil.AssertNoError(t, err)

		bad := &backup.Snapshot{Transactions: []models.Transaction{}}
		testutil.AssertAppError(t, s.Import(bad), "BACKUP_MISSING_VERSION")

		empty := &backup.Snapshot{Version: backup.Version}
		testutil.AssertAppError(t, s.Import(empty), "BACKUP_EMPTY")

		txns, err := s.Transactions()
		testutil.AssertNoError(t, err)
		if len(txns) != 1 || txns[0].Amount != 100 {
			t.Errorf("expected stored data untouched, got %+v", txns)
		}
	})

	t.Run("imported transactions are stored without the category join", func(t *testing.T) {
		kv := kvstore.NewMemStore()
		s, err := Open(kv)
		testutil.AssertNoError(t, err)

		snap := &backup.Snapshot{
			Version: backup.Version,
			Transactions: []models.Transaction{
				{CategoryID: "1", Amount: 10, Category: &models.Category{Name: "Stale"}},
			},
		}
		testutil.AssertNoError(t, s.Import(snap))

		// Reads resolve against the live category table, not the
		// snapshot's embedded copy.
		txns, err := s.Transactions()
		testutil.AssertNoError(t, err)
		if txns[0].Category == nil || txns[0].Category.Name != "Food" {
			t.Errorf("expected a fresh category resolution, got %+v", txns[0].Category)
		}
	})
}
