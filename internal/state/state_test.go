package state_test

import (
	"testing"
	"time"

	"posada/internal/models"
	"posada/internal/state"
	"posada/internal/store"
	"posada/internal/testutil"
)

func TestNew(t *testing.T) {
	t.Run("empty_store", func(t *testing.T) {
		st := testutil.SetupTestState(t)

		if len(st.Items()) != 0 {
			t.Error("expected empty catalog")
		}
		if len(st.Transactions()) != 0 {
			t.Error("expected empty transaction log")
		}
		if st.Session() != nil {
			t.Error("expected no session")
		}
		if got := st.Profile(); got != models.DefaultProfile() {
			t.Errorf("expected default profile, got %+v", got)
		}
	})

	t.Run("loads_persisted_snapshots", func(t *testing.T) {
		s := testutil.SetupTestStore(t)
		testutil.AssertNoError(t, s.Save(store.KeyItems, []models.Item{
			{ID: 7, Name: "Tea", Price: 2.00, Category: models.CategoryDrink},
		}))
		testutil.AssertNoError(t, s.Save(store.KeyCurrentUser, models.Session{Username: "admin"}))

		st, err := state.New(s)
		testutil.AssertNoError(t, err)

		items := st.Items()
		if len(items) != 1 || items[0].Name != "Tea" {
			t.Fatalf("expected loaded catalog, got %+v", items)
		}
		sess := st.Session()
		if sess == nil || sess.Username != "admin" {
			t.Errorf("expected restored session, got %+v", sess)
		}
	})
}

func TestFlush(t *testing.T) {
	t.Run("mutations_survive_reload", func(t *testing.T) {
		s := testutil.SetupTestStore(t)
		st, err := state.New(s)
		testutil.AssertNoError(t, err)

		item := testutil.CreateTestItemWithName(t, st, "Coffee", 3.50, models.CategoryDrink)
		testutil.CreateTestTransaction(t, st, item.ID, item.Price, time.Now())
		testutil.AssertNoError(t, st.SetProfile(models.Profile{Name: "Posada Inn"}))

		reloaded, err := state.New(s)
		testutil.AssertNoError(t, err)

		if len(reloaded.Items()) != 1 {
			t.Error("expected catalog to survive reload")
		}
		if len(reloaded.Transactions()) != 1 {
			t.Error("expected transaction log to survive reload")
		}
		if reloaded.Profile().Name != "Posada Inn" {
			t.Errorf("expected profile to survive reload, got %q", reloaded.Profile().Name)
		}
	})

	t.Run("failed_flush_keeps_memory_authoritative", func(t *testing.T) {
		failing := &testutil.FailingStore{Inner: testutil.SetupTestStore(t)}
		st, err := state.New(failing)
		testutil.AssertNoError(t, err)

		failing.Fail = true
		err = st.UpdateItems(func(items []models.Item) []models.Item {
			return append(items, models.Item{ID: st.NextID(), Name: "Soup", Price: 4.00, Category: models.CategoryFood})
		})
		testutil.AssertAppError(t, err, "PERSIST_DEGRADED")

		if len(st.Items()) != 1 {
			t.Error("expected mutation to stick despite the failed flush")
		}
		if st.FlushErr() == nil {
			t.Error("expected FlushErr to report degraded mode")
		}

		// A later successful flush clears the degraded flag.
		failing.Fail = false
		testutil.AssertNoError(t, st.SetProfile(models.Profile{Name: "Back"}))
		if st.FlushErr() != nil {
			t.Error("expected degraded flag to clear after a good flush")
		}
	})
}

func TestNextID(t *testing.T) {
	t.Run("unique_and_increasing", func(t *testing.T) {
		st := testutil.SetupTestState(t)

		seen := make(map[int64]bool)
		var prev int64
		for i := 0; i < 1000; i++ {
			id := st.NextID()
			if seen[id] {
				t.Fatalf("duplicate id %d after %d generations", id, i)
			}
			seen[id] = true
			if id <= prev {
				t.Fatalf("expected increasing ids, got %d after %d", id, prev)
			}
			prev = id
		}
	})
}

func TestSession(t *testing.T) {
	t.Run("set_and_clear", func(t *testing.T) {
		s := testutil.SetupTestStore(t)
		st, err := state.New(s)
		testutil.AssertNoError(t, err)

		testutil.AssertNoError(t, st.SetSession(models.Session{Username: "admin"}))
		if sess := st.Session(); sess == nil || sess.Username != "admin" {
			t.Fatalf("expected session, got %+v", sess)
		}

		testutil.AssertNoError(t, st.ClearSession())
		if st.Session() != nil {
			t.Error("expected session cleared")
		}

		var persisted models.Session
		found, err := s.Load(store.KeyCurrentUser, &persisted)
		testutil.AssertNoError(t, err)
		if found {
			t.Error("expected persisted session removed")
		}
	})
}

func TestResetAll(t *testing.T) {
	t.Run("clears_data_but_keeps_session", func(t *testing.T) {
		s := testutil.SetupTestStore(t)
		st, err := state.New(s)
		testutil.AssertNoError(t, err)

		item := testutil.CreateTestItem(t, st, 5.00, models.CategoryFood)
		testutil.CreateTestTransaction(t, st, item.ID, item.Price, time.Now())
		testutil.AssertNoError(t, st.SetProfile(models.Profile{Name: "Gone Soon"}))
		testutil.AssertNoError(t, st.SetSession(models.Session{Username: "admin"}))

		testutil.AssertNoError(t, st.ResetAll())

		if len(st.Items()) != 0 || len(st.Transactions()) != 0 {
			t.Error("expected collections cleared")
		}
		if got := st.Profile(); got != models.DefaultProfile() {
			t.Errorf("expected profile back to defaults, got %+v", got)
		}
		if sess := st.Session(); sess == nil || sess.Username != "admin" {
			t.Errorf("expected session to survive reset, got %+v", sess)
		}

		// The cleared snapshots are gone from the store too.
		reloaded, err := state.New(s)
		testutil.AssertNoError(t, err)
		if len(reloaded.Items()) != 0 {
			t.Error("expected empty catalog after reload")
		}
		if sess := reloaded.Session(); sess == nil || sess.Username != "admin" {
			t.Errorf("expected session to survive reload, got %+v", sess)
		}
	})
}

func TestCopySemantics(t *testing.T) {
	t.Run("returned_slices_are_copies", func(t *testing.T) {
		st := testutil.SetupTestState(t)
		testutil.CreateTestItemWithName(t, st, "Original", 1.00, models.CategoryOther)

		items := st.Items()
		items[0].Name = "Mutated"

		if st.Items()[0].Name != "Original" {
			t.Error("expected internal state to be unaffected by caller mutation")
		}
	})
}
