package services

import (
	"testing"
	"time"

	"posada/internal/models"
	"posada/internal/state"
	"posada/internal/testutil"
)

func TestResetAll(t *testing.T) {
	t.Run("requires_confirmation", func(t *testing.T) {
		st := testutil.SetupTestState(t)
		svc := NewAdminService(st)

		err := svc.ResetAll(false)
		testutil.AssertAppError(t, err, "RESET_NOT_CONFIRMED")
	})

	t.Run("clears_everything_but_the_session", func(t *testing.T) {
		st := testutil.SetupTestState(t)
		svc := NewAdminService(st)

		item := testutil.CreateTestItem(t, st, 5.00, models.CategoryFood)
		testutil.CreateTestTransaction(t, st, item.ID, 5.00, time.Now())
		testutil.AssertNoError(t, st.SetProfile(models.Profile{Name: "Gone"}))
		testutil.AssertNoError(t, st.SetSession(models.Session{Username: "admin"}))

		testutil.AssertNoError(t, svc.ResetAll(true))

		if len(st.Items()) != 0 || len(st.Transactions()) != 0 {
			t.Error("expected collections cleared")
		}
		if st.Profile() != models.DefaultProfile() {
			t.Error("expected profile back to defaults")
		}
		if sess := st.Session(); sess == nil || sess.Username != "admin" {
			t.Errorf("expected session kept, got %+v", sess)
		}
	})
}

func TestDegraded(t *testing.T) {
	t.Run("reflects_last_flush", func(t *testing.T) {
		failing := &testutil.FailingStore{Inner: testutil.SetupTestStore(t)}
		st, err := state.New(failing)
		testutil.AssertNoError(t, err)
		svc := NewAdminService(st)

		if svc.Degraded() {
			t.Error("expected healthy before any failure")
		}

		failing.Fail = true
		_ = st.SetProfile(models.Profile{Name: "Unsaved"})
		if !svc.Degraded() {
			t.Error("expected degraded after failed flush")
		}

		failing.Fail = false
		testutil.AssertNoError(t, st.SetProfile(models.Profile{Name: "Saved"}))
		if svc.Degraded() {
			t.Error("expected healthy after successful flush")
		}
	})
}
