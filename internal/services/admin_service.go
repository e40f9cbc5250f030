package services

import (
	apperrors "posada/internal/errors"
	"posada/internal/logger"
	"posada/internal/metrics"
	"posada/internal/state"
)

// adminService handles maintenance operations.
type adminService struct {
	state *state.State
}

// NewAdminService creates a new AdminServicer.
func NewAdminService(st *state.State) AdminServicer {
	return &adminService{state: st}
}

// ResetAll clears the catalog, transaction log, and profile, both in memory
// and in the store. The operation is irreversible, so it refuses to run
// without the caller's explicit confirmation.
func (s *adminService) ResetAll(confirm bool) (err error) {
	defer func() { metrics.ObserveOperation("reset_all", err) }()

	if !confirm {
		return apperrors.ErrResetNotConfirmed
	}

	flushErr := s.state.ResetAll()
	warnDegraded("reset_all", flushErr)
	logger.Get().Infow("all data reset")
	return nil
}

// Degraded reports whether the most recent flush to the store failed,
// meaning changes currently live in memory only.
func (s *adminService) Degraded() bool {
	return s.state.FlushErr() != nil
}
