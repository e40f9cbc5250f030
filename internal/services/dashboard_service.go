package services

import (
	"time"

	apperrors "posada/internal/errors"
	"posada/internal/models"
	"posada/internal/reports"
	"posada/internal/state"
)

// dashboardService exposes the derived dashboard views over a consistent
// snapshot of the domain state. All computation happens in the pure
// reports package; this layer only handles snapshotting and date parsing.
type dashboardService struct {
	state *state.State
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(st *state.State) DashboardServicer {
	return &dashboardService{state: st}
}

// Today returns the current calendar day's transaction count and revenue.
func (s *dashboardService) Today() reports.TodayMetrics {
	return reports.Today(s.state.Transactions(), time.Now())
}

// Series returns the daily transaction totals for the given YYYY-MM-DD
// range. Omitting both bounds selects the default window, the 8 days ending
// today; supplying only one of them is an error rather than a silent
// fallback.
func (s *dashboardService) Series(from, to string) ([]reports.DayTotal, error) {
	if (from == "") != (to == "") {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "from and to must be provided together")
	}

	start, end := reports.DefaultRange(time.Now())
	if from != "" {
		var err error
		start, err = time.ParseInLocation("2006-01-02", from, time.Local)
		if err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "from must be a YYYY-MM-DD date")
		}
		end, err = time.ParseInLocation("2006-01-02", to, time.Local)
		if err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "to must be a YYYY-MM-DD date")
		}
	}
	return reports.DailySeries(s.state.Transactions(), start, end), nil
}

// ProfitByCategory returns per-category revenue totals.
func (s *dashboardService) ProfitByCategory() map[models.Category]float64 {
	items, transactions := s.state.Snapshot()
	return reports.ProfitByCategory(items, transactions)
}
