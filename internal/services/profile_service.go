package services

import (
	"posada/internal/metrics"
	"posada/internal/models"
	"posada/internal/state"
)

// profileService handles the establishment profile.
type profileService struct {
	state *state.State
}

// NewProfileService creates a new ProfileServicer.
func NewProfileService(st *state.State) ProfileServicer {
	return &profileService{state: st}
}

// Profile returns the saved profile, with defaults for anything unset.
func (s *profileService) Profile() models.Profile {
	return s.state.Profile().WithDefaults()
}

// SaveProfile overwrites the profile wholesale. Empty fields take their
// default value, so there is never a half profile.
func (s *profileService) SaveProfile(fields models.Profile) (*models.Profile, error) {
	saved := fields.WithDefaults()

	flushErr := s.state.SetProfile(saved)
	warnDegraded("save_profile", flushErr)
	metrics.ObserveOperation("save_profile", nil)
	return &saved, nil
}
