package service

import "time"

// SetClock replaces the time source used to stamp submissions
func (s *SubmissionService) SetClock(now func() time.Time) {
	s.now = now
}
