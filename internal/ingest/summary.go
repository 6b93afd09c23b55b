package ingest

import (
	"errors"
	"fmt"
	"time"

	"github.com/jakefish18/wanikani-parser/internal/subject"
)

// UnitError records the failure of one detail page.
type UnitError struct {
	URL string
	Err error
}

func (e UnitError) Error() string {
	return fmt.Sprintf("%s: %v", e.URL, e.Err)
}

func (e UnitError) Unwrap() error {
	return e.Err
}

// TierResult counts what happened to the links of one difficulty tier.
// Skipped covers links already stored before the tier started as well as
// units that lost an insert race to another writer.
type TierResult struct {
	Difficulty subject.Difficulty
	Total      int
	Scheduled  int
	Created    int
	Skipped    int
	Failed     int
	Failures   []UnitError
}

// Summary is the outcome of one ingestion run over every configured tier.
type Summary struct {
	RunID      string
	Kind       subject.Kind
	StartedAt  time.Time
	FinishedAt time.Time
	Tiers      []TierResult
}

func (s *Summary) Total() int {
	return s.sum(func(t TierResult) int { return t.Total })
}

func (s *Summary) Scheduled() int {
	return s.sum(func(t TierResult) int { return t.Scheduled })
}

func (s *Summary) Created() int {
	return s.sum(func(t TierResult) int { return t.Created })
}

func (s *Summary) Skipped() int {
	return s.sum(func(t TierResult) int { return t.Skipped })
}

func (s *Summary) Failed() int {
	return s.sum(func(t TierResult) int { return t.Failed })
}

func (s *Summary) sum(field func(TierResult) int) int {
	total := 0
	for _, t := range s.Tiers {
		total += field(t)
	}
	return total
}

// Failures returns every unit failure of the run in tier order.
func (s *Summary) Failures() []UnitError {
	var failures []UnitError
	for _, t := range s.Tiers {
		failures = append(failures, t.Failures...)
	}
	return failures
}

// Err joins the unit failures of the run, or returns nil when every unit succeeded.
func (s *Summary) Err() error {
	failures := s.Failures()
	if len(failures) == 0 {
		return nil
	}
	errs := make([]error, len(failures))
	for i, f := range failures {
		errs[i] = f
	}
	return errors.Join(errs...)
}
