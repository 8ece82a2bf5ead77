// Package analysis derives match-outcome facts from raw event sequences and
// aggregates resolved matches into competition-wide reports.
package analysis

import (
	"errors"

	"github.com/pable/go-footy-stats/internal/model"
)

// ErrEmptyEventSequence reports a match with no loadable events; such a match
// cannot be classified at all.
var ErrEmptyEventSequence = errors.New("empty event sequence")

// IsScoringShot reports whether an event is a successfully converted shot.
func IsScoringShot(e model.Event) bool {
	return e.Type == "Shot" && e.ShotOutcome == "Goal"
}

// TerminalPeriod returns the highest period value across the event sequence.
func TerminalPeriod(events []model.Event) (int, error) {
	if len(events) == 0 {
		return 0, ErrEmptyEventSequence
	}
	max := events[0].Period
	for _, e := range events[1:] {
		if e.Period > max {
			max = e.Period
		}
	}
	return max, nil
}

// ClassifyResult maps the terminal period onto a result type: periods 1-2
// mean the match ended in regulation, 3-4 in extra time, 5 in a shootout.
func ClassifyResult(events []model.Event) (model.ResultType, error) {
	period, err := TerminalPeriod(events)
	if err != nil {
		return model.ResultUnknown, err
	}
	switch {
	case period <= model.LastRegulationPeriod:
		return model.FullTime, nil
	case period <= model.LastExtraTimePeriod:
		return model.ExtraTime, nil
	default:
		return model.Shootout, nil
	}
}
