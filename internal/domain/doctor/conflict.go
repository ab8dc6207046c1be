package doctor

import "github.com/medsched/medsched/pkg/weektime"

// agendaConflicts reports whether the candidate agenda collides with any of
// the doctor's existing agendas. Two agendas conflict when they share at
// least one week day and their time windows strictly overlap; touching
// boundaries (one ends exactly when the other starts) are allowed.
func agendaConflicts(candidate Agenda, existing []Agenda) (bool, error) {
	days := weektime.WeekDaysInRange(candidate.FromWeekDay, candidate.ToWeekDay)
	for _, other := range existing {
		shared := false
		for _, day := range days {
			if weektime.IsWeekDayInRange(day, other.FromWeekDay, other.ToWeekDay) {
				shared = true
				break
			}
		}
		if !shared {
			continue
		}
		overlap, err := weektime.RangesOverlap(candidate.FromTime, candidate.ToTime, other.FromTime, other.ToTime)
		if err != nil {
			return false, err
		}
		if overlap {
			return true, nil
		}
	}
	return false, nil
}
