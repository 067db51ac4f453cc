package services

import (
	"sort"

	"workshift/app/models"
)

// ComposeFeed merges a calendar's shifts with its day notes into feed
// events ordered by (date, position). A shift on a date with a note
// carries the note's content as its description; otherwise the
// description is absent. Start/end instants are resolved through the
// shared overnight rule.
func ComposeFeed(shifts []models.Shift, notes []models.DayNote) ([]models.FeedEvent, error) {
	noteByDate := make(map[string]string, len(notes))
	for _, n := range notes {
		noteByDate[DateOnly(n.NoteDate).Format(DateLayout)] = n.Content
	}

	ordered := make([]models.Shift, len(shifts))
	copy(ordered, shifts)
	sort.SliceStable(ordered, func(i, j int) bool {
		di, dj := DateOnly(ordered[i].ShiftDate), DateOnly(ordered[j].ShiftDate)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return ordered[i].Position < ordered[j].Position
	})

	events := make([]models.FeedEvent, 0, len(ordered))
	for _, s := range ordered {
		startAt, endAt, err := ResolveDateTimes(s.ShiftDate, s.StartTime, s.EndTime)
		if err != nil {
			return nil, err
		}

		ev := models.FeedEvent{
			ID:        s.ID,
			Summary:   s.Title,
			Date:      DateOnly(s.ShiftDate).Format(DateLayout),
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Position:  s.Position,
			Color:     s.Color,
			Start:     startAt,
			End:       endAt,
		}
		if content, ok := noteByDate[ev.Date]; ok {
			ev.Description = &content
		}
		events = append(events, ev)
	}
	return events, nil
}
