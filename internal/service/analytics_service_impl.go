package service

import (
	"context"
	"math"
	"time"

	"focuswave/internal/repository"
)

type analyticsService struct {
	tasks    repository.TaskRepo
	moods    repository.MoodLogRepo
	sessions repository.SessionRepo
	observer UseCaseObserver
	now      func() time.Time
	loc      *time.Location
}

func NewAnalyticsService(tasks repository.TaskRepo, moods repository.MoodLogRepo, sessions repository.SessionRepo, observers ...UseCaseObserver) AnalyticsService {
	return &analyticsService{
		tasks:    tasks,
		moods:    moods,
		sessions: sessions,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
		loc:      time.UTC,
	}
}

func (s *analyticsService) FocusMinutes(ctx context.Context, userID string, days int) ([]DayMinutes, error) {
	since, keys := dayWindow(s.now(), days, s.loc)
	byDay, err := s.sessions.FocusMinutesByDay(ctx, userID, since)
	if err != nil {
		return nil, err
	}
	out := make([]DayMinutes, 0, len(keys))
	for _, key := range keys {
		out = append(out, DayMinutes{Date: key, Minutes: int(math.Round(byDay[key]))})
	}
	return out, nil
}

func (s *analyticsService) TaskThroughput(ctx context.Context, userID string, days int) ([]ThroughputDay, error) {
	since, keys := dayWindow(s.now(), days, s.loc)
	created, err := s.tasks.CreatedCountByDay(ctx, userID, since)
	if err != nil {
		return nil, err
	}
	completed, err := s.tasks.CompletedCountByDay(ctx, userID, since)
	if err != nil {
		return nil, err
	}
	out := make([]ThroughputDay, 0, len(keys))
	for _, key := range keys {
		out = append(out, ThroughputDay{Date: key, Created: created[key], Completed: completed[key]})
	}
	return out, nil
}

func (s *analyticsService) MoodFocus(ctx context.Context, userID string, days int) (report *MoodFocusReport, err error) {
	startedAt := s.now().UTC()
	fields := map[string]any{"days": days}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "mood-focus-report",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	since, keys := dayWindow(s.now(), days, s.loc)

	aggs, err := s.moods.AggregateMoodFocus(ctx, userID, since)
	if err != nil {
		return nil, err
	}
	daily, err := s.moods.DailyMoodFocus(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	fields["moods"] = len(aggs)
	report = &MoodFocusReport{
		Aggregated: make([]MoodAgg, 0, len(aggs)),
		Daily:      make([]MoodDaily, 0, len(daily)),
		TimeRange: TimeRange{
			Days:      len(keys),
			StartDate: keys[0],
			EndDate:   keys[len(keys)-1],
		},
	}
	for _, a := range aggs {
		report.Aggregated = append(report.Aggregated, MoodAgg{
			Mood:              string(a.Mood),
			AvgFocusMinutes:   round1(a.AvgFocusMinutes),
			MaxFocusMinutes:   round1(a.MaxFocusMinutes),
			MinFocusMinutes:   round1(a.MinFocusMinutes),
			MoodDays:          a.MoodDays,
			FocusSessions:     a.FocusSessions,
			TotalFocusMinutes: round1(a.TotalFocusMinutes),
		})
	}
	for _, d := range daily {
		report.Daily = append(report.Daily, MoodDaily{
			Date:         d.Date,
			Mood:         string(d.Mood),
			FocusMinutes: round1(d.FocusMinutes),
			SessionCount: d.SessionCount,
		})
	}
	report.Insights = buildMoodInsights(report.Aggregated, report.Daily, len(keys))
	return report, nil
}

// buildMoodInsights derives the headline takeaways from the aggregated
// rows. Aggregated input is already sorted by average focus descending.
func buildMoodInsights(aggs []MoodAgg, daily []MoodDaily, windowDays int) MoodInsights {
	insights := MoodInsights{
		TotalDataPoints: len(daily),
		TotalDays:       windowDays,
	}
	if len(aggs) == 0 {
		return insights
	}

	insights.BestMoodForFocus = &aggs[0]
	insights.WorstMoodForFocus = &aggs[len(aggs)-1]

	var totalMinutes float64
	var totalDays int
	for i := range aggs {
		totalMinutes += aggs[i].TotalFocusMinutes
		totalDays += aggs[i].MoodDays
	}
	if totalDays > 0 {
		insights.AverageFocusOverall = round1(totalMinutes / float64(totalDays))
	}

	// The most consistent mood is the one whose daily focus spread is
	// smallest, ignoring moods with no recorded sessions.
	for i := range aggs {
		a := &aggs[i]
		if a.FocusSessions == 0 {
			continue
		}
		if insights.StrongestCorrelation == nil {
			insights.StrongestCorrelation = a
			continue
		}
		best := insights.StrongestCorrelation
		if a.MaxFocusMinutes-a.MinFocusMinutes < best.MaxFocusMinutes-best.MinFocusMinutes {
			insights.StrongestCorrelation = a
		}
	}
	return insights
}
