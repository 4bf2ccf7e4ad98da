package dashboard

import (
	"math"
	"sort"
	"time"

	"github.com/heartmarshall/artikel-backend/internal/domain"
)

const heatmapLabelLayout = "Jan 06"

// Options sizes the windows of the aggregation.
type Options struct {
	TrendDays      int
	HeatmapMonths  int
	RecentSessions int
}

// Aggregate builds the dashboard from completed sessions. Calendar days are
// taken in loc; now decides which day is today.
func Aggregate(sessions []domain.SessionSummary, now time.Time, loc *time.Location, opts Options) domain.Dashboard {
	sorted := make([]domain.SessionSummary, len(sessions))
	copy(sorted, sessions)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].CreatedAt.After(sorted[j].CreatedAt) })

	days := groupByDay(sorted, loc)
	today := DayStart(now, loc)

	return domain.Dashboard{
		TotalSessions:  len(sorted),
		MeanAccuracy:   meanAccuracy(sorted),
		Streak:         calculateStreak(days, today, loc),
		Trend:          buildTrend(days, loc, opts.TrendDays),
		Heatmap:        buildHeatmap(days, today, loc, opts.HeatmapMonths),
		RecentSessions: sorted[:min(len(sorted), max(opts.RecentSessions, 0))],
	}
}

type dayStats struct {
	count int
	sum   int
}

func (d dayStats) avg() int {
	return int(math.Round(float64(d.sum) / float64(d.count)))
}

func groupByDay(sessions []domain.SessionSummary, loc *time.Location) map[string]dayStats {
	days := make(map[string]dayStats)
	for _, s := range sessions {
		k := dayKey(s.CreatedAt, loc)
		d := days[k]
		d.count++
		d.sum += s.Accuracy
		days[k] = d
	}
	return days
}

func meanAccuracy(sessions []domain.SessionSummary) int {
	if len(sessions) == 0 {
		return 0
	}
	sum := 0
	for _, s := range sessions {
		sum += s.Accuracy
	}
	return int(math.Round(float64(sum) / float64(len(sessions))))
}

// calculateStreak counts consecutive days with at least one session, walking
// back from today. No session today means no streak.
func calculateStreak(days map[string]dayStats, today time.Time, loc *time.Location) int {
	streak := 0
	for d := today; ; d = d.AddDate(0, 0, -1) {
		if _, ok := days[dayKey(d, loc)]; !ok {
			return streak
		}
		streak++
	}
}

// buildTrend returns the average accuracy per day for the most recent limit
// days that have sessions, oldest first.
func buildTrend(days map[string]dayStats, loc *time.Location, limit int) []domain.TrendPoint {
	keys := make([]string, 0, len(days))
	for k := range days {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if limit >= 0 && len(keys) > limit {
		keys = keys[len(keys)-limit:]
	}

	trend := make([]domain.TrendPoint, 0, len(keys))
	for _, k := range keys {
		date, err := time.ParseInLocation(dayKeyLayout, k, loc)
		if err != nil {
			continue
		}
		d := days[k]
		trend = append(trend, domain.TrendPoint{Date: date, Accuracy: d.avg(), SessionCount: d.count})
	}
	return trend
}

// buildHeatmap returns one cell per day from today minus months through
// today, grouped by month label in chronological order.
func buildHeatmap(days map[string]dayStats, today time.Time, loc *time.Location, months int) []domain.HeatmapMonth {
	var out []domain.HeatmapMonth

	for d := today.AddDate(0, -months, 0); !d.After(today); d = d.AddDate(0, 0, 1) {
		cell := domain.HeatmapDay{Date: d}
		if stats, ok := days[dayKey(d, loc)]; ok {
			avg := stats.avg()
			cell.Count = stats.count
			cell.AvgAccuracy = &avg
		}

		label := d.Format(heatmapLabelLayout)
		if n := len(out); n == 0 || out[n-1].Label != label {
			out = append(out, domain.HeatmapMonth{Label: label})
		}
		out[len(out)-1].Days = append(out[len(out)-1].Days, cell)
	}
	return out
}
