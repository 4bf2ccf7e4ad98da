package domain

import (
	"time"

	"github.com/google/uuid"
)

// SessionSummary is the persisted, completed session as read back by the
// dashboard.
type SessionSummary struct {
	ID                 uuid.UUID
	CreatedAt          time.Time
	TotalQuestions     int
	SecondsPerQuestion int
	Correct            int
	Accuracy           int
	Timeouts           int
	Fastest            *time.Duration
	Average            *time.Duration
}

// TrendPoint is the average accuracy of one calendar day.
type TrendPoint struct {
	Date         time.Time
	Accuracy     int
	SessionCount int
}

// HeatmapDay is one cell of the activity calendar. AvgAccuracy is nil on
// days without sessions.
type HeatmapDay struct {
	Date        time.Time
	Count       int
	AvgAccuracy *int
}

// HeatmapMonth groups calendar cells under a label such as "Jan 26".
type HeatmapMonth struct {
	Label string
	Days  []HeatmapDay
}

// Dashboard holds aggregated practice statistics for one user.
type Dashboard struct {
	TotalSessions  int
	MeanAccuracy   int
	Streak         int
	Trend          []TrendPoint
	Heatmap        []HeatmapMonth
	RecentSessions []SessionSummary
}

// SessionDetails is one past session with its ordered answers.
type SessionDetails struct {
	Session PracticeSession
	Answers []SessionAnswer
}
