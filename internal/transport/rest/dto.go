package rest

import (
	"time"

	"github.com/heartmarshall/artikel-backend/internal/domain"
	"github.com/heartmarshall/artikel-backend/internal/service/practice"
)

const dateLayout = "2006-01-02"

// ---------------------------------------------------------------------------
// Nouns
// ---------------------------------------------------------------------------

type nounResponse struct {
	ID          string   `json:"id"`
	Word        string   `json:"word"`
	Article     string   `json:"article"`
	Display     string   `json:"display"`
	Translation string   `json:"translation"`
	Rule        *string  `json:"rule,omitempty"`
	Examples    []string `json:"examples"`
	Category    *string  `json:"category,omitempty"`
}

func toNounResponse(n domain.Noun) nounResponse {
	examples := n.Examples
	if examples == nil {
		examples = []string{}
	}
	return nounResponse{
		ID:          n.ID.String(),
		Word:        n.Word,
		Article:     n.Article.String(),
		Display:     n.Display(),
		Translation: n.Translation,
		Rule:        n.Rule,
		Examples:    examples,
		Category:    n.Category,
	}
}

// questionResponse omits the article: it is the answer.
type questionResponse struct {
	Position    int     `json:"position"`
	NounID      string  `json:"nounId"`
	Word        string  `json:"word"`
	Translation string  `json:"translation"`
	Category    *string `json:"category,omitempty"`
}

func toQuestionResponse(q *domain.Question) *questionResponse {
	if q == nil {
		return nil
	}
	return &questionResponse{
		Position:    q.Position,
		NounID:      q.Noun.ID.String(),
		Word:        q.Noun.Word,
		Translation: q.Noun.Translation,
		Category:    q.Noun.Category,
	}
}

// ---------------------------------------------------------------------------
// Practice
// ---------------------------------------------------------------------------

type startSessionRequest struct {
	QuestionCount      int `json:"questionCount"`
	SecondsPerQuestion int `json:"secondsPerQuestion"`
}

type submitAnswerRequest struct {
	Position *int   `json:"position"`
	Article  string `json:"article"`
}

type answerResponse struct {
	Position   int       `json:"position"`
	NounID     string    `json:"nounId"`
	Submitted  *string   `json:"submitted"`
	Correct    bool      `json:"correct"`
	TimedOut   bool      `json:"timedOut"`
	LatencyMs  int64     `json:"latencyMs"`
	AnsweredAt time.Time `json:"answeredAt"`
	Sync       string    `json:"sync,omitempty"`
}

func toAnswerResponse(a domain.AnswerRecord) answerResponse {
	resp := answerResponse{
		Position:   a.Position,
		NounID:     a.NounID.String(),
		Correct:    a.Correct,
		TimedOut:   a.TimedOut(),
		LatencyMs:  a.Latency.Milliseconds(),
		AnsweredAt: a.AnsweredAt,
		Sync:       a.Sync.String(),
	}
	if a.Submitted != nil {
		s := a.Submitted.String()
		resp.Submitted = &s
	}
	return resp
}

type resultResponse struct {
	Total     int    `json:"total"`
	Correct   int    `json:"correct"`
	Accuracy  int    `json:"accuracy"`
	Timeouts  int    `json:"timeouts"`
	FastestMs *int64 `json:"fastestMs"`
	AverageMs *int64 `json:"averageMs"`
}

func toResultResponse(r *domain.SessionResult) *resultResponse {
	if r == nil {
		return nil
	}
	return &resultResponse{
		Total:     r.Total,
		Correct:   r.Correct,
		Accuracy:  r.Accuracy,
		Timeouts:  r.Timeouts,
		FastestMs: millis(r.Fastest),
		AverageMs: millis(r.Average),
	}
}

type sessionResponse struct {
	ID                 string            `json:"id"`
	Status             string            `json:"status"`
	QuestionCount      int               `json:"questionCount"`
	SecondsPerQuestion int               `json:"secondsPerQuestion"`
	StartedAt          time.Time         `json:"startedAt"`
	Position           int               `json:"position"`
	Total              int               `json:"total"`
	Current            *questionResponse `json:"current"`
	RemainingMs        int64             `json:"remainingMs"`
	Answers            []answerResponse  `json:"answers"`
	Result             *resultResponse   `json:"result"`
	ResultSynced       bool              `json:"resultSynced"`
	PendingSync        int               `json:"pendingSync"`
	Failure            string            `json:"failure,omitempty"`
}

func toSessionResponse(s practice.Snapshot) sessionResponse {
	answers := make([]answerResponse, 0, len(s.Answers))
	for _, a := range s.Answers {
		answers = append(answers, toAnswerResponse(a))
	}
	return sessionResponse{
		ID:                 s.SessionID.String(),
		Status:             s.Status.String(),
		QuestionCount:      s.Config.QuestionCount,
		SecondsPerQuestion: s.Config.SecondsPerQuestion,
		StartedAt:          s.StartedAt,
		Position:           s.Position,
		Total:              s.Total,
		Current:            toQuestionResponse(s.Current),
		RemainingMs:        s.Remaining.Milliseconds(),
		Answers:            answers,
		Result:             toResultResponse(s.Result),
		ResultSynced:       s.ResultSynced,
		PendingSync:        s.PendingSync,
		Failure:            s.Failure,
	}
}

type submitAnswerResponse struct {
	Answer         answerResponse    `json:"answer"`
	CorrectArticle string            `json:"correctArticle"`
	Next           *questionResponse `json:"next"`
	Completed      bool              `json:"completed"`
	Result         *resultResponse   `json:"result"`
	ResultSynced   bool              `json:"resultSynced"`
}

func toSubmitAnswerResponse(o practice.SubmitOutcome) submitAnswerResponse {
	return submitAnswerResponse{
		Answer:         toAnswerResponse(o.Record),
		CorrectArticle: o.Article.String(),
		Next:           toQuestionResponse(o.Next),
		Completed:      o.Completed,
		Result:         toResultResponse(o.Result),
		ResultSynced:   o.ResultSynced,
	}
}

// ---------------------------------------------------------------------------
// Dashboard
// ---------------------------------------------------------------------------

type trendPointResponse struct {
	Date         string `json:"date"`
	Accuracy     int    `json:"accuracy"`
	SessionCount int    `json:"sessionCount"`
}

type heatmapDayResponse struct {
	Date        string `json:"date"`
	Count       int    `json:"count"`
	AvgAccuracy *int   `json:"avgAccuracy"`
}

type heatmapMonthResponse struct {
	Label string               `json:"label"`
	Days  []heatmapDayResponse `json:"days"`
}

type sessionSummaryResponse struct {
	ID                 string    `json:"id"`
	CreatedAt          time.Time `json:"createdAt"`
	TotalQuestions     int       `json:"totalQuestions"`
	SecondsPerQuestion int       `json:"secondsPerQuestion"`
	Correct            int       `json:"correct"`
	Accuracy           int       `json:"accuracy"`
	Timeouts           int       `json:"timeouts"`
	FastestMs          *int64    `json:"fastestMs"`
	AverageMs          *int64    `json:"averageMs"`
}

type dashboardResponse struct {
	TotalSessions  int                      `json:"totalSessions"`
	MeanAccuracy   int                      `json:"meanAccuracy"`
	Streak         int                      `json:"streak"`
	Trend          []trendPointResponse     `json:"trend"`
	Heatmap        []heatmapMonthResponse   `json:"heatmap"`
	RecentSessions []sessionSummaryResponse `json:"recentSessions"`
}

func toDashboardResponse(d *domain.Dashboard) dashboardResponse {
	resp := dashboardResponse{
		TotalSessions:  d.TotalSessions,
		MeanAccuracy:   d.MeanAccuracy,
		Streak:         d.Streak,
		Trend:          make([]trendPointResponse, 0, len(d.Trend)),
		Heatmap:        make([]heatmapMonthResponse, 0, len(d.Heatmap)),
		RecentSessions: make([]sessionSummaryResponse, 0, len(d.RecentSessions)),
	}
	for _, p := range d.Trend {
		resp.Trend = append(resp.Trend, trendPointResponse{
			Date:         p.Date.Format(dateLayout),
			Accuracy:     p.Accuracy,
			SessionCount: p.SessionCount,
		})
	}
	for _, m := range d.Heatmap {
		month := heatmapMonthResponse{Label: m.Label, Days: make([]heatmapDayResponse, 0, len(m.Days))}
		for _, day := range m.Days {
			month.Days = append(month.Days, heatmapDayResponse{
				Date:        day.Date.Format(dateLayout),
				Count:       day.Count,
				AvgAccuracy: day.AvgAccuracy,
			})
		}
		resp.Heatmap = append(resp.Heatmap, month)
	}
	for _, s := range d.RecentSessions {
		resp.RecentSessions = append(resp.RecentSessions, sessionSummaryResponse{
			ID:                 s.ID.String(),
			CreatedAt:          s.CreatedAt,
			TotalQuestions:     s.TotalQuestions,
			SecondsPerQuestion: s.SecondsPerQuestion,
			Correct:            s.Correct,
			Accuracy:           s.Accuracy,
			Timeouts:           s.Timeouts,
			FastestMs:          millis(s.Fastest),
			AverageMs:          millis(s.Average),
		})
	}
	return resp
}

type sessionAnswerResponse struct {
	answerResponse
	Noun *nounResponse `json:"noun"`
}

type sessionDetailsResponse struct {
	ID                 string                  `json:"id"`
	Status             string                  `json:"status"`
	QuestionCount      int                     `json:"questionCount"`
	SecondsPerQuestion int                     `json:"secondsPerQuestion"`
	StartedAt          time.Time               `json:"startedAt"`
	CompletedAt        *time.Time              `json:"completedAt"`
	Result             *resultResponse         `json:"result"`
	Answers            []sessionAnswerResponse `json:"answers"`
}

func toSessionDetailsResponse(d *domain.SessionDetails) sessionDetailsResponse {
	s := d.Session
	resp := sessionDetailsResponse{
		ID:                 s.ID.String(),
		Status:             s.Status.String(),
		QuestionCount:      s.Config.QuestionCount,
		SecondsPerQuestion: s.Config.SecondsPerQuestion,
		StartedAt:          s.StartedAt,
		CompletedAt:        s.CompletedAt,
		Result:             toResultResponse(s.Result),
		Answers:            make([]sessionAnswerResponse, 0, len(d.Answers)),
	}
	for _, a := range d.Answers {
		item := sessionAnswerResponse{answerResponse: toAnswerResponse(a.AnswerRecord)}
		item.Sync = ""
		if a.Noun != nil {
			n := toNounResponse(*a.Noun)
			item.Noun = &n
		}
		resp.Answers = append(resp.Answers, item)
	}
	return resp
}

func millis(d *time.Duration) *int64 {
	if d == nil {
		return nil
	}
	ms := d.Milliseconds()
	return &ms
}
