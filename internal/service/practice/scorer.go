package practice

import (
	"math"
	"time"

	"github.com/heartmarshall/artikel-backend/internal/domain"
)

// Score derives the session summary from the complete record set. It is pure:
// the same records always give the same result.
//
// Timeout records count toward Total and Timeouts but are excluded from the
// latency statistics, which stay nil when every question timed out.
func Score(records []domain.AnswerRecord) (domain.SessionResult, error) {
	if len(records) == 0 {
		return domain.SessionResult{}, domain.ErrEmptySession
	}

	res := domain.SessionResult{Total: len(records)}

	var (
		sum      time.Duration
		answered int
		fastest  time.Duration
	)
	for _, r := range records {
		if r.Correct {
			res.Correct++
		}
		if r.TimedOut() {
			res.Timeouts++
			continue
		}
		if answered == 0 || r.Latency < fastest {
			fastest = r.Latency
		}
		sum += r.Latency
		answered++
	}

	res.Accuracy = percent(res.Correct, res.Total)

	if answered > 0 {
		avg := sum / time.Duration(answered)
		res.Fastest = &fastest
		res.Average = &avg
	}
	return res, nil
}

// percent returns 100*part/whole rounded to the nearest integer, halves away from zero.
func percent(part, whole int) int {
	return int(math.Round(100 * float64(part) / float64(whole)))
}
