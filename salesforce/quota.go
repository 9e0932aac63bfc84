package salesforce

import (
	"fmt"
	"regexp"
	"strconv"
)

const (
	LimitInfoHeader = "Sforce-Limit-Info"

	DefaultQuotaPercentTotal  = 80.0
	DefaultQuotaPercentPerRun = 25.0

	quotaTotalDescription  = "total"
	quotaPerRunDescription = "per run"
)

var apiUsagePattern = regexp.MustCompile(`api-usage=(\d+)/(\d+)`)

type quotaTracker struct {
	percentTotal  float64
	percentPerRun float64
	attempted     int
}

func newQuotaTracker(percentTotal, percentPerRun float64) *quotaTracker {
	if percentTotal <= 0 {
		percentTotal = DefaultQuotaPercentTotal
	}
	if percentPerRun <= 0 {
		percentPerRun = DefaultQuotaPercentPerRun
	}
	return &quotaTracker{percentTotal: percentTotal, percentPerRun: percentPerRun}
}

// check compares the usage reported by the limit header against the configured ceilings.
// A missing or malformed header is not an error.
func (q *quotaTracker) check(limitInfo string) error {
	used, allotted, ok := parseAPIUsage(limitInfo)
	if !ok || allotted == 0 {
		return nil
	}

	percentUsed := float64(used) / float64(allotted) * 100
	maxRequestsForRun := int(q.percentPerRun * float64(allotted) / 100)

	if percentUsed > q.percentTotal {
		return &QuotaExceededError{Message: fmt.Sprintf(QuotaExceededErrorFormat, q.percentTotal, quotaTotalDescription) +
			fmt.Sprintf(" (%d/%d used)", used, allotted)}
	}
	if q.attempted > maxRequestsForRun {
		return &QuotaExceededError{Message: fmt.Sprintf(QuotaExceededErrorFormat, q.percentPerRun, quotaPerRunDescription) +
			fmt.Sprintf(" (%d requests made, %d allowed for this run)", q.attempted, maxRequestsForRun)}
	}
	return nil
}

func parseAPIUsage(limitInfo string) (int, int, bool) {
	matches := apiUsagePattern.FindStringSubmatch(limitInfo)
	if matches == nil {
		return 0, 0, false
	}
	used, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, 0, false
	}
	allotted, err := strconv.Atoi(matches[2])
	if err != nil {
		return 0, 0, false
	}
	return used, allotted, true
}
