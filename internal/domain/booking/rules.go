package booking

import "time"

// Reason identifies one violated booking rule. Messages are stable and shown
// to customers as-is.
type Reason string

const (
	ReasonLeadTime      Reason = "slot too close to now"
	ReasonHorizon       Reason = "slot outside booking horizon"
	ReasonClosedDay     Reason = "no opening entry for this day"
	ReasonBeforeOpening Reason = "slot is before opening"
	ReasonPastClosing   Reason = "service exceeds closing time"
)

const (
	DefaultHorizonDays    = 30
	DefaultMinLeadMinutes = 60
)

// RuleRequest carries everything the validator needs. It is deterministic
// given Now, which tests must set explicitly.
type RuleRequest struct {
	RequestedStart  time.Time
	DurationMinutes int
	BufferMinutes   int
	Hours           WeeklyHours
	HorizonDays     int
	MinLeadMinutes  int
	Now             time.Time
}

// NewRuleRequest applies the default horizon and lead time. Callers that need
// a zero lead time set MinLeadMinutes after construction.
func NewRuleRequest(requestedStart time.Time, durationMinutes int, hours WeeklyHours) RuleRequest {
	return RuleRequest{
		RequestedStart:  requestedStart,
		DurationMinutes: durationMinutes,
		Hours:           hours,
		HorizonDays:     DefaultHorizonDays,
		MinLeadMinutes:  DefaultMinLeadMinutes,
	}
}

// RuleResult reports every violated rule. ProjectedEnd is set whenever an
// opening entry for the day was found, even when the slot is rejected.
type RuleResult struct {
	OK           bool
	Reasons      []Reason
	ProjectedEnd *time.Time
}

func (r RuleResult) Contains(reason Reason) bool {
	for _, got := range r.Reasons {
		if got == reason {
			return true
		}
	}
	return false
}

// Validate checks a candidate slot against lead-time, horizon and
// opening-hours constraints. Violations accumulate so a caller can surface
// every problem at once; only a closed day is terminal, because the
// opening/closing checks are meaningless without hours.
func Validate(req RuleRequest) RuleResult {
	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}

	var reasons []Reason

	if req.RequestedStart.Before(now.Add(time.Duration(req.MinLeadMinutes) * time.Minute)) {
		reasons = append(reasons, ReasonLeadTime)
	}

	maxDate := now.AddDate(0, 0, req.HorizonDays)
	if req.RequestedStart.After(maxDate) {
		reasons = append(reasons, ReasonHorizon)
	}

	day, found := req.Hours.Day(WeekdayOf(req.RequestedStart))
	if !found || day.IsClosed() {
		reasons = append(reasons, ReasonClosedDay)
		return RuleResult{OK: false, Reasons: reasons}
	}

	opens := day.Opens().On(req.RequestedStart)
	closes := day.Closes().On(req.RequestedStart)
	projectedEnd := req.RequestedStart.Add(time.Duration(req.DurationMinutes+req.BufferMinutes) * time.Minute)

	// Both boundaries are inclusive: starting exactly at opening and ending
	// exactly at closing are accepted.
	if req.RequestedStart.Before(opens) {
		reasons = append(reasons, ReasonBeforeOpening)
	}
	if projectedEnd.After(closes) {
		reasons = append(reasons, ReasonPastClosing)
	}

	return RuleResult{
		OK:           len(reasons) == 0,
		Reasons:      reasons,
		ProjectedEnd: &projectedEnd,
	}
}
