package temporal

import (
	"time"
)

// timeNow is a variable that can be mocked for testing
var timeNow = time.Now

// Request is one resolution: a phrase, the instant it is relative to and the
// week-start policy for week-unit phrases.
type Request struct {
	Phrase string
	// Reference defaults to the current time when zero
	Reference time.Time
	// WeekStart defaults to locale-default when empty
	WeekStart WeekStartPolicy
}

// Result is either a resolved instant or the unparseable marker.
type Result struct {
	Time time.Time `json:"time"`
	Rule string    `json:"rule,omitempty"`
	Kind Kind      `json:"kind"`

	Unparseable bool  `json:"unparseable"`
	Reason      error `json:"-"`
}

// Valid reports whether the phrase resolved to an instant
func (r Result) Valid() bool {
	return !r.Unparseable
}

// Resolve interprets phrase relative to ref. A zero ref means now.
//
// An unrecognized phrase is not an error: the Result carries the
// unparseable marker and a *ParseError as Reason. The returned error is
// reserved for ErrNotInitialized and ErrInvalidConfiguration.
func Resolve(phrase string, ref time.Time, weekStart WeekStartPolicy) (Result, error) {
	return ResolveRequest(Request{Phrase: phrase, Reference: ref, WeekStart: weekStart})
}

// ResolveRequest resolves against the process-wide environment.
func ResolveRequest(req Request) (Result, error) {
	env := current()
	if env == nil {
		return Result{}, notInitialized("resolve")
	}
	return env.Resolve(req)
}

// Resolve resolves a request against this environment.
func (e *Environment) Resolve(req Request) (Result, error) {
	policy, err := ParseWeekStartPolicy(string(req.WeekStart))
	if err != nil {
		return Result{}, err
	}
	weekStart, ok := policy.Weekday()
	if !ok {
		weekStart = e.weekStart
	}

	ref := req.Reference
	if ref.IsZero() {
		ref = timeNow()
	}

	phrase := normalize(req.Phrase)
	if phrase == "" {
		return unparseable(newParseError(ErrorKindEmpty, phrase, "empty phrase")), nil
	}

	interp, ok := classify(phrase, nil)
	if !ok {
		perr := newParseError(ErrorKindNoMatch, phrase, "unrecognized date phrase")
		if suggestion, ok := suggest(phrase); ok {
			perr.WithSuggestion(suggestion)
		}
		return unparseable(perr), nil
	}

	t, err := evaluate(interp, ref, weekStart)
	if err != nil {
		perr := newParseError(ErrorKindOutOfRange, phrase, "date outside the calendar").
			WithRule(interp.Rule).
			WithUnderlying(err)
		res := unparseable(perr)
		res.Rule, res.Kind = interp.Rule, interp.Kind
		return res, nil
	}

	return Result{Time: t, Rule: interp.Rule, Kind: interp.Kind}, nil
}

func unparseable(perr *ParseError) Result {
	return Result{Unparseable: true, Reason: perr}
}
