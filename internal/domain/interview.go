package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// InterviewStatus is the closed set of interview states.
type InterviewStatus string

const (
	InterviewStatusPending   InterviewStatus = "PENDING"
	InterviewStatusCompleted InterviewStatus = "COMPLETED"
)

// IsValidInterviewStatus reports whether s names a status. Empty means PENDING.
func IsValidInterviewStatus(s string) bool {
	switch s {
	case "", string(InterviewStatusPending), string(InterviewStatusCompleted):
		return true
	}
	return false
}

// ParseInterviewStatus maps s to a status, defaulting to PENDING.
func ParseInterviewStatus(s string) InterviewStatus {
	if s == string(InterviewStatusCompleted) {
		return InterviewStatusCompleted
	}
	return InterviewStatusPending
}

var (
	ErrNoInterviewCandidates = errors.New("an interview needs at least one candidate")
	ErrNonPositiveDuration   = errors.New("interview duration must be positive")
)

// Interview schedules one or more candidates for a position.
// Position, date, start time and duration are fixed at construction; the
// status and the candidate set change only through the With* copies.
type Interview struct {
	position   Position
	candidates []Candidate
	date       time.Time
	startTime  time.Time
	duration   time.Duration
	status     InterviewStatus
}

// NewInterview builds an interview. An empty status means PENDING. Candidates
// are deduplicated by weak identity and kept sorted by key.
func NewInterview(position Position, candidates []Candidate, date, startTime time.Time,
	duration time.Duration, status InterviewStatus) (Interview, error) {
	if len(candidates) == 0 {
		return Interview{}, ErrNoInterviewCandidates
	}
	if duration <= 0 {
		return Interview{}, ErrNonPositiveDuration
	}
	if status == "" {
		status = InterviewStatusPending
	}
	y, m, d := date.Date()
	return Interview{
		position:   position,
		candidates: mergeCandidates(nil, candidates),
		date:       time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		startTime:  time.Date(0, 1, 1, startTime.Hour(), startTime.Minute(), 0, 0, time.UTC),
		duration:   duration,
		status:     status,
	}, nil
}

func (i Interview) Position() Position         { return i.position }
func (i Interview) PositionTitle() string      { return i.position.Title }
func (i Interview) Date() time.Time            { return i.date }
func (i Interview) StartTime() time.Time       { return i.startTime }
func (i Interview) Duration() time.Duration    { return i.duration }
func (i Interview) DurationMinutes() int       { return int(i.duration / time.Minute) }
func (i Interview) Status() InterviewStatus    { return i.status }
func (i Interview) FormattedDate() string      { return i.date.Format("02/01/2006") }
func (i Interview) FormattedStartTime() string { return i.startTime.Format("1504") }

func (i Interview) Candidates() []Candidate {
	out := make([]Candidate, len(i.candidates))
	for k, c := range i.candidates {
		out[k] = c.Clone()
	}
	return out
}

func (i Interview) CandidateNames() []string {
	names := make([]string, len(i.candidates))
	for k, c := range i.candidates {
		names[k] = c.Name
	}
	return names
}

func (i Interview) candidateKeys() []string {
	keys := make([]string, len(i.candidates))
	for k, c := range i.candidates {
		keys[k] = c.Key()
	}
	return keys
}

// ReferencesCandidate reports whether c is scheduled for this interview.
func (i Interview) ReferencesCandidate(c Candidate) bool {
	return slices.ContainsFunc(i.candidates, c.IsSame)
}

// ReferencesPosition reports whether the interview is for p.
func (i Interview) ReferencesPosition(p Position) bool {
	return i.position.IsSame(p)
}

// IsSame reports whether both interviews share position title, candidate set,
// date, start time and duration. Status is not compared.
func (i Interview) IsSame(other Interview) bool {
	return i.PositionTitle() == other.PositionTitle() &&
		slices.Equal(i.candidateKeys(), other.candidateKeys()) &&
		i.date.Equal(other.date) &&
		i.startTime.Equal(other.startTime) &&
		i.duration == other.duration
}

// IsSameInterview is an alias of IsSame.
func (i Interview) IsSameInterview(other Interview) bool {
	return i.IsSame(other)
}

func (i Interview) Equal(other Interview) bool {
	return i.position.Equal(other.position) &&
		slices.EqualFunc(i.candidates, other.candidates, Candidate.Equal) &&
		i.date.Equal(other.date) &&
		i.startTime.Equal(other.startTime) &&
		i.duration == other.duration &&
		i.status == other.status
}

func (i Interview) Clone() Interview {
	i.candidates = i.Candidates()
	return i
}

// WithStatus returns a copy of i carrying status.
func (i Interview) WithStatus(status InterviewStatus) Interview {
	i = i.Clone()
	i.status = status
	return i
}

// WithCandidates returns a copy of i whose candidate set is merged with added.
func (i Interview) WithCandidates(added []Candidate) Interview {
	i = i.Clone()
	i.candidates = mergeCandidates(i.candidates, added)
	return i
}

// ReplacingCandidate returns a copy of i in which target is swapped for edited.
func (i Interview) ReplacingCandidate(target, edited Candidate) Interview {
	i = i.Clone()
	rest := slices.DeleteFunc(i.candidates, target.IsSame)
	i.candidates = mergeCandidates(rest, []Candidate{edited})
	return i
}

// ReplacingPosition returns a copy of i scheduled for p instead.
func (i Interview) ReplacingPosition(p Position) Interview {
	i = i.Clone()
	i.position = p
	return i
}

func (i Interview) String() string {
	return fmt.Sprintf("[%s [%s] %s %s - %d min %s]",
		i.PositionTitle(),
		strings.Join(i.CandidateNames(), ", "),
		i.FormattedDate(),
		i.FormattedStartTime(),
		i.DurationMinutes(),
		i.status)
}

func mergeCandidates(base, added []Candidate) []Candidate {
	out := make([]Candidate, 0, len(base)+len(added))
	for _, c := range base {
		out = append(out, c.Clone())
	}
	for _, c := range added {
		if idx := slices.IndexFunc(out, c.IsSame); idx >= 0 {
			out[idx] = c.Clone()
			continue
		}
		out = append(out, c.Clone())
	}
	slices.SortFunc(out, func(a, b Candidate) int { return strings.Compare(a.Key(), b.Key()) })
	return out
}
