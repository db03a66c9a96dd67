package jsonfile

import (
	"time"

	"go-hr-manager/internal/domain"
	"go-hr-manager/pkg/validation"
)

type candidateRecord struct {
	Name      string   `json:"name" validate:"required,valid_name"`
	Phone     string   `json:"phone" validate:"required,valid_phone"`
	Email     string   `json:"email" validate:"required,email"`
	Address   string   `json:"address" validate:"required,not_blank"`
	Tags      []string `json:"tags" validate:"dive,valid_tag"`
	Remark    string   `json:"remark"`
	Positions []string `json:"positions" validate:"dive,valid_title"`
}

type positionRecord struct {
	Title  string `json:"title" validate:"required,valid_title"`
	Status string `json:"status" validate:"position_status"`
}

// interviewRecord stores references by natural key: the position by title
// and the candidates by name.
type interviewRecord struct {
	Position   string   `json:"position" validate:"required,valid_title"`
	Candidates []string `json:"candidates" validate:"min=1,dive,required,valid_name"`
	Date       string   `json:"date" validate:"required,hr_date"`
	StartTime  string   `json:"startTime" validate:"required,hr_time"`
	Duration   int      `json:"duration" validate:"required,positive_minutes"`
	Status     string   `json:"status" validate:"interview_status"`
}

type candidatesDocument struct {
	Candidates []candidateRecord `json:"candidates"`
}

type positionsDocument struct {
	Positions []positionRecord `json:"positions"`
}

type interviewsDocument struct {
	Interviews []interviewRecord `json:"interviews"`
}

func newCandidateRecord(c domain.Candidate) candidateRecord {
	return candidateRecord{
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		Tags:      append([]string{}, c.Tags...),
		Remark:    c.Remark,
		Positions: append([]string{}, c.Positions...),
	}
}

func (r candidateRecord) toDomain() domain.Candidate {
	return domain.NewCandidate(r.Name, r.Phone, r.Email, r.Address, r.Tags, r.Remark, r.Positions)
}

func newPositionRecord(p domain.Position) positionRecord {
	return positionRecord{Title: p.Title, Status: string(p.Status)}
}

func (r positionRecord) toDomain() domain.Position {
	status, _ := domain.ParsePositionStatus(r.Status)
	return domain.Position{Title: r.Title, Status: status}
}

func newInterviewRecord(i domain.Interview) interviewRecord {
	return interviewRecord{
		Position:   i.PositionTitle(),
		Candidates: i.CandidateNames(),
		Date:       i.FormattedDate(),
		StartTime:  i.FormattedStartTime(),
		Duration:   i.DurationMinutes(),
		Status:     string(i.Status()),
	}
}

// toDomain builds the interview once its references have been resolved.
func (r interviewRecord) toDomain(position domain.Position, candidates []domain.Candidate) (domain.Interview, error) {
	date, err := time.Parse(validation.DateLayout, r.Date)
	if err != nil {
		return domain.Interview{}, err
	}
	start, err := time.Parse(validation.TimeLayout, r.StartTime)
	if err != nil {
		return domain.Interview{}, err
	}
	return domain.NewInterview(position, candidates, date, start,
		time.Duration(r.Duration)*time.Minute, domain.ParseInterviewStatus(r.Status))
}
