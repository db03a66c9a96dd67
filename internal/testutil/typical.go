// Package testutil holds fixtures shared by the package tests.
package testutil

import (
	"time"

	"go-hr-manager/internal/domain"
)

const (
	TitleHRManager = "HR Manager"
	TitleEngineer  = "Software Engineer"
)

func HRManager() domain.Position { return domain.NewPosition(TitleHRManager) }
func Engineer() domain.Position  { return domain.NewPosition(TitleEngineer) }

func Amy() domain.Candidate {
	return domain.NewCandidate("Amy Bee", "11111111", "amy@example.com", "Block 312, Amy Street 1",
		[]string{"friends"}, "", []string{TitleHRManager})
}

func Bob() domain.Candidate {
	return domain.NewCandidate("Bob Choo", "22222222", "bob@example.com", "Block 123, Bobby Street 3",
		[]string{"husband", "friends"}, "likes coffee", []string{TitleEngineer})
}

func Carl() domain.Candidate {
	return domain.NewCandidate("Carl Kurz", "95352563", "heinz@example.com", "wall street",
		nil, "", []string{TitleHRManager, TitleEngineer})
}

// Date parses a DD/MM/YYYY date and panics on malformed input.
func Date(s string) time.Time {
	t, err := time.Parse("02/01/2006", s)
	if err != nil {
		panic(err)
	}
	return t
}

// Clock parses an HHMM time and panics on malformed input.
func Clock(s string) time.Time {
	t, err := time.Parse("1504", s)
	if err != nil {
		panic(err)
	}
	return t
}

// Interview builds a pending interview and panics on invalid arguments.
func Interview(p domain.Position, date, start string, minutes int, candidates ...domain.Candidate) domain.Interview {
	iv, err := domain.NewInterview(p, candidates, Date(date), Clock(start),
		time.Duration(minutes)*time.Minute, domain.InterviewStatusPending)
	if err != nil {
		panic(err)
	}
	return iv
}

// TypicalData returns positions, candidates and one interview that reference each other consistently.
func TypicalData() domain.HrManagerData {
	return domain.HrManagerData{
		Positions:  []domain.Position{HRManager(), Engineer()},
		Candidates: []domain.Candidate{Amy(), Bob(), Carl()},
		Interviews: []domain.Interview{
			Interview(HRManager(), "01/01/2025", "0900", 60, Amy()),
			Interview(Engineer(), "02/01/2025", "1400", 30, Bob(), Carl()),
		},
	}
}
