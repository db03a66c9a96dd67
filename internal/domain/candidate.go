package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Candidate is a person applying for one or more positions.
// Tags and Positions are sets kept sorted and free of duplicates.
type Candidate struct {
	Name      string   `json:"name"`
	Phone     string   `json:"phone"`
	Email     string   `json:"email"`
	Address   string   `json:"address"`
	Tags      []string `json:"tags"`
	Remark    string   `json:"remark"`
	Positions []string `json:"positions"`
}

func NewCandidate(name, phone, email, address string, tags []string, remark string, positions []string) Candidate {
	return Candidate{
		Name:      name,
		Phone:     phone,
		Email:     email,
		Address:   address,
		Tags:      normalizeSet(tags),
		Remark:    remark,
		Positions: normalizeSet(positions),
	}
}

// Key is the natural key used to reference a candidate from an interview.
func (c Candidate) Key() string {
	return CandidateKey(c.Name)
}

// CandidateKey returns the natural key for a candidate name.
func CandidateKey(name string) string {
	return strings.ToLower(name)
}

// IsSame reports whether both candidates have the same name, ignoring case.
// This is the weaker notion of equality used to reject duplicates.
func (c Candidate) IsSame(other Candidate) bool {
	return c.Key() == other.Key()
}

// IsSameCandidate is an alias of IsSame.
func (c Candidate) IsSameCandidate(other Candidate) bool {
	return c.IsSame(other)
}

func (c Candidate) Equal(other Candidate) bool {
	return c.Name == other.Name &&
		c.Phone == other.Phone &&
		c.Email == other.Email &&
		c.Address == other.Address &&
		c.Remark == other.Remark &&
		slices.Equal(normalizeSet(c.Tags), normalizeSet(other.Tags)) &&
		slices.Equal(normalizeSet(c.Positions), normalizeSet(other.Positions))
}

func (c Candidate) Clone() Candidate {
	c.Tags = slices.Clone(c.Tags)
	c.Positions = slices.Clone(c.Positions)
	return c
}

func (c Candidate) HasAppliedFor(title string) bool {
	return slices.Contains(c.Positions, title)
}

// WithoutPosition returns a copy of c that no longer lists title.
func (c Candidate) WithoutPosition(title string) Candidate {
	c = c.Clone()
	c.Positions = slices.DeleteFunc(c.Positions, func(p string) bool { return p == title })
	return c
}

// WithPositionRenamed returns a copy of c with oldTitle replaced by newTitle.
func (c Candidate) WithPositionRenamed(oldTitle, newTitle string) Candidate {
	c = c.Clone()
	for i, p := range c.Positions {
		if p == oldTitle {
			c.Positions[i] = newTitle
		}
	}
	c.Positions = normalizeSet(c.Positions)
	return c
}

func (c Candidate) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s; Phone: %s; Email: %s; Address: %s", c.Name, c.Phone, c.Email, c.Address)
	if len(c.Positions) > 0 {
		fmt.Fprintf(&b, "; Positions: %s", strings.Join(c.Positions, ", "))
	}
	if len(c.Tags) > 0 {
		fmt.Fprintf(&b, "; Tags: [%s]", strings.Join(c.Tags, "]["))
	}
	if c.Remark != "" {
		fmt.Fprintf(&b, "; Remark: %s", c.Remark)
	}
	return b.String()
}

func normalizeSet(values []string) []string {
	out := slices.Clone(values)
	slices.Sort(out)
	out = slices.Compact(out)
	if out == nil {
		out = []string{}
	}
	return out
}
