package domain

import "strings"

// PositionStatus tracks whether a position is still being recruited for.
type PositionStatus string

const (
	PositionStatusOpen   PositionStatus = "OPEN"
	PositionStatusClosed PositionStatus = "CLOSED"
)

// ParsePositionStatus maps user or file input to a status. Empty input means OPEN.
func ParsePositionStatus(s string) (PositionStatus, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", string(PositionStatusOpen):
		return PositionStatusOpen, true
	case string(PositionStatusClosed):
		return PositionStatusClosed, true
	}
	return "", false
}

// Position is a job opening. Its title is its identity.
type Position struct {
	Title  string         `json:"title"`
	Status PositionStatus `json:"status"`
}

func NewPosition(title string) Position {
	return Position{Title: title, Status: PositionStatusOpen}
}

func (p Position) IsSame(other Position) bool {
	return p.Title == other.Title
}

// IsSamePosition is an alias of IsSame.
func (p Position) IsSamePosition(other Position) bool {
	return p.IsSame(other)
}

func (p Position) Equal(other Position) bool {
	return p.Title == other.Title && p.Status == other.Status
}

func (p Position) Clone() Position {
	return p
}

func (p Position) String() string {
	return p.Title + " [" + string(p.Status) + "]"
}
