package audit

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"
)

// GenesisHash is the previous hash of the first event written by a process.
const GenesisHash = "0000000000000000000000000000000000000000000000000000000000000000"

// hashChain links every event to the one before it, so a line removed from or
// edited in the audit file breaks verification.
type hashChain struct {
	mu   sync.Mutex
	seq  int64
	prev string
}

func newHashChain() *hashChain {
	return &hashChain{prev: GenesisHash}
}

// next assigns the sequence number and hashes of one event.
func (c *hashChain) next(eventType, timestamp, command, subject, details string) (seq int64, prev, row string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	prev = c.prev
	row = ComputeEventHash(c.seq, eventType, timestamp, command, subject, details, prev)
	c.prev = row
	return c.seq, prev, row
}

// ComputeEventHash computes the hash for a single event
// Hash includes: seq, event_type, timestamp, command, subject, details, previous_hash
func ComputeEventHash(seq int64, eventType, timestamp, command, subject, details, previousHash string) string {
	data := fmt.Sprintf("%d|%s|%s|%s|%s|%s|%s",
		seq,
		eventType,
		timestamp,
		command,
		subject,
		details,
		previousHash,
	)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// IntegrityReport represents the result of an integrity verification
type IntegrityReport struct {
	TotalEvents int      `json:"totalEvents"`
	Segments    int      `json:"segments"`
	ChainBreaks int      `json:"chainBreaks"`
	Status      string   `json:"status"` // "intact" or "compromised"
	Details     []string `json:"details,omitempty"`
}

type chainedLine struct {
	Event     string `json:"event"`
	EventTime string `json:"event_time"`
	Command   string `json:"command"`
	Subject   string `json:"subject"`
	Details   string `json:"details"`
	Seq       int64  `json:"seq"`
	PrevHash  string `json:"prev_hash"`
	RowHash   string `json:"row_hash"`
}

// VerifyChain reads an audit file written by Logger and checks every link.
// Each process run starts a new segment at seq 1.
func VerifyChain(r io.Reader) (IntegrityReport, error) {
	report := IntegrityReport{Status: "intact"}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var prevSeq int64
	prevHash := GenesisHash
	for line := 1; scanner.Scan(); line++ {
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var e chainedLine
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			return report, fmt.Errorf("line %d: %w", line, err)
		}
		report.TotalEvents++

		if e.Seq == 1 {
			report.Segments++
			prevSeq, prevHash = 0, GenesisHash
		}

		want := ComputeEventHash(e.Seq, e.Event, e.EventTime, e.Command, e.Subject, e.Details, e.PrevHash)
		switch {
		case e.Seq != prevSeq+1:
			report.ChainBreaks++
			report.Details = append(report.Details, fmt.Sprintf("line %d: expected seq %d, got %d", line, prevSeq+1, e.Seq))
		case e.PrevHash != prevHash:
			report.ChainBreaks++
			report.Details = append(report.Details, fmt.Sprintf("line %d: previous hash does not match", line))
		case e.RowHash != want:
			report.ChainBreaks++
			report.Details = append(report.Details, fmt.Sprintf("line %d: row hash does not match its content", line))
		}
		prevSeq, prevHash = e.Seq, e.RowHash
	}
	if err := scanner.Err(); err != nil {
		return report, err
	}

	if report.ChainBreaks > 0 {
		report.Status = "compromised"
	}
	return report, nil
}
