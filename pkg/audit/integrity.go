package audit

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// GenesisHash is the previous hash of the first event.
const GenesisHash = "0000000000000000000000000000000000000000000000000000000000000000"

const (
	IntegrityIntact      = "intact"
	IntegrityCompromised = "compromised"
)

// IntegrityReport represents the result of an integrity verification
type IntegrityReport struct {
	TotalEvents    int64    `json:"totalEvents"`
	VerifiedEvents int64    `json:"verifiedEvents"`
	ChainBreaks    int64    `json:"chainBreaks"`
	Status         string   `json:"status"`
	FirstBreakSeq  *int64   `json:"firstBreakSeq,omitempty"`
	Details        []string `json:"details,omitempty"`
}

// ComputeEventHash hashes seq|event|timestamp|origin|subject|details|previous.
func ComputeEventHash(seq int64, eventType string, timestamp time.Time, origin string, subject string, details string, previousHash string) string {
	data := fmt.Sprintf("%d|%s|%s|%s|%s|%s|%s",
		seq,
		eventType,
		timestamp.UTC().Format(time.RFC3339Nano),
		origin,
		subject,
		details,
		previousHash,
	)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}

func hashEvent(e Event) string {
	origin := e.Service + "/" + e.Environment + "/" + e.Level + "/" + e.RequestID
	subject := e.Subject.ApplicationID + "/" + e.Subject.Name + "/" + e.Subject.JobID
	return ComputeEventHash(e.Seq, string(e.Event), e.Timestamp, origin, subject, detailsString(e.Details), e.PreviousHash)
}

// Verify recomputes the chain over the recorded events.
func (l *Logger) Verify() IntegrityReport {
	return VerifyChain(l.Events())
}

// VerifyChain checks that every event links to its predecessor and that its
// stored hash matches its content.
func VerifyChain(events []Event) IntegrityReport {
	report := IntegrityReport{
		TotalEvents: int64(len(events)),
		Status:      IntegrityIntact,
	}

	previous := GenesisHash
	for _, e := range events {
		ok := true
		if e.PreviousHash != previous {
			ok = false
			report.Details = append(report.Details, fmt.Sprintf("event %d: previous hash mismatch", e.Seq))
		}
		if hashEvent(e) != e.Hash {
			ok = false
			report.Details = append(report.Details, fmt.Sprintf("event %d: content hash mismatch", e.Seq))
		}
		if ok {
			report.VerifiedEvents++
		} else {
			report.ChainBreaks++
			if report.FirstBreakSeq == nil {
				seq := e.Seq
				report.FirstBreakSeq = &seq
			}
		}
		previous = e.Hash
	}

	if report.ChainBreaks > 0 {
		report.Status = IntegrityCompromised
	}
	return report
}
