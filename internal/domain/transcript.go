package domain

// TakenRecord is one completed or in-progress enrollment on a transcript.
// Multiple records may share a code when earned in different terms; no
// de-duplication happens at this layer.
type TakenRecord struct {
	Code    string
	Term    string
	Grade   string
	Credits *int // optional; catalog metadata is authoritative for credit math
}

// StudentInfo identifies the transcript's owner.
type StudentInfo struct {
	Name string
	ID   string
}

// Transcript is the structured record of a student's coursework. It is a
// read-only input for the duration of one planning call.
type Transcript struct {
	ID              string
	Student         StudentInfo
	Taken           []TakenRecord
	TransferCredits int
}

// CompletedSet returns the set of distinct codes appearing in taken records.
// Grade values are not filtered: an F and an A both count as completed here.
func (t *Transcript) CompletedSet() map[string]bool {
	completed := make(map[string]bool, len(t.Taken))
	for _, rec := range t.Taken {
		completed[rec.Code] = true
	}
	return completed
}
