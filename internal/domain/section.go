package domain

// Section is one scheduled offering of a course in a term. Days is a compact
// day-string such as "MWF"; Start and End are lexicographically comparable
// "HH:MM" time strings.
type Section struct {
	CRN      string
	Days     string
	Start    string
	End      string
	Cap      int
	Enrolled int
}

// Offerings is a term's live section catalog, keyed by course code. Section
// order within a course is catalog order and is significant: the scheduler
// scans it first-to-last.
type Offerings struct {
	Term     string
	Sections map[string][]Section
}
