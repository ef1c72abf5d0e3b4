package models

// Subject describes one syllabus subject. Weight is a relative number and is
// NOT guaranteed to sum to 100 across a syllabus (NEET sums to 720), so
// allocators must divide by the computed total.
type Subject struct {
	Name            string   `json:"name"`
	Weight          float64  `json:"weight"`
	Type            string   `json:"type,omitempty"`
	TotalModules    int      `json:"totalModules"`
	Topics          []string `json:"topics,omitempty"`
	RecommendedTime int      `json:"recommendedTime,omitempty"`
	ReferenceBooks  []string `json:"referenceBooks,omitempty"`
}

// Exam is a syllabus descriptor from the static exam database.
type Exam struct {
	ID            string     `json:"id"`
	Label         string     `json:"label"`
	Category      string     `json:"category"`
	ExamCode      string     `json:"examCode"`
	Difficulty    Difficulty `json:"difficulty"`
	Duration      string     `json:"duration"`
	Frequency     string     `json:"frequency"`
	OfficialSites []string   `json:"officialSites,omitempty"`
	Popularity    int        `json:"popularity"`
	Subjects      []Subject  `json:"subjects"`
}

// TotalWeight sums subject weights for proportional allocation.
func (e Exam) TotalWeight() float64 {
	var total float64
	for _, subject := range e.Subjects {
		total += subject.Weight
	}
	return total
}

// TotalModules sums module counts across subjects.
func (e Exam) TotalModules() int {
	total := 0
	for _, subject := range e.Subjects {
		total += subject.TotalModules
	}
	return total
}

// ExamCategory groups exams for browsing.
type ExamCategory struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Count int    `json:"count"`
}
