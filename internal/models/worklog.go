package models

import (
	"encoding/json"
	"sort"
	"time"
)

// Issue is the slice of a Jira issue the tools care about.
type Issue struct {
	Key         string `json:"key"`
	Summary     string `json:"summary"`
	Description string `json:"description,omitempty"`
}

// Worklog is a single time record attributed to an issue.
type Worklog struct {
	Issue            string    `json:"issue"`
	Summary          string    `json:"summary"`
	TimeSpent        string    `json:"timeSpent"`
	TimeSpentSeconds int       `json:"timeSpentSeconds"`
	Comment          string    `json:"comment"`
	Started          string    `json:"started"`
	Date             time.Time `json:"date"`
}

// IssueWorklogs groups worklogs under their issue for reporting.
type IssueWorklogs struct {
	Summary  string
	Worklogs []Worklog
}

// TotalSeconds sums the grouped worklog durations.
func (iw *IssueWorklogs) TotalSeconds() int {
	total := 0
	for _, w := range iw.Worklogs {
		total += w.TimeSpentSeconds
	}
	return total
}

// GroupByIssue indexes worklogs by issue key, preserving summaries.
func GroupByIssue(worklogs []Worklog) map[string]*IssueWorklogs {
	grouped := make(map[string]*IssueWorklogs)
	for _, w := range worklogs {
		entry, ok := grouped[w.Issue]
		if !ok {
			entry = &IssueWorklogs{Summary: w.Summary}
			grouped[w.Issue] = entry
		}
		entry.Worklogs = append(entry.Worklogs, w)
	}
	return grouped
}

// RecentCache is the on-disk recent-issues cache written by `update`.
type RecentCache struct {
	Updated time.Time `json:"updated"`
	Days    int       `json:"days"`
	Issues  []Issue   `json:"issues"`
}

// IssueSet is a set of issue keys persisted as a JSON list, so the
// files stay interchangeable with the original flat-JSON state.
type IssueSet map[string]struct{}

func NewIssueSet(keys ...string) IssueSet {
	set := make(IssueSet, len(keys))
	for _, k := range keys {
		set.Add(k)
	}
	return set
}

func (s IssueSet) Add(key string)      { s[key] = struct{}{} }
func (s IssueSet) Remove(key string)   { delete(s, key) }
func (s IssueSet) Has(key string) bool { _, ok := s[key]; return ok }

// Sorted returns the keys in lexical order.
func (s IssueSet) Sorted() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s IssueSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s *IssueSet) UnmarshalJSON(data []byte) error {
	var keys []string
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	set := make(IssueSet, len(keys))
	for _, k := range keys {
		set.Add(k)
	}
	*s = set
	return nil
}
