package model

import "time"

// SelectionRecord is one committed choice in a group.
type SelectionRecord struct {
	Group      string    `json:"group"`
	OptionID   string    `json:"optionId"`
	Label      string    `json:"label"`
	Index      int       `json:"index"`
	SelectedAt time.Time `json:"selectedAt"`
}

// History holds selection records, oldest first.
type History struct {
	Records []SelectionRecord `json:"records"`
}

// NewHistory creates an empty History with an initialized slice.
func NewHistory() *History {
	return &History{Records: []SelectionRecord{}}
}

// Record appends r.
func (h *History) Record(r SelectionRecord) {
	h.Records = append(h.Records, r)
}

// Latest returns the most recent record for group, or nil.
func (h *History) Latest(group string) *SelectionRecord {
	for i := len(h.Records) - 1; i >= 0; i-- {
		if h.Records[i].Group == group {
			return &h.Records[i]
		}
	}
	return nil
}

// ForGroup returns the records of group, oldest first.
func (h *History) ForGroup(group string) []SelectionRecord {
	var result []SelectionRecord
	for _, r := range h.Records {
		if r.Group == group {
			result = append(result, r)
		}
	}
	return result
}
