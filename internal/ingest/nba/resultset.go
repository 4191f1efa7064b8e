package nba

import (
	"fmt"
	"strconv"
)

// statsResponse is the envelope shared by stats.nba.com endpoints
type statsResponse struct {
	Resource   string      `json:"resource"`
	ResultSets []resultSet `json:"resultSets"`
}

type resultSet struct {
	Name    string          `json:"name"`
	Headers []string        `json:"headers"`
	RowSet  [][]interface{} `json:"rowSet"`

	index map[string]int
}

// resultSet returns the named set, or the first one when no name matches
func (r *statsResponse) resultSet(name string) (*resultSet, error) {
	if len(r.ResultSets) == 0 {
		return nil, fmt.Errorf("response %q has no result sets", r.Resource)
	}
	set := &r.ResultSets[0]
	for i := range r.ResultSets {
		if r.ResultSets[i].Name == name {
			set = &r.ResultSets[i]
			break
		}
	}
	set.index = make(map[string]int, len(set.Headers))
	for i, h := range set.Headers {
		set.index[h] = i
	}
	return set, nil
}

func (s *resultSet) value(row []interface{}, header string) (interface{}, bool) {
	i, ok := s.index[header]
	if !ok || i >= len(row) {
		return nil, false
	}
	return row[i], row[i] != nil
}

func (s *resultSet) stringAt(row []interface{}, header string) string {
	v, ok := s.value(row, header)
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}

func (s *resultSet) intAt(row []interface{}, header string) (int, bool) {
	v, ok := s.value(row, header)
	if !ok {
		return 0, false
	}
	switch t := v.(type) {
	case float64:
		return int(t), true
	case string:
		n, err := strconv.Atoi(t)
		return n, err == nil
	}
	return 0, false
}
