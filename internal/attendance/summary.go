// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package attendance

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// Rate is a participation percentage. An undefined rate (empty roster, no
// sessions) is carried explicitly instead of as NaN.
type Rate struct {
	Value   float64
	Defined bool
}

// Undefined is the rate of an empty roster.
var Undefined = Rate{}

// NewRate returns count/total×100 rounded to two decimals, or Undefined when
// total is zero.
func NewRate(count, total int) Rate {
	if total <= 0 {
		return Undefined
	}
	return Rate{Value: round2(float64(count) / float64(total) * 100), Defined: true}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// String formats the rate as "75.00%", or "N/A" when undefined.
func (r Rate) String() string {
	if !r.Defined {
		return "N/A"
	}
	return strconv.FormatFloat(r.Value, 'f', 2, 64) + "%"
}

// MarshalJSON encodes an undefined rate as null.
func (r Rate) MarshalJSON() ([]byte, error) {
	if !r.Defined {
		return []byte("null"), nil
	}
	return json.Marshal(r.Value)
}

// UnmarshalJSON decodes null as an undefined rate.
func (r *Rate) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*r = Undefined
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = Rate{Value: v, Defined: true}
	return nil
}

// Summary is the attendance of one session.
type Summary struct {
	Session  string `json:"session"`
	Number   int    `json:"number"`
	Attended int    `json:"attended"`
	Total    int    `json:"total"`
	Rate     Rate   `json:"rate"`
}

// Summarize counts, for every session of the roster in ascending session
// number order, the students whose status counts as attended. A roster
// without session columns yields an empty slice; an empty roster yields one
// summary per session with an undefined rate.
func Summarize(r *Roster, v *Vocabulary) []Summary {
	if v == nil {
		v = DefaultVocabulary()
	}
	out := make([]Summary, 0, len(r.Schema.Sessions))
	total := r.Len()
	for _, sess := range r.Schema.Sessions {
		attended := 0
		for _, st := range r.Students {
			if v.Attended(st.Statuses[sess.Label]) {
				attended++
			}
		}
		out = append(out, Summary{
			Session:  sess.Label,
			Number:   sess.Number,
			Attended: attended,
			Total:    total,
			Rate:     NewRate(attended, total),
		})
	}
	return out
}

// AverageRate is the arithmetic mean of the defined rates of summaries. It is
// undefined when no summary has a defined rate. The mean is not rounded.
func AverageRate(summaries []Summary) Rate {
	var sum float64
	n := 0
	for _, s := range summaries {
		if s.Rate.Defined {
			sum += s.Rate.Value
			n++
		}
	}
	if n == 0 {
		return Undefined
	}
	return Rate{Value: sum / float64(n), Defined: true}
}
