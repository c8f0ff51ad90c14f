package vst

import (
	"bytes"
	"fmt"
	"strconv"
)

// record is one entry of DB<n>_stats.json. The tracker is hand-maintained
// and has served numbers both bare and quoted over the years.
type record struct {
	Odometer  number  `json:"Current Mileage"`
	Points    number  `json:"Points: Total"`
	Crashes   number  `json:"Crashes: Total"`
	Splats    number  `json:"Bug Splats: Total"`
	Stops     number  `json:"Bus Stops: Total"`
	IsLive    boolish `json:"Run Live"`
	Donations number  `json:"Total Raised"`
	RunStart  number  `json:"Year Start UNIX-Time"`
}

// number accepts a JSON number, a quoted number, an empty string, or null.
type number float64

func (n *number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = 0
		return nil
	}
	s := string(b)
	if len(b) >= 2 && b[0] == '"' && b[len(b)-1] == '"' {
		unq, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("vst: bad number %s: %w", s, err)
		}
		s = unq
		if s == "" {
			*n = 0
			return nil
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("vst: bad number %s: %w", string(b), err)
	}
	*n = number(v)
	return nil
}

func (n number) Float() float64 { return float64(n) }

func (n number) Int() int { return int(n) }

// boolish accepts true/false, 0/1, and their quoted forms.
type boolish bool

func (v *boolish) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) >= 2 && b[0] == '"' && b[len(b)-1] == '"' {
		b = b[1 : len(b)-1]
	}
	switch string(bytes.ToLower(b)) {
	case "true", "1":
		*v = true
	case "false", "0", "", "null":
		*v = false
	default:
		return fmt.Errorf("vst: bad bool %s", string(b))
	}
	return nil
}
