// Package nfpa implements the NFPA 10 hazard-classification lookups and
// extinguisher rating parsing consumed by the planner. It is pure
// business logic with no geometry dependencies.
package nfpa

import (
	"regexp"
	"strconv"
	"strings"
)

// Rating is a structured extinguisher rating parsed from a label such as
// "4-A:60-B:C".
type Rating struct {
	A int  `json:"a" yaml:"a"`
	B int  `json:"b" yaml:"b"`
	C bool `json:"c" yaml:"c"`
	D bool `json:"d" yaml:"d"`
	K bool `json:"k" yaml:"k"`
}

// StandardRatings lists common UL rating labels offered to the user.
var StandardRatings = []string{
	"1-A:10-B:C", "2-A:10-B:C", "3-A:40-B:C", "4-A:60-B:C",
	"6-A:80-B:C", "10-A:120-B:C", "20-A:120-B:C",
	"30-A:160-B:C", "40-A:240-B:C",
	"Class D (Metal)", "Class K (Kitchen)",
}

var (
	ratingA = regexp.MustCompile(`(\d+)-A`)
	ratingB = regexp.MustCompile(`(\d+)-B`)
)

// ParseRating extracts the numeric A/B ratings and the C/D/K class flags
// from a rating label. The match is deliberately loose: case and spaces
// are ignored and class letters are accepted in ":C", "-C" and "CLASSC"
// spellings. Unrecognized parts parse to zero values.
func ParseRating(label string) Rating {
	s := strings.ReplaceAll(strings.ToUpper(label), " ", "")

	var r Rating
	if m := ratingA.FindStringSubmatch(s); m != nil {
		r.A, _ = strconv.Atoi(m[1])
	}
	if m := ratingB.FindStringSubmatch(s); m != nil {
		r.B, _ = strconv.Atoi(m[1])
	}
	r.C = strings.Contains(s, ":C") || strings.Contains(s, "-C") || strings.Contains(s, "CLASSC")
	r.D = strings.Contains(s, ":D") || strings.Contains(s, "-D") || strings.Contains(s, "CLASSD")
	r.K = strings.Contains(s, ":K") || strings.Contains(s, "-K") || strings.Contains(s, "CLASSK")
	return r
}
