package standards

import (
	"regexp"
	"strings"
)

// subjectFileMap maps normalized common subject names to known source file
// stems. Subjects outside the table fall back to a best-effort stem.
var subjectFileMap = map[string]string{
	"english language arts":            "english",
	"english":                          "english",
	"ela":                              "english",
	"math":                             "mathematics",
	"mathematics":                      "mathematics",
	"science":                          "science",
	"social studies":                   "social-studies",
	"fine arts":                        "fine-arts",
	"health":                           "health-education",
	"health education":                 "health-education",
	"pe":                               "physical-education",
	"physical education":               "physical-education",
	"tech apps":                        "technology-applications",
	"technology applications":          "technology-applications",
	"lote":                             "languages-other-than-english",
	"languages other than english":     "languages-other-than-english",
	"career":                           "career",
	"cte":                              "career",
	"career and technical education":   "career",
}

// subjectPrefixMap maps subject labels to the TEKS chapter prefix used to
// filter a combined source by a starts-with test on the ID. Subjects
// outside this closed set resolve to "" (no filter), signaling callers to
// skip generation-time filtering rather than fail.
var subjectPrefixMap = map[string]string{
	"english language arts":          "110",
	"english":                        "110",
	"ela":                            "110",
	"math":                           "111",
	"mathematics":                    "111",
	"science":                        "112",
	"social studies":                 "113",
	"lote":                           "114",
	"languages other than english":   "114",
	"health":                         "115",
	"health education":               "115",
	"pe":                             "116",
	"physical education":             "116",
	"fine arts":                      "117",
	"tech apps":                      "126",
	"technology applications":        "126",
	"career":                         "127",
	"cte":                            "127",
	"career and technical education": "127",
}

var whitespaceRuns = regexp.MustCompile(`\s+`)

// SourceForSubject resolves a free-text subject to the file stem of its
// standards source. Resolution is total: unknown subjects degrade to a
// hyphenated best-effort guess, never an error.
func SourceForSubject(subject string) string {
	normalized := strings.ToLower(strings.TrimSpace(subject))
	if stem, ok := subjectFileMap[normalized]; ok {
		return stem
	}
	return whitespaceRuns.ReplaceAllString(normalized, "-")
}

// PrefixForSubject resolves a subject to its combined-source ID prefix.
// Unknown subjects return "" (no filter).
func PrefixForSubject(subject string) string {
	return subjectPrefixMap[strings.ToLower(strings.TrimSpace(subject))]
}
