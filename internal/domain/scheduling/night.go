package scheduling

import "strings"

// DefaultNightKeywords is the vocabulary used when no keyword list is configured.
var DefaultNightKeywords = []string{"by night", "passarela", "noturno", "noite", "night"}

// NightClassifier tells night tours apart from day tours by name content.
// A night tour is exempt from the one-daytime-tour-per-guide-per-day rule.
type NightClassifier struct {
	keywords []string
}

// NewNightClassifier builds a classifier. Blank keywords are ignored; an empty
// list falls back to DefaultNightKeywords.
func NewNightClassifier(keywords ...string) *NightClassifier {
	kw := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			kw = append(kw, k)
		}
	}
	if len(kw) == 0 {
		kw = append(kw, DefaultNightKeywords...)
	}
	return &NightClassifier{keywords: kw}
}

// IsNight is a case-insensitive substring test against the keyword set.
func (c *NightClassifier) IsNight(tourName string) bool {
	name := strings.ToLower(tourName)
	for _, k := range c.keywords {
		if strings.Contains(name, k) {
			return true
		}
	}
	return false
}

func (c *NightClassifier) Keywords() []string {
	out := make([]string, len(c.keywords))
	copy(out, c.keywords)
	return out
}
