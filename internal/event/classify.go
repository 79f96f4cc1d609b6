package event

import "strings"

// domainKeywords identify records relevant to the tracked course offerings.
// A title containing none of these is rejected outright.
var domainKeywords = []string{"curso", "pais", "padrinhos", "batizado"}

// couplesKeywords identify the couples course, which is checked before the
// venue phrases and has a fixed time independent of weekday.
var couplesKeywords = []string{"casais", "noivos"}

// Classification is the outcome of classifying an in-domain title.
type Classification struct {
	Type    Category
	timeFor func(dayOfWeek string) string
}

// TimeFor returns the canonical session time for the given weekday symbol.
// The Sympla listing never publishes the real session time in a reliable
// field; the schedule is institutional knowledge encoded here.
func (c Classification) TimeFor(dayOfWeek string) string {
	return c.timeFor(dayOfWeek)
}

// classificationRule pairs a title predicate with the category and schedule
// it implies. Rules are evaluated in priority order; the first match wins.
type classificationRule struct {
	matches func(lowerTitle string) bool
	result  Classification
}

func containsAny(keywords []string) func(string) bool {
	return func(title string) bool {
		for _, k := range keywords {
			if strings.Contains(title, k) {
				return true
			}
		}
		return false
	}
}

func fixedTime(at string) func(string) string {
	return func(string) string { return at }
}

func sundayTime(sunday, otherwise string) func(string) string {
	return func(dayOfWeek string) string {
		if dayOfWeek == "Dom" {
			return sunday
		}
		return otherwise
	}
}

var classificationRules = []classificationRule{
	{
		matches: containsAny(couplesKeywords),
		result:  Classification{Type: CategoryCasais, timeFor: fixedTime("19:30")},
	},
	{
		matches: containsAny([]string{"na basílica", "na basilica"}),
		result:  Classification{Type: CategoryPenha, timeFor: sundayTime("15:00", "11:00")},
	},
	{
		matches: containsAny([]string{"fora da basílica", "fora da basilica"}),
		result:  Classification{Type: CategoryOutras, timeFor: sundayTime("14:00", "11:00")},
	},
	{
		// In-domain titles naming no venue default to the outras schedule.
		matches: func(string) bool { return true },
		result:  Classification{Type: CategoryOutras, timeFor: sundayTime("14:00", "11:00")},
	},
}

// InDomain reports whether a title belongs to the tracked course offerings.
// Matching is case-insensitive substring containment.
func InDomain(title string) bool {
	lower := strings.ToLower(title)
	for _, k := range domainKeywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// Classify decides the category and schedule for a title. The second return
// value is false when the title is out of domain; such records must be
// rejected, never stored uncategorized.
func Classify(title string) (Classification, bool) {
	if !InDomain(title) {
		return Classification{}, false
	}

	lower := strings.ToLower(title)
	for _, rule := range classificationRules {
		if rule.matches(lower) {
			return rule.result, true
		}
	}

	// Unreachable: the last rule matches everything.
	return Classification{}, false
}
