// Package password evaluates a fixed, ordered set of strength rules against
// a candidate password. Evaluation is a full re-scan of the value on every
// call, so repeated evaluation with the same input is idempotent and each
// indicator is independent of the others.
package password

import "regexp"

// Rule is one password requirement. Rules are order-significant: checklist
// indicators map to rules by position.
type Rule struct {
	Name    string
	Label   string
	pattern *regexp.Regexp
}

// Matches reports whether the rule is satisfied by the full value.
func (r Rule) Matches(value string) bool {
	return r.pattern.MatchString(value)
}

var rules = []Rule{
	{Name: "length", Label: "At least 8 characters", pattern: regexp.MustCompile(`.{8,}`)},
	{Name: "digit", Label: "Contains a number", pattern: regexp.MustCompile(`[0-9]`)},
	{Name: "lowercase", Label: "Contains a lowercase letter", pattern: regexp.MustCompile(`[a-z]`)},
	{Name: "uppercase", Label: "Contains an uppercase letter", pattern: regexp.MustCompile(`[A-Z]`)},
	{Name: "symbol", Label: "Contains a symbol", pattern: regexp.MustCompile(`[^A-Za-z0-9\s]`)},
}

// Rules returns the fixed rule set in checklist order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Indicator pairs a rule with its current satisfied state.
type Indicator struct {
	Rule      Rule
	Satisfied bool
}

// Checklist holds one indicator per rule, in rule order.
type Checklist []Indicator

// Evaluate re-checks every rule against the full value.
func Evaluate(value string) Checklist {
	checklist := make(Checklist, len(rules))
	for i, rule := range rules {
		checklist[i] = Indicator{Rule: rule, Satisfied: rule.Matches(value)}
	}
	return checklist
}

// SatisfiedCount returns how many indicators are currently active.
func (c Checklist) SatisfiedCount() int {
	count := 0
	for _, indicator := range c {
		if indicator.Satisfied {
			count++
		}
	}
	return count
}

// AllMet reports whether every rule is satisfied.
func (c Checklist) AllMet() bool {
	return c.SatisfiedCount() == len(c)
}
