package form

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// MinPasswordLength is the shortest password the length rule accepts.
const MinPasswordLength = 12

// SpecialChars is the punctuation set accepted by the special rule.
const SpecialChars = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

// Rule identifies one password policy rule.
type Rule int

const (
	RuleLength Rule = iota
	RuleUppercase
	RuleLowercase
	RuleNumber
	RuleSpecial

	ruleCount
)

var ruleNames = [ruleCount]string{
	RuleLength:    "length",
	RuleUppercase: "uppercase",
	RuleLowercase: "lowercase",
	RuleNumber:    "number",
	RuleSpecial:   "special",
}

func (r Rule) String() string {
	if r < 0 || r >= ruleCount {
		return "unknown"
	}
	return ruleNames[r]
}

// Rules lists every password rule in checklist order.
var Rules = [ruleCount]Rule{RuleLength, RuleUppercase, RuleLowercase, RuleNumber, RuleSpecial}

var ruleChecks = [ruleCount]func(string) bool{
	RuleLength:    func(s string) bool { return utf8.RuneCountInString(s) >= MinPasswordLength },
	RuleUppercase: func(s string) bool { return containsRange(s, 'A', 'Z') },
	RuleLowercase: func(s string) bool { return containsRange(s, 'a', 'z') },
	RuleNumber:    func(s string) bool { return containsRange(s, '0', '9') },
	RuleSpecial:   func(s string) bool { return strings.ContainsAny(s, SpecialChars) },
}

func containsRange(s string, lo, hi rune) bool {
	for _, c := range s {
		if c >= lo && c <= hi {
			return true
		}
	}
	return false
}

// PasswordState records which rules a password satisfies, indexed by Rule.
type PasswordState [ruleCount]bool

// Passed reports whether rule r is satisfied.
func (s PasswordState) Passed(r Rule) bool {
	if r < 0 || r >= ruleCount {
		return false
	}
	return s[r]
}

// SatisfiedCount returns how many rules are satisfied (0-5).
func (s PasswordState) SatisfiedCount() int {
	n := 0
	for _, ok := range s {
		if ok {
			n++
		}
	}
	return n
}

// AllPassed reports whether every rule is satisfied.
func (s PasswordState) AllPassed() bool {
	return s.SatisfiedCount() == int(ruleCount)
}

// MarshalJSON encodes the state as an object keyed by rule name.
func (s PasswordState) MarshalJSON() ([]byte, error) {
	m := make(map[string]bool, ruleCount)
	for _, r := range Rules {
		m[r.String()] = s[r]
	}
	return json.Marshal(m)
}

// UnmarshalJSON decodes an object keyed by rule name. Missing rules are
// false; unknown names are rejected.
func (s *PasswordState) UnmarshalJSON(b []byte) error {
	var m map[string]bool
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}

	var state PasswordState
	for name, ok := range m {
		r, found := ruleByName(name)
		if !found {
			return fmt.Errorf("unknown password rule %q", name)
		}
		state[r] = ok
	}
	*s = state
	return nil
}

func ruleByName(name string) (Rule, bool) {
	for _, r := range Rules {
		if ruleNames[r] == name {
			return r, true
		}
	}
	return 0, false
}

// CheckRules evaluates every rule against password.
func CheckRules(password string) PasswordState {
	var state PasswordState
	for _, r := range Rules {
		state[r] = ruleChecks[r](password)
	}
	return state
}

// MeetsPolicy reports whether password satisfies all rules.
func MeetsPolicy(password string) bool {
	return CheckRules(password).AllPassed()
}

// Strength is the coarse password classification.
type Strength int

const (
	Weak Strength = iota
	Fair
	Strong
)

func (s Strength) String() string {
	switch s {
	case Fair:
		return "Fair"
	case Strong:
		return "Strong"
	default:
		return "Weak"
	}
}

// Class returns the display class used by the strength meter.
func (s Strength) Class() string {
	switch s {
	case Fair:
		return "is-fair"
	case Strong:
		return "is-strong"
	default:
		return "is-weak"
	}
}

func (s Strength) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// StrengthFor maps a satisfied-rule count to a Strength.
func StrengthFor(satisfied int) Strength {
	switch {
	case satisfied == int(ruleCount):
		return Strong
	case satisfied >= 3 && satisfied < int(ruleCount):
		return Fair
	default:
		return Weak
	}
}

// Evaluation is the strength meter state for one password.
type Evaluation struct {
	State    PasswordState
	Strength Strength
	// Progress is the meter fill in percent, 0 for an empty password.
	Progress float64
	// Resolved is set once every rule passes on a non-empty password.
	Resolved bool
}

// Evaluate computes the rule state, strength and meter progress for password.
func Evaluate(password string) Evaluation {
	state := CheckRules(password)
	satisfied := state.SatisfiedCount()

	var progress float64
	if password != "" {
		progress = float64(satisfied) / float64(ruleCount) * 100
	}

	return Evaluation{
		State:    state,
		Strength: StrengthFor(satisfied),
		Progress: progress,
		Resolved: state.AllPassed() && password != "",
	}
}
