package validators

import "github.com/nbutton23/zxcvbn-go"

// MinRecommendedScore is the lowest zxcvbn score that does not trigger a
// weak password warning.
const MinRecommendedScore = 3

// PasswordStrength summarises a zxcvbn estimate of a master password.
type PasswordStrength struct {
	// Score ranges from 0 (trivially guessable) to 4 (very unguessable).
	Score int
	// CrackTime is a human readable offline crack time estimate.
	CrackTime string
}

// Weak reports whether the password scored below MinRecommendedScore.
func (s PasswordStrength) Weak() bool {
	return s.Score < MinRecommendedScore
}

// Label returns a one-word description of the score.
func (s PasswordStrength) Label() string {
	switch {
	case s.Score <= 0:
		return "very weak"
	case s.Score == 1:
		return "weak"
	case s.Score == 2:
		return "fair"
	case s.Score == 3:
		return "strong"
	default:
		return "very strong"
	}
}

// EstimateStrength scores password with zxcvbn. It is advisory only; a weak
// master password is never rejected.
func EstimateStrength(password string, userInputs ...string) PasswordStrength {
	if password == "" {
		return PasswordStrength{Score: 0, CrackTime: "instant"}
	}
	match := zxcvbn.PasswordStrength(password, userInputs)
	return PasswordStrength{
		Score:     match.Score,
		CrackTime: match.CrackTimeDisplay,
	}
}
