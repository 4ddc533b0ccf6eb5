package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateStrength(t *testing.T) {
	weak := EstimateStrength("password")
	assert.True(t, weak.Weak())
	assert.NotEmpty(t, weak.CrackTime)

	strong := EstimateStrength("correct-horse-battery-staple-7Qz!vR")
	assert.False(t, strong.Weak())
	assert.GreaterOrEqual(t, strong.Score, MinRecommendedScore)
}

func TestEstimateStrength_Empty(t *testing.T) {
	s := EstimateStrength("")
	assert.Equal(t, 0, s.Score)
	assert.True(t, s.Weak())
}

func TestEstimateStrength_UserInputs(t *testing.T) {
	s := EstimateStrength("alice2026", "alice")
	assert.True(t, s.Weak())
}

func TestPasswordStrength_Label(t *testing.T) {
	assert.Equal(t, "very weak", PasswordStrength{Score: 0}.Label())
	assert.Equal(t, "weak", PasswordStrength{Score: 1}.Label())
	assert.Equal(t, "fair", PasswordStrength{Score: 2}.Label())
	assert.Equal(t, "strong", PasswordStrength{Score: 3}.Label())
	assert.Equal(t, "very strong", PasswordStrength{Score: 4}.Label())
}
