package lock

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestNewChallengeShape(t *testing.T) {
	for i := 0; i < 50; i++ {
		c := NewChallenge()
		s := c.String()
		assert.Len(t, s, Length)
		for _, r := range s {
			assert.True(t, strings.ContainsRune(alphabet, r), "unexpected rune %q", r)
		}
	}
}

func TestNewChallengeFromIsDeterministic(t *testing.T) {
	a := NewChallengeFrom(rand.New(rand.NewPCG(1, 2)))
	b := NewChallengeFrom(rand.New(rand.NewPCG(1, 2)))
	assert.Equal(t, a.String(), b.String())
}

func TestFreshChallengePerAttempt(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		seen[NewChallenge().String()] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestVerify(t *testing.T) {
	c := FromString("AbC123xyz0AbC123xyz0")

	assert.True(t, c.Verify("AbC123xyz0AbC123xyz0"))
	assert.False(t, c.Verify("abc123xyz0abc123xyz0"), "case differs")
	assert.False(t, c.Verify("AbC123xyz0"), "prefix")
	assert.False(t, c.Verify("AbC123xyz0AbC123xyz0 "), "trailing space")
	assert.False(t, c.Verify(""))
}

func TestZeroChallengeNeverVerifies(t *testing.T) {
	var c Challenge
	assert.False(t, c.Verify(""))
}

func TestVerifyRejectsAnyOtherInput_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		secret := rapid.StringMatching(`[A-Za-z0-9]{20}`).Draw(t, "secret")
		input := rapid.String().Draw(t, "input")
		c := FromString(secret)

		if !c.Verify(secret) {
			t.Fatalf("exact input rejected")
		}
		if input != secret && c.Verify(input) {
			t.Fatalf("input %q accepted for %q", input, secret)
		}
	})
}

func TestPrompt(t *testing.T) {
	assert.Contains(t, Prompt(), "20 character")
}
