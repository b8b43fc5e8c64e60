// Package lock implements the retype-the-string challenge that gates locked
// notes. The string is shown to the same user who must type it back, so it
// only adds friction; it protects nothing.
package lock

import (
	"fmt"
	"math/rand/v2"
)

// Length is the number of characters in a challenge string
const Length = 20

const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Challenge is a single unlock attempt. Create a fresh one per attempt.
type Challenge struct {
	secret string
}

// NewChallenge generates a challenge from the default random source
func NewChallenge() Challenge {
	return NewChallengeFrom(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// NewChallengeFrom generates a challenge using r
func NewChallengeFrom(r *rand.Rand) Challenge {
	buf := make([]byte, Length)
	for i := range buf {
		buf[i] = alphabet[r.IntN(len(alphabet))]
	}
	return Challenge{secret: string(buf)}
}

// FromString wraps a known string as a challenge
func FromString(s string) Challenge {
	return Challenge{secret: s}
}

// String returns the text the user has to retype
func (c Challenge) String() string {
	return c.secret
}

// Verify reports whether input matches exactly. Comparison is
// case-sensitive and nothing is trimmed. The zero Challenge never verifies.
func (c Challenge) Verify(input string) bool {
	return c.secret != "" && input == c.secret
}

// Prompt is the caption shown above the challenge string
func Prompt() string {
	return fmt.Sprintf("Enter the %d character string to unlock the note:", Length)
}
