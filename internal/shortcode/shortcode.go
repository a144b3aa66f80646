package shortcode

import (
	"context"
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Alphabet is the Instagram-style character set used for shareable
// codes: no confusable characters (0, O, I, l).
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// Length is the fixed length of a shareable code.
const Length = 7

// MaxAttempts bounds the collision retry loop.
const MaxAttempts = 10

// New returns a random shareable code.
func New() (string, error) {
	return gonanoid.Generate(Alphabet, Length)
}

// Prober answers whether a code is already taken.
type Prober interface {
	CodeExists(ctx context.Context, code string) (bool, error)
}

// Generator produces codes that are unique according to a Prober.
type Generator struct {
	probe Prober
}

func NewGenerator(probe Prober) *Generator {
	return &Generator{probe: probe}
}

// Unique returns a code the prober has not seen, retrying up to
// MaxAttempts times on collision. Exhausting the attempts is an error.
func (g *Generator) Unique(ctx context.Context) (string, error) {
	for attempts := 0; attempts < MaxAttempts; attempts++ {
		code, err := New()
		if err != nil {
			return "", fmt.Errorf("failed to generate code: %w", err)
		}

		exists, err := g.probe.CodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to check code uniqueness: %w", err)
		}
		if !exists {
			return code, nil
		}
	}

	return "", fmt.Errorf("failed to generate unique code after %d attempts", MaxAttempts)
}
