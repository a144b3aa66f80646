package shortcode

import (
	"context"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestNewShape(t *testing.T) {
	code, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if len(code) != Length {
		t.Errorf("len(code) = %d, want %d", len(code), Length)
	}
	for _, r := range code {
		if !strings.ContainsRune(Alphabet, r) {
			t.Errorf("code %q contains %q outside alphabet", code, r)
		}
	}
}

// Property: every generated code has the fixed length and draws only
// from the code alphabet, regardless of how many times we generate.
func TestProperty_CodeShape(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("codes are 7 chars from the alphabet", prop.ForAll(
		func(_ int) bool {
			code, err := New()
			if err != nil || len(code) != Length {
				return false
			}
			for _, r := range code {
				if !strings.ContainsRune(Alphabet, r) {
					return false
				}
			}
			return true
		},
		gen.Int(),
	))

	properties.TestingRun(t)
}

type fakeProbe struct {
	collisions int
	calls      int
	failWith   error
}

func (p *fakeProbe) CodeExists(ctx context.Context, code string) (bool, error) {
	p.calls++
	if p.failWith != nil {
		return false, p.failWith
	}
	if p.calls <= p.collisions {
		return true, nil
	}
	return false, nil
}

func TestUniqueRetriesOnCollision(t *testing.T) {
	probe := &fakeProbe{collisions: 3}
	g := NewGenerator(probe)

	code, err := g.Unique(context.Background())
	if err != nil {
		t.Fatalf("Unique() error: %v", err)
	}
	if len(code) != Length {
		t.Errorf("len(code) = %d, want %d", len(code), Length)
	}
	if probe.calls != 4 {
		t.Errorf("probe calls = %d, want 4", probe.calls)
	}
}

func TestUniqueExhaustsAttempts(t *testing.T) {
	probe := &fakeProbe{collisions: MaxAttempts + 1}
	g := NewGenerator(probe)

	if _, err := g.Unique(context.Background()); err == nil {
		t.Fatal("Unique() should fail after exhausting attempts")
	}
	if probe.calls != MaxAttempts {
		t.Errorf("probe calls = %d, want %d", probe.calls, MaxAttempts)
	}
}
