package deferred

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// callsRegistry records callback invocations so tests can assert on ordering.
// Execution is single-threaded and loop-driven, so assertions run after
// Loop.Run rather than by polling.
func NewCallsRegistry(expectedCalls uint) *callsRegistry {
	registry := callsRegistry{
		expectedCalls: expectedCalls,
	}

	return &registry
}

type callsRegistry struct {
	registry      []string
	expectedCalls uint
}

func (r *callsRegistry) Register(place string) {
	if 0 == r.expectedCalls {
		panic("trying to register unexpected call: " + place)
	}

	r.registry = append(r.registry, place)
	r.expectedCalls--
}

func (r *callsRegistry) Summarize() string {
	return strings.Join(r.registry, "|")
}

func (r *callsRegistry) AssertCompleted(t *testing.T, expectedRegistry string) {
	require.Zerof(
		t,
		r.expectedCalls,
		"There are still %d expected call(s) left. Calls registered: %v.",
		r.expectedCalls,
		r.registry,
	)

	require.Equal(t, expectedRegistry, r.Summarize())
}

func (r *callsRegistry) AssertCurrentCallsStackIs(t *testing.T, expectedRegistry string) {
	require.Equal(t, expectedRegistry, r.Summarize())
}

func (r *callsRegistry) AssertThereAreNCallsLeft(t *testing.T, callsLeftNumber uint) {
	require.Equal(t, callsLeftNumber, r.expectedCalls)
}
