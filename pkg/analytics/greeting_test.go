package analytics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGreetingBoundaries(t *testing.T) {
	cases := map[int]string{
		0:  "Good night",
		5:  "Good night",
		6:  "Good morning",
		11: "Good morning",
		12: "Good afternoon",
		17: "Good afternoon",
		18: "Good evening",
		22: "Good evening",
		23: "Good night",
	}

	a := testAnalyzer()
	for hour, want := range cases {
		ref := fmt.Sprintf("2024-02-15T%02d:00:00", hour)
		assert.Equal(t, want, a.Greeting(ref), "hour %d", hour)
	}
}

func TestGreetingInvalidReference(t *testing.T) {
	assert.Equal(t, GreetingError, testAnalyzer().Greeting("yesterday-ish"))
	assert.Equal(t, GreetingError, testAnalyzer().Greeting(""))
}
