package edge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackerEmpty(t *testing.T) {
	tr := NewTracker[int](2)

	_, ok := tr.Current()
	assert.False(t, ok)
	_, ok = tr.Previous()
	assert.False(t, ok)
	assert.False(t, tr.Changed())
	assert.False(t, tr.Left(1))
}

func TestTrackerObservations(t *testing.T) {
	tr := NewTracker[string](3)
	tr.Observe("a")

	cur, ok := tr.Current()
	assert.True(t, ok)
	assert.Equal(t, "a", cur)
	_, ok = tr.Previous()
	assert.False(t, ok)

	tr.Observe("b")
	prev, ok := tr.Previous()
	assert.True(t, ok)
	assert.Equal(t, "a", prev)
	assert.True(t, tr.Changed())

	tr.Observe("b")
	assert.False(t, tr.Changed())
}

func TestTrackerEviction(t *testing.T) {
	tr := NewTracker[int](2)
	for i := 1; i <= 5; i++ {
		tr.Observe(i)
	}

	prev, _ := tr.Previous()
	cur, _ := tr.Current()
	assert.Equal(t, 4, prev)
	assert.Equal(t, 5, cur)
}

func TestTrackerLeft(t *testing.T) {
	tests := []struct {
		name    string
		observe []string
		set     []string
		want    bool
	}{
		{
			name:    "leaves the set",
			observe: []string{"waiting", ""},
			set:     []string{"waiting"},
			want:    true,
		},
		{
			name:    "stays in the set",
			observe: []string{"waiting", "waiting"},
			set:     []string{"waiting"},
			want:    false,
		},
		{
			name:    "moves between set members",
			observe: []string{"waiting", "also-waiting"},
			set:     []string{"waiting", "also-waiting"},
			want:    false,
		},
		{
			name:    "never was in the set",
			observe: []string{"", ""},
			set:     []string{"waiting"},
			want:    false,
		},
		{
			name:    "enters the set",
			observe: []string{"", "waiting"},
			set:     []string{"waiting"},
			want:    false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := NewTracker[string](2)
			for _, v := range tc.observe {
				tr.Observe(v)
			}
			assert.Equal(t, tc.want, tr.Left(tc.set...))
		})
	}
}

func TestTrackerClampsWindow(t *testing.T) {
	tr := NewTracker[int](0)
	tr.Observe(1)
	tr.Observe(2)

	prev, ok := tr.Previous()
	assert.True(t, ok)
	assert.Equal(t, 1, prev)
}
