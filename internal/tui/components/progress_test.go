package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProgressView(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		total     int
		completed int
		label     string
	}{
		{name: "nothing tracked", total: 0, completed: 0, label: "0/0"},
		{name: "partial", total: 8, completed: 3, label: "3/8"},
		{name: "complete", total: 8, completed: 8, label: "8/8"},
		{name: "overflow keeps the count", total: 2, completed: 5, label: "5/2"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			view := NewProgress(tc.total).View(tc.completed)
			require.Contains(t, view, tc.label)
			require.Greater(t, len(strings.TrimSpace(view)), len(tc.label))
		})
	}
}

func TestThemedProgressView(t *testing.T) {
	t.Parallel()

	view := NewThemedProgress(4, "#f26a1e", "#ff5f1f").View(2)
	require.Contains(t, view, "2/4")
}
