package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressState_Clamp(t *testing.T) {
	tests := []struct {
		name         string
		state        ProgressState
		totalPages   int
		targetPasses int
		expected     ProgressState
	}{
		{
			name:         "already valid",
			state:        ProgressState{CompletedPages: 2, CompletedPasses: 0},
			totalPages:   5,
			targetPasses: 2,
			expected:     ProgressState{CompletedPages: 2, CompletedPasses: 0},
		},
		{
			name:         "pages over total after shrink",
			state:        ProgressState{CompletedPages: 8, CompletedPasses: 0},
			totalPages:   3,
			targetPasses: 2,
			expected:     ProgressState{CompletedPages: 3, CompletedPasses: 0},
		},
		{
			name:         "passes over target",
			state:        ProgressState{CompletedPages: 1, CompletedPasses: 5},
			totalPages:   3,
			targetPasses: 2,
			expected:     ProgressState{CompletedPages: 3, CompletedPasses: 2},
		},
		{
			name:         "finished book forces full pages",
			state:        ProgressState{CompletedPages: 0, CompletedPasses: 2},
			totalPages:   4,
			targetPasses: 2,
			expected:     ProgressState{CompletedPages: 4, CompletedPasses: 2},
		},
		{
			name:         "zero pages clears page counter",
			state:        ProgressState{CompletedPages: 3, CompletedPasses: 1},
			totalPages:   0,
			targetPasses: 2,
			expected:     ProgressState{CompletedPages: 0, CompletedPasses: 1},
		},
		{
			name:         "negative counters reset",
			state:        ProgressState{CompletedPages: -1, CompletedPasses: -2},
			totalPages:   3,
			targetPasses: 2,
			expected:     ProgressState{CompletedPages: 0, CompletedPasses: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.state.Clamp(tt.totalPages, tt.targetPasses)
			assert.Equal(t, tt.expected, got)

			// Clamping twice yields the same result as clamping once.
			assert.Equal(t, got, got.Clamp(tt.totalPages, tt.targetPasses))
		})
	}
}

func TestProgressState_ClampIdempotence(t *testing.T) {
	for pages := -1; pages <= 6; pages++ {
		for passes := -1; passes <= 4; passes++ {
			for totalPages := 0; totalPages <= 4; totalPages++ {
				for targetPasses := 1; targetPasses <= 3; targetPasses++ {
					state := ProgressState{CompletedPages: pages, CompletedPasses: passes}
					once := state.Clamp(totalPages, targetPasses)
					twice := once.Clamp(totalPages, targetPasses)
					assert.Equal(t, once, twice,
						"clamp not idempotent for %+v total=%d target=%d", state, totalPages, targetPasses)
				}
			}
		}
	}
}

func TestProgressState_MarkPageCompleted(t *testing.T) {
	tests := []struct {
		name         string
		state        ProgressState
		totalPages   int
		pageIndex    int
		targetPasses int
		expected     ProgressState
	}{
		{
			name:         "advance within pass",
			state:        ProgressState{CompletedPages: 0, CompletedPasses: 0},
			totalPages:   3,
			pageIndex:    0,
			targetPasses: 2,
			expected:     ProgressState{CompletedPages: 1, CompletedPasses: 0},
		},
		{
			name:         "revisiting earlier page never regresses",
			state:        ProgressState{CompletedPages: 2, CompletedPasses: 0},
			totalPages:   5,
			pageIndex:    0,
			targetPasses: 2,
			expected:     ProgressState{CompletedPages: 2, CompletedPasses: 0},
		},
		{
			name:         "last page starts a new pass",
			state:        ProgressState{CompletedPages: 2, CompletedPasses: 0},
			totalPages:   3,
			pageIndex:    2,
			targetPasses: 2,
			expected:     ProgressState{CompletedPages: 0, CompletedPasses: 1},
		},
		{
			name:         "last page of final pass is terminal",
			state:        ProgressState{CompletedPages: 2, CompletedPasses: 1},
			totalPages:   3,
			pageIndex:    2,
			targetPasses: 2,
			expected:     ProgressState{CompletedPages: 3, CompletedPasses: 2},
		},
		{
			name:         "terminal state is a no-op",
			state:        ProgressState{CompletedPages: 3, CompletedPasses: 2},
			totalPages:   3,
			pageIndex:    1,
			targetPasses: 2,
			expected:     ProgressState{CompletedPages: 3, CompletedPasses: 2},
		},
		{
			name:         "single page single pass finishes immediately",
			state:        ProgressState{},
			totalPages:   1,
			pageIndex:    0,
			targetPasses: 1,
			expected:     ProgressState{CompletedPages: 1, CompletedPasses: 1},
		},
		{
			name:         "zero pages is a no-op",
			state:        ProgressState{CompletedPages: 1, CompletedPasses: 0},
			totalPages:   0,
			pageIndex:    0,
			targetPasses: 1,
			expected:     ProgressState{CompletedPages: 1, CompletedPasses: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.state.MarkPageCompleted(tt.totalPages, tt.pageIndex, tt.targetPasses)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestProgressState_MonotonicWithinPass(t *testing.T) {
	const totalPages, targetPasses = 5, 3

	state := ProgressState{}
	prev := 0
	// Any sequence of page completions inside one pass never lowers the
	// page counter.
	for _, pageIndex := range []int{0, 1, 0, 2, 1, 3, 0} {
		state = state.MarkPageCompleted(totalPages, pageIndex, targetPasses)
		assert.GreaterOrEqual(t, state.CompletedPages, prev)
		assert.Equal(t, 0, state.CompletedPasses)
		prev = state.CompletedPages
	}
}

func TestProgressState_TerminalIdempotence(t *testing.T) {
	const totalPages, targetPasses = 3, 2

	state := ProgressState{CompletedPages: 2, CompletedPasses: 1}
	state = state.MarkPageCompleted(totalPages, 2, targetPasses)
	assert.Equal(t, ProgressState{CompletedPages: 3, CompletedPasses: 2}, state)

	for pageIndex := 0; pageIndex < totalPages; pageIndex++ {
		assert.Equal(t, state, state.MarkPageCompleted(totalPages, pageIndex, targetPasses))
	}
}

func TestProgressState_NextPageIndex(t *testing.T) {
	tests := []struct {
		name         string
		state        ProgressState
		totalPages   int
		targetPasses int
		expected     int
	}{
		{
			name:         "fresh book starts at zero",
			state:        ProgressState{},
			totalPages:   3,
			targetPasses: 1,
			expected:     0,
		},
		{
			name:         "resume at first incomplete page",
			state:        ProgressState{CompletedPages: 2},
			totalPages:   5,
			targetPasses: 1,
			expected:     2,
		},
		{
			name:         "finished book shows last page",
			state:        ProgressState{CompletedPages: 3, CompletedPasses: 2},
			totalPages:   3,
			targetPasses: 2,
			expected:     2,
		},
		{
			name:         "pages capped at last index",
			state:        ProgressState{CompletedPages: 9},
			totalPages:   4,
			targetPasses: 2,
			expected:     3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.NextPageIndex(tt.totalPages, tt.targetPasses))
		})
	}
}

func TestValidDailyDate(t *testing.T) {
	assert.True(t, ValidDailyDate("2026-08-29"))
	assert.True(t, ValidDailyDate("2024-02-29"))

	assert.False(t, ValidDailyDate("2026-8-29"))
	assert.False(t, ValidDailyDate("29-08-2026"))
	assert.False(t, ValidDailyDate("2026/08/29"))
	assert.False(t, ValidDailyDate("2023-02-29"))
	assert.False(t, ValidDailyDate(""))
	assert.False(t, ValidDailyDate("2026-08-29T00:00:00Z"))
}
