package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTicketStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TicketStatus
		wantErr bool
	}{
		{name: "open", input: "OPEN", want: StatusOpen},
		{name: "todo", input: "TODO", want: StatusTodo},
		{name: "in progress", input: "IN_PROGRESS", want: StatusInProgress},
		{name: "blocked", input: "BLOCKED", want: StatusBlocked},
		{name: "completed", input: "COMPLETED", want: StatusCompleted},
		{name: "canceled", input: "CANCELED", want: StatusCanceled},
		{name: "lowercase rejected", input: "open", wantErr: true},
		{name: "unknown rejected", input: "ARCHIVED", wantErr: true},
		{name: "empty rejected", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTicketStatus(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTicketStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from TicketStatus
		to   TicketStatus
		want bool
	}{
		{name: "open to blocked", from: StatusOpen, to: StatusBlocked, want: true},
		{name: "open to completed", from: StatusOpen, to: StatusCompleted, want: true},
		{name: "blocked to blocked not offered", from: StatusBlocked, to: StatusBlocked, want: false},
		{name: "blocked back to in progress", from: StatusBlocked, to: StatusInProgress, want: true},
		{name: "completed is terminal", from: StatusCompleted, to: StatusOpen, want: false},
		{name: "canceled is terminal", from: StatusCanceled, to: StatusTodo, want: false},
		{name: "in progress to todo not offered", from: StatusInProgress, to: StatusTodo, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestTicketStatus_IsTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCanceled.IsTerminal())
	assert.False(t, StatusOpen.IsTerminal())
	assert.False(t, StatusBlocked.IsTerminal())

	assert.Empty(t, StatusCompleted.AvailableTransitions())
	assert.Empty(t, StatusCanceled.AvailableTransitions())
}

func TestStatusFromLegacyCode(t *testing.T) {
	for code, want := range map[int]TicketStatus{
		0: StatusOpen,
		1: StatusTodo,
		2: StatusInProgress,
		3: StatusBlocked,
		4: StatusCompleted,
	} {
		got, err := StatusFromLegacyCode(code)
		require.NoError(t, err)
		assert.Equal(t, want, got)

		// Round trip back to the numeric encoding.
		back, ok := got.LegacyCode()
		require.True(t, ok)
		assert.Equal(t, code, back)
	}

	_, err := StatusFromLegacyCode(5)
	require.Error(t, err)

	// CANCELED has no numeric representation.
	_, ok := StatusCanceled.LegacyCode()
	assert.False(t, ok)
}

func TestTicketStatus_Display(t *testing.T) {
	assert.Equal(t, "In Progress", StatusInProgress.Display())
	assert.Equal(t, "To Do", StatusTodo.Display())
	assert.Equal(t, "SOMETHING", TicketStatus("SOMETHING").Display())
}
