package slash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		input string
		want  Action
	}{
		{input: "x = 1", want: Action{Kind: ActionNone}},
		{input: "/2", want: Action{Kind: ActionNone}},
		{input: "/", want: Action{Kind: ActionNone}},
		{input: "/vars", want: Action{Kind: ActionRun, Command: CommandVars, Token: "/vars"}},
		{input: "  /HISTORY  ", want: Action{Kind: ActionRun, Command: CommandHistory, Token: "/history"}},
		{input: "/export out.html", want: Action{Kind: ActionRun, Command: CommandExport, Args: "out.html", Token: "/export"}},
		{input: "/export", want: Action{Kind: ActionUsage, Command: CommandExport, Token: "/export", Usage: "/export <file>"}},
		{input: "/exit", want: Action{Kind: ActionRun, Command: CommandQuit, Token: "/exit"}},
		{input: "/nope", want: Action{Kind: ActionUnknown, Token: "/nope"}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.input))
		})
	}
}

func TestComplete(t *testing.T) {
	got := Complete("/hi")
	if assert.NotEmpty(t, got) {
		assert.Equal(t, CommandHistory, got[0].Command)
	}

	assert.Len(t, Complete("/"), len(Items()))
	assert.Nil(t, Complete("/export file"))
	assert.Nil(t, Complete("1+1"))
	assert.Empty(t, Complete("/zzz"))
}
