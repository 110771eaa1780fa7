package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// envLookup builds a Lookup backed by a map.
func envLookup(env map[string]string) Lookup {
	return func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string

		want    Command
		wantErr error
	}{
		{
			name: "VisualOnly",
			env:  map[string]string{"VISUAL": "nvim"},
			want: Command{"nvim"},
		},
		{
			name: "EditorOnly",
			env:  map[string]string{"EDITOR": "nano"},
			want: Command{"nano"},
		},
		{
			name: "VisualWins",
			env:  map[string]string{"VISUAL": "vis", "EDITOR": "ed"},
			want: Command{"vis"},
		},
		{
			name: "Arguments",
			env:  map[string]string{"EDITOR": "code --wait"},
			want: Command{"code", "--wait"},
		},
		{
			name: "QuotedArgument",
			env:  map[string]string{"EDITOR": `prog --flag "a b"`},
			want: Command{"prog", "--flag", "a b"},
		},
		{
			name: "SingleQuotes",
			env:  map[string]string{"EDITOR": `'/Applications/My Editor' -w`},
			want: Command{"/Applications/My Editor", "-w"},
		},
		{
			name: "EscapedSpace",
			env:  map[string]string{"VISUAL": `my\ editor`},
			want: Command{"my editor"},
		},
		{
			name:    "Unset",
			env:     map[string]string{},
			wantErr: ErrMissingEditor,
		},
		{
			name:    "Whitespace",
			env:     map[string]string{"EDITOR": "  \t "},
			wantErr: ErrEmptyCommand,
		},
		{
			name:    "BlankVisualDoesNotFallBack",
			env:     map[string]string{"VISUAL": "", "EDITOR": "ed"},
			wantErr: ErrEmptyCommand,
		},
		{
			name: "InvalidUTF8VisualIgnored",
			env:  map[string]string{"VISUAL": "vi\xff", "EDITOR": "ed"},
			want: Command{"ed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(envLookup(tt.env))
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_parseFailed(t *testing.T) {
	tests := []struct {
		name string
		give string
	}{
		{name: "UnterminatedDouble", give: `vim "unterminated`},
		{name: "UnterminatedSingle", give: `vim 'unterminated`},
		{name: "TrailingBackslash", give: `prog a\`},
		{name: "LoneBackslash", give: `\`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(envLookup(map[string]string{
				"VISUAL": tt.give,
				"EDITOR": "ed",
			}))
			require.Error(t, err)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.give, parseErr.Value)
			assert.ErrorContains(t, err, "parse editor command")
		})
	}
}

func TestParse_escapes(t *testing.T) {
	tests := []struct {
		name string
		give string
		want Command
	}{
		{name: "EscapedSpace", give: `prog a\ b`, want: Command{"prog", "a b"}},
		{name: "EscapedTrailingSpace", give: `prog a\ `, want: Command{"prog", "a "}},
		{name: "EscapedBackslash", give: `prog a\\`, want: Command{"prog", `a\`}},
		{name: "EscapedQuote", give: `prog "a\"b"`, want: Command{"prog", `a"b`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.give)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_defaultLookup(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "ed")

	_, err := Resolve(nil)
	assert.ErrorIs(t, err, ErrEmptyCommand)
}

func TestResolve_precedence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		visual := rapid.StringMatching(`[a-z][a-z0-9_-]{0,10}`).Draw(t, "visual")
		editor := rapid.StringMatching(`[a-z][a-z0-9_-]{0,10}`).Draw(t, "editor")

		got, err := Resolve(envLookup(map[string]string{
			"VISUAL": visual,
			"EDITOR": editor,
		}))
		require.NoError(t, err)
		assert.Equal(t, Command{visual}, got)
	})
}

func TestParse_roundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		want := Command(rapid.SliceOfN(
			rapid.StringMatching(`[a-zA-Z0-9._/-][a-zA-Z0-9._/ "-]{0,11}`),
			1, 5,
		).Draw(t, "words"))

		got, err := Parse(want.String())
		require.NoError(t, err, "parse %q", want.String())
		assert.Equal(t, want, got)
	})
}

func TestCommand_accessors(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		var cmd Command
		assert.Empty(t, cmd.Name())
		assert.Empty(t, cmd.Args())
	})

	t.Run("NameOnly", func(t *testing.T) {
		cmd := Command{"vim"}
		assert.Equal(t, "vim", cmd.Name())
		assert.Empty(t, cmd.Args())
		assert.Equal(t, "vim", cmd.String())
	})

	t.Run("WithArgs", func(t *testing.T) {
		cmd := Command{"code", "--wait", "a b"}
		assert.Equal(t, "code", cmd.Name())
		assert.Equal(t, []string{"--wait", "a b"}, cmd.Args())
		assert.Equal(t, "code --wait 'a b'", cmd.String())
	})
}
