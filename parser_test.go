package push

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProgram(t *testing.T) {
	for _, tc := range []struct {
		name string
		code string
		want string
	}{
		{
			name: "flat list",
			code: "( 2 3 INTEGER.* )",
			want: "1:List: 1:Literal(2); 2:Literal(3); 3:InstructionMeta(INTEGER.*);;",
		},
		{
			name: "bare tokens execute left to right",
			code: "1 2 INTEGER.+",
			want: "1:Literal(1); 2:Literal(2); 3:InstructionMeta(INTEGER.+);",
		},
		{
			name: "empty list",
			code: "( )",
			want: "1:List: ;",
		},
		{
			name: "empty program",
			code: "",
			want: "",
		},
		{
			name: "nested list",
			code: "( 1 ( 2 TRUE ) x )",
			want: "1:List: 1:Literal(1); 2:List: 1:Literal(2); 2:Literal(true);; 3:Identifier(x);;",
		},
		{
			name: "sibling lists keep program order",
			code: "( 1 ) ( 2 )",
			want: "1:List: 1:Literal(1);; 2:List: 1:Literal(2);;",
		},
		{
			name: "literal classification",
			code: "42 -7 3.5 2.0 TRUE FALSE frob",
			want: "1:Literal(42); 2:Literal(-7); 3:Literal(3.5f); 4:Literal(2f); " +
				"5:Literal(true); 6:Literal(false); 7:Identifier(frob);",
		},
		{
			name: "deeply nested",
			code: "( ( ( NOOP ) ) )",
			want: "1:List: 1:List: 1:List: 1:InstructionMeta(NOOP);;;;",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ip := New()
			require.NoError(t, ip.Load(tc.code))
			assert.Equal(t, tc.want, ip.State().Exec.String())
		})
	}
}

func TestParseProgram_errors(t *testing.T) {
	for _, tc := range []struct {
		name string
		code string
	}{
		{name: "unclosed list", code: "( 1 2"},
		{name: "unclosed nested list", code: "( 1 ( 2 )"},
		{name: "stray close", code: ") 1"},
		{name: "close after balanced", code: "( 1 ) )"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, New().Load(tc.code))
		})
	}
}

func TestParseProgram_instructionNameWins(t *testing.T) {
	// Registered instruction names take precedence over every other
	// classification, even ones that look like literals.
	ip := New(WithInstructions(func(set *InstructionSet) {
		set.Register("42", noop)
		set.Register("TRUE", noop)
	}))
	require.NoError(t, ip.Load("42 TRUE 43 FALSE"))
	assert.Equal(t,
		"1:InstructionMeta(42); 2:InstructionMeta(TRUE); 3:Literal(43); 4:Literal(false);",
		ip.State().Exec.String())
}
