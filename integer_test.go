package push

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInteger_arithmetic(t *testing.T) {
	progTestCases{

		progTest("add", "( 2 3 INTEGER.+ )").
			expectInt("1:5;"),

		progTest("subtract second minus top", "( 2 3 INTEGER.- )").
			expectInt("1:-1;"),

		progTest("multiply", "( 4 5 INTEGER.* )").
			expectInt("1:20;"),

		progTest("divide second by top", "( 7 2 INTEGER./ )").
			expectInt("1:3;"),

		progTest("divide by zero leaves operands", "( 7 0 INTEGER./ )").
			expectInt("1:0; 2:7;"),

		progTest("modulo", "( 7 3 INTEGER.% )").
			expectInt("1:1;"),

		progTest("modulo by zero leaves operands", "( 7 0 INTEGER.% )").
			expectInt("1:0; 2:7;"),

		progTest("max", "( 2 5 INTEGER.MAX )").
			expectInt("1:5;"),

		progTest("min", "( 2 5 INTEGER.MIN )").
			expectInt("1:2;"),

		progTest("underflow is a no-op", "( 1 INTEGER.+ )").
			expectInt("1:1;"),
	}.run(t)
}

func TestInteger_comparisons(t *testing.T) {
	progTestCases{

		progTest("less", "( 2 3 INTEGER.< )").
			expectBool("1:true;").
			expectInt(""),

		progTest("not less", "( 3 2 INTEGER.< )").
			expectBool("1:false;"),

		progTest("greater", "( 3 2 INTEGER.> )").
			expectBool("1:true;"),

		progTest("equal", "( 4 4 INTEGER.= )").
			expectBool("1:true;").
			expectInt("1:4; 2:4;"),

		progTest("not equal", "( 4 5 INTEGER.= )").
			expectBool("1:false;"),
	}.run(t)
}

func TestInteger_conversions(t *testing.T) {
	progTestCases{

		progTest("from true", "( TRUE INTEGER.FROMBOOLEAN )").
			expectInt("1:1;").
			expectBool(""),

		progTest("from false", "( FALSE INTEGER.FROMBOOLEAN )").
			expectInt("1:0;"),

		progTest("from float truncates", "( 3.7 INTEGER.FROMFLOAT )").
			expectInt("1:3;").
			expectFloat(""),

		progTest("from negative float truncates toward zero", "( -3.7 INTEGER.FROMFLOAT )").
			expectInt("1:-3;"),
	}.run(t)
}

func TestInteger_stackOps(t *testing.T) {
	progTestCases{

		progTest("dup", "( 3 INTEGER.DUP INTEGER.* )").
			expectInt("1:9;"),

		progTest("pop", "( 1 2 INTEGER.POP )").
			expectInt("1:1;"),

		progTest("flush", "( 1 2 3 INTEGER.FLUSH )").
			expectInt(""),

		progTest("swap", "( 1 2 INTEGER.SWAP )").
			expectInt("1:1; 2:2;"),

		progTest("rot brings third to top", "( 1 2 3 INTEGER.ROT )").
			expectInt("1:1; 2:3; 3:2;"),

		progTest("shove consumes its depth operand", "( 1 2 3 4 2 INTEGER.SHOVE )").
			expectInt("1:3; 2:2; 3:4; 4:1;"),

		progTest("yank consumes its depth operand", "( 1 2 3 4 5 3 INTEGER.YANK )").
			expectInt("1:2; 2:5; 3:4; 4:3; 5:1;"),

		progTest("yankdup copies from depth", "( 1 2 3 4 5 3 INTEGER.YANKDUP )").
			expectInt("1:2; 2:5; 3:4; 4:3; 5:2; 6:1;"),

		progTest("stackdepth", "( 7 7 7 INTEGER.STACKDEPTH )").
			expectInt("1:3; 2:7; 3:7; 4:7;"),
	}.run(t)
}

func TestInteger_rand(t *testing.T) {
	progTestCases{

		progTest("stays within configured bounds", "( INTEGER.RAND INTEGER.RAND INTEGER.RAND )").
			withOptions(WithConfiguration(Configuration{
				MinRandomInteger: 5,
				MaxRandomInteger: 5,
			})).
			expectInt("1:5; 2:5; 3:5;"),

		progTest("inverted bounds are a no-op", "( INTEGER.RAND )").
			withOptions(WithConfiguration(Configuration{
				MinRandomInteger: 10,
				MaxRandomInteger: 0,
			})).
			expectInt(""),

		progTest("seed determines the sequence", "( INTEGER.RAND INTEGER.RAND )").
			withOptions(WithSeed(42)).
			expectWith(func(t *testing.T, s *State) {
				other := New(WithSeed(42))
				require.NoError(t, other.Load("( INTEGER.RAND INTEGER.RAND )"))
				require.NoError(t, other.Run(context.Background()))
				assert.Equal(t, other.State().Int.String(), s.Int.String())
			}),
	}.run(t)
}
