package push

import (
	"testing"
)

func TestFloat_arithmetic(t *testing.T) {
	progTestCases{

		progTest("add", "( 1.5 2.25 FLOAT.+ )").
			expectFloat("1:3.75;"),

		progTest("subtract second minus top", "( 1.5 0.25 FLOAT.- )").
			expectFloat("1:1.25;"),

		progTest("multiply", "( 1.5 4.0 FLOAT.* )").
			expectFloat("1:6;"),

		progTest("divide second by top", "( 1.0 4.0 FLOAT./ )").
			expectFloat("1:0.25;"),

		progTest("divide by zero leaves operands", "( 1.0 0.0 FLOAT./ )").
			expectFloat("1:0; 2:1;"),

		progTest("modulo", "( 7.5 2.0 FLOAT.% )").
			expectFloat("1:1.5;"),

		progTest("modulo by zero leaves operands", "( 7.5 0.0 FLOAT.% )").
			expectFloat("1:0; 2:7.5;"),

		progTest("max", "( 1.5 2.5 FLOAT.MAX )").
			expectFloat("1:2.5;"),

		progTest("min", "( 1.5 2.5 FLOAT.MIN )").
			expectFloat("1:1.5;"),

		progTest("sqrt", "( 6.25 FLOAT.SQRT )").
			expectFloat("1:2.5;"),

		progTest("sqrt of negative leaves operand", "( -4.0 FLOAT.SQRT )").
			expectFloat("1:-4;"),

		progTest("sin of zero", "( 0.0 FLOAT.SIN )").
			expectFloat("1:0;"),

		progTest("cos of zero", "( 0.0 FLOAT.COS )").
			expectFloat("1:1;"),

		progTest("tan of zero", "( 0.0 FLOAT.TAN )").
			expectFloat("1:0;"),
	}.run(t)
}

func TestFloat_comparisons(t *testing.T) {
	progTestCases{

		progTest("less", "( 1.5 2.5 FLOAT.< )").
			expectBool("1:true;").
			expectFloat(""),

		progTest("greater", "( 1.5 2.5 FLOAT.> )").
			expectBool("1:false;"),

		progTest("equal", "( 2.5 2.5 FLOAT.= )").
			expectBool("1:true;").
			expectFloat("1:2.5; 2:2.5;"),
	}.run(t)
}

func TestFloat_conversions(t *testing.T) {
	progTestCases{

		progTest("from true", "( TRUE FLOAT.FROMBOOLEAN )").
			expectFloat("1:1;"),

		progTest("from false", "( FALSE FLOAT.FROMBOOLEAN )").
			expectFloat("1:0;"),

		progTest("from integer", "( 3 FLOAT.FROMINTEGER )").
			expectFloat("1:3;").
			expectInt(""),
	}.run(t)
}

func TestFloat_rand(t *testing.T) {
	progTestCases{

		progTest("stays within configured bounds", "( FLOAT.RAND )").
			withOptions(WithConfiguration(Configuration{
				MinRandomFloat: 2,
				MaxRandomFloat: 3,
			})).
			expectWith(func(t *testing.T, s *State) {
				v, ok := s.Float.Pop()
				if !ok || v < 2 || v >= 3 {
					t.Errorf("expected a float in [2, 3), got %v %v", v, ok)
				}
			}),

		progTest("inverted bounds are a no-op", "( FLOAT.RAND )").
			withOptions(WithConfiguration(Configuration{
				MinRandomFloat: 3,
				MaxRandomFloat: 2,
			})).
			expectFloat(""),
	}.run(t)
}
