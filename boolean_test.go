package push

import (
	"testing"
)

func TestBoolean_logic(t *testing.T) {
	progTestCases{

		progTest("and", "( TRUE FALSE BOOLEAN.AND )").
			expectBool("1:false;"),

		progTest("and both true", "( TRUE TRUE BOOLEAN.AND )").
			expectBool("1:true;"),

		progTest("or", "( TRUE FALSE BOOLEAN.OR )").
			expectBool("1:true;"),

		progTest("or both false", "( FALSE FALSE BOOLEAN.OR )").
			expectBool("1:false;"),

		progTest("not", "( TRUE BOOLEAN.NOT )").
			expectBool("1:false;"),

		progTest("underflow is a no-op", "( TRUE BOOLEAN.AND )").
			expectBool("1:true;"),
	}.run(t)
}

func TestBoolean_conversions(t *testing.T) {
	progTestCases{

		progTest("from nonzero integer", "( 3 BOOLEAN.FROMINTEGER )").
			expectBool("1:true;").
			expectInt(""),

		progTest("from zero integer", "( 0 BOOLEAN.FROMINTEGER )").
			expectBool("1:false;"),

		progTest("from nonzero float", "( 0.5 BOOLEAN.FROMFLOAT )").
			expectBool("1:true;").
			expectFloat(""),

		progTest("from zero float", "( 0.0 BOOLEAN.FROMFLOAT )").
			expectBool("1:false;"),
	}.run(t)
}

func TestBoolean_stackOps(t *testing.T) {
	progTestCases{

		progTest("dup", "( TRUE BOOLEAN.DUP )").
			expectBool("1:true; 2:true;"),

		progTest("swap", "( TRUE FALSE BOOLEAN.SWAP )").
			expectBool("1:true; 2:false;"),

		progTest("equal", "( TRUE TRUE BOOLEAN.= )").
			expectBool("1:true; 2:true; 3:true;"),

		progTest("define binds a boolean", "( NAME.QUOTE flag TRUE BOOLEAN.DEFINE flag flag )").
			expectBool("1:true; 2:true;"),
	}.run(t)
}

func TestBoolean_rand(t *testing.T) {
	progTest("pushes one boolean", "( BOOLEAN.RAND )").
		expectWith(func(t *testing.T, s *State) {
			if s.Bool.Size() != 1 {
				t.Errorf("expected one boolean, got %v", s.Bool.Size())
			}
		}).
		run(t)
}
