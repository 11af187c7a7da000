package push

import (
	"testing"
)

func TestList_add(t *testing.T) {
	progTestCases{

		progTest("collects one item per stack id", "( 7 TRUE LIST.ADD )").
			withSetup(func(s *State) {
				s.IntVector.Push(IntVector{Values: []int{BooleanStackID, IntegerStackID}})
			}).
			expectCode("1:List: 1:Literal(7); 2:Literal(true);;").
			expectBool("").
			expectInt(""),

		progTest("later ids execute first", "( 1 2 LIST.ADD )").
			withSetup(func(s *State) {
				s.IntVector.Push(IntVector{Values: []int{IntegerStackID, IntegerStackID}})
			}).
			expectCode("1:List: 1:Literal(1); 2:Literal(2);;").
			expectInt(""),

		progTest("unknown ids contribute nothing", "( 7 LIST.ADD )").
			withSetup(func(s *State) {
				s.IntVector.Push(IntVector{Values: []int{99, IntegerStackID}})
			}).
			expectCode("1:List: 1:Literal(7);;"),

		progTest("underflowing stacks contribute nothing", "LIST.ADD").
			withSetup(func(s *State) {
				s.IntVector.Push(IntVector{Values: []int{BooleanStackID}})
			}).
			expectCode("1:List: ;"),

		progTest("missing id vector is a no-op", "( 7 LIST.ADD )").
			expectCode("").
			expectInt("1:7;"),

		progTest("name id drains the name stack", "( NAME.QUOTE x LIST.ADD )").
			withSetup(func(s *State) {
				s.IntVector.Push(IntVector{Values: []int{NameStackID}})
			}).
			expectCode("1:List: 1:Identifier(x);;"),
	}.run(t)
}

func TestList_getSet(t *testing.T) {
	progTestCases{

		progTest("get schedules a code item", "( CODE.QUOTE ( 1 2 ) 0 LIST.GET )").
			expectInt("1:2; 2:1;").
			expectCode("1:List: 1:Literal(1); 2:Literal(2);;"),

		progTest("get clamps the index", "( CODE.QUOTE 5 CODE.QUOTE 6 99 LIST.GET )").
			expectInt("1:5;").
			expectCode("1:Literal(6); 2:Literal(5);"),

		progTest("get clamps a negative index", "( CODE.QUOTE 5 CODE.QUOTE 6 -3 LIST.GET )").
			expectInt("1:6;"),

		progTest("set replaces a code item", "( CODE.QUOTE 5 9 0 LIST.SET )").
			withSetup(func(s *State) {
				s.IntVector.Push(IntVector{Values: []int{IntegerStackID}})
			}).
			expectCode("1:List: 1:Literal(9);;").
			expectInt(""),

		progTest("set without an id vector is a no-op", "( CODE.QUOTE 5 0 LIST.SET )").
			expectCode("1:Literal(5);").
			expectInt("1:0;"),
	}.run(t)
}

func TestList_neighbors(t *testing.T) {
	progTestCases{

		progTest("pushes neighbors largest on top", "( 2 50 100 1.5 LIST.NEIGHBORS )").
			expectInt("1:61; 2:60; 3:51; 4:50; 5:41; 6:40;").
			expectFloat(""),

		progTest("out of range index clamps high", "( 2 105 100 1.5 LIST.NEIGHBORS )").
			expectInt("1:99; 2:98; 3:89; 4:88;"),

		progTest("out of range index clamps low", "( 2 -10 100 1.5 LIST.NEIGHBORS )").
			expectInt("1:11; 2:10; 3:1; 4:0;"),

		progTest("missing radius is a no-op", "( 2 50 100 LIST.NEIGHBORS )").
			expectInt("1:100; 2:50; 3:2;"),

		progTest("missing integers is a no-op", "( 50 100 1.5 LIST.NEIGHBORS )").
			expectInt("1:100; 2:50;").
			expectFloat("1:1.5;"),
	}.run(t)
}
