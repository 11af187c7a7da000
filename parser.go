package push

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseProgram tokenizes source text on whitespace and builds the program
// onto the state's execution stack, preserving left-to-right order inside
// every nesting level. Tokens classify in order as a registered instruction
// name, an integer literal, a float literal, TRUE/FALSE, and otherwise an
// identifier. Unbalanced parentheses are reported to the caller; the engine
// never observes malformed programs.
func ParseProgram(s *State, set *InstructionSet, code string) error {
	depth := 0
	for _, token := range strings.Fields(code) {
		switch token {
		case "(":
			recPush(s.Exec, NewList(), depth)
			depth++
		case ")":
			if depth == 0 {
				return fmt.Errorf("parse: unexpected %q", token)
			}
			depth--
		default:
			recPush(s.Exec, classifyToken(set, token), depth)
		}
	}
	if depth != 0 {
		return fmt.Errorf("parse: %d unclosed list(s)", depth)
	}
	return nil
}

func classifyToken(set *InstructionSet, token string) Item {
	if set.IsInstruction(token) {
		return NewInstruction(token)
	}
	if v, err := strconv.Atoi(token); err == nil {
		return NewInt(v)
	}
	if v, err := strconv.ParseFloat(token, 64); err == nil {
		return NewFloat(v)
	}
	switch token {
	case "TRUE":
		return NewBool(true)
	case "FALSE":
		return NewBool(false)
	}
	return NewName(token)
}

// recPush performs a depth-aware front push. At depth 0 the item is
// inserted at the bottom of the stack; deeper levels recurse into the list
// at the bottom, the most recently opened one still under construction, so
// that tokens consumed left to right land at the current end of that list.
// Reaching a non-list while depth remains is an internal inconsistency and
// the item is dropped.
func recPush(stack *Stack[Item], item Item, depth int) bool {
	if depth == 0 {
		stack.PushFront(item)
		return true
	}
	bottom, ok := stack.Bottom()
	if !ok {
		stack.Push(item)
		return true
	}
	if l, isList := bottom.(List); isList {
		return recPush(l.items, item, depth-1)
	}
	return false
}
