/*
Package push implements an interpreter for the Push programming language.

Push is a stack-based language designed for program evolution. Every value
type lives on its own stack, and programs themselves are data: code waiting
to run sits on the EXEC stack, and instructions such as CODE.QUOTE and
EXEC.DO*RANGE move and rewrite that code while it runs.

Basic usage parses a program onto a fresh interpreter's EXEC stack and runs
it to completion:

	in := push.New()
	if err := in.Load("( 2 3 INTEGER.+ )"); err != nil {
		log.Fatal(err)
	}
	if err := in.Run(ctx); err != nil {
		log.Fatal(err)
	}
	fmt.Println(in.State().Int) // 1:5;

Interpreters are configured with functional options such as WithStepLimit,
WithSizeLimit, and WithSeed. Custom instructions may be registered through
WithInstructions.
*/
package push
