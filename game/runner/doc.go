// Package runner drives one game of racing car from prompt to winner.
//
// A Runner owns the whole flow: it prompts for car names and the round
// count, validates both lines, plays the race round by round while
// rendering progress, and finally prints the winner line. Validation errors
// are returned untouched so the caller can report them once at the top
// level; nothing in this package terminates the process.
//
// Usage:
//
//	r := runner.NewRunner(engine.DefaultGameConfig(), engine.NewRandomPicker(0), os.Stdin, os.Stdout, logger)
//	if _, err := r.Play(ctx); err != nil {
//		fmt.Fprintln(os.Stderr, runner.FormatError(err))
//		os.Exit(1)
//	}
//
// Output:
//
//	pobi : -
//	woni :
//
//	pobi : --
//	woni : -
//
//	최종 우승자 : pobi
package runner
