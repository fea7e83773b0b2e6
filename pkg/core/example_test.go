package core_test

import (
	"fmt"

	"github.com/bracecheck/bracecheck/pkg/core"
)

// ExampleCorrect rewrites a snippet to the cuddled style.
func ExampleCorrect() {
	src := "if (ok) {\n  run();\n}\nelse {\n  stop();\n}\n"
	out, cs, err := core.Correct("Main.java", src, core.Cuddled)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%d correction(s)\n", len(cs))
	fmt.Print(out)
	// Output:
	// 1 correction(s)
	// if (ok) {
	//   run();
	// } else {
	//   stop();
	// }
}

// ExampleValidate reports a keyword that is not aligned with its brace.
func ExampleValidate() {
	src := "if (ok) {\n  run();\n  }\nelse {\n}\n"
	vs, err := core.Validate("Main.java", src, core.Uncuddled)
	if err != nil {
		panic(err)
	}
	for _, v := range vs {
		fmt.Printf("%d:%d %s\n", v.Location.Line, v.Location.Column, v.RuleID)
	}
	// Output:
	// 3:3 statement_position
}
