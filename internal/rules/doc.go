// Package rules implements bracecheck's lint rules. The only built-in rule,
// statement_position, checks where else/catch sit relative to the closing
// brace before them, under either the cuddled or the uncuddled layout.
//
// Rules are pure: they read the text and a syntax.Classifier and return
// violations or rewritten text. They never touch the filesystem.
package rules
