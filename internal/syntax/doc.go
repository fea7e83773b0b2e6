// Package syntax classifies byte ranges of source text into coarse token
// kinds. The rule engine only depends on the Classifier interface; the chroma
// backed implementation is what the CLI wires in.
package syntax
