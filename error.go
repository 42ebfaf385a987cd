package brx

import "fmt"

// CompileError is the single error type the package produces. It is
// raised only during pattern compilation (lexing, parsing, class
// building or bytecode emission); runtime matching never returns an
// error. Pos is the byte offset of the pattern source token that
// caused the failure.
type CompileError struct {
	Msg string
	Pos int
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("brx: %s (at offset %d)", e.Msg, e.Pos)
}
