package script

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Program is a parsed script
type Program struct {
	Statements []*Statement `( @@ | EOL )*`
}

// Statement is one command with its numeric arguments
type Statement struct {
	Pos lexer.Position

	Command   string    `@Ident`
	Args      []float64 `@Number*`
	Constrain bool      `@"constrain"?`
}
