package script

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// ScriptLexer defines the lexical structure of rotview scripts.
// Statements are a command word followed by numbers; newlines separate them.
var ScriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments - shell style (# to end of line)
	{Name: "Comment", Pattern: `#[^\n]*`},

	{Name: "EOL", Pattern: `\r?\n`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},

	// Numbers, optionally signed, with optional fraction and exponent
	{Name: "Number", Pattern: `[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`},

	// Command words and flags (rotate-to, begin-drag, constrain)
	{Name: "Ident", Pattern: `[a-zA-Z][a-zA-Z0-9_-]*`},

	// Separators tolerated between numbers: "10,20" or "(10, 20)"
	{Name: "Punct", Pattern: `[,()]`},
})
