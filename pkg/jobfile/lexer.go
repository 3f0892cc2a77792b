package jobfile

import "github.com/alecthomas/participle/v2/lexer"

// JobLexer tokenizes job files. Line ends are significant, every other
// run of blanks is not.
var JobLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "EOL", Pattern: `[\n\r]+`},
	{Name: "Whitespace", Pattern: `[ \t]+`},

	// Numbers with an optional SI suffix: 470k, 2.2meg, -6, 1e-3
	{Name: "Number", Pattern: `[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?(meg|[TGMKkmunpf])?`},

	// Families, topologies, parameter and flag names
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_\-]*`},

	{Name: "Punct", Pattern: `=`},
})
