package jobfile

import "github.com/alecthomas/participle/v2/lexer"

// File is a parsed job file.
type File struct {
	Jobs []*Job `parser:"EOL* ( @@ EOL* )*"`
}

// Job is one request line: family, topology, mode and its items.
type Job struct {
	Pos lexer.Position

	Family   string  `parser:"@Ident"`
	Topology string  `parser:"@Ident"`
	Mode     string  `parser:"@Ident"`
	Items    []*Item `parser:"@@*"`
}

// Item is a name=value assignment, or a bare flag when Value is nil.
type Item struct {
	Pos lexer.Position

	Name  string  `parser:"@Ident"`
	Value *string `parser:"( '=' @Number )?"`
}
