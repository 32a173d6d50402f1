// Package batch parses and runs a batch script: one command per line,
// each naming a method and its keyword parameters, e.g.
//
//	root bisection f="x^(2)-2" a=0 b=2 eps=1e-9
//	integrate simpson13 f="x^(2)" a=0 b=1 n=2
//
// The participle grammar below only recognizes the shape of a command
// line — the method name and its key=value arguments. The embedded
// function text bound to "f" is handed to the real internal/parser,
// not parsed by participle, the same separation of concerns the
// scripting mode it is modelled on draws between its declarative
// command grammar and its own expression-statement grammar.
package batch

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Command is one batch-script line: a (possibly two-word, e.g. "root
// bisection") method name followed by zero or more key=value
// arguments.
type Command struct {
	Method string `parser:"@Ident"`
	Sub    string `parser:"(@Ident)?"`
	Args   []*Arg `parser:"@@*"`
}

// Arg is a single keyword parameter of a Command.
type Arg struct {
	Key   string `parser:"@Ident '='"`
	Value string `parser:"@(String|Number|Ident)"`
}

var batchLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"(\\"|[^"])*"`},
	{Name: "Number", Pattern: `[-+]?\d+(\.\d+)?([eE][-+]?\d+)?`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[=]`},
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

var commandParser = participle.MustBuild[Command](
	participle.Lexer(batchLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.Unquote("String"),
	participle.UseLookahead(2),
)

// ParseCommand parses a single batch-script line.
func ParseCommand(line string) (*Command, error) {
	return commandParser.ParseString("", line)
}

// Get returns the value bound to key, and whether it was present.
func (c *Command) Get(key string) (string, bool) {
	for _, arg := range c.Args {
		if arg.Key == key {
			return arg.Value, true
		}
	}
	return "", false
}

// GetAll returns every value bound to key, in the order given on the
// line — used for the matrix commands' repeated "row" argument.
func (c *Command) GetAll(key string) []string {
	var out []string
	for _, arg := range c.Args {
		if arg.Key == key {
			out = append(out, arg.Value)
		}
	}
	return out
}
