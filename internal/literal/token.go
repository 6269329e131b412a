package literal

// TokenType defines different types of tokens that can be produced by the lexer.
type TokenType int

const (
	TokenEOF      TokenType = iota
	TokenLBracket           // '['
	TokenRBracket           // ']'
	TokenLParen             // '('
	TokenRParen             // ')'
	TokenLBrace             // '{'
	TokenRBrace             // '}'
	TokenComma              // ','
	TokenColon              // ':'
	TokenString             // 'abc' or "abc", value holds the decoded text
	TokenNumber             // 42, -1.5, 1_000
	TokenName               // True, False, None
)

// Token represents a single lexical token with type, value, and position.
type Token struct {
	Type     TokenType
	Value    string // decoded string contents for TokenString, raw text otherwise
	Position int    // starting byte offset in the original input
}
