package literal

import (
	"fmt"
	"strconv"
	"strings"
)

// Parser consumes tokens produced by the lexer and builds Go values.
//
// The accepted grammar is the literal subset of a scripting language:
// lists, tuples, dicts with string keys, quoted strings, numbers, and the
// constants True, False, and None. Nothing is ever executed.
type Parser struct {
	tokens  []Token
	current int
}

// NewParser creates a new Parser instance.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens, current: 0}
}

// ParseList parses src as a bracketed list literal and returns its elements.
// It is the entry point used on candidate regions: src must begin with '['
// and the whole input must be consumed, so a truncated or over-widened
// region fails cleanly.
func ParseList(src string) ([]any, error) {
	tokens, err := NewLexer(src).Tokenize()
	if err != nil {
		return nil, err
	}

	p := NewParser(tokens)
	if p.peek().Type != TokenLBracket {
		return nil, fmt.Errorf("expected '[' at offset %d", p.peek().Position)
	}
	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	if p.peek().Type != TokenEOF {
		return nil, fmt.Errorf("trailing input at offset %d", p.peek().Position)
	}

	return value.([]any), nil
}

// parseValue parses a single literal value at the current token.
func (p *Parser) parseValue() (any, error) {
	token := p.peek()

	switch token.Type {
	case TokenLBracket:
		p.current++
		return p.parseSequence(TokenRBracket)
	case TokenLParen:
		p.current++
		return p.parseSequence(TokenRParen)
	case TokenLBrace:
		p.current++
		return p.parseDict()
	case TokenString:
		p.current++
		return p.concatStrings(token.Value), nil
	case TokenNumber:
		p.current++
		return parseNumber(token.Value)
	case TokenName:
		p.current++
		switch token.Value {
		case "True":
			return true, nil
		case "False":
			return false, nil
		case "None":
			return nil, nil
		}
		return nil, fmt.Errorf("unexpected name %q at offset %d", token.Value, token.Position)
	case TokenEOF:
		return nil, fmt.Errorf("unexpected end of input at offset %d", token.Position)
	default:
		return nil, fmt.Errorf("unexpected token %q at offset %d", token.Value, token.Position)
	}
}

// parseSequence parses comma-separated values up to the closing token.
// Lists and tuples both come out as []any; trailing commas are accepted.
func (p *Parser) parseSequence(closing TokenType) ([]any, error) {
	items := []any{}
	for {
		if p.peek().Type == closing {
			p.current++
			return items, nil
		}
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		items = append(items, value)

		switch p.peek().Type {
		case TokenComma:
			p.current++
		case closing:
			p.current++
			return items, nil
		default:
			return nil, fmt.Errorf("expected ',' or closing bracket at offset %d", p.peek().Position)
		}
	}
}

// parseDict parses key-value pairs up to the closing brace. Keys must be
// strings so the result stays representable as a JSON object.
func (p *Parser) parseDict() (map[string]any, error) {
	dict := map[string]any{}
	for {
		if p.peek().Type == TokenRBrace {
			p.current++
			return dict, nil
		}

		keyToken := p.peek()
		if keyToken.Type != TokenString {
			return nil, fmt.Errorf("dict key must be a string at offset %d", keyToken.Position)
		}
		p.current++
		key := p.concatStrings(keyToken.Value)

		if p.peek().Type != TokenColon {
			return nil, fmt.Errorf("expected ':' at offset %d", p.peek().Position)
		}
		p.current++

		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		dict[key] = value

		switch p.peek().Type {
		case TokenComma:
			p.current++
		case TokenRBrace:
			p.current++
			return dict, nil
		default:
			return nil, fmt.Errorf("expected ',' or '}' at offset %d", p.peek().Position)
		}
	}
}

// concatStrings consumes any string tokens directly following the one just
// taken and appends their contents: adjacent string literals form a single
// string value, same as `"a" "b"` in the source dialect.
func (p *Parser) concatStrings(first string) string {
	value := first
	for p.peek().Type == TokenString {
		value += p.peek().Value
		p.current++
	}
	return value
}

// peek returns the current token without consuming it. The token list
// always ends with TokenEOF, so peek never runs past the end.
func (p *Parser) peek() Token {
	if p.current >= len(p.tokens) {
		return Token{Type: TokenEOF, Position: len(p.tokens)}
	}
	return p.tokens[p.current]
}

// parseNumber converts a raw number token to int64 when it is integral
// (including 0x/0o/0b radix forms), float64 otherwise.
func parseNumber(raw string) (any, error) {
	cleaned := strings.ReplaceAll(raw, "_", "")

	body := strings.TrimLeft(cleaned, "+-")
	if len(body) > 1 && body[0] == '0' && strings.ContainsAny(body[1:2], "xXoObB") {
		n, err := strconv.ParseInt(cleaned, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed number %q: %w", raw, err)
		}
		return n, nil
	}

	if !strings.ContainsAny(cleaned, ".eE") {
		n, err := strconv.ParseInt(cleaned, 10, 64)
		if err == nil {
			return n, nil
		}
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil, fmt.Errorf("malformed number %q: %w", raw, err)
	}
	return f, nil
}
