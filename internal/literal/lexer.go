package literal

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lexer is responsible for scanning a candidate region and producing tokens.
type Lexer struct {
	input    string
	position int
	tokens   []Token
}

// NewLexer returns a new Lexer with the given input and initializes state.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:    input,
		position: 0,
		tokens:   make([]Token, 0),
	}
}

// Tokenize processes the entire input and produces the list of tokens.
// Candidate regions are routinely truncated mid-literal, so lexing errors
// are ordinary errors rather than panics.
func (l *Lexer) Tokenize() ([]Token, error) {
	for l.position < len(l.input) {
		currentPos := l.position
		switch c := l.input[l.position]; {
		case c == '[':
			l.addToken(TokenLBracket, "[", currentPos)
			l.position++
		case c == ']':
			l.addToken(TokenRBracket, "]", currentPos)
			l.position++
		case c == '(':
			l.addToken(TokenLParen, "(", currentPos)
			l.position++
		case c == ')':
			l.addToken(TokenRParen, ")", currentPos)
			l.position++
		case c == '{':
			l.addToken(TokenLBrace, "{", currentPos)
			l.position++
		case c == '}':
			l.addToken(TokenRBrace, "}", currentPos)
			l.position++
		case c == ',':
			l.addToken(TokenComma, ",", currentPos)
			l.position++
		case c == ':':
			l.addToken(TokenColon, ":", currentPos)
			l.position++
		case c == '\'' || c == '"':
			if err := l.lexString(currentPos); err != nil {
				return nil, err
			}
		case c == '#':
			// comments inside a multi-line literal run to end of line
			l.skipComment()
		case c == '-' || c == '+' || c == '.' || isDigit(c):
			if err := l.lexNumber(currentPos); err != nil {
				return nil, err
			}
		case isWhitespace(c):
			l.position++
		case isNameStart(c):
			l.lexName(currentPos)
		default:
			return nil, fmt.Errorf("unexpected character %q at offset %d", c, currentPos)
		}
	}

	l.addToken(TokenEOF, "", l.position)
	return l.tokens, nil
}

// lexString scans a quoted string, decoding backslash escapes, and produces
// one TokenString. The opener may be a single quote character or a
// triple-quote run; triple-quoted strings permit newlines and bare quote
// characters in their content.
func (l *Lexer) lexString(startPos int) error {
	quote := l.input[l.position]
	closer := string(quote)
	if strings.HasPrefix(l.input[l.position:], strings.Repeat(string(quote), 3)) {
		closer = strings.Repeat(string(quote), 3)
	}
	l.position += len(closer)

	var sb strings.Builder
	for l.position < len(l.input) {
		c := l.input[l.position]
		switch {
		case c == quote && strings.HasPrefix(l.input[l.position:], closer):
			l.position += len(closer)
			l.addToken(TokenString, sb.String(), startPos)
			return nil
		case c == '\\':
			if l.position+1 >= len(l.input) {
				return fmt.Errorf("unterminated escape at offset %d", l.position)
			}
			decoded, width := decodeEscape(l.input[l.position:])
			sb.WriteString(decoded)
			l.position += width
		case c == '\n' && len(closer) == 1:
			return fmt.Errorf("newline in string at offset %d", l.position)
		default:
			sb.WriteByte(c)
			l.position++
		}
	}
	return fmt.Errorf("unterminated string starting at offset %d", startPos)
}

// decodeEscape decodes one backslash escape sequence at the start of s.
// Returns the decoded text and the number of input bytes consumed.
// Unknown escapes keep the backslash, matching how literal parsers in
// scripting languages treat them.
func decodeEscape(s string) (string, int) {
	switch s[1] {
	case '\\':
		return "\\", 2
	case '\'':
		return "'", 2
	case '"':
		return "\"", 2
	case 'n':
		return "\n", 2
	case 't':
		return "\t", 2
	case 'r':
		return "\r", 2
	case '0':
		return "\x00", 2
	case 'x':
		if len(s) >= 4 {
			if hi, ok1 := hexDigit(s[2]); ok1 {
				if lo, ok2 := hexDigit(s[3]); ok2 {
					return string(rune(hi<<4 | lo)), 4
				}
			}
		}
		return "\\x", 2
	case 'u':
		if len(s) >= 6 {
			var r rune
			ok := true
			for i := 2; i < 6; i++ {
				d, hok := hexDigit(s[i])
				if !hok {
					ok = false
					break
				}
				r = r<<4 | rune(d)
			}
			if ok && utf8.ValidRune(r) {
				return string(r), 6
			}
		}
		return "\\u", 2
	default:
		return s[:2], 2
	}
}

// lexNumber scans an integer or float, including sign, underscores,
// exponent notation, radix prefixes (0x, 0o, 0b), and leading-dot floats.
func (l *Lexer) lexNumber(startPos int) error {
	start := l.position
	if c := l.input[l.position]; c == '-' || c == '+' {
		l.position++
	}

	if l.position+1 < len(l.input) && l.input[l.position] == '0' && isRadixPrefix(l.input[l.position+1]) {
		l.position += 2
		sawDigit := false
		for l.position < len(l.input) {
			c := l.input[l.position]
			if c == '_' || isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F') {
				if c != '_' {
					sawDigit = true
				}
				l.position++
				continue
			}
			break
		}
		if !sawDigit {
			return fmt.Errorf("malformed number at offset %d", startPos)
		}
		l.addToken(TokenNumber, l.input[start:l.position], startPos)
		return nil
	}

	sawDigit := false
	for l.position < len(l.input) {
		c := l.input[l.position]
		if isDigit(c) || c == '_' || c == '.' {
			if isDigit(c) {
				sawDigit = true
			}
			l.position++
			continue
		}
		if (c == 'e' || c == 'E') && sawDigit {
			l.position++
			if l.position < len(l.input) && (l.input[l.position] == '-' || l.input[l.position] == '+') {
				l.position++
			}
			continue
		}
		break
	}

	if !sawDigit {
		return fmt.Errorf("malformed number at offset %d", startPos)
	}
	l.addToken(TokenNumber, l.input[start:l.position], startPos)
	return nil
}

// lexName scans an identifier-like run (True, False, None).
func (l *Lexer) lexName(startPos int) {
	start := l.position
	for l.position < len(l.input) && isNameChar(l.input[l.position]) {
		l.position++
	}
	l.addToken(TokenName, l.input[start:l.position], startPos)
}

func (l *Lexer) skipComment() {
	for l.position < len(l.input) && l.input[l.position] != '\n' {
		l.position++
	}
}

// addToken is a helper to append a new token to the lexer's token list.
func (l *Lexer) addToken(tokenType TokenType, value string, pos int) {
	l.tokens = append(l.tokens, Token{
		Type:     tokenType,
		Value:    value,
		Position: pos,
	})
}

func isWhitespace(c byte) bool {
	return unicode.IsSpace(rune(c))
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isRadixPrefix(c byte) bool {
	switch c {
	case 'x', 'X', 'o', 'O', 'b', 'B':
		return true
	}
	return false
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameChar(c byte) bool {
	return isNameStart(c) || isDigit(c)
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
