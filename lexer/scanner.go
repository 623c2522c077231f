package lexer

// ---------------------------------------------------------------------------
// Scanner: on-demand tokenizer for Brook source
// ---------------------------------------------------------------------------

// Scanner tokenizes Brook source code, one token per call. A scanner is
// bound to a single source buffer for its lifetime; create a new one for
// each buffer. Scan errors are ordinary tokens (TokenError) so the caller
// sees them exactly where they occur in the stream.
type Scanner struct {
	source  string
	start   int // offset of the lexeme being scanned
	current int // offset of the next unconsumed byte
	line    int // current line (1-based)
}

// NewScanner creates a scanner for the given source.
func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
	}
}

// NextToken scans and returns the next token. Once the source is
// exhausted it returns TokenEOF forever.
func (s *Scanner) NextToken() Token {
	if errTok := s.skipWhitespace(); errTok != nil {
		return *errTok
	}

	s.start = s.current
	if s.isAtEnd() {
		return s.makeToken(TokenEOF)
	}

	c := s.advance()

	switch {
	case isAlpha(c):
		return s.scanIdentifier()
	case isDigit(c):
		return s.scanNumber()
	}

	switch c {
	case '(':
		return s.makeToken(TokenLeftParen)
	case ')':
		return s.makeToken(TokenRightParen)
	case '{':
		return s.makeToken(TokenLeftBrace)
	case '}':
		return s.makeToken(TokenRightBrace)
	case ';':
		return s.makeToken(TokenSemicolon)
	case ',':
		return s.makeToken(TokenComma)
	case '.':
		return s.makeToken(TokenDot)
	case '-':
		return s.makeToken(TokenMinus)
	case '+':
		return s.makeToken(TokenPlus)
	case '/':
		return s.makeToken(TokenSlash)
	case '*':
		return s.makeToken(TokenStar)

	case '!':
		if s.match('=') {
			return s.makeToken(TokenBangEqual)
		}
		return s.makeToken(TokenBang)
	case '=':
		if s.match('=') {
			return s.makeToken(TokenEqualEqual)
		}
		return s.makeToken(TokenEqual)
	case '<':
		if s.match('=') {
			return s.makeToken(TokenLessEqual)
		}
		return s.makeToken(TokenLess)
	case '>':
		if s.match('=') {
			return s.makeToken(TokenGreaterEqual)
		}
		return s.makeToken(TokenGreater)

	case '"':
		return s.scanString()
	}

	return s.errorToken("Unexpected character.")
}

// skipWhitespace consumes whitespace and comments between tokens.
// It returns a non-nil error token when a block comment is still open at
// end of input; otherwise the scanner is positioned at the next lexeme.
func (s *Scanner) skipWhitespace() *Token {
	for {
		switch s.peek() {
		case ' ', '\r', '\t':
			s.advance()

		case '\n':
			s.line++
			s.advance()

		case '/':
			switch s.peekNext() {
			case '/':
				// Line comment: runs to end of line, newline not consumed.
				for !s.isAtEnd() && s.peek() != '\n' {
					s.advance()
				}
			case '*':
				if errTok := s.skipBlockComment(); errTok != nil {
					return errTok
				}
			default:
				return nil
			}

		default:
			return nil
		}
	}
}

// skipBlockComment consumes a /* ... */ comment. Block comments do not
// nest: the first */ closes the comment.
func (s *Scanner) skipBlockComment() *Token {
	s.start = s.current
	s.advance() // /
	s.advance() // *

	for {
		if s.isAtEnd() {
			tok := s.errorToken("Unterminated block comment.")
			return &tok
		}
		if s.peek() == '*' && s.peekNext() == '/' {
			s.advance()
			s.advance()
			return nil
		}
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}
}

// scanIdentifier reads an identifier or keyword. The first byte has
// already been consumed.
func (s *Scanner) scanIdentifier() Token {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}
	if typ, ok := reservedWords[s.source[s.start:s.current]]; ok {
		return s.makeToken(typ)
	}
	return s.makeToken(TokenIdentifier)
}

// scanNumber reads a number literal: digits with an optional fractional
// part. A trailing dot is not part of the number ("3." scans as NUMBER
// "3" followed by a dot token).
func (s *Scanner) scanNumber() Token {
	for isDigit(s.peek()) {
		s.advance()
	}

	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance() // consume the .
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	return s.makeToken(TokenNumber)
}

// scanString reads a string literal. Strings may span lines; the token's
// line is the line of the closing quote. The quotes are part of the lexeme.
func (s *Scanner) scanString() Token {
	for !s.isAtEnd() && s.peek() != '"' {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}

	if s.isAtEnd() {
		return s.errorToken("Unterminated string.")
	}

	s.advance() // closing quote
	return s.makeToken(TokenString)
}

// makeToken builds a token for the current lexeme.
func (s *Scanner) makeToken(typ TokenType) Token {
	return Token{
		Type:   typ,
		Lexeme: s.source[s.start:s.current],
		Start:  s.start,
		Line:   s.line,
	}
}

// errorToken builds an error token carrying message as its lexeme.
// Start still points at the offending construct in the source.
func (s *Scanner) errorToken(message string) Token {
	return Token{
		Type:   TokenError,
		Lexeme: message,
		Start:  s.start,
		Line:   s.line,
	}
}

// Low-level cursor helpers

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	return c
}

// peek returns the next unconsumed byte, or 0 at end of input.
func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

// peekNext returns the byte after peek(), or 0 at end of input.
func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

// match consumes the next byte if it equals expected.
func (s *Scanner) match(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.current++
	return true
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Tokenize returns all tokens from the source, ending with EOF. Error
// tokens stay in the stream; scanning continues past them so every
// problem in the source is reported.
func Tokenize(source string) []Token {
	s := NewScanner(source)
	var tokens []Token
	for {
		tok := s.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			break
		}
	}
	return tokens
}
