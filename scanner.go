package main

import (
	"strconv"
)

var keywords = map[string]TokenType{
	"integer": TokenInteger,
	"double":  TokenDouble,
	"output":  TokenOutput,
	"if":      TokenIf,
}

func NewScanner(source string, reporter *Reporter) *Scanner {
	return &Scanner{source: source, reporter: reporter, seen: make(map[string]bool)}
}

type Scanner struct {
	source   string
	start    int
	current  int
	tokens   []Token
	reporter *Reporter
	seen     map[string]bool
	symbols  []string
}

// ScanTokens scans the whole source. Unrecognized characters and
// malformed literals are reported as Lexical diagnostics and skipped,
// the scan never stops early.
func (s *Scanner) ScanTokens() []Token {
	for !s.isAtEnd() {
		// we're at the beginning of the next lexeme
		s.start = s.current
		s.scanToken()
	}

	s.tokens = append(s.tokens, Token{Type: TokenEof, Start: s.current})
	return s.tokens
}

// Symbols returns the distinct reserved words and symbols encountered,
// in first-seen order.
func (s *Scanner) Symbols() []string {
	return s.symbols
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *Scanner) scanToken() {
	char := s.advance()

	switch char {
	// Ignore whitespace
	case ' ', '\t', '\r', '\n':

	case ';':
		s.addToken(TokenSemicolon)
	case '(':
		s.addToken(TokenLeftParen)
	case ')':
		s.addToken(TokenRightParen)
	case '+':
		s.addToken(TokenPlus)
	case '-':
		s.addToken(TokenMinus)
	case '>':
		s.addToken(TokenGreater)

	case ':':
		if s.match('=') {
			s.addToken(TokenAssign)
		} else {
			s.addToken(TokenColon)
		}
	case '<':
		if s.match('<') {
			s.addToken(TokenShift)
		} else {
			s.addToken(TokenLess)
		}
	case '=':
		if s.match('=') {
			s.addToken(TokenEqualEqual)
		} else {
			s.error("unexpected character: %s", strconv.QuoteRune(char))
		}
	case '!':
		if s.match('=') {
			s.addToken(TokenBangEqual)
		} else {
			s.error("unexpected character: %s", strconv.QuoteRune(char))
		}

	default:
		if s.isDigit(char) {
			s.number()
		} else if s.isAlpha(char) {
			s.identifier()
		} else {
			s.error("unexpected character: %s", strconv.QuoteRune(char))
		}
	}
}

func (s *Scanner) number() {
	points := 0
	for {
		for s.isDigit(s.peek()) {
			s.advance()
		}
		if s.peek() == '.' && s.isDigit(s.peekNext()) {
			points++
			s.advance()
			continue
		}
		break
	}

	lexeme := s.source[s.start:s.current]
	switch points {
	case 0:
		value, err := strconv.ParseInt(lexeme, 10, 64)
		if err != nil {
			s.error("malformed number '%s'", lexeme)
			return
		}
		s.addTokenWithLiteral(TokenIntegerLiteral, IntegerValue(value))
	case 1:
		value, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			s.error("malformed number '%s'", lexeme)
			return
		}
		s.addTokenWithLiteral(TokenDoubleLiteral, DoubleValue(value))
	default:
		s.error("malformed number '%s'", lexeme)
	}
}

func (s *Scanner) identifier() {
	for s.isAlphaNumeric(s.peek()) {
		s.advance()
	}

	text := s.source[s.start:s.current]
	tokenType, found := keywords[text]
	if !found {
		tokenType = TokenIdentifier
	}
	s.addToken(tokenType)
}

func (s *Scanner) peek() rune {
	if s.isAtEnd() {
		return '\000'
	}
	return rune(s.source[s.current])
}

func (s *Scanner) peekNext() rune {
	if s.current+1 >= len(s.source) {
		return '\000'
	}
	return rune(s.source[s.current+1])
}

func (s *Scanner) match(expected rune) bool {
	if s.isAtEnd() {
		return false
	}

	if rune(s.source[s.current]) != expected {
		return false
	}

	s.current++
	return true
}

func (s *Scanner) advance() rune {
	curr := rune(s.source[s.current])
	s.current++
	return curr
}

func (s *Scanner) isDigit(char rune) bool {
	return char >= '0' && char <= '9'
}

func (s *Scanner) isAlpha(char rune) bool {
	return (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z') || (char == '_')
}

func (s *Scanner) isAlphaNumeric(char rune) bool {
	return s.isAlpha(char) || s.isDigit(char)
}

func (s *Scanner) addToken(tokenType TokenType) {
	s.addTokenWithLiteral(tokenType, nil)
}

func (s *Scanner) addTokenWithLiteral(tokenType TokenType, literal Value) {
	text := s.source[s.start:s.current]
	token := Token{
		Type:    tokenType,
		Lexeme:  text,
		Literal: literal,
		Start:   s.start,
	}
	s.tokens = append(s.tokens, token)

	switch token.Kind() {
	case KindReservedWord, KindOperator, KindPunctuation:
		if !s.seen[text] {
			s.seen[text] = true
			s.symbols = append(s.symbols, text)
		}
	}
}

func (s *Scanner) error(format string, args ...any) {
	s.reporter.report(CategoryLexical, s.start, format, args...)
}
