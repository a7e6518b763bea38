package main

type TokenType int

const (
	TokenEof TokenType = iota
	TokenColon
	TokenSemicolon
	TokenAssign
	TokenShift
	TokenPlus
	TokenMinus
	TokenLess
	TokenGreater
	TokenEqualEqual
	TokenBangEqual
	TokenLeftParen
	TokenRightParen
	TokenIdentifier
	TokenIntegerLiteral
	TokenDoubleLiteral
	TokenInteger
	TokenDouble
	TokenOutput
	TokenIf
)

// Kind is the lexical class of a token, the classification the
// reserved-word/symbol report is built from.
type Kind int

const (
	KindNone Kind = iota
	KindReservedWord
	KindOperator
	KindPunctuation
	KindIdentifier
	KindIntegerLiteral
	KindDoubleLiteral
)

type Token struct {
	Type    TokenType
	Lexeme  string
	Start   int
	Literal Value
}

func (t Token) Kind() Kind {
	switch t.Type {
	case TokenInteger, TokenDouble, TokenOutput, TokenIf:
		return KindReservedWord
	case TokenAssign, TokenShift, TokenPlus, TokenMinus,
		TokenLess, TokenGreater, TokenEqualEqual, TokenBangEqual:
		return KindOperator
	case TokenColon, TokenSemicolon, TokenLeftParen, TokenRightParen:
		return KindPunctuation
	case TokenIdentifier:
		return KindIdentifier
	case TokenIntegerLiteral:
		return KindIntegerLiteral
	case TokenDoubleLiteral:
		return KindDoubleLiteral
	default:
		return KindNone
	}
}
