// Package scan splits Swift source text into lines and coarse lexical tokens.
// It is not a full Swift lexer: it only classifies enough structure (comments,
// string literals, identifiers, operators, brackets) for style rules to match
// against without misfiring inside comments or literals.
package scan

import (
	"fmt"
	"strings"
)

// TokenKind defines the coarse class of a token.
type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenComment
	TokenString
	TokenNumber
	TokenKeyword
	TokenIdent
	TokenOperator
	TokenBraceOpen
	TokenBraceClose
	TokenParenOpen
	TokenParenClose
	TokenBracketOpen
	TokenBracketClose
	TokenPunct
)

func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "EOF"
	case TokenComment:
		return "Comment"
	case TokenString:
		return "String"
	case TokenNumber:
		return "Number"
	case TokenKeyword:
		return "Keyword"
	case TokenIdent:
		return "Ident"
	case TokenOperator:
		return "Operator"
	case TokenBraceOpen:
		return "BraceOpen"
	case TokenBraceClose:
		return "BraceClose"
	case TokenParenOpen:
		return "ParenOpen"
	case TokenParenClose:
		return "ParenClose"
	case TokenBracketOpen:
		return "BracketOpen"
	case TokenBracketClose:
		return "BracketClose"
	case TokenPunct:
		return "Punct"
	default:
		return "Unknown"
	}
}

// Token represents a lexical token with its 1-based source position.
type Token struct {
	Kind   TokenKind
	Text   string
	Line   int
	Column int
}

// Line represents a single physical source line. Immutable once scanned.
type Line struct {
	Number  int    // 1-based
	Text    string // raw text without the trailing newline
	Trimmed string // Text with surrounding whitespace removed
	Indent  string // leading whitespace run

	// InComment and InString report whether the line starts inside a block
	// comment or a multiline string literal. Rules that operate on raw lines
	// use these to skip literal content.
	InComment bool
	InString  bool
}

// File is the scanned form of a single source file.
type File struct {
	Filename string
	Lines    []Line
	Tokens   []Token
}

// Error reports an unterminated string or block comment.
// Scanning never fails for mere style violations.
type Error struct {
	Filename string
	Line     int
	Column   int
	Msg      string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Filename, e.Line, e.Column, e.Msg)
}

// keywords is the subset of Swift keywords the rules care about.
var keywords = map[string]bool{
	"associatedtype": true, "class": true, "deinit": true, "enum": true,
	"extension": true, "fileprivate": true, "func": true, "import": true,
	"init": true, "inout": true, "internal": true, "let": true, "open": true,
	"operator": true, "private": true, "protocol": true, "public": true,
	"rethrows": true, "static": true, "struct": true, "subscript": true,
	"typealias": true, "var": true, "break": true, "case": true,
	"continue": true, "default": true, "defer": true, "do": true,
	"else": true, "fallthrough": true, "for": true, "guard": true, "if": true,
	"in": true, "repeat": true, "return": true, "switch": true, "where": true,
	"while": true, "as": true, "catch": true, "is": true, "nil": true,
	"super": true, "self": true, "throw": true, "throws": true, "try": true,
	"true": true, "false": true, "final": true, "override": true,
	"lazy": true, "weak": true, "unowned": true, "mutating": true,
	"convenience": true, "required": true, "some": true, "any": true,
}

const operatorChars = "!%&*+-./<=>?^|~"

type scanner struct {
	src      string
	filename string

	pos    int
	line   int // 1-based
	col    int // 1-based
	lines  []Line
	tokens []Token
}

// Source scans raw source text into lines and tokens.
func Source(filename string, src []byte) (*File, error) {
	s := &scanner{
		src:      string(src),
		filename: filename,
		line:     1,
		col:      1,
	}
	s.splitLines()
	if err := s.run(); err != nil {
		return nil, err
	}
	return &File{Filename: filename, Lines: s.lines, Tokens: s.tokens}, nil
}

func (s *scanner) splitLines() {
	raw := strings.Split(s.src, "\n")
	// a trailing newline produces an empty final element, not a real line
	if len(raw) > 0 && raw[len(raw)-1] == "" && strings.HasSuffix(s.src, "\n") {
		raw = raw[:len(raw)-1]
	}
	s.lines = make([]Line, len(raw))
	for i, text := range raw {
		text = strings.TrimSuffix(text, "\r")
		trimmed := strings.TrimSpace(text)
		indent := text[:len(text)-len(strings.TrimLeft(text, " \t"))]
		s.lines[i] = Line{
			Number:  i + 1,
			Text:    text,
			Trimmed: trimmed,
			Indent:  indent,
		}
	}
}

func (s *scanner) run() error {
	for s.pos < len(s.src) {
		c := s.src[s.pos]

		switch {
		case c == '\n':
			s.newline(false, false)
		case c == ' ' || c == '\t' || c == '\r':
			s.advance(1)
		case c == '/' && s.peek(1) == '/':
			s.lineComment()
		case c == '/' && s.peek(1) == '*':
			if err := s.blockComment(); err != nil {
				return err
			}
		case c == '"':
			if err := s.stringLiteral(); err != nil {
				return err
			}
		case isIdentStart(c):
			s.identifier()
		case c == '`':
			s.backtickIdentifier()
		case isDigit(c):
			s.number()
		case c == '{':
			s.emit(TokenBraceOpen, "{")
			s.advance(1)
		case c == '}':
			s.emit(TokenBraceClose, "}")
			s.advance(1)
		case c == '(':
			s.emit(TokenParenOpen, "(")
			s.advance(1)
		case c == ')':
			s.emit(TokenParenClose, ")")
			s.advance(1)
		case c == '[':
			s.emit(TokenBracketOpen, "[")
			s.advance(1)
		case c == ']':
			s.emit(TokenBracketClose, "]")
			s.advance(1)
		case strings.IndexByte(operatorChars, c) >= 0:
			s.operator()
		default:
			// attributes, hash directives, commas, colons and anything else
			s.emit(TokenPunct, string(c))
			s.advance(1)
		}
	}

	s.tokens = append(s.tokens, Token{Kind: TokenEOF, Line: s.line, Column: s.col})
	return nil
}

func (s *scanner) peek(offset int) byte {
	if s.pos+offset >= len(s.src) {
		return 0
	}
	return s.src[s.pos+offset]
}

func (s *scanner) advance(n int) {
	s.pos += n
	s.col += n
}

// newline consumes '\n' and records whether the next line starts inside a
// block comment or a multiline string literal.
func (s *scanner) newline(inComment, inString bool) {
	s.pos++
	s.line++
	s.col = 1
	if idx := s.line - 1; idx < len(s.lines) {
		s.lines[idx].InComment = inComment
		s.lines[idx].InString = inString
	}
}

func (s *scanner) emit(kind TokenKind, text string) {
	s.tokens = append(s.tokens, Token{Kind: kind, Text: text, Line: s.line, Column: s.col})
}

func (s *scanner) lineComment() {
	start := s.pos
	startCol := s.col
	for s.pos < len(s.src) && s.src[s.pos] != '\n' {
		s.advance(1)
	}
	s.tokens = append(s.tokens, Token{
		Kind:   TokenComment,
		Text:   s.src[start:s.pos],
		Line:   s.line,
		Column: startCol,
	})
}

// blockComment consumes a (possibly nested) block comment. Swift block
// comments nest, unlike C.
func (s *scanner) blockComment() error {
	start := s.pos
	startLine, startCol := s.line, s.col
	s.advance(2)
	depth := 1

	for s.pos < len(s.src) {
		switch {
		case s.src[s.pos] == '\n':
			s.newline(true, false)
		case s.src[s.pos] == '/' && s.peek(1) == '*':
			depth++
			s.advance(2)
		case s.src[s.pos] == '*' && s.peek(1) == '/':
			depth--
			s.advance(2)
			if depth == 0 {
				s.tokens = append(s.tokens, Token{
					Kind:   TokenComment,
					Text:   s.src[start:s.pos],
					Line:   startLine,
					Column: startCol,
				})
				return nil
			}
		default:
			s.advance(1)
		}
	}

	return &Error{Filename: s.filename, Line: startLine, Column: startCol, Msg: "unterminated block comment"}
}

func (s *scanner) stringLiteral() error {
	if s.peek(1) == '"' && s.peek(2) == '"' {
		return s.multilineString()
	}
	return s.singleLineString()
}

func (s *scanner) singleLineString() error {
	start := s.pos
	startLine, startCol := s.line, s.col
	s.advance(1) // opening quote

	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case '\n':
			return &Error{Filename: s.filename, Line: startLine, Column: startCol, Msg: "unterminated string literal"}
		case '\\':
			if s.peek(1) == '(' {
				s.advance(2)
				if err := s.interpolation(false); err != nil {
					return err
				}
			} else {
				s.advance(2) // escape sequence
			}
		case '"':
			s.advance(1)
			s.tokens = append(s.tokens, Token{
				Kind:   TokenString,
				Text:   s.src[start:s.pos],
				Line:   startLine,
				Column: startCol,
			})
			return nil
		default:
			s.advance(1)
		}
	}

	return &Error{Filename: s.filename, Line: startLine, Column: startCol, Msg: "unterminated string literal"}
}

func (s *scanner) multilineString() error {
	start := s.pos
	startLine, startCol := s.line, s.col
	s.advance(3) // opening """

	for s.pos < len(s.src) {
		switch {
		case s.src[s.pos] == '\n':
			s.newline(false, true)
		case s.src[s.pos] == '\\':
			if s.peek(1) == '(' {
				s.advance(2)
				if err := s.interpolation(true); err != nil {
					return err
				}
			} else {
				s.advance(2)
			}
		case s.src[s.pos] == '"' && s.peek(1) == '"' && s.peek(2) == '"':
			s.advance(3)
			s.tokens = append(s.tokens, Token{
				Kind:   TokenString,
				Text:   s.src[start:s.pos],
				Line:   startLine,
				Column: startCol,
			})
			return nil
		default:
			s.advance(1)
		}
	}

	return &Error{Filename: s.filename, Line: startLine, Column: startCol, Msg: "unterminated multiline string literal"}
}

// interpolation consumes the inside of a \( ... ) string interpolation up to
// its matching close paren. Nested strings inside the interpolation are
// skipped without being tokenized; the whole literal stays a single token.
func (s *scanner) interpolation(multiline bool) error {
	startLine, startCol := s.line, s.col
	depth := 1

	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case '\n':
			if !multiline {
				return &Error{Filename: s.filename, Line: startLine, Column: startCol, Msg: "unterminated string interpolation"}
			}
			s.newline(false, true)
		case '(':
			depth++
			s.advance(1)
		case ')':
			depth--
			s.advance(1)
			if depth == 0 {
				return nil
			}
		case '"':
			// nested literal inside the interpolation
			s.advance(1)
			for s.pos < len(s.src) && s.src[s.pos] != '"' {
				if s.src[s.pos] == '\\' {
					s.advance(1)
				}
				if s.pos < len(s.src) && s.src[s.pos] == '\n' {
					return &Error{Filename: s.filename, Line: startLine, Column: startCol, Msg: "unterminated string literal"}
				}
				s.advance(1)
			}
			if s.pos < len(s.src) {
				s.advance(1) // closing quote
			}
		default:
			s.advance(1)
		}
	}

	return &Error{Filename: s.filename, Line: startLine, Column: startCol, Msg: "unterminated string interpolation"}
}

func (s *scanner) identifier() {
	start := s.pos
	startCol := s.col
	for s.pos < len(s.src) && isIdentChar(s.src[s.pos]) {
		s.advance(1)
	}
	text := s.src[start:s.pos]

	kind := TokenIdent
	if keywords[text] {
		kind = TokenKeyword
	}
	s.tokens = append(s.tokens, Token{Kind: kind, Text: text, Line: s.line, Column: startCol})
}

// backtickIdentifier scans an escaped identifier like `class`.
// Escaped identifiers are never keywords.
func (s *scanner) backtickIdentifier() {
	start := s.pos
	startCol := s.col
	s.advance(1)
	for s.pos < len(s.src) && s.src[s.pos] != '`' && s.src[s.pos] != '\n' {
		s.advance(1)
	}
	if s.pos < len(s.src) && s.src[s.pos] == '`' {
		s.advance(1)
	}
	s.tokens = append(s.tokens, Token{Kind: TokenIdent, Text: s.src[start:s.pos], Line: s.line, Column: startCol})
}

func (s *scanner) number() {
	start := s.pos
	startCol := s.col
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if isDigit(c) || isLetter(c) || c == '_' {
			s.advance(1)
			continue
		}
		// fractional part, but not the start of a range operator like 1...5
		if c == '.' && isDigit(s.peek(1)) {
			s.advance(1)
			continue
		}
		break
	}
	s.tokens = append(s.tokens, Token{Kind: TokenNumber, Text: s.src[start:s.pos], Line: s.line, Column: startCol})
}

func (s *scanner) operator() {
	start := s.pos
	startCol := s.col
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if strings.IndexByte(operatorChars, c) < 0 {
			break
		}
		// stop before a comment start inside an operator run
		if c == '/' && (s.peek(1) == '/' || s.peek(1) == '*') {
			break
		}
		s.advance(1)
	}
	if s.pos == start {
		// lone '/' directly followed by a comment start was handled above
		s.advance(1)
	}
	s.tokens = append(s.tokens, Token{Kind: TokenOperator, Text: s.src[start:s.pos], Line: s.line, Column: startCol})
}

func isIdentStart(c byte) bool {
	return c == '_' || isLetter(c)
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
