package extraction

import (
	"encoding/hex"
	"strconv"
	"strings"
)

// kerningSpace is the TJ adjustment, in thousandths of a text space unit,
// beyond which a word break is assumed.
const kerningSpace = -200

// operand is a value on the content stream operand stack.
type operand struct {
	str   []byte
	isStr bool
	num   float64
	isNum bool
	array []operand
	isArr bool
}

// TextFromContentStream returns the text shown by a page content stream.
// Text positioning operators that move to a new line emit a newline; small
// horizontal moves and wide TJ kerning emit a space.
func TextFromContentStream(data []byte) string {
	var (
		b     strings.Builder
		stack []operand
		lineY float64
	)
	lex := &contentLexer{data: data}

	newline := func() {
		if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
			b.WriteByte('\n')
		}
	}
	space := func() {
		s := b.String()
		if b.Len() > 0 && !strings.HasSuffix(s, " ") && !strings.HasSuffix(s, "\n") {
			b.WriteByte(' ')
		}
	}

	for {
		tok, ok := lex.next()
		if !ok {
			break
		}
		switch tok.kind {
		case tokOperand:
			stack = append(stack, tok.value)
			continue
		case tokArrayEnd:
			continue
		}

		switch tok.op {
		case "Tj":
			if s, ok := lastString(stack); ok {
				b.Write(s)
			}
		case "TJ":
			if len(stack) > 0 && stack[len(stack)-1].isArr {
				for _, item := range stack[len(stack)-1].array {
					switch {
					case item.isStr:
						b.Write(item.str)
					case item.isNum && item.num <= kerningSpace:
						space()
					}
				}
			}
		case "'", `"`:
			newline()
			if s, ok := lastString(stack); ok {
				b.Write(s)
			}
		case "T*", "ET":
			newline()
		case "Td", "TD":
			if len(stack) >= 2 && stack[len(stack)-1].isNum && stack[len(stack)-1].num != 0 {
				newline()
			} else {
				space()
			}
		case "Tm":
			if len(stack) >= 6 && stack[len(stack)-1].isNum {
				if y := stack[len(stack)-1].num; y != lineY {
					newline()
					lineY = y
				} else {
					space()
				}
			}
		}
		stack = stack[:0]
	}

	return b.String()
}

func lastString(stack []operand) ([]byte, bool) {
	if len(stack) == 0 || !stack[len(stack)-1].isStr {
		return nil, false
	}
	return stack[len(stack)-1].str, true
}

type tokenKind int

const (
	tokOperand tokenKind = iota
	tokOperator
	tokArrayEnd
)

type token struct {
	kind  tokenKind
	value operand
	op    string
}

// contentLexer splits a content stream into operands and operators.
// Dictionaries and inline image data are skipped.
type contentLexer struct {
	data []byte
	pos  int
}

func (l *contentLexer) next() (token, bool) {
	for l.pos < len(l.data) {
		c := l.data[l.pos]
		switch {
		case isPDFSpace(c):
			l.pos++
		case c == '%':
			for l.pos < len(l.data) && l.data[l.pos] != '\n' && l.data[l.pos] != '\r' {
				l.pos++
			}
		case c == '(':
			return token{kind: tokOperand, value: operand{str: l.literalString(), isStr: true}}, true
		case c == '<' && l.peek(1) == '<':
			l.skipDict()
		case c == '<':
			return token{kind: tokOperand, value: operand{str: l.hexString(), isStr: true}}, true
		case c == '[':
			l.pos++
			return token{kind: tokOperand, value: operand{array: l.array(), isArr: true}}, true
		case c == ']':
			l.pos++
			return token{kind: tokArrayEnd}, true
		case c == '>' || c == '{' || c == '}' || c == ')':
			l.pos++
		case c == '/':
			l.pos++
			l.word()
			return token{kind: tokOperand}, true
		default:
			w := l.word()
			if w == "" {
				l.pos++
				continue
			}
			if n, err := strconv.ParseFloat(w, 64); err == nil {
				return token{kind: tokOperand, value: operand{num: n, isNum: true}}, true
			}
			if w == "BI" {
				l.skipInlineImage()
				continue
			}
			return token{kind: tokOperator, op: w}, true
		}
	}
	return token{}, false
}

func (l *contentLexer) peek(offset int) byte {
	if l.pos+offset < len(l.data) {
		return l.data[l.pos+offset]
	}
	return 0
}

// word reads a run of regular characters.
func (l *contentLexer) word() string {
	start := l.pos
	for l.pos < len(l.data) && !isPDFSpace(l.data[l.pos]) && !isPDFDelimiter(l.data[l.pos]) {
		l.pos++
	}
	return string(l.data[start:l.pos])
}

// literalString reads a balanced (...) string starting at the opening parenthesis
// and returns it with escapes decoded.
func (l *contentLexer) literalString() []byte {
	l.pos++ // (
	start := l.pos
	depth := 1
	for l.pos < len(l.data) {
		switch l.data[l.pos] {
		case '\\':
			l.pos++
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				raw := l.data[start:l.pos]
				l.pos++
				return decodePDFString(raw)
			}
		}
		l.pos++
	}
	return decodePDFString(l.data[start:])
}

func (l *contentLexer) hexString() []byte {
	l.pos++ // <
	var digits []byte
	for l.pos < len(l.data) && l.data[l.pos] != '>' {
		if c := l.data[l.pos]; isHexDigit(c) {
			digits = append(digits, c)
		}
		l.pos++
	}
	l.pos++ // >
	if len(digits)%2 == 1 {
		digits = append(digits, '0')
	}
	decoded := make([]byte, hex.DecodedLen(len(digits)))
	n, err := hex.Decode(decoded, digits)
	if err != nil {
		return nil
	}
	return decoded[:n]
}

func (l *contentLexer) array() []operand {
	var items []operand
	for {
		tok, ok := l.next()
		if !ok || tok.kind == tokArrayEnd {
			return items
		}
		if tok.kind == tokOperand {
			items = append(items, tok.value)
		}
	}
}

func (l *contentLexer) skipDict() {
	depth := 0
	for l.pos < len(l.data) {
		if l.data[l.pos] == '<' && l.peek(1) == '<' {
			depth++
			l.pos += 2
			continue
		}
		if l.data[l.pos] == '>' && l.peek(1) == '>' {
			depth--
			l.pos += 2
			if depth == 0 {
				return
			}
			continue
		}
		l.pos++
	}
}

// skipInlineImage moves past "ID <binary> EI".
func (l *contentLexer) skipInlineImage() {
	idx := strings.Index(string(l.data[l.pos:]), "EI")
	if idx < 0 {
		l.pos = len(l.data)
		return
	}
	l.pos += idx + 2
}

// decodePDFString resolves the escape sequences of a PDF literal string.
func decodePDFString(raw []byte) []byte {
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			out = append(out, raw[i])
			continue
		}
		i++
		switch c := raw[i]; c {
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case 'b':
			out = append(out, '\b')
		case 'f':
			out = append(out, '\f')
		case '\n':
			// line continuation
		case '\r':
			if i+1 < len(raw) && raw[i+1] == '\n' {
				i++
			}
		default:
			if c >= '0' && c <= '7' {
				val := int(c - '0')
				for k := 0; k < 2 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; k++ {
					i++
					val = val*8 + int(raw[i]-'0')
				}
				out = append(out, byte(val))
			} else {
				out = append(out, c)
			}
		}
	}
	return out
}

func isPDFSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', 0:
		return true
	}
	return false
}

func isPDFDelimiter(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
