//
// Copyright (c) 2011-2019 Canonical Ltd
// Copyright (c) 2006-2010 Kirill Simonov
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
// of the Software, and to permit persons to whom the Software is furnished to do
// so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package libyaml

// This file scans the three scalar forms: plain, single/double quoted,
// and block (literal '|' and folded '>').

func (parser *Parser) fetchPlainScalar() error {
	if err := parser.saveSimpleKey(); err != nil {
		return err
	}
	if err := parser.removeSimpleKey(); err != nil {
		return err
	}
	token, err := parser.scanPlainScalar()
	if err != nil {
		return err
	}
	parser.tokens = append(parser.tokens, token)
	return nil
}

func (parser *Parser) scanPlainScalar() (Token, error) {
	start_mark := parser.mark
	var value []byte
	var whitespaces []byte
	var leadingBreak []byte
	var trailingBreaks []byte
	indent := parser.indent + 1

	for {
		if parser.mark.Column < indent && parser.at(0) != 0 {
			break
		}
		if isBlankz(parser.at(0)) {
			break
		}

		// Scan a run of non-space characters for this line.
		var line []byte
		for {
			b := parser.at(0)
			if isBlankz(b) {
				break
			}
			if b == ':' && (isBlankz(parser.at(1)) || (parser.flow_level > 0 && isFlowIndicator(parser.at(1)))) {
				break
			}
			if parser.flow_level > 0 && isFlowIndicator(b) {
				break
			}
			if b == '#' && len(line) > 0 && isBlank(parser.at(-1)) {
				break
			}
			line = append(line, b)
			parser.skip()
			if parser.at(0) == 0 {
				break
			}
		}
		if len(line) == 0 {
			break
		}

		if len(leadingBreak) > 0 || len(whitespaces) > 0 {
			if len(leadingBreak) > 0 {
				if len(trailingBreaks) == 0 {
					value = append(value, ' ')
				} else {
					value = append(value, trailingBreaks...)
				}
				leadingBreak = nil
				trailingBreaks = nil
			} else {
				value = append(value, whitespaces...)
				whitespaces = nil
			}
		}
		value = append(value, line...)

		whitespaces = whitespaces[:0]
		for isBlank(parser.at(0)) {
			whitespaces = append(whitespaces, parser.at(0))
			parser.skip()
		}
		if isBreak(parser.at(0)) {
			for isBreak(parser.at(0)) {
				if len(leadingBreak) == 0 {
					parser.skipLineBreak(&leadingBreak)
				} else {
					parser.skipLineBreak(&trailingBreaks)
				}
			}
			whitespaces = nil
		} else {
			break
		}
	}

	return Token{
		Type:      SCALAR_TOKEN,
		StartMark: start_mark,
		EndMark:   parser.mark,
		Value:     value,
		Style:     PLAIN_SCALAR_STYLE,
	}, nil
}

func isFlowIndicator(b byte) bool {
	switch b {
	case ',', '[', ']', '{', '}':
		return true
	}
	return false
}

func (parser *Parser) fetchFlowScalar(single bool) error {
	if err := parser.saveSimpleKey(); err != nil {
		return err
	}
	if err := parser.removeSimpleKey(); err != nil {
		return err
	}
	token, err := parser.scanFlowScalar(single)
	if err != nil {
		return err
	}
	parser.tokens = append(parser.tokens, token)
	return nil
}

func (parser *Parser) scanFlowScalar(single bool) (Token, error) {
	start_mark := parser.mark
	parser.skip()

	var value []byte
	var whitespaces []byte
	var leadingBreak []byte
	var trailingBreaks []byte

	for {
		if parser.at(0) == 0 {
			return Token{}, parser.setScannerError("while scanning a quoted scalar", start_mark, "found unexpected end of stream")
		}
		quote := byte('\'')
		if !single {
			quote = '"'
		}
		if parser.at(0) == quote {
			if single && parser.at(1) == '\'' {
				value = append(value, '\'')
				parser.skip()
				parser.skip()
				continue
			}
			break
		}
		switch {
		case isBreak(parser.at(0)):
			if len(whitespaces) > 0 {
				whitespaces = nil
			}
			if len(leadingBreak) == 0 {
				parser.skipLineBreak(&leadingBreak)
			} else {
				parser.skipLineBreak(&trailingBreaks)
			}
		case isBlank(parser.at(0)):
			if len(leadingBreak) > 0 {
				if len(trailingBreaks) == 0 {
					value = append(value, ' ')
				} else {
					value = append(value, trailingBreaks...)
				}
				leadingBreak = nil
				trailingBreaks = nil
			} else if len(whitespaces) > 0 {
				value = append(value, whitespaces...)
				whitespaces = nil
			}
			whitespaces = append(whitespaces, parser.at(0))
			parser.skip()
		default:
			if len(leadingBreak) > 0 {
				if len(trailingBreaks) == 0 {
					value = append(value, ' ')
				} else {
					value = append(value, trailingBreaks...)
				}
				leadingBreak = nil
				trailingBreaks = nil
			} else if len(whitespaces) > 0 {
				value = append(value, whitespaces...)
				whitespaces = nil
			}
			if !single && parser.at(0) == '\\' {
				if isBreak(parser.at(1)) {
					parser.skip()
					parser.skipLineBreak(&leadingBreak)
					continue
				}
				code, consumed, err := scanEscape(parser, start_mark)
				if err != nil {
					return Token{}, err
				}
				value = append(value, code...)
				_ = consumed
				continue
			}
			value = append(value, parser.at(0))
			parser.skip()
		}
	}
	parser.skip()

	style := DOUBLE_QUOTED_SCALAR_STYLE
	if single {
		style = SINGLE_QUOTED_SCALAR_STYLE
	}
	return Token{
		Type:      SCALAR_TOKEN,
		StartMark: start_mark,
		EndMark:   parser.mark,
		Value:     value,
		Style:     style,
	}, nil
}

// scanEscape consumes a backslash escape sequence, starting at the
// backslash itself, and returns its decoded UTF-8 bytes.
func scanEscape(parser *Parser, start_mark Mark) ([]byte, int, error) {
	parser.skip() // consume '\'
	b := parser.at(0)
	simple := map[byte]byte{
		'0': 0, 'a': 7, 'b': 8, 't': 9, '\t': 9, 'n': 10, 'v': 11, 'f': 12,
		'r': 13, 'e': 27, ' ': ' ', '"': '"', '\'': '\'', '\\': '\\',
		'N': 0x85,
	}
	var hexLen int
	switch b {
	case 'x':
		hexLen = 2
	case 'u':
		hexLen = 4
	case 'U':
		hexLen = 8
	case 'N':
		parser.skip()
		return []byte{0xC2, 0x85}, 1, nil
	case '_':
		parser.skip()
		return []byte{0xC2, 0xA0}, 1, nil
	case 'L':
		parser.skip()
		return []byte{0xE2, 0x80, 0xA8}, 1, nil
	case 'P':
		parser.skip()
		return []byte{0xE2, 0x80, 0xA9}, 1, nil
	default:
		if v, ok := simple[b]; ok {
			parser.skip()
			return []byte{v}, 1, nil
		}
		return nil, 0, parser.setScannerError("while parsing a quoted scalar", start_mark, "found unknown escape character")
	}
	parser.skip()
	var code rune
	for i := 0; i < hexLen; i++ {
		h := asHex(parser.at(0))
		if h < 0 {
			return nil, 0, parser.setScannerError("while parsing a quoted scalar", start_mark, "did not find expected hexadecimal number")
		}
		code = code<<4 | rune(h)
		parser.skip()
	}
	return []byte(string(code)), 1, nil
}

// fetchBlockScalar handles the '|' (literal) and '>' (folded) indicators.
func (parser *Parser) fetchBlockScalar(literal bool) error {
	if err := parser.removeSimpleKey(); err != nil {
		return err
	}
	token, err := parser.scanBlockScalar(literal)
	if err != nil {
		return err
	}
	parser.tokens = append(parser.tokens, token)
	return nil
}

func (parser *Parser) scanBlockScalar(literal bool) (Token, error) {
	start_mark := parser.mark
	parser.skip()

	chomping := 0 // 0: clip, 1: strip, -1: keep
	increment := 0

	b := parser.at(0)
	if b == '+' || b == '-' {
		if b == '+' {
			chomping = -1
		} else {
			chomping = 1
		}
		parser.skip()
		if isDigit(parser.at(0)) {
			increment = int(parser.at(0) - '0')
			parser.skip()
		}
	} else if isDigit(b) {
		increment = int(b - '0')
		parser.skip()
		if parser.at(0) == '+' {
			chomping = -1
			parser.skip()
		} else if parser.at(0) == '-' {
			chomping = 1
			parser.skip()
		}
	}

	for isBlank(parser.at(0)) {
		parser.skip()
	}
	if parser.at(0) == '#' {
		for !isBreakz(parser.at(0)) {
			parser.skip()
		}
	}
	if !isBreakz(parser.at(0)) {
		return Token{}, parser.setScannerError("while scanning a block scalar", start_mark, "did not find expected comment or line break")
	}
	if isBreak(parser.at(0)) {
		parser.skipLineBreak(nil)
	}

	var blockIndent int
	if increment > 0 {
		blockIndent = parser.indent + increment
		if blockIndent < 1 {
			blockIndent = 1
		}
	}

	var value []byte
	var trailingBreaks []byte
	firstLine := true
	lineIndent := 0

	for {
		// Determine this line's indentation.
		col := 0
		for parser.at(0) == ' ' {
			parser.skip()
			col++
		}
		if blockIndent == 0 && col > parser.indent {
			blockIndent = col
		}
		if isBreakz(parser.at(0)) {
			// Blank line: it contributes a line break, collected as a
			// trailing break to apply once content resumes.
			if parser.at(0) == 0 {
				break
			}
			trailingBreaks = append(trailingBreaks, '\n')
			parser.skipLineBreak(nil)
			continue
		}
		if col < blockIndent {
			break
		}

		if !firstLine {
			if literal {
				value = append(value, trailingBreaks...)
				if len(trailingBreaks) == 0 {
					value = append(value, '\n')
				}
			} else {
				if len(trailingBreaks) == 0 {
					if lineIndent == col {
						value = append(value, ' ')
					} else {
						value = append(value, '\n')
					}
				} else {
					value = append(value, trailingBreaks...)
				}
			}
		}
		trailingBreaks = nil
		lineIndent = col
		firstLine = false

		for !isBreakz(parser.at(0)) {
			value = append(value, parser.at(0))
			parser.skip()
		}
		if parser.at(0) != 0 {
			parser.skipLineBreak(nil)
			trailingBreaks = append(trailingBreaks, '\n')
		}
	}

	switch chomping {
	case 1: // strip
	case -1: // keep
		value = append(value, trailingBreaks...)
	default: // clip
		if len(trailingBreaks) > 0 && !firstLine {
			value = append(value, '\n')
		}
	}

	style := LITERAL_SCALAR_STYLE
	if !literal {
		style = FOLDED_SCALAR_STYLE
	}
	return Token{
		Type:      SCALAR_TOKEN,
		StartMark: start_mark,
		EndMark:   parser.mark,
		Value:     value,
		Style:     style,
	}, nil
}
