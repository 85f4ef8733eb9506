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

import (
	"bytes"
)

// This file turns the raw byte stream into the token queue that the
// parser's state machine consumes via peekToken/skipToken. It mirrors the
// structure of libyaml's scanner: fetchMoreTokens inspects the next
// characters in the lookahead buffer and appends zero or more tokens,
// possibly after resolving pending simple keys and indentation changes.

// ensure guarantees that at least n bytes are available starting at
// parser.buffer_pos, reading from the configured handler as needed. It
// returns false (after recording an error) only on a read failure; running
// out of input is not an error, it just leaves fewer than n bytes ready.
func (parser *Parser) ensure(n int) bool {
	if parser.eof {
		return true
	}
	for len(parser.buffer)-parser.buffer_pos < n {
		if cap(parser.raw_buffer) == 0 {
			parser.raw_buffer = make([]byte, 0, input_raw_buffer_size)
		}
		free := cap(parser.raw_buffer) - len(parser.raw_buffer)
		if free == 0 {
			chunk := make([]byte, len(parser.raw_buffer), cap(parser.raw_buffer)*2)
			copy(chunk, parser.raw_buffer)
			parser.raw_buffer = chunk
		}
		size := cap(parser.raw_buffer) - len(parser.raw_buffer)
		readInto := parser.raw_buffer[len(parser.raw_buffer) : len(parser.raw_buffer)+size]
		nread, err := parser.read_handler(parser, readInto)
		parser.raw_buffer = parser.raw_buffer[:len(parser.raw_buffer)+nread]
		if nread > 0 {
			if len(parser.buffer) == parser.buffer_pos {
				parser.buffer = parser.buffer[:0]
				parser.buffer_pos = 0
			}
			parser.buffer = append(parser.buffer, parser.raw_buffer...)
			parser.raw_buffer = parser.raw_buffer[:0]
		}
		if err != nil {
			parser.eof = true
			break
		}
		if nread == 0 {
			parser.eof = true
			break
		}
	}
	return true
}

// at returns the byte at offset from the current position, or 0 if that
// position falls outside the buffered input. A negative offset looks
// behind the current position, used to inspect the character just
// consumed.
func (parser *Parser) at(offset int) byte {
	if offset >= 0 {
		parser.ensure(offset + 1)
	}
	pos := parser.buffer_pos + offset
	if pos < 0 || pos >= len(parser.buffer) {
		return 0
	}
	return parser.buffer[pos]
}

func (parser *Parser) skip() {
	b := parser.at(0)
	parser.buffer_pos++
	parser.mark.Index++
	parser.mark.Column++
	if b == '\n' {
		parser.mark.Line++
		parser.mark.Column = 0
	}
}

func isBlankz(b byte) bool {
	return b == ' ' || b == '\t' || b == 0 || b == '\n' || b == '\r'
}

func isBlank(b byte) bool {
	return b == ' ' || b == '\t'
}

func isBreak(b byte) bool {
	return b == '\r' || b == '\n'
}

func isBreakz(b byte) bool {
	return isBreak(b) || b == 0
}

func isSpaceOrZero(b byte) bool {
	return b == ' ' || b == 0
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isAlpha(b byte) bool {
	return b == '_' || b == '-' ||
		(b >= '0' && b <= '9') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= 'a' && b <= 'z')
}

func asHex(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	}
	return -1
}

// skipLineBreak consumes a single line break (CR, LF or CRLF) and appends
// its normalized (LF) form to s, if s is non-nil.
func (parser *Parser) skipLineBreak(s *[]byte) {
	if parser.at(0) == '\r' && parser.at(1) == '\n' {
		parser.skip()
		parser.skip()
	} else {
		parser.skip()
	}
	if s != nil {
		*s = append(*s, '\n')
	}
}

// fetchMoreTokens appends at least one token to parser.tokens, or returns
// an error explaining why none could be produced.
func (parser *Parser) fetchMoreTokens() error {
	if !parser.stream_start_produced {
		return parser.fetchStreamStart()
	}

	if err := parser.scanToNextToken(); err != nil {
		return err
	}

	if err := parser.staleSimpleKeys(); err != nil {
		return err
	}

	if err := parser.unrollIndent(parser.mark.Column); err != nil {
		return err
	}

	b0, b1 := parser.at(0), parser.at(1)

	switch {
	case b0 == 0:
		return parser.fetchStreamEnd()
	case parser.mark.Column == 0 && b0 == '%':
		return parser.fetchDirective()
	case parser.mark.Column == 0 && b0 == '-' && b1 == '-' && parser.at(2) == '-' && isBlankz(parser.at(3)):
		return parser.fetchDocumentIndicator(DOCUMENT_START_TOKEN)
	case parser.mark.Column == 0 && b0 == '.' && b1 == '.' && parser.at(2) == '.' && isBlankz(parser.at(3)):
		return parser.fetchDocumentIndicator(DOCUMENT_END_TOKEN)
	case b0 == '[':
		return parser.fetchFlowCollectionStart(FLOW_SEQUENCE_START_TOKEN)
	case b0 == '{':
		return parser.fetchFlowCollectionStart(FLOW_MAPPING_START_TOKEN)
	case b0 == ']':
		return parser.fetchFlowCollectionEnd(FLOW_SEQUENCE_END_TOKEN)
	case b0 == '}':
		return parser.fetchFlowCollectionEnd(FLOW_MAPPING_END_TOKEN)
	case b0 == ',':
		return parser.fetchFlowEntry()
	case b0 == '-' && isBlankz(b1):
		return parser.fetchBlockEntry()
	case b0 == '?' && (parser.flow_level > 0 || isBlankz(b1)):
		return parser.fetchKey()
	case b0 == ':' && (parser.flow_level > 0 || isBlankz(b1)):
		return parser.fetchValue()
	case b0 == '*':
		return parser.fetchAnchor(ALIAS_TOKEN)
	case b0 == '&':
		return parser.fetchAnchor(ANCHOR_TOKEN)
	case b0 == '!':
		return parser.fetchTag()
	case b0 == '|' && parser.flow_level == 0:
		return parser.fetchBlockScalar(true)
	case b0 == '>' && parser.flow_level == 0:
		return parser.fetchBlockScalar(false)
	case b0 == '\'':
		return parser.fetchFlowScalar(true)
	case b0 == '"':
		return parser.fetchFlowScalar(false)
	case parser.isPlainStart(b0):
		return parser.fetchPlainScalar()
	}

	return parser.setScannerError(
		"while scanning for the next token", Mark{},
		"found character that cannot start any token")
}

// isPlainStart reports whether b may begin a plain scalar in the current
// context. Indicator characters, '%' included, are excluded; '-', '?'
// and ':' are allowed because they also begin ordinary content (e.g. "-1").
func (parser *Parser) isPlainStart(b byte) bool {
	switch b {
	case ',', '[', ']', '{', '}', '#', '&', '*', '!', '|', '>', '\'', '"', '%', '@', '`':
		return false
	case '-', '?', ':':
		return true
	}
	return b != 0 && !isBlankz(b)
}

func (parser *Parser) setScannerError(context string, context_mark Mark, problem string) error {
	return parser.setParserErrorContext(context, context_mark, problem, parser.mark)
}

// staleSimpleKeys expires any pending simple key whose line has passed or
// whose value turned out not to be possible (e.g. it spanned a line
// break while not inside a flow collection).
func (parser *Parser) staleSimpleKeys() error {
	for i := range parser.simple_keys_stack {
		key := &parser.simple_keys_stack[i]
		if key.possible && (key.mark.Line < parser.mark.Line || key.mark.Index+1024 < parser.mark.Index) {
			if key.required {
				return parser.setScannerError(
					"while scanning a simple key", key.mark,
					"could not find expected ':'")
			}
			key.possible = false
		}
	}
	return nil
}

func (parser *Parser) simpleKeyIsValid() bool {
	if len(parser.simple_keys_stack) == 0 {
		return false
	}
	return parser.simple_keys_stack[len(parser.simple_keys_stack)-1].possible
}

// saveSimpleKey marks the current position as a candidate simple key,
// removing whatever stale candidate preceded it at this flow level.
func (parser *Parser) saveSimpleKey() error {
	required := parser.flow_level == 0 && parser.indent == parser.mark.Column
	if parser.simpleKeyIsValid() && parser.simple_keys_stack[len(parser.simple_keys_stack)-1].required {
		return parser.setScannerError("while scanning a simple key", Mark{}, "could not find expected ':'")
	}
	key := simpleKey{
		possible:     true,
		required:     required,
		token_number: parser.tokens_parsed + len(parser.tokens) - parser.tokens_head,
		mark:         parser.mark,
	}
	if len(parser.simple_keys_stack) > 0 {
		parser.simple_keys_stack[len(parser.simple_keys_stack)-1] = key
	} else {
		parser.simple_keys_stack = append(parser.simple_keys_stack, key)
	}
	return nil
}

func (parser *Parser) removeSimpleKey() error {
	if len(parser.simple_keys_stack) == 0 {
		return nil
	}
	key := &parser.simple_keys_stack[len(parser.simple_keys_stack)-1]
	if key.possible && key.required {
		return parser.setScannerError("while scanning a simple key", key.mark, "could not find expected ':'")
	}
	key.possible = false
	return nil
}

// maxFlowLevel bounds how deeply flow collections may nest. Without a cap, a
// document like `[[[[...]]]]` drives the scanner's recursion-free token loop
// fine but later pushes the Parser's and Composer's call stacks one frame per
// level, so a maliciously deep document can exhaust the stack instead of
// returning a YAML error. 1000 matches the nesting depth spec.md requires the
// engine to reject with a controlled error rather than crash on.
const maxFlowLevel = 1000

func (parser *Parser) increaseFlowLevel() error {
	if parser.flow_level >= maxFlowLevel {
		return parser.setScannerError(
			"while scanning a flow node", parser.mark,
			"flow nesting too deep")
	}
	parser.simple_keys_stack = append(parser.simple_keys_stack, simpleKey{})
	parser.flow_level++
	return nil
}

func (parser *Parser) decreaseFlowLevel() error {
	if parser.flow_level > 0 {
		parser.flow_level--
		if len(parser.simple_keys_stack) > 0 {
			parser.simple_keys_stack = parser.simple_keys_stack[:len(parser.simple_keys_stack)-1]
		}
	}
	return nil
}

// rollIndent pushes a new indentation level, producing a BLOCK-SEQUENCE-START
// or BLOCK-MAPPING-START token if column exceeds the current indent and we
// are not inside a flow collection.
func (parser *Parser) rollIndent(column, number int, typ TokenType, mark Mark) error {
	if parser.flow_level > 0 {
		return nil
	}
	if parser.indent < column {
		parser.indents = append(parser.indents, parser.indent)
		parser.indent = column
		token := Token{
			Type:      typ,
			StartMark: mark,
			EndMark:   mark,
		}
		if number < 0 {
			parser.tokens = append(parser.tokens, token)
		} else {
			parser.insertToken(number-parser.tokens_parsed, &token)
		}
	}
	return nil
}

// unrollIndent pops indentation levels back down to column, emitting a
// BLOCK-END token for each one.
func (parser *Parser) unrollIndent(column int) error {
	if parser.flow_level > 0 {
		return nil
	}
	for parser.indent > column {
		token := Token{
			Type:      BLOCK_END_TOKEN,
			StartMark: parser.mark,
			EndMark:   parser.mark,
		}
		parser.tokens = append(parser.tokens, token)
		parser.indent = parser.indents[len(parser.indents)-1]
		parser.indents = parser.indents[:len(parser.indents)-1]
	}
	return nil
}

func (parser *Parser) fetchStreamStart() error {
	parser.indent = -1
	parser.stream_start_produced = true
	token := Token{
		Type:      STREAM_START_TOKEN,
		StartMark: parser.mark,
		EndMark:   parser.mark,
		encoding:  parser.encoding,
	}
	parser.tokens = append(parser.tokens, token)
	parser.simple_keys_stack = append(parser.simple_keys_stack, simpleKey{})
	return nil
}

func (parser *Parser) fetchStreamEnd() error {
	if err := parser.unrollIndent(-1); err != nil {
		return err
	}
	if err := parser.removeSimpleKey(); err != nil {
		return err
	}
	token := Token{
		Type:      STREAM_END_TOKEN,
		StartMark: parser.mark,
		EndMark:   parser.mark,
	}
	parser.tokens = append(parser.tokens, token)
	return nil
}

func (parser *Parser) fetchDirective() error {
	if err := parser.unrollIndent(-1); err != nil {
		return err
	}
	if err := parser.removeSimpleKey(); err != nil {
		return err
	}
	return parser.scanDirective()
}

func (parser *Parser) scanDirective() error {
	start_mark := parser.mark
	parser.skip()

	var name []byte
	for isAlpha(parser.at(0)) {
		name = append(name, parser.at(0))
		parser.skip()
	}

	var token Token
	switch string(name) {
	case "YAML":
		major, minor, err := parser.scanVersionDirectiveValue(start_mark)
		if err != nil {
			return err
		}
		token = Token{Type: VERSION_DIRECTIVE_TOKEN, StartMark: start_mark, EndMark: parser.mark, major: major, minor: minor}
	case "TAG":
		handle, prefix, err := parser.scanTagDirectiveValue(start_mark)
		if err != nil {
			return err
		}
		token = Token{Type: TAG_DIRECTIVE_TOKEN, StartMark: start_mark, EndMark: parser.mark, Value: handle, prefix: prefix}
	default:
		return parser.setScannerError("while scanning a directive", start_mark, "found unknown directive name")
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
		return parser.setScannerError("while scanning a directive", start_mark, "did not find expected comment or line break")
	}
	if isBreak(parser.at(0)) {
		parser.skipLineBreak(nil)
	}

	parser.tokens = append(parser.tokens, token)
	return nil
}

func (parser *Parser) scanVersionDirectiveValue(start_mark Mark) (int8, int8, error) {
	for isBlank(parser.at(0)) {
		parser.skip()
	}
	major, err := parser.scanVersionDirectiveNumber(start_mark)
	if err != nil {
		return 0, 0, err
	}
	if parser.at(0) != '.' {
		return 0, 0, parser.setScannerError("while scanning a %YAML directive", start_mark, "did not find expected digit or '.' character")
	}
	parser.skip()
	minor, err := parser.scanVersionDirectiveNumber(start_mark)
	if err != nil {
		return 0, 0, err
	}
	return major, minor, nil
}

func (parser *Parser) scanVersionDirectiveNumber(start_mark Mark) (int8, error) {
	var value int
	var length int
	for isDigit(parser.at(0)) {
		length++
		if length > 9 {
			return 0, parser.setScannerError("while scanning a %YAML directive", start_mark, "found extremely long version number")
		}
		value = value*10 + int(parser.at(0)-'0')
		parser.skip()
	}
	if length == 0 {
		return 0, parser.setScannerError("while scanning a %YAML directive", start_mark, "did not find expected version number")
	}
	return int8(value), nil
}

func (parser *Parser) scanTagDirectiveValue(start_mark Mark) (handle, prefix []byte, err error) {
	for isBlank(parser.at(0)) {
		parser.skip()
	}
	handle, err = parser.scanTagHandle(true, start_mark)
	if err != nil {
		return nil, nil, err
	}
	if !isBlank(parser.at(0)) {
		return nil, nil, parser.setScannerError("while scanning a %TAG directive", start_mark, "did not find expected whitespace")
	}
	for isBlank(parser.at(0)) {
		parser.skip()
	}
	prefix, err = parser.scanTagURI(true, nil, start_mark)
	if err != nil {
		return nil, nil, err
	}
	if !isBlankz(parser.at(0)) {
		return nil, nil, parser.setScannerError("while scanning a %TAG directive", start_mark, "did not find expected whitespace or line break")
	}
	return handle, prefix, nil
}

func (parser *Parser) fetchDocumentIndicator(typ TokenType) error {
	if err := parser.unrollIndent(-1); err != nil {
		return err
	}
	if err := parser.removeSimpleKey(); err != nil {
		return err
	}
	start_mark := parser.mark
	parser.skip()
	parser.skip()
	parser.skip()
	token := Token{Type: typ, StartMark: start_mark, EndMark: parser.mark}
	parser.tokens = append(parser.tokens, token)
	return nil
}

func (parser *Parser) fetchFlowCollectionStart(typ TokenType) error {
	if err := parser.saveSimpleKey(); err != nil {
		return err
	}
	if err := parser.increaseFlowLevel(); err != nil {
		return err
	}
	start_mark := parser.mark
	parser.skip()
	token := Token{Type: typ, StartMark: start_mark, EndMark: parser.mark}
	parser.tokens = append(parser.tokens, token)
	return nil
}

func (parser *Parser) fetchFlowCollectionEnd(typ TokenType) error {
	if err := parser.removeSimpleKey(); err != nil {
		return err
	}
	if err := parser.decreaseFlowLevel(); err != nil {
		return err
	}
	start_mark := parser.mark
	parser.skip()
	token := Token{Type: typ, StartMark: start_mark, EndMark: parser.mark}
	parser.tokens = append(parser.tokens, token)
	return nil
}

func (parser *Parser) fetchFlowEntry() error {
	if err := parser.removeSimpleKey(); err != nil {
		return err
	}
	start_mark := parser.mark
	parser.skip()
	token := Token{Type: FLOW_ENTRY_TOKEN, StartMark: start_mark, EndMark: parser.mark}
	parser.tokens = append(parser.tokens, token)
	return nil
}

func (parser *Parser) fetchBlockEntry() error {
	if parser.flow_level == 0 {
		if !parser.simpleKeyIsValid() && parser.indent < parser.mark.Column {
			// Defer: rollIndent happens below via column comparison.
		}
		if err := parser.rollIndent(parser.mark.Column, -1, BLOCK_SEQUENCE_START_TOKEN, parser.mark); err != nil {
			return err
		}
	} else {
		// '-' has no special meaning inside flow context; treat position as key start.
	}
	if err := parser.removeSimpleKey(); err != nil {
		return err
	}
	start_mark := parser.mark
	parser.skip()
	token := Token{Type: BLOCK_ENTRY_TOKEN, StartMark: start_mark, EndMark: parser.mark}
	parser.tokens = append(parser.tokens, token)
	return nil
}

func (parser *Parser) fetchKey() error {
	if parser.flow_level == 0 {
		if !parser.simpleKeyIsValid() {
			return parser.setScannerError("while scanning a simple key", Mark{}, "mapping keys are not allowed in this context")
		}
		if err := parser.rollIndent(parser.mark.Column, -1, BLOCK_MAPPING_START_TOKEN, parser.mark); err != nil {
			return err
		}
	}
	if err := parser.removeSimpleKey(); err != nil {
		return err
	}
	start_mark := parser.mark
	parser.skip()
	token := Token{Type: KEY_TOKEN, StartMark: start_mark, EndMark: parser.mark}
	parser.tokens = append(parser.tokens, token)
	return nil
}

func (parser *Parser) fetchValue() error {
	if parser.simpleKeyIsValid() {
		key := parser.simple_keys_stack[len(parser.simple_keys_stack)-1]
		parser.simple_keys_stack[len(parser.simple_keys_stack)-1].possible = false

		pos := key.token_number - parser.tokens_parsed
		token := Token{Type: KEY_TOKEN, StartMark: key.mark, EndMark: key.mark}
		if err := parser.rollIndent(key.mark.Column, key.token_number, BLOCK_MAPPING_START_TOKEN, key.mark); err != nil {
			return err
		}
		parser.insertToken(pos, &token)
	} else {
		if parser.flow_level == 0 {
			if err := parser.rollIndent(parser.mark.Column, -1, BLOCK_MAPPING_START_TOKEN, parser.mark); err != nil {
				return err
			}
		}
	}
	if err := parser.removeSimpleKey(); err != nil {
		return err
	}
	start_mark := parser.mark
	parser.skip()
	token := Token{Type: VALUE_TOKEN, StartMark: start_mark, EndMark: parser.mark}
	parser.tokens = append(parser.tokens, token)
	return nil
}

func (parser *Parser) fetchAnchor(typ TokenType) error {
	if err := parser.saveSimpleKey(); err != nil {
		return err
	}
	if err := parser.removeSimpleKey(); err != nil {
		return err
	}
	start_mark := parser.mark
	parser.skip()
	var value []byte
	for isAlpha(parser.at(0)) {
		value = append(value, parser.at(0))
		parser.skip()
	}
	if len(value) == 0 {
		what := "an anchor"
		if typ == ALIAS_TOKEN {
			what = "an alias"
		}
		return parser.setScannerError("while scanning "+what, start_mark, "did not find expected alphabetic or numeric character")
	}
	token := Token{Type: typ, StartMark: start_mark, EndMark: parser.mark, Value: value}
	parser.tokens = append(parser.tokens, token)
	return nil
}

func (parser *Parser) fetchTag() error {
	if err := parser.saveSimpleKey(); err != nil {
		return err
	}
	if err := parser.removeSimpleKey(); err != nil {
		return err
	}
	start_mark := parser.mark
	handle, suffix, err := parser.scanTag(start_mark)
	if err != nil {
		return err
	}
	token := Token{Type: TAG_TOKEN, StartMark: start_mark, EndMark: parser.mark, Value: handle, suffix: suffix}
	parser.tokens = append(parser.tokens, token)
	return nil
}

func (parser *Parser) scanTag(start_mark Mark) (handle, suffix []byte, err error) {
	if parser.at(1) == '<' {
		parser.skip()
		parser.skip()
		suffix, err = parser.scanTagURI(false, nil, start_mark)
		if err != nil {
			return nil, nil, err
		}
		if parser.at(0) != '>' {
			return nil, nil, parser.setScannerError("while scanning a tag", start_mark, "did not find the expected '>'")
		}
		parser.skip()
		return nil, suffix, nil
	}
	if isBlankz(parser.at(1)) {
		parser.skip()
		return nil, []byte("!"), nil
	}
	length := 1
	useHandle := false
	for !isBlankz(parser.at(length)) {
		if parser.at(length) == '!' {
			useHandle = true
			break
		}
		length++
	}
	if useHandle {
		handle, err = parser.scanTagHandle(false, start_mark)
		if err != nil {
			return nil, nil, err
		}
	} else {
		parser.skip()
		handle = []byte("!")
	}
	suffix, err = parser.scanTagURI(false, nil, start_mark)
	if err != nil {
		return nil, nil, err
	}
	return handle, suffix, nil
}

func (parser *Parser) scanTagHandle(directive bool, start_mark Mark) ([]byte, error) {
	if parser.at(0) != '!' {
		return nil, parser.setScannerError("while scanning a tag", start_mark, "did not find expected '!'")
	}
	value := []byte{'!'}
	parser.skip()
	for isAlpha(parser.at(0)) {
		value = append(value, parser.at(0))
		parser.skip()
	}
	if parser.at(0) == '!' {
		value = append(value, '!')
		parser.skip()
	} else if directive && string(value) != "!" {
		return nil, parser.setScannerError("while parsing a tag directive", start_mark, "did not find expected '!'")
	}
	return value, nil
}

func (parser *Parser) scanTagURI(directive bool, head []byte, start_mark Mark) ([]byte, error) {
	value := append([]byte(nil), head...)
	for {
		b := parser.at(0)
		switch {
		case isAlpha(b) || b == ';' || b == '/' || b == '?' || b == ':' || b == '@' || b == '&' ||
			b == '=' || b == '+' || b == '$' || b == ',' || b == '.' || b == '!' || b == '~' ||
			b == '*' || b == '\'' || b == '(' || b == ')' || b == '[' || b == ']' || b == '%':
			if b == '%' {
				code, err := parser.scanURIEscape(start_mark)
				if err != nil {
					return nil, err
				}
				value = append(value, code...)
				continue
			}
			value = append(value, b)
			parser.skip()
		default:
			if len(value) == 0 {
				return nil, parser.setScannerError("while parsing a tag", start_mark, "did not find expected tag URI")
			}
			return value, nil
		}
	}
}

func (parser *Parser) scanURIEscape(start_mark Mark) ([]byte, error) {
	var value []byte
	for parser.at(0) == '%' {
		parser.skip()
		hi, lo := asHex(parser.at(0)), asHex(parser.at(1))
		if hi < 0 || lo < 0 {
			return nil, parser.setScannerError("while parsing a tag", start_mark, "did not find URI escaped octet")
		}
		value = append(value, byte(hi<<4|lo))
		parser.skip()
		parser.skip()
	}
	return value, nil
}

// scanToNextToken skips whitespace, comments and line breaks, collecting
// comments into the parser's pending comment queue and, in block context,
// expiring stale simple keys at each line break.
func (parser *Parser) scanToNextToken() error {
	if parser.mark.Index == 0 && parser.at(0) == 0xEF && parser.at(1) == 0xBB && parser.at(2) == 0xBF {
		parser.skip()
		parser.skip()
		parser.skip()
	}

	scanned_first_comment := false
	for {
		for isBlank(parser.at(0)) {
			parser.skip()
		}
		if parser.at(0) == '#' {
			start_mark := parser.mark
			var text []byte
			for !isBreakz(parser.at(0)) {
				text = append(text, parser.at(0))
				parser.skip()
			}
			if len(text) > 0 {
				comment := Comment{start_mark: start_mark, end_mark: parser.mark, token_mark: parser.mark}
				if start_mark.Column == 0 {
					comment.head = text
				} else {
					comment.line = text
				}
				parser.comments = append(parser.comments, comment)
			}
			scanned_first_comment = true
		}
		if isBreak(parser.at(0)) {
			parser.skipLineBreak(nil)
			if parser.flow_level == 0 {
				if err := parser.staleSimpleKeys(); err != nil {
					return err
				}
			}
		} else {
			break
		}
	}
	_ = scanned_first_comment
	return nil
}

// isEmptyValue reports whether the current position begins a block value
// that should be treated as implicitly null (e.g. "key:\n").
func (parser *Parser) isEmptyValue() bool {
	return isBreakz(parser.at(0))
}

var _ = bytes.Equal
