// Copyright 2006-2010 Kirill Simonov
// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0 AND MIT

// This file declares the Parser and Emitter state machines: their state
// enumerations and the struct types that hold their working state across
// calls to Parse/Emit.

package libyaml

import "io"

// ParserState represents a state of the parser's document-production
// state machine.
type ParserState int

const (
	PARSE_STREAM_START_STATE ParserState = iota
	PARSE_IMPLICIT_DOCUMENT_START_STATE
	PARSE_DOCUMENT_START_STATE
	PARSE_DOCUMENT_CONTENT_STATE
	PARSE_DOCUMENT_END_STATE
	PARSE_BLOCK_NODE_STATE
	PARSE_BLOCK_NODE_OR_INDENTLESS_SEQUENCE_STATE
	PARSE_FLOW_NODE_STATE
	PARSE_BLOCK_SEQUENCE_FIRST_ENTRY_STATE
	PARSE_BLOCK_SEQUENCE_ENTRY_STATE
	PARSE_INDENTLESS_SEQUENCE_ENTRY_STATE
	PARSE_BLOCK_MAPPING_FIRST_KEY_STATE
	PARSE_BLOCK_MAPPING_KEY_STATE
	PARSE_BLOCK_MAPPING_VALUE_STATE
	PARSE_FLOW_SEQUENCE_FIRST_ENTRY_STATE
	PARSE_FLOW_SEQUENCE_ENTRY_STATE
	PARSE_FLOW_SEQUENCE_ENTRY_MAPPING_KEY_STATE
	PARSE_FLOW_SEQUENCE_ENTRY_MAPPING_VALUE_STATE
	PARSE_FLOW_SEQUENCE_ENTRY_MAPPING_END_STATE
	PARSE_FLOW_MAPPING_FIRST_KEY_STATE
	PARSE_FLOW_MAPPING_KEY_STATE
	PARSE_FLOW_MAPPING_VALUE_STATE
	PARSE_FLOW_MAPPING_EMPTY_VALUE_STATE
	PARSE_END_STATE
)

func (s ParserState) String() string {
	switch s {
	case PARSE_STREAM_START_STATE:
		return "PARSE_STREAM_START_STATE"
	case PARSE_IMPLICIT_DOCUMENT_START_STATE:
		return "PARSE_IMPLICIT_DOCUMENT_START_STATE"
	case PARSE_DOCUMENT_START_STATE:
		return "PARSE_DOCUMENT_START_STATE"
	case PARSE_DOCUMENT_CONTENT_STATE:
		return "PARSE_DOCUMENT_CONTENT_STATE"
	case PARSE_DOCUMENT_END_STATE:
		return "PARSE_DOCUMENT_END_STATE"
	case PARSE_BLOCK_NODE_STATE:
		return "PARSE_BLOCK_NODE_STATE"
	case PARSE_BLOCK_NODE_OR_INDENTLESS_SEQUENCE_STATE:
		return "PARSE_BLOCK_NODE_OR_INDENTLESS_SEQUENCE_STATE"
	case PARSE_FLOW_NODE_STATE:
		return "PARSE_FLOW_NODE_STATE"
	case PARSE_BLOCK_SEQUENCE_FIRST_ENTRY_STATE:
		return "PARSE_BLOCK_SEQUENCE_FIRST_ENTRY_STATE"
	case PARSE_BLOCK_SEQUENCE_ENTRY_STATE:
		return "PARSE_BLOCK_SEQUENCE_ENTRY_STATE"
	case PARSE_INDENTLESS_SEQUENCE_ENTRY_STATE:
		return "PARSE_INDENTLESS_SEQUENCE_ENTRY_STATE"
	case PARSE_BLOCK_MAPPING_FIRST_KEY_STATE:
		return "PARSE_BLOCK_MAPPING_FIRST_KEY_STATE"
	case PARSE_BLOCK_MAPPING_KEY_STATE:
		return "PARSE_BLOCK_MAPPING_KEY_STATE"
	case PARSE_BLOCK_MAPPING_VALUE_STATE:
		return "PARSE_BLOCK_MAPPING_VALUE_STATE"
	case PARSE_FLOW_SEQUENCE_FIRST_ENTRY_STATE:
		return "PARSE_FLOW_SEQUENCE_FIRST_ENTRY_STATE"
	case PARSE_FLOW_SEQUENCE_ENTRY_STATE:
		return "PARSE_FLOW_SEQUENCE_ENTRY_STATE"
	case PARSE_FLOW_SEQUENCE_ENTRY_MAPPING_KEY_STATE:
		return "PARSE_FLOW_SEQUENCE_ENTRY_MAPPING_KEY_STATE"
	case PARSE_FLOW_SEQUENCE_ENTRY_MAPPING_VALUE_STATE:
		return "PARSE_FLOW_SEQUENCE_ENTRY_MAPPING_VALUE_STATE"
	case PARSE_FLOW_SEQUENCE_ENTRY_MAPPING_END_STATE:
		return "PARSE_FLOW_SEQUENCE_ENTRY_MAPPING_END_STATE"
	case PARSE_FLOW_MAPPING_FIRST_KEY_STATE:
		return "PARSE_FLOW_MAPPING_FIRST_KEY_STATE"
	case PARSE_FLOW_MAPPING_KEY_STATE:
		return "PARSE_FLOW_MAPPING_KEY_STATE"
	case PARSE_FLOW_MAPPING_VALUE_STATE:
		return "PARSE_FLOW_MAPPING_VALUE_STATE"
	case PARSE_FLOW_MAPPING_EMPTY_VALUE_STATE:
		return "PARSE_FLOW_MAPPING_EMPTY_VALUE_STATE"
	case PARSE_END_STATE:
		return "PARSE_END_STATE"
	}
	return "<unknown parser state>"
}

// simpleKey records a candidate position for a YAML simple (unquoted,
// single-line) mapping key, tracked while scanning so it can later be
// turned into a KEY_TOKEN once its value is known to follow.
type simpleKey struct {
	possible     bool
	required     bool
	token_number int
	mark         Mark
}

// Comment holds a run of comment text collected by the scanner, tied to
// the token position it should be attached to once unfolded by the
// parser into an event's Head/Line/FootComment.
type Comment struct {
	scan_mark  Mark
	token_mark Mark
	start_mark Mark
	end_mark   Mark

	head []byte
	line []byte
	foot []byte
}

// Parser reads a byte stream and produces a sequence of parsing events,
// tokenizing internally on demand.
type Parser struct {
	Error   ErrorType
	Problem string

	problem_mark     Mark
	context          string
	context_mark     Mark
	problem_offset   int
	problem_value    int

	read_handler func(parser *Parser, buffer []byte) (n int, err error)

	input_reader io.Reader
	input        []byte
	input_pos    int

	eof bool

	buffer     []byte
	buffer_pos int

	unread int

	raw_buffer     []byte
	raw_buffer_pos int

	encoding Encoding
	offset   int
	mark     Mark

	stream_start_produced bool
	stream_end_produced   bool

	tag_directives []TagDirective

	indent  int
	indents []int

	flow_level int

	tokens          []Token
	tokens_head     int
	tokens_parsed   int
	token_available bool

	simple_keys       []simpleKey
	simple_keys_stack []simpleKey

	comments      []Comment
	comments_head int

	head_comment []byte
	line_comment []byte
	foot_comment []byte
	tail_comment []byte
	stem_comment []byte

	newlines int

	state  ParserState
	states []ParserState
	marks  []Mark

	hadError bool
}

// EmitterState represents a state of the emitter's event-consumption
// state machine.
type EmitterState int

const (
	EMIT_STREAM_START_STATE EmitterState = iota
	EMIT_FIRST_DOCUMENT_START_STATE
	EMIT_DOCUMENT_START_STATE
	EMIT_DOCUMENT_CONTENT_STATE
	EMIT_DOCUMENT_END_STATE
	EMIT_FLOW_SEQUENCE_FIRST_ITEM_STATE
	EMIT_FLOW_SEQUENCE_TRAIL_ITEM_STATE
	EMIT_FLOW_SEQUENCE_ITEM_STATE
	EMIT_FLOW_MAPPING_FIRST_KEY_STATE
	EMIT_FLOW_MAPPING_TRAIL_KEY_STATE
	EMIT_FLOW_MAPPING_KEY_STATE
	EMIT_FLOW_MAPPING_SIMPLE_VALUE_STATE
	EMIT_FLOW_MAPPING_VALUE_STATE
	EMIT_BLOCK_SEQUENCE_FIRST_ITEM_STATE
	EMIT_BLOCK_SEQUENCE_ITEM_STATE
	EMIT_BLOCK_MAPPING_FIRST_KEY_STATE
	EMIT_BLOCK_MAPPING_KEY_STATE
	EMIT_BLOCK_MAPPING_SIMPLE_VALUE_STATE
	EMIT_BLOCK_MAPPING_VALUE_STATE
	EMIT_END_STATE
)

func (s EmitterState) String() string {
	switch s {
	case EMIT_STREAM_START_STATE:
		return "EMIT_STREAM_START_STATE"
	case EMIT_FIRST_DOCUMENT_START_STATE:
		return "EMIT_FIRST_DOCUMENT_START_STATE"
	case EMIT_DOCUMENT_START_STATE:
		return "EMIT_DOCUMENT_START_STATE"
	case EMIT_DOCUMENT_CONTENT_STATE:
		return "EMIT_DOCUMENT_CONTENT_STATE"
	case EMIT_DOCUMENT_END_STATE:
		return "EMIT_DOCUMENT_END_STATE"
	case EMIT_FLOW_SEQUENCE_FIRST_ITEM_STATE:
		return "EMIT_FLOW_SEQUENCE_FIRST_ITEM_STATE"
	case EMIT_FLOW_SEQUENCE_TRAIL_ITEM_STATE:
		return "EMIT_FLOW_SEQUENCE_TRAIL_ITEM_STATE"
	case EMIT_FLOW_SEQUENCE_ITEM_STATE:
		return "EMIT_FLOW_SEQUENCE_ITEM_STATE"
	case EMIT_FLOW_MAPPING_FIRST_KEY_STATE:
		return "EMIT_FLOW_MAPPING_FIRST_KEY_STATE"
	case EMIT_FLOW_MAPPING_TRAIL_KEY_STATE:
		return "EMIT_FLOW_MAPPING_TRAIL_KEY_STATE"
	case EMIT_FLOW_MAPPING_KEY_STATE:
		return "EMIT_FLOW_MAPPING_KEY_STATE"
	case EMIT_FLOW_MAPPING_SIMPLE_VALUE_STATE:
		return "EMIT_FLOW_MAPPING_SIMPLE_VALUE_STATE"
	case EMIT_FLOW_MAPPING_VALUE_STATE:
		return "EMIT_FLOW_MAPPING_VALUE_STATE"
	case EMIT_BLOCK_SEQUENCE_FIRST_ITEM_STATE:
		return "EMIT_BLOCK_SEQUENCE_FIRST_ITEM_STATE"
	case EMIT_BLOCK_SEQUENCE_ITEM_STATE:
		return "EMIT_BLOCK_SEQUENCE_ITEM_STATE"
	case EMIT_BLOCK_MAPPING_FIRST_KEY_STATE:
		return "EMIT_BLOCK_MAPPING_FIRST_KEY_STATE"
	case EMIT_BLOCK_MAPPING_KEY_STATE:
		return "EMIT_BLOCK_MAPPING_KEY_STATE"
	case EMIT_BLOCK_MAPPING_SIMPLE_VALUE_STATE:
		return "EMIT_BLOCK_MAPPING_SIMPLE_VALUE_STATE"
	case EMIT_BLOCK_MAPPING_VALUE_STATE:
		return "EMIT_BLOCK_MAPPING_VALUE_STATE"
	case EMIT_END_STATE:
		return "EMIT_END_STATE"
	}
	return "<unknown emitter state>"
}

type anchorData struct {
	anchor []byte
	alias  bool
}

type tagData struct {
	handle []byte
	suffix []byte
}

type scalarData struct {
	value                 []byte
	multiline             bool
	flow_plain_allowed    bool
	block_plain_allowed   bool
	single_quoted_allowed bool
	block_allowed         bool
	style                 ScalarStyle
}

// Emitter consumes a sequence of events and writes the corresponding YAML
// text to its configured output.
type Emitter struct {
	ErrorType ErrorType
	Problem   string

	buffer     []byte
	buffer_pos int

	raw_buffer     []byte
	raw_buffer_pos int

	encoding Encoding

	canonical   bool
	BestIndent  int
	best_width  int
	unicode     bool
	line_break  LineBreak

	CompactSequenceIndent bool

	column      int
	line        int
	indent      int
	indents     []int
	flow_level  int

	root_context       bool
	sequence_context   bool
	mapping_context    bool
	simple_key_context bool

	space_above bool
	foot_indent int

	whitespace bool
	indention  bool
	OpenEnded  bool

	states []EmitterState
	state  EmitterState

	events      []Event
	events_head int

	tag_directives []TagDirective

	anchor_data anchorData
	tag_data    tagData
	scalar_data scalarData

	LineComment []byte
	HeadComment []byte
	FootComment []byte
	TailComment []byte

	key_line_comment []byte

	write_handler  func(emitter *Emitter, buffer []byte) error
	output_buffer  *[]byte
	output_writer  io.Writer
}
