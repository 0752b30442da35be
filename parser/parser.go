package parser

import (
	"github.com/ericwq/vtparse/util"
)

// maxOscParams bounds the OSC field offset table. Fields past the cap are
// absorbed into the last retained field, they are never dropped.
const maxOscParams = 16

// Parser drives the DEC/ANSI state diagram one byte at a time, with no
// backtracking. It owns every piece of sequence state: the current state,
// the intermediates buffer, the parameter accumulator and list, the OSC raw
// buffer with its field offsets, and the ignoring overflow flag. Create one
// Parser per byte stream and keep it for the stream's lifetime; it is not
// safe for concurrent Advance calls.
//
// Malformed input never fails the parser: overflow degrades to ignoring and
// the dispatch still fires, leaving the consumer to decide whether a
// partial sequence is worth honoring.
type Parser struct {
	state   State
	decoder Decoder

	params Params
	// running accumulator for the parameter being read
	param         uint16
	intermediates [maxIntermediates]byte
	nIntermediate int
	ignoring      bool

	oscRaw     []byte
	oscParams  [maxOscParams][2]int
	nOscParams int
	oscScratch [maxOscParams][]byte
}

// NewParser returns a parser that decodes multi-byte UTF-8 in Ground state.
func NewParser() *Parser {
	return newParser(&UTF8Decoder{})
}

// NewASCIIParser returns a parser for 7-bit streams. Feeding it a byte
// above 0x7F panics; configurations that disclaim Unicode want the
// fail-fast, not a silent replacement character.
func NewASCIIParser() *Parser {
	return newParser(ASCIIDecoder{})
}

func newParser(d Decoder) *Parser {
	return &Parser{
		state:   ground{},
		decoder: d,
		oscRaw:  make([]byte, 0, 128),
	}
}

// Advance feeds one byte through the state machine and invokes perf for
// every action it produces.
func (p *Parser) Advance(perf Perform, b byte) {
	if _, mid := p.state.(utf8Sequence); mid {
		p.advanceUtf8(perf, b)
		return
	}
	tr, ok := anywhere(b)
	if !ok {
		tr = p.state.event(b)
	}
	p.performStateChange(perf, tr, b)
}

func (p *Parser) advanceUtf8(perf Perform, b byte) {
	r, done := p.decoder.Add(b)
	if !done {
		return
	}
	perf.Print(r)
	p.state = ground{}
}

// performStateChange executes one transition in strict order: exit actions
// of the state being left, the transition's own action, entry actions of
// the new state, then the state change commits. The ordering guarantees a
// string or passthrough mode is cleanly closed before a new one opens,
// even when both happen on the same byte.
func (p *Parser) performStateChange(perf Perform, tr transition, b byte) {
	if tr.next == nil {
		// state-preserving: the action fires, the state stays
		p.executeAction(perf, tr.action, b)
		return
	}
	p.executeAction(perf, p.state.exit(), b)
	p.executeAction(perf, tr.action, b)
	p.executeAction(perf, tr.next.enter(), b)
	p.state = tr.next
}

func (p *Parser) executeAction(perf Perform, act Action, b byte) {
	switch act {
	case ActionNop, ActionIgnore:

	case ActionPrint:
		perf.Print(rune(b))

	case ActionExecute:
		perf.Execute(b)

	case ActionClear:
		p.params.clear()
		p.param = 0
		p.nIntermediate = 0
		p.ignoring = false

	case ActionCollect:
		if p.nIntermediate == maxIntermediates {
			if !p.ignoring {
				util.Logger.Debug("intermediates overflow", "byte", b)
			}
			p.ignoring = true
		} else {
			p.intermediates[p.nIntermediate] = b
			p.nIntermediate++
		}

	case ActionParam:
		if p.params.full() {
			if !p.ignoring {
				util.Logger.Debug("parameter list overflow")
			}
			p.ignoring = true
			return
		}
		switch b {
		case ';':
			p.params.push(p.param)
			p.param = 0
		case ':':
			p.params.extend(p.param)
			p.param = 0
		default:
			// saturating accumulation, clamped instead of wrapping
			p.param = uint16(util.Min(int(p.param)*10+int(b-'0'), maxParamValue))
		}

	case ActionHook:
		if p.params.full() {
			p.ignoring = true
		} else {
			p.params.push(p.param)
		}
		perf.Hook(&p.params, p.intermediates[:p.nIntermediate], p.ignoring, b)

	case ActionPut:
		perf.Put(b)

	case ActionUnhook:
		perf.Unhook()

	case ActionOscStart:
		p.oscRaw = p.oscRaw[:0]
		p.nOscParams = 0

	case ActionOscPut:
		p.oscPut(b)

	case ActionOscEnd:
		p.oscEnd(perf, b)

	case ActionCsiDispatch:
		if p.params.full() {
			p.ignoring = true
		} else {
			p.params.push(p.param)
		}
		perf.CsiDispatch(&p.params, p.intermediates[:p.nIntermediate], p.ignoring, b)

	case ActionEscDispatch:
		perf.EscDispatch(p.intermediates[:p.nIntermediate], p.ignoring, b)

	case ActionBeginUtf8:
		p.beginUtf8(perf, b)
	}
}

func (p *Parser) beginUtf8(perf Perform, b byte) {
	r, done := p.decoder.Add(b)
	if done {
		// single-shot result, an invalid lead decoded to U+FFFD
		perf.Print(r)
		return
	}
	p.state = utf8Sequence{}
}

func (p *Parser) oscPut(b byte) {
	idx := len(p.oscRaw)
	if b == ';' && p.nOscParams < maxOscParams {
		if p.nOscParams == 0 {
			// the first field spans from the buffer start
			p.oscParams[0] = [2]int{0, idx}
		} else {
			prev := p.oscParams[p.nOscParams-1]
			p.oscParams[p.nOscParams] = [2]int{prev[1], idx}
		}
		p.nOscParams++
		return
	}
	// payload byte; with the field table full this also covers the
	// separator itself, absorbing overflow into the last retained field
	p.oscRaw = append(p.oscRaw, b)
}

// oscEnd finalizes the pending field the same way oscPut closes one, then
// slices the raw buffer per the recorded offsets and dispatches.
func (p *Parser) oscEnd(perf Perform, b byte) {
	idx := len(p.oscRaw)
	switch {
	case p.nOscParams == maxOscParams:
		// absorb everything collected past the cap into the last field
		p.oscParams[maxOscParams-1][1] = idx
	case p.nOscParams == 0:
		p.oscParams[0] = [2]int{0, idx}
		p.nOscParams++
	default:
		prev := p.oscParams[p.nOscParams-1]
		p.oscParams[p.nOscParams] = [2]int{prev[1], idx}
		p.nOscParams++
	}
	params := p.oscScratch[:p.nOscParams]
	for i := 0; i < p.nOscParams; i++ {
		params[i] = p.oscRaw[p.oscParams[i][0]:p.oscParams[i][1]]
	}
	perf.OscDispatch(params, b == 0x07)
}
