package parser

// transition is the result of looking one byte up in the current state:
// the action to perform and the state to move to. A nil next state means
// the action fires without changing the persisted state (the "anywhere"
// behavior of the published state diagram).
type transition struct {
	action Action
	next   State
}

// State is one node of the DEC/ANSI parser state diagram. Entry and exit
// actions live on the state itself so the engine can run them in the
// required order: exit actions of the old state, the transition's own
// action, entry actions of the new state, then the state change commits.
type State interface {
	enter() Action
	exit() Action
	event(b byte) transition
	String() string
}

// state supplies the default no-op entry/exit actions.
type state struct{}

func (s state) enter() Action { return ActionNop }
func (s state) exit() Action  { return ActionNop }

// anywhere holds the transitions that fire from every state: CAN and SUB
// abort the current sequence, ESC opens a new one. They are checked before
// the per-state table so an in-progress sequence can never swallow them.
func anywhere(b byte) (transition, bool) {
	switch b {
	case 0x18, 0x1a: // CAN, SUB
		return transition{ActionExecute, ground{}}, true
	case 0x1b: // ESC
		return transition{ActionNop, escape{}}, true
	}
	return transition{}, false
}

func c0prime(b byte) bool {
	// event 00-17,19,1C-1F
	return b <= 0x17 || b == 0x19 || (0x1c <= b && b <= 0x1f)
}

type ground struct{ state }

func (g ground) String() string { return "Ground" }
func (g ground) event(b byte) transition {
	switch {
	case c0prime(b):
		return transition{ActionExecute, nil}
	case 0x20 <= b && b <= 0x7e:
		return transition{ActionPrint, nil}
	case b == 0x7f: // DEL
		return transition{ActionExecute, nil}
	case b >= 0x80:
		// start of a multi-byte code point; the engine feeds the
		// accumulator and only parks in utf8Sequence while incomplete
		return transition{ActionBeginUtf8, nil}
	}
	return transition{ActionIgnore, nil}
}

type escape struct{ state }

func (e escape) enter() Action  { return ActionClear }
func (e escape) String() string { return "Escape" }
func (e escape) event(b byte) transition {
	switch {
	case c0prime(b):
		return transition{ActionExecute, nil}
	case 0x20 <= b && b <= 0x2f:
		return transition{ActionCollect, escapeIntermediate{}}
	case b == 0x5b: // [
		return transition{ActionNop, csiEntry{}}
	case b == 0x5d: // ]
		return transition{ActionNop, oscString{}}
	case b == 0x50: // P
		return transition{ActionNop, dcsEntry{}}
	case b == 0x58 || b == 0x5e || b == 0x5f: // X ^ _
		return transition{ActionNop, sosPmApcString{}}
	case (0x30 <= b && b <= 0x4f) || (0x51 <= b && b <= 0x57) ||
		b == 0x59 || b == 0x5a || b == 0x5c || (0x60 <= b && b <= 0x7e):
		return transition{ActionEscDispatch, ground{}}
	}
	// the last one is event 7F / ignore
	return transition{ActionIgnore, nil}
}

type escapeIntermediate struct{ state }

func (e escapeIntermediate) String() string { return "EscapeIntermediate" }
func (e escapeIntermediate) event(b byte) transition {
	switch {
	case c0prime(b):
		return transition{ActionExecute, nil}
	case 0x20 <= b && b <= 0x2f:
		return transition{ActionCollect, nil}
	case 0x30 <= b && b <= 0x7e:
		return transition{ActionEscDispatch, ground{}}
	}
	return transition{ActionIgnore, nil}
}

type csiEntry struct{ state }

func (c csiEntry) enter() Action  { return ActionClear }
func (c csiEntry) String() string { return "CsiEntry" }
func (c csiEntry) event(b byte) transition {
	switch {
	case c0prime(b):
		return transition{ActionExecute, nil}
	case 0x40 <= b && b <= 0x7e:
		return transition{ActionCsiDispatch, ground{}}
	// digits, ':' and ';' all accumulate parameters; ':' opens a
	// sub-parameter of the current one
	case 0x30 <= b && b <= 0x3b:
		return transition{ActionParam, csiParam{}}
	// private markers <,=,>,? are only valid before any parameter
	case 0x3c <= b && b <= 0x3f:
		return transition{ActionCollect, csiParam{}}
	case 0x20 <= b && b <= 0x2f:
		return transition{ActionCollect, csiIntermediate{}}
	}
	return transition{ActionIgnore, nil}
}

type csiParam struct{ state }

func (c csiParam) String() string { return "CsiParam" }
func (c csiParam) event(b byte) transition {
	switch {
	case c0prime(b):
		return transition{ActionExecute, nil}
	case 0x30 <= b && b <= 0x3b:
		return transition{ActionParam, nil}
	// a private marker after parameters makes the sequence invalid
	case 0x3c <= b && b <= 0x3f:
		return transition{ActionIgnore, csiIgnore{}}
	case 0x20 <= b && b <= 0x2f:
		return transition{ActionCollect, csiIntermediate{}}
	case 0x40 <= b && b <= 0x7e:
		return transition{ActionCsiDispatch, ground{}}
	}
	return transition{ActionIgnore, nil}
}

type csiIntermediate struct{ state }

func (c csiIntermediate) String() string { return "CsiIntermediate" }
func (c csiIntermediate) event(b byte) transition {
	switch {
	case c0prime(b):
		return transition{ActionExecute, nil}
	case 0x20 <= b && b <= 0x2f:
		return transition{ActionCollect, nil}
	case 0x30 <= b && b <= 0x3f:
		return transition{ActionIgnore, csiIgnore{}}
	case 0x40 <= b && b <= 0x7e:
		return transition{ActionCsiDispatch, ground{}}
	}
	return transition{ActionIgnore, nil}
}

type csiIgnore struct{ state }

func (c csiIgnore) String() string { return "CsiIgnore" }
func (c csiIgnore) event(b byte) transition {
	switch {
	case c0prime(b):
		return transition{ActionExecute, nil}
	case 0x40 <= b && b <= 0x7e:
		return transition{ActionIgnore, ground{}}
	}
	return transition{ActionIgnore, nil}
}

type dcsEntry struct{ state }

func (d dcsEntry) enter() Action  { return ActionClear }
func (d dcsEntry) String() string { return "DcsEntry" }
func (d dcsEntry) event(b byte) transition {
	switch {
	case 0x20 <= b && b <= 0x2f:
		return transition{ActionCollect, dcsIntermediate{}}
	case 0x30 <= b && b <= 0x3b:
		return transition{ActionParam, dcsParam{}}
	case 0x3c <= b && b <= 0x3f:
		return transition{ActionCollect, dcsParam{}}
	case 0x40 <= b && b <= 0x7e:
		return transition{ActionNop, dcsPassthrough{}}
	}
	// event 00-17,19,1C-1F,7F / ignore
	return transition{ActionIgnore, nil}
}

type dcsParam struct{ state }

func (d dcsParam) String() string { return "DcsParam" }
func (d dcsParam) event(b byte) transition {
	switch {
	case 0x30 <= b && b <= 0x3b:
		return transition{ActionParam, nil}
	case 0x3c <= b && b <= 0x3f:
		return transition{ActionIgnore, dcsIgnore{}}
	case 0x20 <= b && b <= 0x2f:
		return transition{ActionCollect, dcsIntermediate{}}
	case 0x40 <= b && b <= 0x7e:
		return transition{ActionNop, dcsPassthrough{}}
	}
	return transition{ActionIgnore, nil}
}

type dcsIntermediate struct{ state }

func (d dcsIntermediate) String() string { return "DcsIntermediate" }
func (d dcsIntermediate) event(b byte) transition {
	switch {
	case 0x20 <= b && b <= 0x2f:
		return transition{ActionCollect, nil}
	case 0x30 <= b && b <= 0x3f:
		return transition{ActionIgnore, dcsIgnore{}}
	case 0x40 <= b && b <= 0x7e:
		return transition{ActionNop, dcsPassthrough{}}
	}
	return transition{ActionIgnore, nil}
}

type dcsPassthrough struct{ state }

func (d dcsPassthrough) enter() Action  { return ActionHook }
func (d dcsPassthrough) exit() Action   { return ActionUnhook }
func (d dcsPassthrough) String() string { return "DcsPassthrough" }
func (d dcsPassthrough) event(b byte) transition {
	if b == 0x7f {
		return transition{ActionIgnore, nil}
	}
	// the payload is raw bytes, 8-bit data included, until ST
	if c0prime(b) || b >= 0x20 {
		return transition{ActionPut, nil}
	}
	return transition{ActionIgnore, nil}
}

type dcsIgnore struct{ state }

func (d dcsIgnore) String() string { return "DcsIgnore" }
func (d dcsIgnore) event(b byte) transition {
	return transition{ActionIgnore, nil}
}

type oscString struct{ state }

func (o oscString) enter() Action  { return ActionOscStart }
func (o oscString) exit() Action   { return ActionOscEnd }
func (o oscString) String() string { return "OscString" }
func (o oscString) event(b byte) transition {
	switch {
	case b == 0x07: // BEL, the xterm non-ANSI terminator
		return transition{ActionNop, ground{}}
	case c0prime(b):
		return transition{ActionIgnore, nil}
	case b >= 0x20:
		return transition{ActionOscPut, nil}
	}
	return transition{ActionIgnore, nil}
}

type sosPmApcString struct{ state }

func (s sosPmApcString) String() string { return "SosPmApcString" }
func (s sosPmApcString) event(b byte) transition {
	return transition{ActionIgnore, nil}
}

// utf8Sequence is active while a multi-byte code point is incomplete. The
// engine routes bytes straight to the accumulator in this state, so its
// event table is never consulted.
type utf8Sequence struct{ state }

func (u utf8Sequence) String() string { return "Utf8" }
func (u utf8Sequence) event(b byte) transition {
	return transition{ActionIgnore, nil}
}
