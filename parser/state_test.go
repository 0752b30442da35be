package parser

import "testing"

func allStates() []State {
	return []State{
		ground{},
		escape{},
		escapeIntermediate{},
		csiEntry{},
		csiParam{},
		csiIntermediate{},
		csiIgnore{},
		dcsEntry{},
		dcsParam{},
		dcsIntermediate{},
		dcsPassthrough{},
		dcsIgnore{},
		oscString{},
		sosPmApcString{},
		utf8Sequence{},
	}
}

func TestTransitionTotality(t *testing.T) {
	// every (state, byte) pair yields a defined transition
	for _, s := range allStates() {
		for i := 0; i < 256; i++ {
			tr := s.event(byte(i))
			if tr.action > ActionIgnore {
				t.Errorf("%s byte %#x: undefined action %d\n", s, i, tr.action)
			}
		}
	}
}

func TestAdvanceTotality(t *testing.T) {
	// the engine accepts every byte in every state without panicking
	for _, s := range allStates() {
		for i := 0; i < 256; i++ {
			p := NewParser()
			p.state = s
			p.Advance(NopPerform{}, byte(i))
		}
	}
}

func TestAnywhereTransitions(t *testing.T) {
	tc := []struct {
		label  string
		b      byte
		action Action
		next   string
	}{
		{"can", 0x18, ActionExecute, "Ground"},
		{"sub", 0x1a, ActionExecute, "Ground"},
		{"esc", 0x1b, ActionNop, "Escape"},
	}

	for _, v := range tc {
		tr, ok := anywhere(v.b)
		if !ok {
			t.Fatalf("%s expect a transition for %#x\n", v.label, v.b)
		}
		if tr.action != v.action {
			t.Errorf("%s expect action %s, got %s\n", v.label, v.action, tr.action)
		}
		if tr.next.String() != v.next {
			t.Errorf("%s expect state %s, got %s\n", v.label, v.next, tr.next)
		}
	}

	if _, ok := anywhere('A'); ok {
		t.Errorf("#test expect no anywhere transition for %q\n", 'A')
	}
}

func TestEntryExitActions(t *testing.T) {
	tc := []struct {
		label string
		s     State
		enter Action
		exit  Action
	}{
		{"escape", escape{}, ActionClear, ActionNop},
		{"csi entry", csiEntry{}, ActionClear, ActionNop},
		{"dcs entry", dcsEntry{}, ActionClear, ActionNop},
		{"dcs passthrough", dcsPassthrough{}, ActionHook, ActionUnhook},
		{"osc string", oscString{}, ActionOscStart, ActionOscEnd},
		{"ground", ground{}, ActionNop, ActionNop},
	}

	for _, v := range tc {
		if got := v.s.enter(); got != v.enter {
			t.Errorf("%s expect enter %s, got %s\n", v.label, v.enter, got)
		}
		if got := v.s.exit(); got != v.exit {
			t.Errorf("%s expect exit %s, got %s\n", v.label, v.exit, got)
		}
	}
}

func TestGroundEvents(t *testing.T) {
	g := ground{}

	tc := []struct {
		label  string
		b      byte
		action Action
	}{
		{"nul", 0x00, ActionExecute},
		{"bel", 0x07, ActionExecute},
		{"lf", 0x0a, ActionExecute},
		{"space", 0x20, ActionPrint},
		{"tilde", 0x7e, ActionPrint},
		{"del", 0x7f, ActionExecute},
		{"high byte", 0xc3, ActionBeginUtf8},
	}

	for _, v := range tc {
		tr := g.event(v.b)
		if tr.action != v.action {
			t.Errorf("%s expect %s, got %s\n", v.label, v.action, tr.action)
		}
		if tr.next != nil {
			t.Errorf("%s expect no state change, got %s\n", v.label, tr.next)
		}
	}
}

func TestActionString(t *testing.T) {
	if got := ActionOscStart.String(); got != "OSCstart" {
		t.Errorf("#test expect %q, got %q\n", "OSCstart", got)
	}
	if got := Action(200).String(); got != "Unknown" {
		t.Errorf("#test expect %q, got %q\n", "Unknown", got)
	}
}
