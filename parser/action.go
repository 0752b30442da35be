package parser

// Action is the operation the state machine asks the engine to perform for
// one input byte. The set is closed: every transition carries exactly one of
// these values and the engine dispatches with an exhaustive switch.
type Action uint8

const (
	// ActionNop marks transitions whose only effect is the state change
	// itself, plus whatever entry/exit actions fire.
	ActionNop Action = iota
	ActionPrint
	ActionExecute
	ActionHook
	ActionPut
	ActionOscStart
	ActionOscPut
	ActionOscEnd
	ActionUnhook
	ActionCsiDispatch
	ActionEscDispatch
	ActionCollect
	ActionParam
	ActionClear
	ActionBeginUtf8
	ActionIgnore
)

var actionNames = [...]string{
	"Nop",
	"Print",
	"Execute",
	"Hook",
	"Put",
	"OSCstart",
	"OSCput",
	"OSCend",
	"Unhook",
	"CSIdispatch",
	"ESCdispatch",
	"Collect",
	"Param",
	"Clear",
	"BeginUTF8",
	"Ignore",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "Unknown"
}
