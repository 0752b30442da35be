package parser

// Perform is the sink for everything the parser recognizes. One method per
// dispatch point; implementations usually care about a few of them, so
// embed NopPerform and override what you need.
//
// The ignore flag reports that the sequence overflowed a parser buffer
// (parameters, intermediates): the dispatch still fires with what was
// retained and the consumer decides whether a partial sequence is worth
// honoring.
type Perform interface {
	// Print draws a decoded character at the cursor.
	Print(r rune)

	// Execute handles a C0 control byte (or DEL).
	Execute(b byte)

	// Hook opens a DCS passthrough with the sequence parameters; the raw
	// payload follows via Put until Unhook.
	Hook(params *Params, intermediates []byte, ignore bool, final byte)

	// Put receives one byte of DCS passthrough payload.
	Put(b byte)

	// Unhook closes the DCS passthrough.
	Unhook()

	// OscDispatch receives the ';'-separated fields of an OSC payload.
	// bellTerminated distinguishes the xterm BEL terminator from ST.
	// The field slices alias parser storage and are only valid during
	// the call.
	OscDispatch(params [][]byte, bellTerminated bool)

	// CsiDispatch handles a complete control sequence.
	CsiDispatch(params *Params, intermediates []byte, ignore bool, final byte)

	// EscDispatch handles a complete escape sequence.
	EscDispatch(intermediates []byte, ignore bool, final byte)
}

// NopPerform implements Perform with no-ops.
type NopPerform struct{}

func (NopPerform) Print(rune)                              {}
func (NopPerform) Execute(byte)                            {}
func (NopPerform) Hook(*Params, []byte, bool, byte)        {}
func (NopPerform) Put(byte)                                {}
func (NopPerform) Unhook()                                 {}
func (NopPerform) OscDispatch([][]byte, bool)              {}
func (NopPerform) CsiDispatch(*Params, []byte, bool, byte) {}
func (NopPerform) EscDispatch([]byte, bool, byte)          {}
