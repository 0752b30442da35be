package parser

const (
	// maxParams bounds the stored parameter values, sub-parameters included.
	maxParams = 16
	// maxParamValue is the clamp for one numeric parameter.
	maxParamValue = 65535
	// maxIntermediates bounds the collected intermediate bytes.
	maxIntermediates = 2
)

// Params holds the numeric parameters of a CSI or DCS sequence. Values are
// stored flat; colon-separated sub-parameters stay grouped with the
// parameter they extend, so true-color SGR like 38:2:r:g:b arrives as one
// group.
type Params struct {
	values [maxParams]uint16
	// groupLen[i] is the group length for the group starting at values[i],
	// written when the group is closed by push.
	groupLen [maxParams]uint8
	// sub-parameters in the group being assembled
	current int
	length  int
}

// Len returns the number of stored values, sub-parameters included.
func (p *Params) Len() int { return p.length }

func (p *Params) full() bool { return p.length == maxParams }

func (p *Params) clear() {
	// group lengths must not survive a clear: an open group in the next
	// sequence would otherwise be split at a stale boundary
	p.groupLen = [maxParams]uint8{}
	p.current = 0
	p.length = 0
}

// push stores a value and closes the parameter group it belongs to.
// The caller checks full() first.
func (p *Params) push(v uint16) {
	p.values[p.length] = v
	p.groupLen[p.length-p.current] = uint8(p.current + 1)
	p.current = 0
	p.length++
}

// extend stores a value as a sub-parameter of the group in progress.
// The caller checks full() first.
func (p *Params) extend(v uint16) {
	p.values[p.length] = v
	p.current++
	p.length++
}

// ForEach calls fn once per parameter, passing the parameter together with
// its sub-parameters as one slice. The slice aliases internal storage and
// is only valid during the call.
func (p *Params) ForEach(fn func(group []uint16)) {
	for i := 0; i < p.length; {
		n := int(p.groupLen[i])
		// a group left open by overflow runs to the end of the storage
		if n == 0 || i+n > p.length {
			n = p.length - i
		}
		fn(p.values[i : i+n])
		i += n
	}
}

// All returns a copy of every parameter group.
func (p *Params) All() [][]uint16 {
	var groups [][]uint16
	p.ForEach(func(group []uint16) {
		g := make([]uint16, len(group))
		copy(g, group)
		groups = append(groups, g)
	})
	return groups
}
