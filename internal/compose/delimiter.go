package compose

// Delimiter commands.
const (
	CmdBeginArgument = "composable-begin-argument"
	CmdEndArgument   = "composable-end-argument"
)

// Containment restricts a composed region to one side of its start.
type Containment uint8

const (
	// None keeps the whole region.
	None Containment = iota
	// Begin keeps the part before the start.
	Begin
	// End keeps the part after the start.
	End
)

// String returns the name of the containment.
func (c Containment) String() string {
	switch c {
	case Begin:
		return "begin"
	case End:
		return "end"
	default:
		return "none"
	}
}

// Clip moves both ends of the region anchor..point to the side of start
// that c keeps. Clip is idempotent.
func (c Containment) Clip(anchor, point, start int) (int, int) {
	switch c {
	case Begin:
		return min(anchor, start), min(point, start)
	case End:
		return max(anchor, start), max(point, start)
	default:
		return anchor, point
	}
}

// Discards reports whether pos lies on the side of start that c cuts
// away.
func (c Containment) Discards(pos, start int) bool {
	switch c {
	case Begin:
		return pos > start
	case End:
		return pos < start
	default:
		return false
	}
}

// IsDelimiterCommand reports whether name is one of the delimiter
// commands.
func IsDelimiterCommand(name string) bool {
	return name == CmdBeginArgument || name == CmdEndArgument
}

func containmentOf(name string) Containment {
	switch name {
	case CmdBeginArgument:
		return Begin
	case CmdEndArgument:
		return End
	default:
		return None
	}
}
