package input

// Prefix argument commands. They accumulate into a PrefixState instead of
// consuming it.
const (
	CmdDigitArgument     = "digit-argument"
	CmdNegativeArgument  = "negative-argument"
	CmdUniversalArgument = "universal-argument"
)

// IsPrefixCommand reports whether name is one of the prefix argument
// commands.
func IsPrefixCommand(name string) bool {
	switch name {
	case CmdDigitArgument, CmdNegativeArgument, CmdUniversalArgument:
		return true
	}
	return false
}

// ApplyPrefixCommand feeds a prefix argument command into s. The digit for
// digit-argument is taken from the last key of the action. It reports
// false for any other command.
func ApplyPrefixCommand(s *PrefixState, a Action) bool {
	switch a.Name {
	case CmdDigitArgument:
		d, ok := a.LastKey().Digit()
		if !ok {
			return false
		}
		s.Digit(d)
	case CmdNegativeArgument:
		s.Negate()
	case CmdUniversalArgument:
		s.Universal()
	default:
		return false
	}
	return true
}
