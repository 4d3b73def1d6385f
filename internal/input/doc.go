// Package input defines the values that flow from key handling into the
// dispatcher: the dispatched Action and the numeric PrefixArg typed
// before it.
//
// # Prefix Arguments
//
// Prefix arguments follow the Emacs model:
//
//	C-u        universal argument, 4 (each further C-u multiplies by 4)
//	M-5        digit argument, 5 (further digits append: M-1 M-2 = 12)
//	M--        negative argument, -1 (or negates a value already typed)
//
// A PrefixState accumulates these across commands and hands the final
// value to the next non-prefix command with Take.
package input
