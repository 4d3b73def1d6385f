package motion

import (
	"github.com/dshills/composable/internal/dispatcher/execctx"
	"github.com/dshills/composable/internal/dispatcher/handler"
	"github.com/dshills/composable/internal/engine"
	"github.com/dshills/composable/internal/input"
)

// Command names.
const (
	ForwardChar          = "forward-char"
	BackwardChar         = "backward-char"
	ForwardWord          = "forward-word"
	BackwardWord         = "backward-word"
	NextLine             = "next-line"
	PreviousLine         = "previous-line"
	EndOfLine            = "end-of-line"
	BeginningOfLine      = "beginning-of-line"
	BackToIndentation    = "back-to-indentation"
	ForwardParagraph     = "forward-paragraph"
	BackwardParagraph    = "backward-paragraph"
	ForwardSentence      = "forward-sentence"
	BackwardSentence     = "backward-sentence"
	ForwardSexp          = "forward-sexp"
	BackwardSexp         = "backward-sexp"
	BeginningOfBuffer    = "beginning-of-buffer"
	EndOfBuffer          = "end-of-buffer"
	MarkLine             = "mark-line"
	MarkWord             = "mark-word"
	MarkParagraph        = "mark-paragraph"
	MarkSymbol           = "mark-symbol"
	MarkURL              = "mark-url"
	ExpandRegion         = "expand-region"
	SetMarkCommand       = "set-mark-command"
	ExchangePointAndMark = "exchange-point-and-mark"
	KeyboardQuit         = "keyboard-quit"
)

// Func is a motion applied to an engine.
type Func func(e *engine.Engine, arg input.PrefixArg) error

// Motion is a named motion command.
type Motion struct {
	Name        string
	Description string
	Run         Func
}

// Builtin returns every motion and marking command.
func Builtin() []Motion {
	return []Motion{
		{ForwardChar, "Move point forward ARG characters", goTo(forwardChar)},
		{BackwardChar, "Move point backward ARG characters", goTo(backward(forwardChar))},
		{ForwardWord, "Move point forward ARG words", goTo(forwardWord)},
		{BackwardWord, "Move point backward ARG words", goTo(backward(forwardWord))},
		{NextLine, "Move point down ARG lines", goTo(nextLine)},
		{PreviousLine, "Move point up ARG lines", goTo(backward(nextLine))},
		{EndOfLine, "Move point to the end of the line", goTo(endOfLine)},
		{BeginningOfLine, "Move point to the beginning of the line", goTo(beginningOfLine)},
		{BackToIndentation, "Move point to the first non-blank character of the line", goTo(backToIndentation)},
		{ForwardParagraph, "Move point forward ARG paragraphs", goTo(forwardParagraph)},
		{BackwardParagraph, "Move point backward ARG paragraphs", goTo(backward(forwardParagraph))},
		{ForwardSentence, "Move point forward ARG sentences", goTo(forwardSentence)},
		{BackwardSentence, "Move point backward ARG sentences", goTo(backward(forwardSentence))},
		{ForwardSexp, "Move point forward ARG balanced expressions", goToErr(forwardSexp)},
		{BackwardSexp, "Move point backward ARG balanced expressions", goToErr(backwardErr(forwardSexp))},
		{BeginningOfBuffer, "Move point to the beginning of the buffer", beginningOfBuffer},
		{EndOfBuffer, "Move point to the end of the buffer", endOfBuffer},
		{MarkLine, "Mark ARG whole lines", markLine},
		{MarkWord, "Set the mark ARG words away", markWord},
		{MarkParagraph, "Mark ARG paragraphs", markParagraph},
		{MarkSymbol, "Mark the symbol at point", markSymbol},
		{MarkURL, "Mark the URL at point", markURL},
		{ExpandRegion, "Expand the region to the next enclosing unit", expandRegion},
		{SetMarkCommand, "Set the mark at point, or pop the mark with C-u", setMarkCommand},
		{ExchangePointAndMark, "Swap point and mark", exchangePointAndMark},
		{KeyboardQuit, "Deactivate the mark", keyboardQuit},
	}
}

// Registrar is the part of the dispatcher used to install commands.
type Registrar interface {
	RegisterFunc(name, description string, fn handler.Func)
}

// Register installs every builtin motion as a command acting on e.
func Register(r Registrar, e *engine.Engine) {
	for _, m := range Builtin() {
		r.RegisterFunc(m.Name, m.Description, Handler(e, m.Run))
	}
}

// Handler adapts a motion to a command handler.
func Handler(e *engine.Engine, fn Func) handler.Func {
	return func(a input.Action, _ *execctx.ExecutionContext) handler.Result {
		if err := fn(e, a.Arg); err != nil {
			return handler.Error(err)
		}
		return handler.Success()
	}
}

// position computes a new point from text, point and a signed count.
type position func(text []rune, pos, n int) int

func goTo(p position) Func {
	return func(e *engine.Engine, arg input.PrefixArg) error {
		e.SetPoint(p(e.Buffer().Runes(), e.Point(), arg.Int()))
		return nil
	}
}

func goToErr(p func(text []rune, pos, n int) (int, error)) Func {
	return func(e *engine.Engine, arg input.PrefixArg) error {
		pos, err := p(e.Buffer().Runes(), e.Point(), arg.Int())
		if err != nil {
			return err
		}
		e.SetPoint(pos)
		return nil
	}
}

// backward negates the count of a forward position.
func backward(p position) position {
	return func(text []rune, pos, n int) int {
		return p(text, pos, -n)
	}
}

func backwardErr(p func(text []rune, pos, n int) (int, error)) func(text []rune, pos, n int) (int, error) {
	return func(text []rune, pos, n int) (int, error) {
		return p(text, pos, -n)
	}
}

// markSpan selects sp: point at the start and mark at the end when
// forward, the other way round otherwise.
func markSpan(e *engine.Engine, sp span, forward bool) {
	if forward {
		e.SetPoint(sp.Start)
		e.SetMark(sp.End)
		return
	}
	e.SetPoint(sp.End)
	e.SetMark(sp.Start)
}

func forwardChar(text []rune, pos, n int) int {
	return clamp(text, pos+n)
}
