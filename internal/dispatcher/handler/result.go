package handler

import "fmt"

// ResultStatus is the outcome of a command.
type ResultStatus uint8

const (
	StatusOK ResultStatus = iota
	// StatusNoOp means the command ran but changed nothing, like a save
	// with no modifications.
	StatusNoOp
	StatusError
	// StatusCancelled means a pre-dispatch hook took the command over.
	StatusCancelled
)

var statusNames = [...]string{
	StatusOK:        "ok",
	StatusNoOp:      "no-op",
	StatusError:     "error",
	StatusCancelled: "cancelled",
}

func (s ResultStatus) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// Result is what a command reports back to the session.
type Result struct {
	Status ResultStatus
	Error  error

	// Message goes to the status line.
	Message string

	// Quit ends the session once the command returns.
	Quit bool
}

func (r Result) IsOK() bool    { return r.Status == StatusOK }
func (r Result) IsError() bool { return r.Status == StatusError }

// Display returns the status line text for r and whether it is an error.
// A result with nothing to say returns "".
func (r Result) Display() (string, bool) {
	if r.Status == StatusError && r.Error != nil {
		return r.Error.Error(), true
	}
	return r.Message, r.Status == StatusError
}

func Success() Result { return Result{Status: StatusOK} }

func SuccessWithMessage(msg string) Result {
	return Result{Status: StatusOK, Message: msg}
}

func NoOp() Result { return Result{Status: StatusNoOp} }

func NoOpWithMessage(msg string) Result {
	return Result{Status: StatusNoOp, Message: msg}
}

// Error reports err. Its text becomes the message.
func Error(err error) Result {
	return Result{Status: StatusError, Error: err, Message: err.Error()}
}

func Errorf(format string, args ...any) Result {
	return Error(fmt.Errorf(format, args...))
}

func Cancelled() Result { return Result{Status: StatusCancelled} }

func CancelledWithMessage(msg string) Result {
	return Result{Status: StatusCancelled, Message: msg}
}

// QuitResult ends the session after a successful command.
func QuitResult() Result {
	return Result{Status: StatusOK, Quit: true}
}
