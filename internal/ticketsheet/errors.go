package ticketsheet

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	CodeUnsupportedTemplateType ErrorCode = "UnsupportedTemplateType"
	CodeTemplateDecode          ErrorCode = "TemplateDecodeError"
	CodeInvalidBarcodePlacement ErrorCode = "InvalidBarcodePlacement"
	CodeEmptyBatch              ErrorCode = "EmptyBatch"
	CodeBatchTooLarge           ErrorCode = "BatchTooLarge"
	CodeTicketRender            ErrorCode = "TicketRenderError"
	CodeBatchTimeout            ErrorCode = "BatchTimeout"
)

// Error is the single error type returned by the ticket sheet pipeline.
// Fields carries the offending values so callers can echo them back to the client.
type Error struct {
	Code     ErrorCode
	Message  string
	Token    string
	Fields   map[string]int
	Internal bool
	Err      error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Token != "" {
		msg += fmt.Sprintf(" (token %s)", e.Token)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on Code so errors.Is(err, &Error{Code: CodeEmptyBatch}) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// IsValidation reports whether the error was caused by client input.
func (e *Error) IsValidation() bool {
	switch e.Code {
	case CodeUnsupportedTemplateType, CodeInvalidBarcodePlacement, CodeEmptyBatch, CodeBatchTooLarge:
		return true
	case CodeTemplateDecode:
		return !e.Internal
	}
	return false
}

// CodeOf returns the pipeline code carried by err, or "" if err is not a pipeline error.
func CodeOf(err error) ErrorCode {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ""
}

func unsupportedTemplate(name, mime string) *Error {
	return &Error{
		Code:    CodeUnsupportedTemplateType,
		Message: fmt.Sprintf("template %q with type %q is not PNG or JPEG", name, mime),
	}
}

func templateDecodeError(msg string, internal bool, err error) *Error {
	return &Error{Code: CodeTemplateDecode, Message: msg, Internal: internal, Err: err}
}

func invalidPlacement(msg string, fields map[string]int) *Error {
	return &Error{Code: CodeInvalidBarcodePlacement, Message: msg, Fields: fields}
}

func renderError(token string, err error) *Error {
	return &Error{Code: CodeTicketRender, Message: "failed to render ticket", Token: token, Internal: true, Err: err}
}
