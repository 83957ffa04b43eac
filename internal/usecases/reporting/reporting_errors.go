package reporting

import (
	"errors"
	"fmt"
)

// Erros específicos do contexto de relatórios
var (
	// Erros de validação
	ErrInvalidClientID = errors.New("client ID must be a positive integer")

	// Erros de agregação
	ErrRefreshAborted = errors.New("sales snapshot refresh aborted")
)

// ReportError é um erro com o código exposto pela API
type ReportError struct {
	Err     error
	Code    string
	Details string
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(err error, code string, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
