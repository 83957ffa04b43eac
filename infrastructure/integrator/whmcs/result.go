package whmcs

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/whmcs/whmcsclient"
)

// FailureReason classifica a falha de uma chamada ao WHMCS
type FailureReason string

const (
	FailureTransport     FailureReason = "transport"
	FailureAPI           FailureReason = "api"
	FailureDecode        FailureReason = "decode"
	FailureNotConfigured FailureReason = "not_configured"
)

// Failure descreve por que uma busca não trouxe dados
type Failure struct {
	Reason FailureReason
	Err    error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %v", f.Reason, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Result carrega os registros normalizados ou a falha que os substituiu.
// Records nunca é nil, então quem consome pode tratar falha como lista vazia.
type Result[T any] struct {
	records []T
	failure *Failure
}

// Success cria um resultado com registros
func Success[T any](records []T) Result[T] {
	if records == nil {
		records = []T{}
	}
	return Result[T]{records: records}
}

// Failed cria um resultado vazio marcado com a falha
func Failed[T any](err error) Result[T] {
	return Result[T]{
		records: []T{},
		failure: &Failure{Reason: classify(err), Err: err},
	}
}

// Records retorna os registros, vazio em caso de falha
func (r Result[T]) Records() []T {
	if r.records == nil {
		return []T{}
	}
	return r.records
}

func (r Result[T]) Failed() bool {
	return r.failure != nil
}

// Failure retorna a falha, ou nil em caso de sucesso
func (r Result[T]) Failure() *Failure {
	return r.failure
}

// Err retorna a falha como error, ou nil
func (r Result[T]) Err() error {
	if r.failure == nil {
		return nil
	}
	return r.failure
}

func classify(err error) FailureReason {
	var apiErr *whmcsclient.APIError
	var decodeErr *whmcsclient.DecodeError

	switch {
	case errors.Is(err, whmcsclient.ErrNotConfigured):
		return FailureNotConfigured
	case errors.As(err, &apiErr):
		return FailureAPI
	case errors.As(err, &decodeErr):
		return FailureDecode
	default:
		return FailureTransport
	}
}
