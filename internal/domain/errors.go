package domain

import (
	"errors"
	"fmt"
)

// Erros da reconciliação do brief
var (
	// Não fatais: viram findings e status Unresolved/Ambiguous
	ErrRegionNotFound = errors.New("region not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrCheckerFailure = errors.New("checker failure")

	// Fatal: interrompe a execução
	ErrMalformedInput = errors.New("malformed input")
)

// BriefError é um erro com o contexto da região e do campo envolvidos
type BriefError struct {
	Err     error  // Erro base
	Region  string // Região ou lista de origem (TARGET, PLACEMENT, platform_entities)
	Field   string // Campo envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

func (e *BriefError) Error() string {
	msg := e.Err.Error()
	if e.Region != "" {
		msg = fmt.Sprintf("%s: region %s", msg, e.Region)
	}
	if e.Field != "" {
		msg = fmt.Sprintf("%s field %s", msg, e.Field)
	}
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	return msg
}

func (e *BriefError) Unwrap() error {
	return e.Err
}

// NewMalformedInputError cria o erro fatal de entrada malformada
func NewMalformedInputError(region, field, details string) *BriefError {
	return &BriefError{
		Err:     ErrMalformedInput,
		Region:  region,
		Field:   field,
		Details: details,
	}
}

// IsFatal indica se o erro deve interromper o pipeline
func IsFatal(err error) bool {
	return errors.Is(err, ErrMalformedInput)
}
