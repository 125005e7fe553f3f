package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	runIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	runIDLength   = 10
)

// NewRunID gera o identificador curto que acompanha os logs de uma execução agendada
func NewRunID() string {
	id, err := gonanoid.Generate(runIDAlphabet, runIDLength)
	if err != nil {
		return "-"
	}
	return id
}
