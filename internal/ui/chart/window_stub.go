//go:build !cgo

package chart

import (
	"errors"

	"bplog/internal/modules/measurement/dto"
)

func Available() bool {
	return false
}

type Window struct{}

func NewWindow() Window {
	return Window{}
}

func (Window) Show(dto.ListOutput) error {
	return errors.New("chart window requires cgo (build/run with CGO_ENABLED=1)")
}
