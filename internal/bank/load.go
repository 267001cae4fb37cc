package bank

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed questions.json
var builtinRaw []byte

// Parse validates raw JSON against the bank schema and builds a Bank.
func Parse(raw []byte) (*Bank, error) {
	if err := validateRaw(raw); err != nil {
		return nil, err
	}
	var questions []Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, fmt.Errorf("decode bank: %w", err)
	}
	return New(questions)
}

// Load reads and parses a bank file from disk.
func Load(path string) (*Bank, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}
	b, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("bank file %s: %w", path, err)
	}
	return b, nil
}

// Builtin returns the bank embedded in the binary.
func Builtin() (*Bank, error) {
	b, err := Parse(builtinRaw)
	if err != nil {
		return nil, fmt.Errorf("builtin bank: %w", err)
	}
	return b, nil
}
