package main

import "errors"

// Sentinel errors
var (
	ErrGeneratorNotConfigured = errors.New("generator is not configured or not enabled")
	ErrInputNotExist          = errors.New("input file or directory does not exist")
	ErrNoInputFiles           = errors.New("no record declaration files found")
	ErrValidationFailed       = errors.New("validation failed")
)
