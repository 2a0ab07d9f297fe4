package main

import "errors"

var (
	errNameRequired   = errors.New("name is required for create command")
	errUnknownCommand = errors.New("unknown command")
)
