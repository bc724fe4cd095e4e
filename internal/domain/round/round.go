package round

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrMalformedID is returned when a round identifier carries no positive round number.
var ErrMalformedID = errors.New("malformed round id")

// ID is the canonical round number of the competition calendar. The zero
// value means "unknown round".
type ID int

var digitsRegex = regexp.MustCompile(`\d+`)

// Parse canonicalizes the spellings found in the sources ("J1", "1",
// "Semana_J1", " j1 ", "1.0") into a round ID.
func Parse(raw string) (ID, error) {
	value := strings.ToUpper(strings.TrimSpace(raw))
	value = strings.TrimPrefix(value, "SEMANA_")
	value = strings.TrimPrefix(value, "SEMANA ")
	value = strings.TrimPrefix(value, "J")

	token := digitsRegex.FindString(value)
	if token == "" {
		return 0, fmt.Errorf("%w: %q", ErrMalformedID, raw)
	}
	n, err := strconv.Atoi(token)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedID, raw)
	}

	return ID(n), nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(raw string) ID {
	id, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return id
}

func (id ID) Valid() bool {
	return id > 0
}

func (id ID) String() string {
	if !id.Valid() {
		return ""
	}
	return "J" + strconv.Itoa(int(id))
}

// Previous returns the round played before id, or false for the first round.
func (id ID) Previous() (ID, bool) {
	if id <= 1 {
		return 0, false
	}
	return id - 1, true
}
