// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package contentplan

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	httpScheme   = regexp.MustCompile(`(?i)^https?://`)
	charsDisplay = regexp.MustCompile(`^(\d+)(?:\s*\(\s*(\d+)\s*\))?$`)
	firstNumber  = regexp.MustCompile(`\d+`)
)

// NormalizeURL trims s and prefixes "https://" when no http(s) scheme is
// present. Blank input yields nil.
func NormalizeURL(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if httpScheme.MatchString(s) {
		return &s
	}

	out := "https://" + s
	return &out
}

// CharsDisplay is a character count as typed by an editor together with the
// text it was typed as, e.g. "1000 (1250)" for "recommended (actual)".
type CharsDisplay struct {
	// Value is the first number of the input, nil when there is none.
	Value *int
	// Display is the trimmed input, kept verbatim.
	Display string
}

// ParseCharsDisplay reads "<n>" or "<n> (<m>)". Anything else keeps the
// text and takes the first run of digits found anywhere as the value.
func ParseCharsDisplay(s string) CharsDisplay {
	s = strings.TrimSpace(s)
	if s == "" {
		return CharsDisplay{}
	}

	if m := charsDisplay.FindStringSubmatch(s); m != nil {
		return CharsDisplay{Value: atoiPtr(m[1]), Display: s}
	}

	return CharsDisplay{Value: atoiPtr(firstNumber.FindString(s)), Display: s}
}

func atoiPtr(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}
