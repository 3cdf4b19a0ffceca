package lead

import (
	"regexp"
	"strings"
)

// FieldErrors maps field names to user-facing validation messages.
type FieldErrors map[string]string

var (
	// one-or-more non-whitespace, @, domain with a dot segment
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	// optional leading +, then digits, spaces and hyphens
	phonePattern = regexp.MustCompile(`^\+?[0-9 \-]+$`)
)

const minPhoneLength = 10

// Validate applies the form rules. An empty map means the submission may
// proceed; a non-empty map blocks it before any dispatch happens.
func (s Submission) Validate() FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(s.Name) == "" {
		errs["name"] = "Name is required"
	}

	switch {
	case strings.TrimSpace(s.Email) == "":
		errs["email"] = "Email is required"
	case !emailPattern.MatchString(s.Email):
		errs["email"] = "Please enter a valid email address"
	}

	switch {
	case strings.TrimSpace(s.Phone) == "":
		errs["phone"] = "Phone number is required"
	case len(s.Phone) < minPhoneLength || !phonePattern.MatchString(s.Phone):
		errs["phone"] = "Please enter a valid phone number"
	}

	if s.Kind.RequiresResume() && strings.TrimSpace(s.Extra("resume")) == "" {
		errs["resume"] = "Please upload your resume"
	}

	return errs
}
