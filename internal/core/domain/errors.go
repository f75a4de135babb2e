package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedReference is returned when a component reference text cannot be parsed.
	ErrMalformedReference = zerr.New("malformed component reference")

	// ErrAmbiguousRequirement is returned when a name-prefix lookup matches zero or more than one requirement.
	ErrAmbiguousRequirement = zerr.New("no unique requirement match")

	// ErrMissingIdentityFile is returned when a persisted identity file cannot be read.
	ErrMissingIdentityFile = zerr.New("identity file does not exist")

	// ErrMalformedIdentityFile is returned when a canonical identity dump is missing an expected section.
	ErrMalformedIdentityFile = zerr.New("malformed identity file")

	// ErrMalformedValueLine is returned when a key=value line in a settings or options dump cannot be parsed.
	ErrMalformedValueLine = zerr.New("malformed key=value line")
)
