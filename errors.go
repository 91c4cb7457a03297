package molfp

import (
	"errors"
	"fmt"
)

var (
	// ErrNoToolkit is returned when no toolkit binding is available, neither
	// injected via WithToolkit nor registered via toolkit.SetDefault.
	ErrNoToolkit = errors.New("no toolkit registered: inject one with WithToolkit or register a default with toolkit.SetDefault")
)

// ErrUnknownFingerprint indicates a fingerprint tag that is not in the
// registry. This is a configuration error; it is raised before any toolkit
// call is attempted.
type ErrUnknownFingerprint struct {
	Type Type
}

func (e *ErrUnknownFingerprint) Error() string {
	return fmt.Sprintf("the fingerprint %q is not available; use ListSupportedFingerprints to get a complete list of the available fingerprints", string(e.Type))
}

// ErrInvalidMolecule indicates molecule text the parser collaborator could
// not turn into a structure.
type ErrInvalidMolecule struct {
	Input string
}

func (e *ErrInvalidMolecule) Error() string {
	return fmt.Sprintf("the input molecule %q is invalid", e.Input)
}
