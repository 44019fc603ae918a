// Package iojson holds utilities for reading and writing JSON from a
// command line interface perspective.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// WriteLine marshals obj as a single compact JSON line. Used by list
// commands so their output can be piped into jq and friends.
func WriteLine(w io.Writer, obj any) error {
	bits, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}

// Write marshals obj with indentation when stdout is a terminal and as a
// compact line otherwise, so interactive use stays readable and piped use
// stays machine-friendly.
func Write(w io.Writer, obj any) error {
	if !StdoutIsTerminal() {
		return WriteLine(w, obj)
	}

	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}

// StdoutIsTerminal reports whether stdout is attached to a terminal.
func StdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
