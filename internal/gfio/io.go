/*
Package gfio opens commandline input and output files, treating the
literal values "stdin" and "stdout" as the standard streams and
decorating open errors with the flag they came from
*/
package gfio

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/pflag"
)

func flagString(flag pflag.Flag) string {
	if flag.Shorthand == "" {
		return "--" + flag.Name
	}
	return "-" + flag.Shorthand + " / --" + flag.Name
}

func decorate(err error, flagString string) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return errors.New(pe.Op + " " + flagString + " " + pe.Path + ": " + pe.Err.Error())
	}
	return err
}

// OpenIn opens the file named by flag for reading, or stdin
func OpenIn(flag pflag.Flag) (*os.File, error) {
	name := flag.Value.String()
	if name == "stdin" {
		return os.Stdin, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, decorate(err, flagString(flag))
	}
	return f, nil
}

// OpenOut creates the file named by flag for writing, or stdout
func OpenOut(flag pflag.Flag) (*os.File, error) {
	name := flag.Value.String()
	if name == "stdout" {
		return os.Stdout, nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, decorate(err, flagString(flag))
	}
	return f, nil
}
