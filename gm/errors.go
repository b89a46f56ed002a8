package gm

import "fmt"

// UnknownProgramError is returned for program identifiers missing from the
// reference tables. Value is -1 when the lookup was by Name.
type UnknownProgramError struct {
	Kind  string
	Name  string
	Value int
}

func (e *UnknownProgramError) Error() string {
	if e.Value < 0 {
		return fmt.Sprintf("unknown %s program %q", e.Kind, e.Name)
	}
	return fmt.Sprintf("unknown %s program %d", e.Kind, e.Value)
}
