package command

import "fmt"

// DuplicateNameError is returned when a command name is registered twice.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("command %q already registered", e.Name)
}

// NotFoundError is returned when resolving a name nobody registered.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("command %q not registered", e.Name)
}

// InvalidNameError is returned for a name Telegram would not accept as a command.
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid command name %q", e.Name)
}
