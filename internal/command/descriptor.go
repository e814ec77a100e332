package command

import "regexp"

// Telegram accepts 1-32 characters of lowercase latin letters, digits and underscores.
var nameRe = regexp.MustCompile(`^[a-z0-9_]{1,32}$`)

// Descriptor identifies one invocable command. It cannot be changed after construction.
type Descriptor struct {
	name        string
	description string
}

// NewDescriptor validates name and returns a descriptor for it.
func NewDescriptor(name, description string) (Descriptor, error) {
	if !nameRe.MatchString(name) {
		return Descriptor{}, &InvalidNameError{Name: name}
	}
	return Descriptor{name: name, description: description}, nil
}

// MustDescriptor is like NewDescriptor but panics on an invalid name.
// Intended for package-level command tables.
func MustDescriptor(name, description string) Descriptor {
	d, err := NewDescriptor(name, description)
	if err != nil {
		panic(err)
	}
	return d
}

// Name is the command token without the leading slash.
func (d Descriptor) Name() string { return d.name }

// Description is the text shown next to the command in the menu.
func (d Descriptor) Description() string { return d.description }
