package detail

import "errors"

// Descriptor pairs a [Value] with the name and type of the constant it is
// emitted as.
type Descriptor struct {
	Name  string
	Type  Type
	Value Value
}

// RenderRequired returns the declaration of the constant holding the bare
// value. A missing value is reported as [MissingDetail] naming the constant;
// other errors are returned unchanged.
func (d Descriptor) RenderRequired(s Syntax) (string, error) {
	lit, err := d.Value.Required(s)
	if err != nil {
		if errors.Is(err, ErrMissing) {
			return "", MissingDetail(d.Name)
		}

		return "", err
	}

	return s.Declare(d.Name, d.Type, lit), nil
}

// RenderOptional returns the declaration of the constant holding the
// presence-wrapped value.
func (d Descriptor) RenderOptional(s Syntax) (string, error) {
	lit, err := d.Value.Optional(s)
	if err != nil {
		return "", err
	}

	return s.DeclareOptional(d.Name, d.Type, lit), nil
}
