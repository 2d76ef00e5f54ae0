package dating

import (
	"strings"

	"github.com/iancoleman/strcase"
)

const setterSuffix = "="

// Getter and setter names of a text accessor.
type AccessorNames struct {
	Getter string // e.g., "born_on_as_text"
	Setter string // e.g., "born_on_as_text="
}

// Go method name equivalent to the getter, e.g., "BornOnAsText".
func (n AccessorNames) GoGetter() string {
	return strcase.ToCamel(n.Getter)
}

// Go method name equivalent to the setter, e.g., "SetBornOnAsText".
func (n AccessorNames) GoSetter() string {
	return "Set" + n.GoGetter()
}

// Setter name derived from getter name.
func SetterName(getter string) string {
	return getter + setterSuffix
}

func isSetterName(name string) bool {
	return strings.HasSuffix(name, setterSuffix)
}

// Check options against the number of attributes registered in the same call.
func ValidateOptions(o FormatOptions, batchSize int) error {
	if o.Name != "" && batchSize > 1 {
		return ErrInvalidOptions.WithInternalMsg("multiple attributes cannot be wrapped with an explicitly named method '%v'", o.Name)
	}
	return nil
}

// Resolve accessor names of the attribute.
func ResolveNames(attribute string, o FormatOptions, batchSize int) (AccessorNames, error) {
	if err := ValidateOptions(o, batchSize); err != nil {
		return AccessorNames{}, err
	}
	getter := o.Name
	if getter == "" {
		getter = attribute + "_" + o.ResolvedEnding()
	}
	return AccessorNames{Getter: getter, Setter: SetterName(getter)}, nil
}
