package dating

import (
	"reflect"
	"strings"

	"github.com/iancoleman/strcase"
	"gorm.io/gorm/schema"
)

// Names already taken on the target type, mapped to a short description of the owner.
//
// Methods of *T (promoted ones included) take their Go name and its snake_case, SetXxx methods also
// take the setter name "xxx=". Fields take their Go name and column name for both reading and writing.
func memberNames(typ reflect.Type, sch *schema.Schema) map[string]string {
	members := map[string]string{}
	mt := reflect.PointerTo(typ)
	for i := 0; i < mt.NumMethod(); i++ {
		m := mt.Method(i)
		owner := "method " + m.Name
		members[m.Name] = owner
		members[strcase.ToSnake(m.Name)] = owner
		if rest, ok := strings.CutPrefix(m.Name, "Set"); ok && rest != "" {
			members[SetterName(strcase.ToSnake(rest))] = owner
		}
	}

	addField := func(owner string, names ...string) {
		for _, n := range names {
			if n == "" {
				continue
			}
			if _, ok := members[n]; !ok {
				members[n] = owner
			}
			if _, ok := members[SetterName(n)]; !ok {
				members[SetterName(n)] = owner
			}
		}
	}
	for _, sf := range reflect.VisibleFields(typ) {
		if !sf.IsExported() {
			continue
		}
		addField("field "+sf.Name, sf.Name, namingSchema.ColumnName("", sf.Name))
	}
	if sch != nil {
		for _, f := range sch.Fields {
			addField("field "+f.Name, f.Name, f.DBName)
		}
	}
	return members
}

// Check the accessor names of the attribute, and their Go method spellings, against existing members,
// registered accessors and names claimed earlier in the same batch.
func checkCollision(attr string, names AccessorNames, taken func(name string) (string, bool)) error {
	for _, n := range []string{names.Getter, names.Setter, names.GoGetter(), names.GoSetter()} {
		if owner, ok := taken(n); ok {
			return ErrMethodOverwrite.WithInternalMsg("would overwrite method '%v' for attribute '%v', already defined by %v", n, attr, owner)
		}
	}
	return nil
}
