package dating

import (
	"github.com/curtisnewbie/dating/catalog"
	"github.com/curtisnewbie/dating/util/errs"
)

var (
	ErrInvalidOptions   = errs.NewErrfCode(errs.ErrCodeInvalidOptions, "Invalid Options")
	ErrMethodOverwrite  = errs.NewErrfCode(errs.ErrCodeMethodOverwrite, "Method Overwrite")
	ErrUnknownAttribute = errs.NewErrfCode(errs.ErrCodeUnknownAttribute, "Unknown Attribute")
	ErrUnknownAccessor  = errs.NewErrfCode(errs.ErrCodeUnknownAccessor, "Unknown Accessor")
	ErrUnsupportedValue = errs.NewErrfCode(errs.ErrCodeUnsupportedValue, "Unsupported Value")
	ErrParse            = errs.NewErrfCode(errs.ErrCodeParseError, "Parse Error")

	// Format key has no pattern in the catalog, returned by conversions.
	ErrMissingFormat = catalog.ErrMissingFormat
)
