// Package validator provides small composable validation rules.
//
// A Rule pairs a check with the error reported when it fails. Apply runs any
// number of rules and collects the failures into ValidationErrors:
//
//	err := validator.Apply(
//	    validator.RequiredString("EMAIL_TO", s.To),
//	    validator.ValidEmail("EMAIL_TO", s.To),
//	)
//	if ve := validator.ExtractValidationErrors(err); ve != nil {
//	    log.Warn("invalid settings", "fields", ve.Fields())
//	}
package validator
