// Package validator provides composable, field-keyed validation rules with
// structured error accumulation.
//
// Rules are plain values pairing a predicate with the error to report when it
// fails; Apply runs any number of them and returns a ValidationErrors slice
// that maps cleanly onto per-field form messages.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Required("email", input.Email),
//	    validator.ValidEmail("email", input.Email),
//	    validator.MinLen("password", input.Password, 8),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range []string{"email", "password"} {
//	        for _, msg := range verrs.Get(field) {
//	            // render msg next to field
//	        }
//	    }
//	}
package validator
