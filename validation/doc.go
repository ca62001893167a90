// Package validation validates configuration structs for seqkit binaries.
//
// It supports struct tag validation (using the validator library) and
// programmatic checks with error collection. Both report failures as
// *errors.AppError with per-field details.
//
// # Struct Tag Validation
//
//	type Samples struct {
//	    Evens []int `mapstructure:"evens" validate:"required,min=1"`
//	}
//	err := validation.Validate(samples)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Check(endpoint != "", "telemetry.endpoint", "is required when telemetry is enabled")
//	err := v.Error()
package validation
