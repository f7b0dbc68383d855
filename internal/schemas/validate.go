package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates the schema violations found in one payload.
type ValidationError struct {
	Payload string
	Errors  []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("unexpected %s payload shape:\n", ve.Payload))
	for _, fe := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  - %s: %s\n", fe.Field, fe.Message))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// ValidateJobOffers checks a raw job-offer collection payload.
func ValidateJobOffers(data []byte) error {
	return validate("job offers", jobOffersSchema, data)
}

// ValidateJobApplications checks a raw job-application collection payload.
func ValidateJobApplications(data []byte) error {
	return validate("job applications", jobApplicationsSchema, data)
}

// ValidateCompanies checks a raw company collection payload.
func ValidateCompanies(data []byte) error {
	return validate("companies", companiesSchema, data)
}

func validate(payload, schema string, data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return &ValidationError{
			Payload: payload,
			Errors:  []FieldError{{Field: "(document)", Message: err.Error()}},
		}
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{Payload: payload}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
