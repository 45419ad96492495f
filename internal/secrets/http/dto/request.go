// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	secretsDomain "github.com/corpassist/secrets/internal/secrets/domain"
	customValidation "github.com/corpassist/secrets/internal/validation"
)

// StoreSecretRequest contains the parameters for storing a new secret.
// The owner is taken from the authenticated token, never from the request body.
type StoreSecretRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	SecretType  string `json:"secret_type"`
	SecretData  string `json:"secret_data"`
}

// Validate checks if the store secret request is valid.
func (r *StoreSecretRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			customValidation.SecretName,
			validation.Length(1, 255),
		),
		validation.Field(&r.Description,
			validation.Length(0, 1024),
		),
		validation.Field(&r.SecretType,
			validation.Required,
			validation.In(secretTypeValues()...).Error("must be one of apikey, oauth-token, password"),
		),
		validation.Field(&r.SecretData, customValidation.UTF8),
	)
}

// ToCommand converts the request into a domain command owned by userID.
func (r *StoreSecretRequest) ToCommand(userID uuid.UUID) secretsDomain.StoreSecretCommand {
	return secretsDomain.StoreSecretCommand{
		UserID:      userID,
		Name:        r.Name,
		Description: r.Description,
		SecretType:  secretsDomain.SecretType(r.SecretType),
		SecretData:  r.SecretData,
	}
}

func secretTypeValues() []any {
	values := make([]any, 0, len(secretsDomain.SecretTypes))
	for _, t := range secretsDomain.SecretTypes {
		values = append(values, string(t))
	}
	return values
}
