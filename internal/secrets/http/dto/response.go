// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	secretsDomain "github.com/corpassist/secrets/internal/secrets/domain"
)

// SecretResponse represents secret metadata in API responses. It never carries the value.
type SecretResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	SecretType  string    `json:"secret_type"`
	CreatedAt   time.Time `json:"created_at"`
}

// RevealedSecretResponse represents a decrypted secret.
// SECURITY: SecretData is plaintext. Must be transmitted over HTTPS in production.
type RevealedSecretResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	SecretType  string `json:"secret_type"`
	SecretData  string `json:"secret_data"`
}

// ListSecretsResponse represents a paginated list of secrets in API responses.
type ListSecretsResponse struct {
	Data []SecretResponse `json:"data"`
}

// MapSecretReferenceToResponse converts a secret reference to an API response.
func MapSecretReferenceToResponse(ref *secretsDomain.SecretReference) SecretResponse {
	return SecretResponse{
		ID:          ref.ID.String(),
		Name:        ref.Name,
		Description: ref.Description,
		SecretType:  ref.SecretType.String(),
		CreatedAt:   ref.CreatedAt,
	}
}

// MapSecretRevealedToResponse converts a revealed secret to an API response.
func MapSecretRevealedToResponse(secret *secretsDomain.SecretRevealed) RevealedSecretResponse {
	return RevealedSecretResponse{
		ID:          secret.ID.String(),
		Name:        secret.Name,
		Description: secret.Description,
		SecretType:  secret.SecretType.String(),
		SecretData:  secret.SecretData,
	}
}

// MapSecretReferencesToListResponse converts secret references to a list response.
func MapSecretReferencesToListResponse(refs []*secretsDomain.SecretReference) ListSecretsResponse {
	data := make([]SecretResponse, 0, len(refs))
	for _, ref := range refs {
		data = append(data, MapSecretReferenceToResponse(ref))
	}

	return ListSecretsResponse{
		Data: data,
	}
}
