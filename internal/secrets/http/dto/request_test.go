package dto

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	secretsDomain "github.com/corpassist/secrets/internal/secrets/domain"
)

func validRequest() StoreSecretRequest {
	return StoreSecretRequest{
		Name:        "github-ci",
		Description: "CI deploy key",
		SecretType:  "apikey",
		SecretData:  "ghp_example",
	}
}

func TestStoreSecretRequest_Validate(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		req := validRequest()
		assert.NoError(t, req.Validate())
	})

	t.Run("Success_AllSecretTypes", func(t *testing.T) {
		for _, secretType := range []string{"apikey", "oauth-token", "password"} {
			req := validRequest()
			req.SecretType = secretType
			assert.NoError(t, req.Validate(), secretType)
		}
	})

	t.Run("Success_EmptyDescription", func(t *testing.T) {
		req := validRequest()
		req.Description = ""
		assert.NoError(t, req.Validate())
	})

	t.Run("Error_EmptyName", func(t *testing.T) {
		req := validRequest()
		req.Name = ""
		err := req.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("Error_InvalidName", func(t *testing.T) {
		req := validRequest()
		req.Name = "has spaces"
		err := req.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("Error_NameTooLong", func(t *testing.T) {
		req := validRequest()
		req.Name = strings.Repeat("a", 256)
		assert.Error(t, req.Validate())
	})

	t.Run("Error_UnknownSecretType", func(t *testing.T) {
		req := validRequest()
		req.SecretType = "certificate"
		err := req.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "secret_type")
	})

	t.Run("Success_EmptySecretData", func(t *testing.T) {
		req := validRequest()
		req.SecretData = ""
		assert.NoError(t, req.Validate())
	})

	t.Run("Error_InvalidUTF8SecretData", func(t *testing.T) {
		req := validRequest()
		req.SecretData = string([]byte{0xff})
		err := req.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "secret_data")
	})

	t.Run("Error_DescriptionTooLong", func(t *testing.T) {
		req := validRequest()
		req.Description = strings.Repeat("d", 1025)
		assert.Error(t, req.Validate())
	})
}

func TestStoreSecretRequest_ToCommand(t *testing.T) {
	userID := uuid.Must(uuid.NewV7())
	req := validRequest()

	cmd := req.ToCommand(userID)

	assert.Equal(t, userID, cmd.UserID)
	assert.Equal(t, "github-ci", cmd.Name)
	assert.Equal(t, "CI deploy key", cmd.Description)
	assert.Equal(t, secretsDomain.SecretTypeAPIKey, cmd.SecretType)
	assert.Equal(t, "ghp_example", cmd.SecretData)
}
