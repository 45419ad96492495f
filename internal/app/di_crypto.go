package app

import (
	"fmt"

	cryptoDomain "github.com/corpassist/secrets/internal/crypto/domain"
	cryptoService "github.com/corpassist/secrets/internal/crypto/service"
)

// KMSService returns the gocloud.dev backed KMS service.
func (c *Container) KMSService() cryptoDomain.KMSService {
	kms, _ := c.kmsService.get(func() (cryptoDomain.KMSService, error) {
		return cryptoService.NewKMSService(), nil
	})
	return kms
}

// MasterKey returns the master key from ENCRYPTION_KEY, unwrapped through KMS when
// KMS_KEY_URI is set.
func (c *Container) MasterKey() (*cryptoDomain.MasterKey, error) {
	return c.masterKey.get(func() (*cryptoDomain.MasterKey, error) {
		masterKey, err := cryptoDomain.LoadMasterKey(
			c.ctx,
			c.config.EncryptionKey,
			c.config.KMSKeyURI,
			c.KMSService(),
			c.Logger(),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to load master key: %w", err)
		}
		return masterKey, nil
	})
}

// KeyDeriver returns the PBKDF2 key deriver.
func (c *Container) KeyDeriver() (*cryptoService.PBKDF2KeyDeriver, error) {
	return c.keyDeriver.get(func() (*cryptoService.PBKDF2KeyDeriver, error) {
		return cryptoService.NewPBKDF2KeyDeriver(
			c.config.EncryptionIterations,
			c.config.EncryptionKeyLength,
		)
	})
}

// StringCipher returns the context-bound string cipher. It is built once and shared by
// every caller.
func (c *Container) StringCipher() (*cryptoService.StringCipherService, error) {
	return c.stringCipher.get(c.initStringCipher)
}

func (c *Container) initStringCipher() (*cryptoService.StringCipherService, error) {
	masterKey, err := c.MasterKey()
	if err != nil {
		return nil, err
	}

	deriver, err := c.KeyDeriver()
	if err != nil {
		return nil, fmt.Errorf("failed to create key deriver: %w", err)
	}

	cipher, err := cryptoService.NewStringCipher(masterKey, deriver, c.Logger())
	if err != nil {
		return nil, fmt.Errorf("failed to create string cipher: %w", err)
	}
	return cipher, nil
}
