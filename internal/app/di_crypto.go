package app

import (
	"fmt"

	cryptoDomain "github.com/allisson/hdrivault/internal/crypto/domain"
	cryptoService "github.com/allisson/hdrivault/internal/crypto/service"
)

// KeySource returns the application key source selected by configuration.
// A configured KMS keeper URI takes precedence over a plain APP_KEY.
func (c *Container) KeySource() cryptoService.KeySource {
	c.keySourceInit.Do(func() {
		cfg := c.config
		if cfg.KMSKeyURI != "" {
			c.keySource = cryptoService.NewKMSKeySource(cfg.AppKeyID, cfg.KMSKeyURI, cfg.WrappedAppKey)
			return
		}
		c.keySource = cryptoService.NewEncodedKeySource(cfg.AppKeyID, cfg.AppKey)
	})
	return c.keySource
}

// KeyProvider returns the application key provider.
func (c *Container) KeyProvider() cryptoService.KeyProvider {
	c.keyProviderInit.Do(func() {
		c.keyProvider = cryptoService.NewKeyProvider(c.KeySource())
	})
	return c.keyProvider
}

// AEADManager returns the AEAD manager service.
func (c *Container) AEADManager() cryptoService.AEADManager {
	c.aeadManagerInit.Do(func() {
		c.aeadManager = cryptoService.NewAEADManager()
	})
	return c.aeadManager
}

// EnvelopeCipher returns the envelope cipher service.
func (c *Container) EnvelopeCipher() (cryptoService.EnvelopeCipher, error) {
	var err error
	c.envelopeCipherInit.Do(func() {
		alg := cryptoDomain.Algorithm(c.config.EncryptionAlgorithm)
		switch alg {
		case cryptoDomain.AESGCM, cryptoDomain.ChaCha20:
		default:
			err = fmt.Errorf("%w: %q", cryptoDomain.ErrUnsupportedAlgorithm, c.config.EncryptionAlgorithm)
			c.initErrors["envelopeCipher"] = err
			return
		}
		c.envelopeCipher = cryptoService.NewEnvelopeCipher(c.KeyProvider(), c.AEADManager(), alg)
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["envelopeCipher"]; exists {
		return nil, storedErr
	}
	return c.envelopeCipher, nil
}
