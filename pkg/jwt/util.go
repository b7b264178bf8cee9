package jwt

import "fmt"

func validateConfig(cfg Config) error {
	if len(cfg.SecretKey) < MinSecretKeyLen {
		return fmt.Errorf("jwt: secret key must be at least %d characters long, got %d", MinSecretKeyLen, len(cfg.SecretKey))
	}
	for kid, secret := range cfg.PreviousKeys {
		if kid == "" {
			return fmt.Errorf("jwt: previous key has an empty key id")
		}
		if kid == cfg.KeyID {
			return fmt.Errorf("jwt: previous key id %q collides with the current key id", kid)
		}
		if len(secret) < MinSecretKeyLen {
			return fmt.Errorf("jwt: previous key %q must be at least %d characters long, got %d", kid, MinSecretKeyLen, len(secret))
		}
	}
	return nil
}
