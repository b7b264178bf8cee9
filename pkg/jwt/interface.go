package jwt

// Manager signs and verifies session tokens. Safe for concurrent use.
type Manager interface {
	Encode(claims Claims) (string, error)
	Decode(token string) (Claims, error)
}

// New builds an immutable Manager from cfg.
func New(cfg Config, opts ...Option) (Manager, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	m := &implManager{
		keyID:        cfg.KeyID,
		secretKey:    []byte(cfg.SecretKey),
		previousKeys: make(map[string][]byte, len(cfg.PreviousKeys)),
	}
	for kid, secret := range cfg.PreviousKeys {
		m.previousKeys[kid] = []byte(secret)
	}
	m.now = defaultClock
	for _, opt := range opts {
		opt(m)
	}
	m.parser = newParser(m.now)

	return m, nil
}
