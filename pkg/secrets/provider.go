package secrets

import "context"

// Provider resolves deployment secrets at startup. Concrete
// implementations (AWS, others) satisfy this.
type Provider interface {
	// GetSecret retrieves a secret by id and returns its key-value map.
	GetSecret(ctx context.Context, id string) (map[string]string, error)
}
