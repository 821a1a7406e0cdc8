package ports

// CredentialStore is the durable two-slot credential storage: an opaque
// bearer token and the serialized user snapshot. Implementations must write
// and clear the two slots together, never independently. Load reports an
// absent credential as two empty strings, not as an error.
type CredentialStore interface {
	Save(token, user string) error
	Load() (token, user string, err error)
	Clear() error
}
