package service

// PasswordHasher abstracts credential hashing for the mock identity roster.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash.
	Check(password, hash string) bool

	// ValidatePasswordStrength rejects passwords that do not meet the
	// configured minimum requirements.
	ValidatePasswordStrength(password string) error
}
