package adapter

// PasswordService hashes and verifies user passwords.
type PasswordService interface {
	HashPassword(password string) (string, error)

	// VerifyPassword returns an error when password does not match hashedPassword.
	VerifyPassword(hashedPassword, password string) error

	// ValidatePasswordStrength returns domainerror.ErrWeakPassword for passwords
	// that do not meet the minimum requirements.
	ValidatePasswordStrength(password string) error
}
