package models

// Identity is the client-submitted login payload carried inside a session
// token. It is never persisted.
type Identity map[string]interface{}

// Email returns the identity's email claim, or "" when absent.
func (i Identity) Email() string {
	email, _ := i["email"].(string)
	return email
}
