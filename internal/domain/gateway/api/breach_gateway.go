package api

// BreachGateway screens passwords against a public breach-corpus range API.
type BreachGateway interface {
	// CountBreaches returns how many times the password appears in known
	// breach corpora. Zero means the password is not known to be compromised.
	CountBreaches(password string) (int, error)
}
