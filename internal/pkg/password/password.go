package password

import "golang.org/x/crypto/bcrypt"

// DefaultCost mirrors the work factor the hosted deployment has always used.
// It is deliberately low; raise it via config for new deployments.
const DefaultCost = 5

func Hash(plain string, cost int) (string, error) {
	if cost <= 0 {
		cost = DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func Compare(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
