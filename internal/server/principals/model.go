// Package principals manages registered actor identities and their login
// credentials. A principal is an externally supplied address; the verifier
// scheme mirrors a salted key-derivation handshake so the server never sees
// a password.
package principals

import "time"

type Principal struct {
	Address   string
	Salt      []byte
	Verifier  []byte
	CreatedAt time.Time
}
