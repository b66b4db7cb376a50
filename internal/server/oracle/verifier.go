package oracle

import (
	"crypto/ed25519"
	"encoding/binary"
)

const proofDomain = "matchvault.reveal.v1"

// ProofPayload builds the canonical byte string signed by the oracle for a
// revealed value. Both the verifier and the oracle simulator use it, so the
// encoding must stay stable.
func ProofPayload(requestID int64, value int64, generation uint64) []byte {
	buf := make([]byte, 0, len(proofDomain)+24)
	buf = append(buf, proofDomain...)
	buf = binary.BigEndian.AppendUint64(buf, uint64(requestID))
	buf = binary.BigEndian.AppendUint64(buf, uint64(value))
	buf = binary.BigEndian.AppendUint64(buf, generation)
	return buf
}

// Ed25519Verifier validates proofs as ed25519 signatures over ProofPayload,
// keyed by generation. A proof signed under a generation the verifier does
// not know (rotated-out key material) is stale and rejected.
type Ed25519Verifier struct {
	keys map[uint64]ed25519.PublicKey
}

func NewEd25519Verifier(keys map[uint64]ed25519.PublicKey) *Ed25519Verifier {
	return &Ed25519Verifier{keys: keys}
}

func (v *Ed25519Verifier) Verify(requestID int64, value int64, generation uint64, proof []byte) bool {
	key, ok := v.keys[generation]
	if !ok {
		return false
	}
	if len(proof) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(key, ProofPayload(requestID, value, generation), proof)
}
