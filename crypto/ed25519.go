package crypto

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/mr-tron/base58"
	"github.com/stellar/go/exp/crypto/derivation"
	"golang.org/x/crypto/ed25519"
)

// ExtensionName is used for the conditions granted by signatures.
const ExtensionName = "sigs"

// Signer is the functionality we use from a private key.
type Signer interface {
	Sign(message []byte) (*Signature, error)
	PublicKey() *PublicKey
}

// PublicKey is an ed25519 public key.
type PublicKey struct {
	Ed25519 []byte `json:"ed25519"`
}

// Verify returns true if the signature was created for the message with the
// matching private key.
func (p *PublicKey) Verify(message []byte, sig *Signature) bool {
	if p == nil || sig == nil || len(p.Ed25519) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(p.Ed25519), message, sig.Ed25519)
}

// Condition returns the condition that a valid signature of this key
// grants.
func (p *PublicKey) Condition() quorum.Condition {
	return quorum.NewCondition(ExtensionName, "ed25519", p.Ed25519)
}

// Address returns the address of the signature condition.
func (p *PublicKey) Address() quorum.Address {
	return p.Condition().Address()
}

// Base58 returns the base58 representation of the key.
func (p *PublicKey) Base58() string {
	return base58.Encode(p.Ed25519)
}

// Validate returns an error if this is not a well formed key.
func (p *PublicKey) Validate() error {
	if p == nil || len(p.Ed25519) != ed25519.PublicKeySize {
		return errors.Wrap(errors.ErrInvalidInput, "invalid ed25519 public key")
	}
	return nil
}

// Signature is an ed25519 signature.
type Signature struct {
	Ed25519 []byte `json:"ed25519"`
}

// PrivateKey is an ed25519 private key, including the public part.
type PrivateKey struct {
	Ed25519 []byte `json:"ed25519"`
}

var _ Signer = (*PrivateKey)(nil)

// Sign returns a signature of the message.
func (p *PrivateKey) Sign(message []byte) (*Signature, error) {
	if len(p.Ed25519) != ed25519.PrivateKeySize {
		return nil, errors.Wrap(errors.ErrInvalidInput, "invalid ed25519 private key")
	}
	return &Signature{Ed25519: ed25519.Sign(ed25519.PrivateKey(p.Ed25519), message)}, nil
}

// PublicKey returns the matching public key.
func (p *PrivateKey) PublicKey() *PublicKey {
	pub := ed25519.PrivateKey(p.Ed25519).Public().(ed25519.PublicKey)
	return &PublicKey{Ed25519: pub}
}

// GenPrivKeyEd25519 returns a random new private key.
func GenPrivKeyEd25519() *PrivateKey {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		panic(err)
	}
	return &PrivateKey{Ed25519: priv}
}

// PrivKeyEd25519FromSeed deterministically generates a private key from a 32
// byte seed.
func PrivKeyEd25519FromSeed(seed []byte) *PrivateKey {
	return &PrivateKey{Ed25519: ed25519.NewKeyFromSeed(seed)}
}

// DerivePrivKeyEd25519 derives a private key from a master seed using a
// SLIP-0010 hardened path, for example "m/44'/234'/0'".
func DerivePrivKeyEd25519(seed []byte, path string) (*PrivateKey, error) {
	k, err := derivation.DeriveForPath(path, seed)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "derive %q: %s", path, err)
	}
	return PrivKeyEd25519FromSeed(k.Key), nil
}
