package sigs

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/errors"
)

// SignCodeV1 is the current way to prefix the bytes we use to build a
// signature.
var SignCodeV1 = []byte{0, 0xCA, 0xFE, 0}

// Verifier checks signatures. Successful verifications are remembered, so
// that a transaction checked in CheckTx is not verified again in DeliverTx.
// A nil Verifier does not cache.
type Verifier struct {
	cache *lru.Cache[[sha256.Size]byte, struct{}]
}

// NewVerifier returns a verifier remembering up to size signatures.
func NewVerifier(size int) *Verifier {
	cache, err := lru.New[[sha256.Size]byte, struct{}](size)
	if err != nil {
		panic(err)
	}
	return &Verifier{cache: cache}
}

// Verify returns true if sig is a valid signature of msg.
func (v *Verifier) Verify(pub *crypto.PublicKey, msg []byte, sig *crypto.Signature) bool {
	if v == nil {
		return pub.Verify(msg, sig)
	}
	h := sha256.New()
	h.Write(pub.Ed25519)
	h.Write(msg)
	h.Write(sig.Ed25519)
	var key [sha256.Size]byte
	copy(key[:], h.Sum(nil))

	if v.cache.Contains(key) {
		return true
	}
	if !pub.Verify(msg, sig) {
		return false
	}
	v.cache.Add(key, struct{}{})
	return true
}

// VerifyTxSignatures checks all the signatures of the transaction and
// returns the conditions of the signers (possibly empty), or an error if any
// signature is invalid.
func VerifyTxSignatures(db quorum.KVStore, tx SignedTx, chainID string, v *Verifier) ([]quorum.Condition, error) {
	bz, err := tx.GetSignBytes()
	if err != nil {
		return nil, err
	}
	sigs := tx.GetSignatures()

	signers := make([]quorum.Condition, 0, len(sigs))
	for _, sig := range sigs {
		signer, err := VerifySignature(db, sig, bz, chainID, v)
		if err != nil {
			return nil, err
		}
		signers = append(signers, signer)
	}
	return signers, nil
}

// VerifySignature checks one signature against the sign bytes and
// increments the sequence of the signing key.
func VerifySignature(db quorum.KVStore, sig *StdSignature, signBytes []byte, chainID string, v *Verifier) (quorum.Condition, error) {
	if err := sig.Validate(); err != nil {
		return nil, err
	}

	bucket := NewBucket()
	user, err := bucket.GetOrCreate(db, sig.Pubkey)
	if err != nil {
		return nil, err
	}

	toSign, err := BuildSignBytes(signBytes, chainID, sig.Sequence)
	if err != nil {
		return nil, err
	}
	if !v.Verify(user.Pubkey, toSign, sig.Signature) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "invalid signature")
	}

	if err := user.CheckAndIncrementSequence(sig.Sequence); err != nil {
		return nil, err
	}
	if err := bucket.Save(db, user); err != nil {
		return nil, err
	}
	return user.Pubkey.Condition(), nil
}

/*
BuildSignBytes combines all info on the actual tx before signing.

	version | len(chainID) | chainID      | nonce             | signBytes
	4bytes  | uint8        | ascii string | int64 (bigendian) | serialized transaction

The result is prehashed with sha512 before fed into the public key signing
and verification.
*/
func BuildSignBytes(signBytes []byte, chainID string, seq int64) ([]byte, error) {
	if seq < 0 {
		return nil, errors.Wrap(ErrInvalidSequence, "negative")
	}
	if !quorum.IsValidChainID(chainID) {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "chain id: %v", chainID)
	}

	nonce := make([]byte, 8)
	binary.BigEndian.PutUint64(nonce, uint64(seq))

	output := make([]byte, 0, len(SignCodeV1)+1+len(chainID)+8+len(signBytes))
	output = append(output, SignCodeV1...)
	output = append(output, uint8(len(chainID)))
	output = append(output, chainID...)
	output = append(output, nonce...)
	output = append(output, signBytes...)

	hashed := sha512.Sum512(output)
	return hashed[:], nil
}

// BuildSignBytesTx calculates the sign bytes of a transaction.
func BuildSignBytesTx(tx SignedTx, chainID string, seq int64) ([]byte, error) {
	signBytes, err := tx.GetSignBytes()
	if err != nil {
		return nil, err
	}
	return BuildSignBytes(signBytes, chainID, seq)
}

// SignTx creates a signature of the transaction.
func SignTx(signer crypto.Signer, tx SignedTx, chainID string, seq int64) (*StdSignature, error) {
	signBytes, err := BuildSignBytesTx(tx, chainID, seq)
	if err != nil {
		return nil, err
	}
	sig, err := signer.Sign(signBytes)
	if err != nil {
		return nil, err
	}
	return &StdSignature{
		Pubkey:    signer.PublicKey(),
		Signature: sig,
		Sequence:  seq,
	}, nil
}
