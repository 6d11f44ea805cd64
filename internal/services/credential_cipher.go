package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

var ErrCredentialCorrupt = errors.New("stored credential cannot be decrypted")

// SecretboxCipher seals credentials with NaCl secretbox. The random nonce is
// prepended to the sealed box.
type SecretboxCipher struct {
	key [32]byte
}

func NewSecretboxCipher(key [32]byte) CredentialCipherInterface {
	return &SecretboxCipher{key: key}
}

func (c *SecretboxCipher) Seal(plaintext []byte) ([]byte, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return secretbox.Seal(nonce[:], plaintext, &nonce, &c.key), nil
}

func (c *SecretboxCipher) Open(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < nonceSize+secretbox.Overhead {
		return nil, ErrCredentialCorrupt
	}

	var nonce [nonceSize]byte
	copy(nonce[:], ciphertext[:nonceSize])

	plaintext, ok := secretbox.Open(nil, ciphertext[nonceSize:], &nonce, &c.key)
	if !ok {
		return nil, ErrCredentialCorrupt
	}
	return plaintext, nil
}
