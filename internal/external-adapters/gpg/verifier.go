// Package gpg provides OpenPGP signature verification for firmware
// artifacts using ProtonMail's go-crypto, a maintained fork of
// golang.org/x/crypto/openpgp. This is in external-adapters to isolate
// the external dependency.
package gpg

import (
	"fmt"
	"io"
	"os"

	"github.com/ProtonMail/go-crypto/openpgp"
)

const armorHeader = "-----BEGIN PGP SIGNATURE---"

// Verifier checks detached signatures over release firmware images
// against a keyring of trusted public keys.
type Verifier struct {
	keyring openpgp.EntityList
}

// NewVerifier creates a verifier with an empty keyring.
func NewVerifier() *Verifier {
	return &Verifier{keyring: make(openpgp.EntityList, 0)}
}

// ImportKeyFromFile loads public keys from an armored or binary keyring
// file into the verifier's keyring.
func (v *Verifier) ImportKeyFromFile(keyPath string) error {
	//nolint:gosec // G304: keyPath is user-provided for key import
	f, err := os.Open(keyPath)
	if err != nil {
		return fmt.Errorf("failed to open key file: %w", err)
	}
	//nolint:errcheck // Defer close on read-only file
	defer f.Close()

	keys, err := openpgp.ReadArmoredKeyRing(f)
	if err != nil {
		if _, seekErr := f.Seek(0, io.SeekStart); seekErr != nil {
			return fmt.Errorf("failed to reset key file: %w", seekErr)
		}
		keys, err = openpgp.ReadKeyRing(f)
		if err != nil {
			return fmt.Errorf("failed to read key: %w", err)
		}
	}

	if len(keys) == 0 {
		return fmt.Errorf("no keys found in %s", keyPath)
	}

	v.keyring = append(v.keyring, keys...)
	return nil
}

// KeyringSize returns the number of imported keys.
func (v *Verifier) KeyringSize() int {
	return len(v.keyring)
}

// Verify checks the detached signature at signaturePath over the artifact
// at artifactPath. Both armored and binary signatures are accepted.
func (v *Verifier) Verify(artifactPath, signaturePath string) error {
	if len(v.keyring) == 0 {
		return fmt.Errorf("no keys imported, call ImportKeyFromFile first")
	}

	//nolint:gosec // G304: signaturePath is user-provided for verification
	sigFile, err := os.Open(signaturePath)
	if err != nil {
		return fmt.Errorf("failed to open signature file: %w", err)
	}
	//nolint:errcheck // Defer close on read-only file
	defer sigFile.Close()

	//nolint:gosec // G304: artifactPath is user-provided for verification
	artifact, err := os.Open(artifactPath)
	if err != nil {
		return fmt.Errorf("failed to open artifact: %w", err)
	}
	//nolint:errcheck // Defer close on read-only file
	defer artifact.Close()

	peek := make([]byte, len(armorHeader))
	n, _ := io.ReadFull(sigFile, peek)
	armored := n == len(armorHeader) && string(peek) == armorHeader

	if _, err := sigFile.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to reset signature file: %w", err)
	}

	if armored {
		_, err = openpgp.CheckArmoredDetachedSignature(v.keyring, artifact, sigFile, nil)
	} else {
		_, err = openpgp.CheckDetachedSignature(v.keyring, artifact, sigFile, nil)
	}
	if err != nil {
		return fmt.Errorf("signature verification failed: %w", err)
	}

	return nil
}
