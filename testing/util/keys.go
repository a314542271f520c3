package util

import (
	"encoding/binary"

	"github.com/pkg/errors"
	fieldparams "github.com/prysmaticlabs/remote-signer/config/fieldparams"
	"github.com/prysmaticlabs/remote-signer/crypto/bls"
)

// DeterministicSecretKeys returns n distinct secret keys derived from their index.
func DeterministicSecretKeys(n int) ([]bls.SecretKey, error) {
	keys := make([]bls.SecretKey, n)
	for i := range keys {
		raw := make([]byte, fieldparams.BLSSecretKeyLength)
		binary.BigEndian.PutUint64(raw[fieldparams.BLSSecretKeyLength-8:], uint64(i)+1)
		key, err := bls.SecretKeyFromBytes(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "could not create secret key %d", i)
		}
		keys[i] = key
	}
	return keys, nil
}
