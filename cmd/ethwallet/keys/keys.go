package keys

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/btcutil"
	"github.com/kaspanet/ethwallet/cmd/ethwallet/libethwallet"
	"github.com/kaspanet/ethwallet/util/hexcodec"
	"github.com/pkg/errors"
)

var defaultAppDir = btcutil.AppDataDir("ethwallet", false)

// DefaultWalletFile returns the wallet file used when none is given.
func DefaultWalletFile() string {
	return filepath.Join(defaultAppDir, "wallet.json")
}

// walletFileJSON fixes the field order of the wallet file.
type walletFileJSON struct {
	SecretKey  *string `json:"secret_key"`
	PublicKey  *string `json:"public_key"`
	PublicAddr *string `json:"public_addr"`
}

// WalletRecord is the persisted form of a single account. It holds the
// canonical text of each field and is never modified after creation.
type WalletRecord struct {
	secretKey  string
	publicKey  string
	publicAddr string
}

// New builds the record of the given key pair.
func New(secretKey *libethwallet.SecretKey, publicKey *libethwallet.PublicKey) *WalletRecord {
	return &WalletRecord{
		secretKey:  libethwallet.SecretToHex(secretKey),
		publicKey:  libethwallet.PublicToHex(publicKey),
		publicAddr: libethwallet.DeriveAddress(publicKey).String(),
	}
}

// SecretKey parses the stored secret key. The caller should Zero it when done.
func (r *WalletRecord) SecretKey() (*libethwallet.SecretKey, error) {
	return libethwallet.SecretFromHex(r.secretKey)
}

// PublicKey parses the stored public key.
func (r *WalletRecord) PublicKey() (*libethwallet.PublicKey, error) {
	return libethwallet.PublicFromHex(r.publicKey)
}

// Address parses the stored address.
func (r *WalletRecord) Address() (libethwallet.Address, error) {
	return libethwallet.AddressFromHex(r.publicAddr)
}

// PublicKeyHex returns the stored public key text.
func (r *WalletRecord) PublicKeyHex() string {
	return r.publicKey
}

// String describes the record without its secret key.
func (r WalletRecord) String() string {
	return fmt.Sprintf("WalletRecord{public_key: %s, public_addr: %s}", r.publicKey, r.publicAddr)
}

// GoString is the same as String so %#v doesn't expose the secret key.
func (r WalletRecord) GoString() string {
	return r.String()
}

// Format implements fmt.Formatter so that no verb, %d and %x included,
// prints the record's fields directly.
func (r WalletRecord) Format(f fmt.State, _ rune) {
	_, _ = io.WriteString(f, r.String())
}

// Verify checks that the record's fields belong to one key pair: the public
// key is the one of the secret key, and the address is the one of the public
// key.
func (r *WalletRecord) Verify() error {
	secretKey, err := r.SecretKey()
	if err != nil {
		return errors.Wrap(err, "secret_key")
	}
	defer secretKey.Zero()

	publicKey, err := r.PublicKey()
	if err != nil {
		return errors.Wrap(err, "public_key")
	}
	address, err := r.Address()
	if err != nil {
		return errors.Wrap(err, "public_addr")
	}

	if !secretKey.PublicKey().IsEqual(publicKey) {
		return errors.Wrap(ErrIntegrity, "public_key doesn't belong to secret_key")
	}
	if libethwallet.DeriveAddress(publicKey) != address {
		return errors.Wrapf(ErrIntegrity, "public_addr %s doesn't belong to public_key", address)
	}
	return nil
}

// Save writes the record to path, replacing any existing file. The new
// content goes to a temporary file in the same directory first, so the old
// file stays intact if anything fails before the final rename.
func (r *WalletRecord) Save(path string) error {
	content, err := r.marshal()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0700)
	if err != nil {
		return errors.Wrapf(ErrIO, "failed to create directory %s: %s", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrapf(ErrIO, "failed to create a temporary file in %s: %s", dir, err)
	}
	tempPath := tempFile.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tempFile.Close()
			_ = os.Remove(tempPath)
		}
	}()

	err = tempFile.Chmod(0600)
	if err != nil {
		return errors.Wrapf(ErrIO, "failed to set the mode of %s: %s", tempPath, err)
	}
	_, err = tempFile.Write(content)
	if err != nil {
		return errors.Wrapf(ErrIO, "failed to write %s: %s", tempPath, err)
	}
	err = tempFile.Sync()
	if err != nil {
		return errors.Wrapf(ErrIO, "failed to sync %s: %s", tempPath, err)
	}
	err = tempFile.Close()
	if err != nil {
		return errors.Wrapf(ErrIO, "failed to close %s: %s", tempPath, err)
	}
	err = os.Rename(tempPath, path)
	if err != nil {
		return errors.Wrapf(ErrIO, "failed to move the wallet file into %s: %s", path, err)
	}
	committed = true

	log.Infof("Wrote wallet file %s for address %s", path, r.publicAddr)
	return nil
}

func (r *WalletRecord) marshal() ([]byte, error) {
	buf := &bytes.Buffer{}
	encoder := json.NewEncoder(buf)
	encoder.SetIndent("", "  ")
	err := encoder.Encode(&walletFileJSON{
		SecretKey:  &r.secretKey,
		PublicKey:  &r.publicKey,
		PublicAddr: &r.publicAddr,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return buf.Bytes(), nil
}

// Load reads a wallet record from path. It checks the textual shape of every
// field but does no curve arithmetic; use LoadVerified or Verify for that.
func Load(path string) (*WalletRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrIO, "failed to open %s: %s", path, err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()
	decodedFile := &walletFileJSON{}
	err = decoder.Decode(decodedFile)
	if err != nil {
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			return nil, errors.Wrapf(ErrIO, "failed to read %s: %s", path, err)
		}
		return nil, errors.Wrapf(ErrParse, "%s: %s", path, err)
	}
	_, err = decoder.Token()
	if err != io.EOF {
		return nil, errors.Wrapf(ErrParse, "%s: unexpected data after the wallet record", path)
	}

	record, err := fromJSON(decodedFile)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	log.Debugf("Loaded wallet file %s", path)
	return record, nil
}

// LoadVerified is Load followed by Verify.
func LoadVerified(path string) (*WalletRecord, error) {
	record, err := Load(path)
	if err != nil {
		return nil, err
	}
	err = record.Verify()
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return record, nil
}

func fromJSON(fileJSON *walletFileJSON) (*WalletRecord, error) {
	switch {
	case fileJSON.SecretKey == nil:
		return nil, errors.Wrap(ErrParse, "missing field secret_key")
	case fileJSON.PublicKey == nil:
		return nil, errors.Wrap(ErrParse, "missing field public_key")
	case fileJSON.PublicAddr == nil:
		return nil, errors.Wrap(ErrParse, "missing field public_addr")
	}

	err := checkHexField("secret_key", *fileJSON.SecretKey, libethwallet.SecretKeyHexLength)
	if err != nil {
		return nil, err
	}
	err = checkHexField("public_key", *fileJSON.PublicKey, libethwallet.PublicKeyHexLength)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(*fileJSON.PublicKey, "04") {
		return nil, errors.Wrap(libethwallet.ErrInvalidFormat, "public_key must be in uncompressed form")
	}
	publicAddr := *fileJSON.PublicAddr
	if !strings.HasPrefix(publicAddr, "0x") {
		return nil, errors.Wrap(libethwallet.ErrInvalidFormat, "public_addr must start with 0x")
	}
	err = checkHexField("public_addr", strings.TrimPrefix(publicAddr, "0x"), 2*libethwallet.AddressSize)
	if err != nil {
		return nil, err
	}

	return &WalletRecord{
		secretKey:  *fileJSON.SecretKey,
		publicKey:  *fileJSON.PublicKey,
		publicAddr: publicAddr,
	}, nil
}

// checkHexField requires exactly length lowercase hex characters.
func checkHexField(name, value string, length int) error {
	if len(value) != length {
		return errors.Wrapf(libethwallet.ErrInvalidFormat, "%s must be %d hex characters, got %d",
			name, length, len(value))
	}
	if value != strings.ToLower(value) {
		return errors.Wrapf(libethwallet.ErrInvalidFormat, "%s must be lowercase", name)
	}
	_, err := hexcodec.DecodeString(value)
	if err != nil {
		return errors.Wrapf(libethwallet.ErrInvalidFormat, "%s: %s", name, err)
	}
	return nil
}
