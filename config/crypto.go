package config

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"
)

// At-rest string cipher for secrets stored in the config file: AES-256-CBC
// with a random IV per value, serialized as base64(iv):base64(ciphertext).
// The format matches the existing config files, so it cannot change.

const keySize = 32

// EncryptString encrypts plain with the given key. Empty input is returned
// unchanged.
func EncryptString(key, plain string) (string, error) {
	if plain == "" {
		return plain, nil
	}

	block, err := aes.NewCipher(normalizeKey(key))
	if err != nil {
		return "", err
	}

	iv := make([]byte, aes.BlockSize)
	if _, err = rand.Read(iv); err != nil {
		return "", err
	}

	padded := pkcs7Pad([]byte(plain), aes.BlockSize)
	ct := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ct, padded)

	return base64.StdEncoding.EncodeToString(iv) + ":" + base64.StdEncoding.EncodeToString(ct), nil
}

// DecryptString reverses EncryptString. Values without the iv:ciphertext
// shape are treated as plain text and returned unchanged, so unencrypted
// legacy config values keep working.
func DecryptString(key, value string) (string, error) {
	iv64, ct64, ok := strings.Cut(value, ":")
	if !ok || value == "" {
		return value, nil
	}

	iv, err := base64.StdEncoding.DecodeString(iv64)
	if err != nil {
		return "", fmt.Errorf("decoding iv: %w", err)
	}

	if len(iv) != aes.BlockSize {
		return "", fmt.Errorf("invalid iv length %d", len(iv))
	}

	ct, err := base64.StdEncoding.DecodeString(ct64)
	if err != nil {
		return "", fmt.Errorf("decoding ciphertext: %w", err)
	}

	if len(ct) == 0 || len(ct)%aes.BlockSize != 0 {
		return "", fmt.Errorf("invalid ciphertext length %d", len(ct))
	}

	block, err := aes.NewCipher(normalizeKey(key))
	if err != nil {
		return "", err
	}

	pt := make([]byte, len(ct))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(pt, ct)

	pt, err = pkcs7Unpad(pt, aes.BlockSize)
	if err != nil {
		return "", err
	}

	return string(pt), nil
}

// GenerateKey returns a fresh random 256-bit key, base64-encoded.
func GenerateKey() (string, error) {
	key := make([]byte, keySize)
	if _, err := rand.Read(key); err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(key), nil
}

// normalizeKey accepts a base64 or raw key and pads or truncates it to the
// AES-256 key size. Existing config files may carry hand-typed keys.
func normalizeKey(key string) []byte {
	raw, err := base64.StdEncoding.DecodeString(key)
	if err != nil {
		raw = []byte(key)
	}

	if len(raw) < keySize {
		padded := make([]byte, keySize)
		copy(padded, raw)

		return padded
	}

	return raw[:keySize]
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+n)
	copy(padded, data)

	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(n)
	}

	return padded
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("invalid padded length %d", len(data))
	}

	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, fmt.Errorf("invalid padding byte %d", n)
	}

	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("corrupt padding")
		}
	}

	return data[:len(data)-n], nil
}
