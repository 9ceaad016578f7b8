package common

import (
	"context"
	"crypto/ecdsa"
	"encoding/asn1"
	"encoding/pem"
	"errors"
	"math/big"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"cloud.google.com/go/kms/apiv1/kmspb"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	gax "github.com/googleapis/gax-go/v2"
)

// MockGCPKeyManagementClient is a mock implementation of GCPKeyManagementClient
type MockGCPKeyManagementClient struct {
	mock.Mock
}

func (m *MockGCPKeyManagementClient) Close() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockGCPKeyManagementClient) GetPublicKey(ctx context.Context, req *kmspb.GetPublicKeyRequest, opts ...gax.CallOption) (*kmspb.PublicKey, error) {
	args := m.Called(ctx, req, opts)
	return args.Get(0).(*kmspb.PublicKey), args.Error(1)
}

func (m *MockGCPKeyManagementClient) AsymmetricSign(ctx context.Context, req *kmspb.AsymmetricSignRequest, opts ...gax.CallOption) (*kmspb.AsymmetricSignResponse, error) {
	args := m.Called(ctx, req, opts)
	return args.Get(0).(*kmspb.AsymmetricSignResponse), args.Error(1)
}

func (m *MockGCPKeyManagementClient) GetCryptoKeyVersion(ctx context.Context, req *kmspb.GetCryptoKeyVersionRequest, opts ...gax.CallOption) (*kmspb.CryptoKeyVersion, error) {
	args := m.Called(ctx, req, opts)
	return args.Get(0).(*kmspb.CryptoKeyVersion), args.Error(1)
}

func asn1Bytes(r, s *big.Int) []byte {
	signature, _ := asn1.Marshal(struct {
		R, S *big.Int
	}{R: r, S: s})
	return signature
}

// kmsSignature signs hash locally and returns it in the DER form KMS responds with.
func kmsSignature(t *testing.T, key *ecdsa.PrivateKey, hash common.Hash, highS bool) []byte {
	sig, err := crypto.Sign(hash[:], key)
	assert.NoError(t, err)
	r := new(big.Int).SetBytes(sig[:32])
	s := new(big.Int).SetBytes(sig[32:64])
	if highS {
		s = new(big.Int).Sub(crypto.S256().Params().N, s)
	}
	return asn1Bytes(r, s)
}

func publicKeyPem(t *testing.T, key *ecdsa.PrivateKey) string {
	// x509 does not know secp256k1, build the SubjectPublicKeyInfo by hand
	spki, err := asn1.Marshal(struct {
		Algorithm struct {
			Algorithm  asn1.ObjectIdentifier
			Parameters asn1.ObjectIdentifier
		}
		PublicKey asn1.BitString
	}{
		Algorithm: struct {
			Algorithm  asn1.ObjectIdentifier
			Parameters asn1.ObjectIdentifier
		}{
			Algorithm:  oidPublicKeyECDSA,
			Parameters: asn1.ObjectIdentifier{1, 3, 132, 0, 10},
		},
		PublicKey: asn1.BitString{Bytes: crypto.FromECDSAPub(&key.PublicKey), BitLength: 65 * 8},
	})
	assert.NoError(t, err)
	return string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: spki}))
}

func TestNewGcpKmsSigner(t *testing.T) {
	defer func() {
		NewGCPKeyManagementClient = func(ctx context.Context) (GCPKeyManagementClient, error) {
			return nil, errors.New("not configured")
		}
	}()

	t.Run("Valid Key", func(t *testing.T) {
		mockClient := new(MockGCPKeyManagementClient)
		NewGCPKeyManagementClient = func(ctx context.Context) (GCPKeyManagementClient, error) {
			return mockClient, nil
		}

		key, _ := crypto.GenerateKey()
		keyName := "test-key"
		mockClient.On("GetCryptoKeyVersion", mock.Anything, &kmspb.GetCryptoKeyVersionRequest{Name: keyName}, mock.Anything).
			Return(&kmspb.CryptoKeyVersion{Algorithm: kmspb.CryptoKeyVersion_EC_SIGN_SECP256K1_SHA256}, nil)
		mockClient.On("GetPublicKey", mock.Anything, &kmspb.GetPublicKeyRequest{Name: keyName}, mock.Anything).
			Return(&kmspb.PublicKey{Pem: publicKeyPem(t, key)}, nil)

		signer, err := NewGcpKmsSigner(keyName)
		assert.NoError(t, err)
		assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), signer.EthAddress())

		mockClient.AssertExpectations(t)
	})

	t.Run("Fixed PEM", func(t *testing.T) {
		mockClient := new(MockGCPKeyManagementClient)
		NewGCPKeyManagementClient = func(ctx context.Context) (GCPKeyManagementClient, error) {
			return mockClient, nil
		}

		keyName := "test-key"
		mockClient.On("GetCryptoKeyVersion", mock.Anything, mock.Anything, mock.Anything).
			Return(&kmspb.CryptoKeyVersion{Algorithm: kmspb.CryptoKeyVersion_EC_SIGN_SECP256K1_SHA256}, nil)
		mockClient.On("GetPublicKey", mock.Anything, mock.Anything, mock.Anything).
			Return(&kmspb.PublicKey{
				Pem: "-----BEGIN PUBLIC KEY-----\nMFYwEAYHKoZIzj0CAQYFK4EEAAoDQgAEWf5LaoaCQYy4bfVxwKNrBvGzfmdgmFAJ\nWZwx14PGzKxssHukWefUlJ0SsXj4RogC6/fZMgB+RrAvx6K/kHYf1g==\n-----END PUBLIC KEY-----",
			}, nil)

		signer, err := NewGcpKmsSigner(keyName)
		assert.NoError(t, err)
		assert.NotNil(t, signer)
	})

	t.Run("Wrong Algorithm", func(t *testing.T) {
		mockClient := new(MockGCPKeyManagementClient)
		NewGCPKeyManagementClient = func(ctx context.Context) (GCPKeyManagementClient, error) {
			return mockClient, nil
		}

		mockClient.On("GetCryptoKeyVersion", mock.Anything, mock.Anything, mock.Anything).
			Return(&kmspb.CryptoKeyVersion{Algorithm: kmspb.CryptoKeyVersion_EC_SIGN_P256_SHA256}, nil)

		signer, err := NewGcpKmsSigner("test-key")
		assert.Error(t, err)
		assert.Nil(t, signer)
	})

	t.Run("Client Error", func(t *testing.T) {
		NewGCPKeyManagementClient = func(ctx context.Context) (GCPKeyManagementClient, error) {
			return nil, errors.New("no credentials")
		}

		signer, err := NewGcpKmsSigner("test-key")
		assert.Error(t, err)
		assert.Nil(t, signer)
	})

	t.Run("Empty PEM", func(t *testing.T) {
		mockClient := new(MockGCPKeyManagementClient)
		NewGCPKeyManagementClient = func(ctx context.Context) (GCPKeyManagementClient, error) {
			return mockClient, nil
		}

		mockClient.On("GetCryptoKeyVersion", mock.Anything, mock.Anything, mock.Anything).
			Return(&kmspb.CryptoKeyVersion{Algorithm: kmspb.CryptoKeyVersion_EC_SIGN_SECP256K1_SHA256}, nil)
		mockClient.On("GetPublicKey", mock.Anything, mock.Anything, mock.Anything).
			Return(&kmspb.PublicKey{Pem: ""}, nil)

		signer, err := NewGcpKmsSigner("test-key")
		assert.Error(t, err)
		assert.Nil(t, signer)
	})
}

func TestGcpKmsSigner_SignHash(t *testing.T) {
	key, _ := crypto.GenerateKey()
	hash := crypto.Keccak256Hash([]byte("example transaction data"))

	t.Run("Low S", func(t *testing.T) {
		mockClient := new(MockGCPKeyManagementClient)
		signer := &GcpKmsSigner{
			client:     mockClient,
			keyName:    "test-key",
			ethAddress: crypto.PubkeyToAddress(key.PublicKey),
		}
		mockClient.On("AsymmetricSign", mock.Anything, mock.Anything, mock.Anything).
			Return(&kmspb.AsymmetricSignResponse{Signature: kmsSignature(t, key, hash, false)}, nil)

		sig, err := signer.SignHash(hash)
		assert.NoError(t, err)
		assert.Len(t, sig, SignatureLength)

		expected, _ := crypto.Sign(hash[:], key)
		assert.Equal(t, expected, sig)
	})

	t.Run("High S Is Normalized", func(t *testing.T) {
		mockClient := new(MockGCPKeyManagementClient)
		signer := &GcpKmsSigner{
			client:     mockClient,
			keyName:    "test-key",
			ethAddress: crypto.PubkeyToAddress(key.PublicKey),
		}
		mockClient.On("AsymmetricSign", mock.Anything, mock.Anything, mock.Anything).
			Return(&kmspb.AsymmetricSignResponse{Signature: kmsSignature(t, key, hash, true)}, nil)

		sig, err := signer.SignHash(hash)
		assert.NoError(t, err)

		expected, _ := crypto.Sign(hash[:], key)
		assert.Equal(t, expected, sig)
	})

	t.Run("Wrong Key", func(t *testing.T) {
		other, _ := crypto.GenerateKey()
		mockClient := new(MockGCPKeyManagementClient)
		signer := &GcpKmsSigner{
			client:     mockClient,
			keyName:    "test-key",
			ethAddress: crypto.PubkeyToAddress(other.PublicKey),
		}
		mockClient.On("AsymmetricSign", mock.Anything, mock.Anything, mock.Anything).
			Return(&kmspb.AsymmetricSignResponse{Signature: kmsSignature(t, key, hash, false)}, nil)

		sig, err := signer.SignHash(hash)
		assert.Error(t, err)
		assert.Nil(t, sig)
	})

	t.Run("Sign Error", func(t *testing.T) {
		mockClient := new(MockGCPKeyManagementClient)
		signer := &GcpKmsSigner{client: mockClient, keyName: "test-key"}
		mockClient.On("AsymmetricSign", mock.Anything, mock.Anything, mock.Anything).
			Return((*kmspb.AsymmetricSignResponse)(nil), errors.New("denied"))

		_, err := signer.SignHash(hash)
		assert.Error(t, err)
	})

	t.Run("Malformed Signature", func(t *testing.T) {
		mockClient := new(MockGCPKeyManagementClient)
		signer := &GcpKmsSigner{client: mockClient, keyName: "test-key"}
		mockClient.On("AsymmetricSign", mock.Anything, mock.Anything, mock.Anything).
			Return(&kmspb.AsymmetricSignResponse{Signature: []byte{0x01, 0x02}}, nil)

		_, err := signer.SignHash(hash)
		assert.Error(t, err)
	})
}

func TestGcpKmsSigner_EthSign(t *testing.T) {
	key, _ := crypto.GenerateKey()
	data := []byte("example transaction data")
	hash := crypto.Keccak256Hash(data)

	mockClient := new(MockGCPKeyManagementClient)
	signer := &GcpKmsSigner{
		client:     mockClient,
		keyName:    "test-key",
		ethAddress: crypto.PubkeyToAddress(key.PublicKey),
	}
	mockClient.On("AsymmetricSign", mock.Anything, mock.Anything, mock.Anything).
		Return(&kmspb.AsymmetricSignResponse{Signature: kmsSignature(t, key, hash, false)}, nil)

	sig, err := signer.EthSign(data)
	assert.NoError(t, err)
	assert.Contains(t, []byte{27, 28}, sig[64])

	mockClient.AssertExpectations(t)
}

func TestGcpKmsSigner_Destroy(t *testing.T) {
	mockClient := new(MockGCPKeyManagementClient)
	signer := &GcpKmsSigner{
		client:  mockClient,
		keyName: "test-key",
	}

	mockClient.On("Close").Return(nil)

	signer.Destroy()
	mockClient.AssertExpectations(t)
}

func TestGcpKmsSigner_WithGCPKMS(t *testing.T) {
	keyName := os.Getenv("GCP_KMS_KEY_NAME")
	if keyName == "" {
		t.Skip("GCP KMS key name not set")
	}
	if os.Getenv("GOOGLE_APPLICATION_CREDENTIALS") == "" {
		t.Skip("GCP credentials not set")
	}

	signer, err := NewGcpKmsSigner(keyName)
	assert.NoError(t, err)

	sig, err := signer.EthSign([]byte("example transaction data"))
	assert.NoError(t, err)
	assert.NotNil(t, sig)
}
