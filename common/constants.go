package common

import "encoding/asn1"

const (
	HashLength      = 32
	SignatureLength = 65

	// account 0 of the standard Ethereum derivation path
	DefaultETHHDPath = "m/44'/60'/0'/0/0"
)

var oidPublicKeyECDSA = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}
