package app

import (
	"fmt"

	"github.com/dan13ram/teleport-relayer/common"
	log "github.com/sirupsen/logrus"
)

// CreateRelayerSigner returns the key that submits roots to the destination
// registry, from the configured mnemonic or from Cloud KMS.
func CreateRelayerSigner() (common.Signer, error) {
	config := Config.Destination
	if config.Mnemonic == "" && config.GcpKmsKeyName == "" {
		return nil, fmt.Errorf("both Mnemonic and GcpKmsKeyName are empty")
	}

	var signer common.Signer
	var err error
	if config.Mnemonic != "" {
		signer, err = common.NewMnemonicSigner(config.Mnemonic)
	} else {
		signer, err = common.NewGcpKmsSigner(config.GcpKmsKeyName)
	}
	if err != nil {
		return nil, fmt.Errorf("error initializing relayer signer: %w", err)
	}

	log.Debugf("[SIGNER] Relayer address: %s", signer.EthAddress().Hex())
	return signer, nil
}
