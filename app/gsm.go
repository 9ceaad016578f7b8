package app

import (
	"context"
	"fmt"
	"time"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	log "github.com/sirupsen/logrus"
)

const gsmTimeout = 10 * time.Second

func accessSecretVersion(ctx context.Context, client *secretmanager.Client, name string) (string, error) {
	req := &secretmanagerpb.AccessSecretVersionRequest{
		Name: fmt.Sprintf("projects/%s/secrets/%s/versions/latest", Config.GoogleSecretManager.ProjectId, name),
	}

	ctx, cancel := context.WithTimeout(ctx, gsmTimeout)
	defer cancel()

	result, err := client.AccessSecretVersion(ctx, req)
	if err != nil {
		return "", err
	}

	return string(result.Payload.Data), nil
}

func readSecret(ctx context.Context, client *secretmanager.Client, label string, secretName string, target *string) {
	if *target != "" {
		log.Debugf("[GSM] %s already set, skipping", label)
		return
	}
	if secretName == "" {
		log.Debugf("[GSM] No secret name for %s", label)
		return
	}

	log.Debugf("[GSM] Reading %s", label)
	value, err := accessSecretVersion(ctx, client, secretName)
	if err != nil {
		log.Fatalf("[GSM] Failed to access %s: %v", label, err)
	}
	*target = value
	log.Infof("[GSM] Successfully read %s", label)
}

func readKeysFromGSM() bool {
	if !Config.GoogleSecretManager.Enabled {
		log.Debug("[GSM] Google Secret Manager is disabled")
		return false
	}

	if Config.GoogleSecretManager.ProjectId == "" {
		log.Fatal("[GSM] ProjectId is empty")
	}

	ctx := context.Background()
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		log.Fatalf("[GSM] Failed to create secretmanager client: %v", err)
	}
	defer client.Close()

	readSecret(ctx, client, "mongodb uri", Config.GoogleSecretManager.MongoSecretName, &Config.MongoDB.URI)
	if Config.Destination.GcpKmsKeyName == "" {
		readSecret(ctx, client, "relayer mnemonic", Config.GoogleSecretManager.MnemonicSecretName, &Config.Destination.Mnemonic)
	}
	if Config.Redis.Enabled {
		readSecret(ctx, client, "redis url", Config.GoogleSecretManager.RedisSecretName, &Config.Redis.URL)
	}

	return true
}
