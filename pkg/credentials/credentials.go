// Package credentials fetches secrets from AWS Secrets Manager.
package credentials

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
)

var ErrSecretNotFound = errors.New("secret not found")

type CredentialsManager struct {
	manager *secretsmanager.SecretsManager
}

func NewCredentialsManager(sess *session.Session) *CredentialsManager {
	return &CredentialsManager{
		manager: secretsmanager.New(sess),
	}
}

func (cm *CredentialsManager) GetSecret(ctx context.Context, secretId string) (*string, error) {
	input := &secretsmanager.GetSecretValueInput{
		SecretId:     &secretId,
		VersionStage: aws.String("AWSCURRENT"),
	}
	out, err := cm.manager.GetSecretValueWithContext(ctx, input)

	var notFound *secretsmanager.ResourceNotFoundException
	if errors.As(err, &notFound) {
		return nil, ErrSecretNotFound
	}
	if err != nil {
		return nil, err
	}
	return out.SecretString, nil
}
