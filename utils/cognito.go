package utils

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"

	appConfig "ecostep/config"
)

// NewCognitoClient builds a Cognito client for the configured region.
func NewCognitoClient(ctx context.Context, cfg *appConfig.Config) (*cognitoidentityprovider.Client, error) {
	awsCfg, err := awsConfig.LoadDefaultConfig(ctx, awsConfig.WithRegion(cfg.Cognito.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return cognitoidentityprovider.NewFromConfig(awsCfg), nil
}

// ValidateTokenAndFetchEmail validates an access token against Cognito and
// returns the account's email attribute. Identity stays fully delegated: the
// service never verifies token signatures itself.
func ValidateTokenAndFetchEmail(ctx context.Context, cfg *appConfig.Config, token string) (string, error) {
	client, err := NewCognitoClient(ctx, cfg)
	if err != nil {
		return "", err
	}

	out, err := client.GetUser(ctx, &cognitoidentityprovider.GetUserInput{
		AccessToken: aws.String(token),
	})
	if err != nil {
		return "", fmt.Errorf("token validation failed: %w", err)
	}

	for _, attr := range out.UserAttributes {
		if attr.Name != nil && *attr.Name == "email" && attr.Value != nil {
			return *attr.Value, nil
		}
	}
	if out.Username != nil {
		return *out.Username, nil
	}
	return "", fmt.Errorf("no email attribute on Cognito user")
}
