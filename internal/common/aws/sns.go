// internal/common/aws/sns.go
package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// SMSSender is the subset of the SNS API used by notification handlers.
// Tests substitute a mock implementation.
type SMSSender interface {
	SendSMS(ctx context.Context, phoneNumber, message string) (string, error)
}

type SNSClient struct {
	client *sns.Client
}

func NewSNSClient(ctx context.Context, region string) (*SNSClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &SNSClient{client: sns.NewFromConfig(cfg)}, nil
}

// SendSMS publishes a message directly to a phone number and returns the
// SNS message ID.
func (s *SNSClient) SendSMS(ctx context.Context, phoneNumber, message string) (string, error) {
	out, err := s.client.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(phoneNumber),
		Message:     aws.String(message),
	})
	if err != nil {
		return "", err
	}
	return aws.ToString(out.MessageId), nil
}
