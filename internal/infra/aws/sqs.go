package aws

import (
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"yatra-api/pkg/resource"
)

// NewSqsClient builds the SQS client, pointing it at the LocalStack endpoint
// when one is configured.
func NewSqsClient() *sqs.Client {
	return sqs.NewFromConfig(Config, func(o *sqs.Options) {
		if endpoint := resource.GetString("app.cloud.aws-endpoint"); endpoint != "" {
			o.BaseEndpoint = &endpoint
		}
	})
}
