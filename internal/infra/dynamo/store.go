// Package dynamo implements the target store on DynamoDB through
// aws-sdk-go-v2: batched puts for the load engine plus the table
// administration the populate command needs (create-if-missing, purge).
package dynamo

import (
	"context"
	"log/slog"

	"seeder/config"
	"seeder/internal/dataset"
	"seeder/internal/load"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/pkg/errors"
)

// Store wraps a DynamoDB client as a load.Store.
type Store struct {
	client *dynamodb.Client
	logger *slog.Logger
}

// New builds a Store from the default AWS credential chain, the configured
// region and, when set, a custom endpoint for local stacks.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWS.Region))
	if err != nil {
		return nil, errors.Wrap(err, "load aws config")
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.AWS.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.AWS.Endpoint)
		}
	})

	return &Store{client: client, logger: logger}, nil
}

// BatchPut writes one batch and returns the items DynamoDB reports
// unprocessed. Items decoded with json.Number marshal as DynamoDB numbers,
// keeping numeric precision through the hand-off files.
func (s *Store) BatchPut(ctx context.Context, table dataset.Table, items []dataset.Item) ([]dataset.Item, error) {
	writes := make([]types.WriteRequest, 0, len(items))
	for _, item := range items {
		av, err := attributevalue.MarshalMap(item)
		if err != nil {
			return nil, errors.Wrapf(err, "marshal item for %s", table.Name)
		}
		writes = append(writes, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
	}

	out, err := s.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
		RequestItems: map[string][]types.WriteRequest{table.Name: writes},
	})
	if err != nil {
		if isThrottle(err) {
			return nil, errors.Wrap(load.ErrThrottled, err.Error())
		}

		return nil, errors.Wrapf(err, "batch write %s", table.Name)
	}

	leftover := out.UnprocessedItems[table.Name]
	if len(leftover) == 0 {
		return nil, nil
	}
	unprocessed := make([]dataset.Item, 0, len(leftover))
	for _, w := range leftover {
		if w.PutRequest == nil {
			continue
		}
		var item dataset.Item
		if err := attributevalue.UnmarshalMap(w.PutRequest.Item, &item); err != nil {
			return nil, errors.Wrapf(err, "decode unprocessed item of %s", table.Name)
		}
		unprocessed = append(unprocessed, item)
	}

	return unprocessed, nil
}

// isThrottle classifies capacity-related rejections the load engine should
// retry rather than fail.
func isThrottle(err error) bool {
	var throughput *types.ProvisionedThroughputExceededException
	if errors.As(err, &throughput) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "ThrottlingException", "RequestLimitExceeded", "ProvisionedThroughputExceededException":
			return true
		}
	}

	return false
}
