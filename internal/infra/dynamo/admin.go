package dynamo

import (
	"context"
	"time"

	"seeder/config"
	"seeder/internal/dataset"
	"seeder/internal/load"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
)

const (
	tableWaitTimeout = 3 * time.Minute
	purgeAttempts    = 5
)

// EnsureTable creates the table on demand with on-demand billing and string
// keys matching the dataset layout. An existing table is left untouched.
func (s *Store) EnsureTable(ctx context.Context, table dataset.Table) error {
	_, err := s.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(table.Name),
	})
	if err == nil {
		return nil
	}
	var notFound *types.ResourceNotFoundException
	if !errors.As(err, &notFound) {
		return errors.Wrapf(err, "describe table %s", table.Name)
	}

	keySchema := []types.KeySchemaElement{
		{AttributeName: aws.String(table.PK), KeyType: types.KeyTypeHash},
	}
	attrs := []types.AttributeDefinition{
		{AttributeName: aws.String(table.PK), AttributeType: types.ScalarAttributeTypeS},
	}
	if table.SK != "" {
		keySchema = append(keySchema, types.KeySchemaElement{
			AttributeName: aws.String(table.SK), KeyType: types.KeyTypeRange,
		})
		attrs = append(attrs, types.AttributeDefinition{
			AttributeName: aws.String(table.SK), AttributeType: types.ScalarAttributeTypeS,
		})
	}

	s.logger.Info("creating table", "table", table.Name, "pk", table.PK, "sk", table.SK)
	_, err = s.client.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName:            aws.String(table.Name),
		KeySchema:            keySchema,
		AttributeDefinitions: attrs,
		BillingMode:          types.BillingModePayPerRequest,
	})
	if err != nil {
		return errors.Wrapf(err, "create table %s", table.Name)
	}

	waiter := dynamodb.NewTableExistsWaiter(s.client)
	err = waiter.Wait(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(table.Name),
	}, tableWaitTimeout)

	return errors.Wrapf(err, "wait for table %s", table.Name)
}

// Purge scans the key attributes of every item in the table and deletes
// them in batches, so a replace run starts from an empty table. It returns
// the number of items deleted.
func (s *Store) Purge(ctx context.Context, table dataset.Table) (int, error) {
	// Key attribute names like "name" collide with reserved words, so the
	// projection goes through expression aliases.
	names := map[string]string{"#pk": table.PK}
	projection := "#pk"
	if table.SK != "" {
		names["#sk"] = table.SK
		projection += ", #sk"
	}

	paginator := dynamodb.NewScanPaginator(s.client, &dynamodb.ScanInput{
		TableName:                aws.String(table.Name),
		ProjectionExpression:     aws.String(projection),
		ExpressionAttributeNames: names,
	})

	var keys []map[string]types.AttributeValue
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, errors.Wrapf(err, "scan %s", table.Name)
		}
		keys = append(keys, page.Items...)
	}
	if len(keys) == 0 {
		return 0, nil
	}

	deleted := 0
	for _, chunk := range load.Partition(keys, config.MaxBatchCapacity) {
		writes := make([]types.WriteRequest, 0, len(chunk))
		for _, key := range chunk {
			writes = append(writes, types.WriteRequest{
				DeleteRequest: &types.DeleteRequest{Key: key},
			})
		}
		if err := s.deleteBatch(ctx, table.Name, writes); err != nil {
			return deleted, err
		}
		deleted += len(chunk)
	}

	s.logger.Info("table purged", "table", table.Name, "deleted", deleted)

	return deleted, nil
}

// deleteBatch resubmits unprocessed deletes a few times before giving up.
func (s *Store) deleteBatch(ctx context.Context, tableName string, writes []types.WriteRequest) error {
	for attempt := 0; len(writes) > 0; attempt++ {
		if attempt >= purgeAttempts {
			return errors.Errorf("purge %s: %d deletes still unprocessed after %d attempts",
				tableName, len(writes), purgeAttempts)
		}
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(attempt) * 500 * time.Millisecond):
			}
		}

		out, err := s.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{tableName: writes},
		})
		if err != nil {
			if isThrottle(err) {
				continue
			}

			return errors.Wrapf(err, "batch delete %s", tableName)
		}
		writes = out.UnprocessedItems[tableName]
	}

	return nil
}
