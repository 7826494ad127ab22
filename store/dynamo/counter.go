package dynamo

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/hupe1980/singine/identity"
)

// Client is the interface for the DynamoDB operations the counter uses.
type Client interface {
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

// Compile time check to ensure CounterStore satisfies the counter contract.
var _ identity.CounterStore = (*CounterStore)(nil)

// CounterStore implements identity.CounterStore on a DynamoDB table.
type CounterStore struct {
	client    Client
	tableName string
}

// NewCounterStore creates a counter store against the given table.
func NewCounterStore(client Client, tableName string) *CounterStore {
	return &CounterStore{
		client:    client,
		tableName: tableName,
	}
}

// NextInode atomically increments the namespace's counter and returns the
// issued value. ADD creates the item with value 0 before adding when it is
// absent, so the first issued inode is 1, the same sequence the SQLite
// counter produces.
func (s *CounterStore) NextInode(ctx context.Context, namespace string) (uint64, error) {
	out, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"namespace": &types.AttributeValueMemberS{Value: namespace},
		},
		UpdateExpression: aws.String("ADD next_inode :one"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to increment inode counter for %q: %w", namespace, err)
	}

	attr, ok := out.Attributes["next_inode"]
	if !ok {
		return 0, fmt.Errorf("inode counter for %q: missing next_inode attribute", namespace)
	}
	n, ok := attr.(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("inode counter for %q: next_inode is not a number", namespace)
	}

	inode, err := strconv.ParseUint(n.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("inode counter for %q: parse %q: %w", namespace, n.Value, err)
	}
	return inode, nil
}
