// Package dynamo provides a DynamoDB-backed inode counter for deployments
// whose processes do not share a SQLite file. DynamoDB's ADD update is atomic
// server-side, which carries the same never-duplicate guarantee as the SQLite
// upsert-and-increment statement.
//
// Table schema:
//   - Partition key: namespace (string)
//
// Create table with:
//
//	aws dynamodb create-table \
//	  --table-name singine-inodes \
//	  --attribute-definitions AttributeName=namespace,AttributeType=S \
//	  --key-schema AttributeName=namespace,KeyType=HASH \
//	  --billing-mode PAY_PER_REQUEST
package dynamo
