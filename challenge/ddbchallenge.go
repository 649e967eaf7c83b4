package challenge

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
	"github.com/guregu/dynamo/v2"
)

// DynamoDbChallengeTable persists challenges in DynamoDB.
type DynamoDbChallengeTable struct {
	ddbClient *dynamodb.Client
	tableName string
	table     *dynamo.Table
}

func NewDynamoDbChallengeTable(ddbClient *dynamodb.Client, tableName string) *DynamoDbChallengeTable {
	ddb := &DynamoDbChallengeTable{
		ddbClient: ddbClient,
		tableName: tableName,
	}
	db := dynamo.NewFromIface(ddb.ddbClient)
	table := db.Table(ddb.tableName)
	ddb.table = &table

	return ddb
}

func (ddb *DynamoDbChallengeTable) Get(ctx context.Context, uuid uuid.UUID) (*ChallengeRow, error) {
	row := new(ChallengeRow)

	err := ddb.table.Get("uuid", uuid.String()).One(ctx, row)
	if err != nil {
		if errors.Is(err, dynamo.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return row, nil
}

func (ddb *DynamoDbChallengeTable) List(ctx context.Context) ([]*ChallengeRow, error) {
	var rows []*ChallengeRow
	err := ddb.table.Scan().All(ctx, &rows)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// Save writes a challenge with optimistic locking on the version attribute.
func (ddb *DynamoDbChallengeTable) Save(ctx context.Context, row *ChallengeRow) error {
	row.Version++

	put := ddb.table.Put(row).If("attribute_not_exists(version) OR version = ?", row.Version-1)
	return put.Run(ctx)
}

func (ddb *DynamoDbChallengeTable) Delete(ctx context.Context, uuid uuid.UUID) error {
	return ddb.table.Delete("uuid", uuid.String()).Run(ctx)
}
