package subm

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
	"github.com/guregu/dynamo/v2"
)

// DynamoDbSubmTable persists submissions in DynamoDB. Per-user listing and
// the prior-pass check use the user_uuid-index global secondary index.
type DynamoDbSubmTable struct {
	ddbClient *dynamodb.Client
	tableName string
	table     *dynamo.Table
}

func NewDynamoDbSubmTable(ddbClient *dynamodb.Client, tableName string) *DynamoDbSubmTable {
	ddb := &DynamoDbSubmTable{
		ddbClient: ddbClient,
		tableName: tableName,
	}
	db := dynamo.NewFromIface(ddb.ddbClient)
	table := db.Table(ddb.tableName)
	ddb.table = &table

	return ddb
}

func (ddb *DynamoDbSubmTable) Save(ctx context.Context, row *SubmissionRow) error {
	return ddb.table.Put(row).Run(ctx)
}

func (ddb *DynamoDbSubmTable) Get(ctx context.Context, uuid uuid.UUID) (*SubmissionRow, error) {
	row := new(SubmissionRow)

	err := ddb.table.Get("uuid", uuid.String()).One(ctx, row)
	if err != nil {
		if errors.Is(err, dynamo.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return row, nil
}

func (ddb *DynamoDbSubmTable) HasPassed(ctx context.Context, userUUID, challengeUUID, questionUUID uuid.UUID) (bool, error) {
	var rows []*SubmissionRow
	err := ddb.table.Get("user_uuid", userUUID.String()).
		Index("user_uuid-index").
		Filter("'challenge_uuid' = ? AND 'question_uuid' = ? AND 'status' = ?",
			challengeUUID.String(), questionUUID.String(), StatusPass).
		All(ctx, &rows)
	if err != nil {
		return false, err
	}

	return len(rows) > 0, nil
}

func (ddb *DynamoDbSubmTable) ListByUser(ctx context.Context, userUUID uuid.UUID) ([]*SubmissionRow, error) {
	var rows []*SubmissionRow
	err := ddb.table.Get("user_uuid", userUUID.String()).
		Index("user_uuid-index").
		Order(dynamo.Descending).
		All(ctx, &rows)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (ddb *DynamoDbSubmTable) Delete(ctx context.Context, uuid uuid.UUID) error {
	return ddb.table.Delete("uuid", uuid.String()).Run(ctx)
}
