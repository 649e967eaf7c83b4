package question

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
	"github.com/guregu/dynamo/v2"
)

// DynamoDbQuestionTable persists questions in DynamoDB. Listing by challenge
// uses the challenge_uuid-index global secondary index.
type DynamoDbQuestionTable struct {
	ddbClient *dynamodb.Client
	tableName string
	table     *dynamo.Table
}

func NewDynamoDbQuestionTable(ddbClient *dynamodb.Client, tableName string) *DynamoDbQuestionTable {
	ddb := &DynamoDbQuestionTable{
		ddbClient: ddbClient,
		tableName: tableName,
	}
	db := dynamo.NewFromIface(ddb.ddbClient)
	table := db.Table(ddb.tableName)
	ddb.table = &table

	return ddb
}

func (ddb *DynamoDbQuestionTable) Get(ctx context.Context, uuid uuid.UUID) (*QuestionRow, error) {
	row := new(QuestionRow)

	err := ddb.table.Get("uuid", uuid.String()).One(ctx, row)
	if err != nil {
		if errors.Is(err, dynamo.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return row, nil
}

func (ddb *DynamoDbQuestionTable) ListByChallenge(ctx context.Context, challengeUUID uuid.UUID) ([]*QuestionRow, error) {
	var rows []*QuestionRow
	err := ddb.table.Get("challenge_uuid", challengeUUID.String()).
		Index("challenge_uuid-index").
		All(ctx, &rows)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// Save writes a question with optimistic locking on the version attribute.
func (ddb *DynamoDbQuestionTable) Save(ctx context.Context, row *QuestionRow) error {
	row.Version++

	put := ddb.table.Put(row).If("attribute_not_exists(version) OR version = ?", row.Version-1)
	return put.Run(ctx)
}

func (ddb *DynamoDbQuestionTable) Delete(ctx context.Context, uuid uuid.UUID) error {
	return ddb.table.Delete("uuid", uuid.String()).Run(ctx)
}
