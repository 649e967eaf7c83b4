package subm

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
	"github.com/guregu/dynamo/v2"
)

// DynamoDbProgressTable persists per (user, challenge) progress in DynamoDB.
type DynamoDbProgressTable struct {
	ddbClient *dynamodb.Client
	tableName string
	table     *dynamo.Table
}

func NewDynamoDbProgressTable(ddbClient *dynamodb.Client, tableName string) *DynamoDbProgressTable {
	ddb := &DynamoDbProgressTable{
		ddbClient: ddbClient,
		tableName: tableName,
	}
	db := dynamo.NewFromIface(ddb.ddbClient)
	table := db.Table(ddb.tableName)
	ddb.table = &table

	return ddb
}

// ApplyFirstPass relies on DynamoDB's atomic ADD update expression: the
// string-set union and the numeric increment happen in one write, upserting
// the record when absent. The condition rejects the write when the question
// is already in the solved set, which makes concurrent first-pass
// submissions of the same question credit score exactly once; the rejected
// write is treated as a no-op.
func (ddb *DynamoDbProgressTable) ApplyFirstPass(ctx context.Context, userUUID, challengeUUID uuid.UUID, questionUUID uuid.UUID, points int, now time.Time) error {
	err := ddb.table.Update("user_uuid", userUUID.String()).
		Range("challenge_uuid", challengeUUID.String()).
		AddStringsToSet("solved_questions", questionUUID.String()).
		Add("score", points).
		Set("last_updated", now).
		If("NOT contains('solved_questions', ?)", questionUUID.String()).
		Run(ctx)
	if err != nil {
		if dynamo.IsCondCheckFailed(err) {
			return nil
		}
		return err
	}
	return nil
}

func (ddb *DynamoDbProgressTable) Get(ctx context.Context, userUUID, challengeUUID uuid.UUID) (*ProgressRow, error) {
	row := new(ProgressRow)

	err := ddb.table.Get("user_uuid", userUUID.String()).
		Range("challenge_uuid", dynamo.Equal, challengeUUID.String()).
		One(ctx, row)
	if err != nil {
		if errors.Is(err, dynamo.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return row, nil
}
