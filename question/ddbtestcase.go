package question

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
	"github.com/guregu/dynamo/v2"
)

// DynamoDbTestCaseTable persists test cases in DynamoDB, keyed by question
// UUID with the sequence number as the range key. Queries on the hash key
// return items in ascending range-key order, which is the execution order.
type DynamoDbTestCaseTable struct {
	ddbClient *dynamodb.Client
	tableName string
	table     *dynamo.Table
}

func NewDynamoDbTestCaseTable(ddbClient *dynamodb.Client, tableName string) *DynamoDbTestCaseTable {
	ddb := &DynamoDbTestCaseTable{
		ddbClient: ddbClient,
		tableName: tableName,
	}
	db := dynamo.NewFromIface(ddb.ddbClient)
	table := db.Table(ddb.tableName)
	ddb.table = &table

	return ddb
}

func (ddb *DynamoDbTestCaseTable) List(ctx context.Context, questionUUID uuid.UUID) ([]*TestCaseRow, error) {
	var rows []*TestCaseRow
	err := ddb.table.Get("question_uuid", questionUUID.String()).
		Order(dynamo.Ascending).
		All(ctx, &rows)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (ddb *DynamoDbTestCaseTable) Put(ctx context.Context, row *TestCaseRow) error {
	return ddb.table.Put(row).Run(ctx)
}

func (ddb *DynamoDbTestCaseTable) Delete(ctx context.Context, questionUUID uuid.UUID, seqNo int) error {
	return ddb.table.Delete("question_uuid", questionUUID.String()).
		Range("seq_no", seqNo).
		Run(ctx)
}
