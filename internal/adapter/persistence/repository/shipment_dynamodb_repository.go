package repository

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"cargokz/internal/domain/entities"
	"cargokz/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultShipmentsTableName = "shipments"

type shipmentItem struct {
	ID           string `dynamodbav:"id"`
	SessionID    string `dynamodbav:"session_id"`
	Option       string `dynamodbav:"option"`
	AgreedTotal  string `dynamodbav:"agreed_total"`
	ContactName  string `dynamodbav:"contact_name"`
	ContactPhone string `dynamodbav:"contact_phone"`
	Record       string `dynamodbav:"record"` // JSON-encoded ShipmentRecord
	CreatedAt    string `dynamodbav:"created_at"`
}

// ShipmentDynamoRepository is the reference persistence collaborator for
// finalized orders.
//
// Table requirements:
//   - PK: id (string)

type ShipmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IShipmentRepository = (*ShipmentDynamoRepository)(nil)

func NewShipmentDynamoRepository(ddb *dynamodb.Client) *ShipmentDynamoRepository {
	return &ShipmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SHIPMENTS_TABLE", defaultShipmentsTableName),
	}
}

func (r *ShipmentDynamoRepository) Save(ctx context.Context, order entities.FinalizedOrder) (entities.FinalizedOrder, error) {
	record, err := json.Marshal(order.Record)
	if err != nil {
		return entities.FinalizedOrder{}, err
	}
	av, err := attributevalue.MarshalMap(shipmentItem{
		ID:           order.ID,
		SessionID:    order.SessionID,
		Option:       string(order.Option),
		AgreedTotal:  strconv.FormatFloat(order.AgreedTotal, 'f', -1, 64),
		ContactName:  order.Contact.Name,
		ContactPhone: order.Contact.Phone,
		Record:       string(record),
		CreatedAt:    order.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.FinalizedOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.FinalizedOrder{}, err
	}
	return order, nil
}
