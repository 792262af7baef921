package repository

import (
	"context"
	"encoding/json"
	"time"

	"cargokz/internal/domain/entities"
	"cargokz/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSessionsTableName = "sessions"

// Sessions live for a week of inactivity; DynamoDB TTL reaps them, the
// engine itself has no expiry semantics.
const sessionTTL = 7 * 24 * time.Hour

type sessionItem struct {
	ID        string `dynamodbav:"id"`
	Payload   string `dynamodbav:"payload"` // JSON-encoded entities.Session, opaque to the table
	UpdatedAt string `dynamodbav:"updated_at"`
	ExpiresAt int64  `dynamodbav:"expires_at"`
}

// SessionDynamoStore keeps opaque conversation state between turns.
//
// Table requirements:
//   - PK: id (string)
//   - TTL attribute: expires_at

type SessionDynamoStore struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISessionStore = (*SessionDynamoStore)(nil)

func NewSessionDynamoStore(ddb *dynamodb.Client) *SessionDynamoStore {
	return &SessionDynamoStore{
		ddb:       ddb,
		tableName: getenvDefault("SESSIONS_TABLE", defaultSessionsTableName),
	}
}

func (s *SessionDynamoStore) Get(ctx context.Context, id string) (entities.Session, bool, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Session{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.Session{}, false, nil
	}

	var it sessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Session{}, false, err
	}
	var sess entities.Session
	if err := json.Unmarshal([]byte(it.Payload), &sess); err != nil {
		return entities.Session{}, false, err
	}
	return sess, true, nil
}

func (s *SessionDynamoStore) Put(ctx context.Context, sess entities.Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	av, err := attributevalue.MarshalMap(sessionItem{
		ID:        sess.ID,
		Payload:   string(payload),
		UpdatedAt: now.Format(time.RFC3339Nano),
		ExpiresAt: now.Add(sessionTTL).Unix(),
	})
	if err != nil {
		return err
	}
	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	return err
}

func (s *SessionDynamoStore) Delete(ctx context.Context, id string) error {
	_, err := s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}
