package repository

import (
	"context"
	"time"

	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/internal/tracking"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTrackingTableName = "tracking_parameters"

type trackingTierItem struct {
	VisitorID string       `dynamodbav:"visitor_id"`
	Params    trackingItem `dynamodbav:"params"`
	UpdatedAt string       `dynamodbav:"updated_at"`
}

// TrackingDynamoTier is the device tier of the tracking store: it survives the
// session end and answers reads when the session tier is empty (new tab, new
// session on a known device).
//
// Table requirements:
//   - PK: visitor_id (string)
type TrackingDynamoTier struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ tracking.Tier = (*TrackingDynamoTier)(nil)

func NewTrackingDynamoTier(ddb *dynamodb.Client) *TrackingDynamoTier {
	return &TrackingDynamoTier{
		ddb:       ddb,
		tableName: getenvDefault("TRACKING_TABLE", defaultTrackingTableName),
	}
}

func (t *TrackingDynamoTier) Get(ctx context.Context, key string) (entities.TrackingParameters, bool, error) {
	out, err := t.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(t.tableName),
		Key: map[string]types.AttributeValue{
			"visitor_id": &types.AttributeValueMemberS{Value: key},
		},
	})
	if err != nil {
		return entities.TrackingParameters{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.TrackingParameters{}, false, nil
	}

	var it trackingTierItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.TrackingParameters{}, false, err
	}
	return fromTrackingItem(it.Params), true, nil
}

func (t *TrackingDynamoTier) Put(ctx context.Context, key string, params entities.TrackingParameters) error {
	av, err := attributevalue.MarshalMap(trackingTierItem{
		VisitorID: key,
		Params:    toTrackingItem(params),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = t.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(t.tableName),
		Item:      av,
	})
	return err
}
