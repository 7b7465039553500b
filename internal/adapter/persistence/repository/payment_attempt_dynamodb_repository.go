package repository

import (
	"context"
	"time"

	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPaymentsTableName = "payments"

type trackingItem struct {
	Src         *string `dynamodbav:"src,omitempty"`
	Sck         *string `dynamodbav:"sck,omitempty"`
	UTMSource   *string `dynamodbav:"utm_source,omitempty"`
	UTMCampaign *string `dynamodbav:"utm_campaign,omitempty"`
	UTMMedium   *string `dynamodbav:"utm_medium,omitempty"`
	UTMContent  *string `dynamodbav:"utm_content,omitempty"`
	UTMTerm     *string `dynamodbav:"utm_term,omitempty"`
}

type paymentAttemptItem struct {
	Identifier    string       `dynamodbav:"identifier"`
	ProductName   string       `dynamodbav:"product_name"`
	CustomerName  string       `dynamodbav:"customer_name"`
	CustomerEmail string       `dynamodbav:"customer_email"`
	CustomerCPF   string       `dynamodbav:"customer_cpf"`
	CustomerPhone string       `dynamodbav:"customer_phone"`
	Amount        float64      `dynamodbav:"amount"`
	FinalAmount   float64      `dynamodbav:"final_amount"`
	PixCode       string       `dynamodbav:"pix_code"`
	Status        string       `dynamodbav:"status"`
	PaymentMethod string       `dynamodbav:"payment_method"`
	Tracking      trackingItem `dynamodbav:"tracking_parameters"`
	CreatedAt     string       `dynamodbav:"created_at"`
	PaidAt        string       `dynamodbav:"paid_at,omitempty"`
}

// PaymentAttemptDynamoRepository persists PaymentAttempt records in DynamoDB.
//
// Table requirements:
//   - PK: identifier (string)
type PaymentAttemptDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentAttemptRepository = (*PaymentAttemptDynamoRepository)(nil)

func NewPaymentAttemptDynamoRepository(ddb *dynamodb.Client) *PaymentAttemptDynamoRepository {
	return &PaymentAttemptDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentAttemptDynamoRepository) Create(ctx context.Context, attempt entities.PaymentAttempt) (entities.PaymentAttempt, error) {
	it := toPaymentAttemptItem(attempt)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PaymentAttempt{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#identifier)"),
		ExpressionAttributeNames: map[string]string{
			"#identifier": "identifier",
		},
	})
	if err != nil {
		return entities.PaymentAttempt{}, err
	}
	return attempt, nil
}

func (r *PaymentAttemptDynamoRepository) GetByIdentifier(ctx context.Context, identifier string) (entities.PaymentAttempt, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"identifier": &types.AttributeValueMemberS{Value: identifier},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentAttempt{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentAttempt{}, nil
	}

	var it paymentAttemptItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentAttempt{}, err
	}
	return fromPaymentAttemptItem(it), nil
}

func toPaymentAttemptItem(a entities.PaymentAttempt) paymentAttemptItem {
	it := paymentAttemptItem{
		Identifier:    a.Identifier,
		ProductName:   a.ProductName,
		CustomerName:  a.CustomerName,
		CustomerEmail: a.CustomerEmail,
		CustomerCPF:   a.CustomerCPF,
		CustomerPhone: a.CustomerPhone,
		Amount:        a.Amount,
		FinalAmount:   a.FinalAmount,
		PixCode:       a.PixCode,
		Status:        a.Status,
		PaymentMethod: a.PaymentMethod,
		Tracking:      toTrackingItem(a.Tracking),
		CreatedAt:     a.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if a.PaidAt != nil {
		it.PaidAt = a.PaidAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromPaymentAttemptItem(it paymentAttemptItem) entities.PaymentAttempt {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	a := entities.PaymentAttempt{
		Identifier:    it.Identifier,
		ProductName:   it.ProductName,
		CustomerName:  it.CustomerName,
		CustomerEmail: it.CustomerEmail,
		CustomerCPF:   it.CustomerCPF,
		CustomerPhone: it.CustomerPhone,
		Amount:        it.Amount,
		FinalAmount:   it.FinalAmount,
		PixCode:       it.PixCode,
		Status:        it.Status,
		PaymentMethod: it.PaymentMethod,
		Tracking:      fromTrackingItem(it.Tracking),
		CreatedAt:     createdAt,
	}
	if it.PaidAt != "" {
		if paidAt, err := time.Parse(time.RFC3339Nano, it.PaidAt); err == nil {
			a.PaidAt = &paidAt
		}
	}
	return a
}

func toTrackingItem(t entities.TrackingParameters) trackingItem {
	return trackingItem{
		Src:         t.Src,
		Sck:         t.Sck,
		UTMSource:   t.UTMSource,
		UTMCampaign: t.UTMCampaign,
		UTMMedium:   t.UTMMedium,
		UTMContent:  t.UTMContent,
		UTMTerm:     t.UTMTerm,
	}
}

func fromTrackingItem(it trackingItem) entities.TrackingParameters {
	return entities.TrackingParameters{
		Src:         it.Src,
		Sck:         it.Sck,
		UTMSource:   it.UTMSource,
		UTMCampaign: it.UTMCampaign,
		UTMMedium:   it.UTMMedium,
		UTMContent:  it.UTMContent,
		UTMTerm:     it.UTMTerm,
	}
}
