package repository

import (
	"context"
	"errors"
	"time"

	"github.com/SUmit-kush123/bookin.com-sub000/internal/domain/entities"
	"github.com/SUmit-kush123/bookin.com-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBookingsTableName = "bookings"
	bookingsEmailIndex       = "requester_email-index"
)

type bookingItem struct {
	ID               string `dynamodbav:"id"`
	ItemID           string `dynamodbav:"item_id"`
	Category         string `dynamodbav:"category"`
	RequesterName    string `dynamodbav:"requester_name"`
	RequesterEmail   string `dynamodbav:"requester_email"`
	StartDate        string `dynamodbav:"start_date,omitempty"`
	EndDate          string `dynamodbav:"end_date,omitempty"`
	ParticipantCount int    `dynamodbav:"participant_count"`
	TotalAmount      string `dynamodbav:"total_amount"`
	Currency         string `dynamodbav:"currency"`
	Status           string `dynamodbav:"status"`
	Notes            string `dynamodbav:"notes,omitempty"`
	VehicleModel     string `dynamodbav:"vehicle_model,omitempty"`
	DriverName       string `dynamodbav:"driver_name,omitempty"`
	PackageName      string `dynamodbav:"package_name,omitempty"`
	TimeSlot         string `dynamodbav:"time_slot,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
}

// BookingDynamoRepository persists BookingRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI (requester_email-index): requester_email
//
// Append is a conditional PutItem, so the store itself serializes concurrent
// creates; there is no read-modify-write of a collection snapshot anywhere.

type BookingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb *dynamodb.Client) *BookingDynamoRepository {
	return &BookingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BOOKINGS_TABLE", defaultBookingsTableName),
	}
}

func (r *BookingDynamoRepository) Append(ctx context.Context, b entities.BookingRecord) (entities.BookingRecord, error) {
	av, err := attributevalue.MarshalMap(toBookingItem(b))
	if err != nil {
		return entities.BookingRecord{}, err
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
		return entities.BookingRecord{}, err
	}
	return b, nil
}

func (r *BookingDynamoRepository) GetByID(ctx context.Context, id string) (entities.BookingRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BookingRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.BookingRecord{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		// Unreadable persisted data degrades to "absent", not a fatal error.
		return entities.BookingRecord{}, nil
	}
	return fromBookingItem(it), nil
}

func (r *BookingDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.BookingStatus) (entities.BookingRecord, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.BookingRecord{}, nil
		}
		return entities.BookingRecord{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.BookingRecord{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.BookingRecord{}, err
	}
	return fromBookingItem(it), nil
}

func (r *BookingDynamoRepository) ListByEmail(ctx context.Context, email string) ([]entities.BookingRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(bookingsEmailIndex),
		KeyConditionExpression: aws.String("#email = :email"),
		ExpressionAttributeNames: map[string]string{
			"#email": "requester_email",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
	})
	if err != nil {
		return nil, err
	}

	records := make([]entities.BookingRecord, 0, len(out.Items))
	for _, raw := range out.Items {
		var it bookingItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			continue
		}
		records = append(records, fromBookingItem(it))
	}
	return records, nil
}

func toBookingItem(b entities.BookingRecord) bookingItem {
	it := bookingItem{
		ID:               b.ID,
		ItemID:           b.ItemID,
		Category:         string(b.Category),
		RequesterName:    b.RequesterName,
		RequesterEmail:   b.RequesterEmail,
		ParticipantCount: b.ParticipantCount,
		TotalAmount:      floatToString(b.TotalPrice.Amount),
		Currency:         string(b.TotalPrice.Currency),
		Status:           string(b.Status),
		Notes:            b.Notes,
		VehicleModel:     b.Attachments.VehicleModel,
		DriverName:       b.Attachments.DriverName,
		PackageName:      b.Attachments.PackageName,
		TimeSlot:         b.Attachments.TimeSlot,
		CreatedAt:        b.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if b.DateRange != nil {
		it.StartDate = b.DateRange.Start
		it.EndDate = b.DateRange.End
	}
	return it
}

func fromBookingItem(it bookingItem) entities.BookingRecord {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	b := entities.BookingRecord{
		ID:               it.ID,
		ItemID:           it.ItemID,
		Category:         entities.Category(it.Category),
		RequesterName:    it.RequesterName,
		RequesterEmail:   it.RequesterEmail,
		ParticipantCount: it.ParticipantCount,
		TotalPrice: entities.Money{
			Amount:   stringToFloat(it.TotalAmount),
			Currency: entities.CurrencyCode(it.Currency),
		},
		Status: entities.BookingStatus(it.Status),
		Notes:  it.Notes,
		Attachments: entities.Attachments{
			VehicleModel: it.VehicleModel,
			DriverName:   it.DriverName,
			PackageName:  it.PackageName,
			TimeSlot:     it.TimeSlot,
		},
		CreatedAt: createdAt,
	}
	if it.StartDate != "" {
		b.DateRange = &entities.DateRange{Start: it.StartDate, End: it.EndDate}
	}
	return b
}
