package repository

import (
	"context"

	"github.com/SUmit-kush123/bookin.com-sub000/internal/domain/entities"
	"github.com/SUmit-kush123/bookin.com-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultItemsTableName = "items"

type catalogItem struct {
	ID             string   `dynamodbav:"id"`
	Name           string   `dynamodbav:"name"`
	Category       string   `dynamodbav:"category"`
	PricePerNight  string   `dynamodbav:"price_per_night,omitempty"`
	PricePerPerson string   `dynamodbav:"price_per_person,omitempty"`
	Price          string   `dynamodbav:"price,omitempty"`
	Currency       string   `dynamodbav:"currency"`
	BlockedDates   []string `dynamodbav:"blocked_dates,omitempty"`
	Lat            float64  `dynamodbav:"lat,omitempty"`
	Lng            float64  `dynamodbav:"lng,omitempty"`
}

// CatalogDynamoRepository reads ReservableItem entities from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The booking engine treats the catalog as read-only; seeding and editing
// happen outside this service.

type CatalogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ITEMS_TABLE", defaultItemsTableName),
	}
}

func (r *CatalogDynamoRepository) GetByID(ctx context.Context, id string) (entities.ReservableItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.ReservableItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.ReservableItem{}, nil
	}

	var it catalogItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ReservableItem{}, nil
	}
	return fromCatalogItem(it), nil
}

func (r *CatalogDynamoRepository) List(ctx context.Context) ([]entities.ReservableItem, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ReservableItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var it catalogItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			continue
		}
		items = append(items, fromCatalogItem(it))
	}
	return items, nil
}

func fromCatalogItem(it catalogItem) entities.ReservableItem {
	item := entities.ReservableItem{
		ID:             it.ID,
		Name:           it.Name,
		Category:       entities.Category(it.Category),
		PricePerNight:  stringToFloat(it.PricePerNight),
		PricePerPerson: stringToFloat(it.PricePerPerson),
		Price:          stringToFloat(it.Price),
		Currency:       entities.CurrencyCode(it.Currency),
		BlockedDates:   it.BlockedDates,
	}
	if it.Lat != 0 || it.Lng != 0 {
		item.Location = &entities.LatLng{Lat: it.Lat, Lng: it.Lng}
	}
	return item
}
