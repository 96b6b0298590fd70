package repository

import (
	"context"

	"github.com/SUmit-kush123/bookin.com-sub000/internal/domain/entities"
	"github.com/SUmit-kush123/bookin.com-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPreferencesTableName = "preferences"

// PreferenceDynamoRepository stores per-user display preferences.
//
// Table requirements:
//   - PK: user_id (string)
//
// Preferences live in their own key space; booking writes never touch this
// table and vice versa.

type PreferenceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPreferenceRepository = (*PreferenceDynamoRepository)(nil)

func NewPreferenceDynamoRepository(ddb *dynamodb.Client) *PreferenceDynamoRepository {
	return &PreferenceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PREFERENCES_TABLE", defaultPreferencesTableName),
	}
}

func (r *PreferenceDynamoRepository) GetDisplayCurrency(ctx context.Context, userID string) (entities.CurrencyCode, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return "", err
	}
	if len(out.Item) == 0 {
		return "", nil
	}

	attr, ok := out.Item["display_currency"].(*types.AttributeValueMemberS)
	if !ok {
		return "", nil
	}
	return entities.CurrencyCode(attr.Value), nil
}

func (r *PreferenceDynamoRepository) SetDisplayCurrency(ctx context.Context, userID string, c entities.CurrencyCode) error {
	_, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item: map[string]types.AttributeValue{
			"user_id":          &types.AttributeValueMemberS{Value: userID},
			"display_currency": &types.AttributeValueMemberS{Value: string(c)},
		},
	})
	return err
}
