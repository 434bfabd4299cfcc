package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/surojitbera2/inventory/internal/core/domain"
)

const salesCollection = "sales"

// SaleRepository persists immutable sale records. Only insert and read
// operations exist; sales are never replaced or deleted.
type SaleRepository struct {
	coll *mongo.Collection
}

func NewSaleRepository(db *mongo.Database) *SaleRepository {
	return &SaleRepository{coll: db.Collection(salesCollection)}
}

func (r *SaleRepository) Insert(ctx context.Context, s *domain.Sale) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, s)
	return err
}

func (r *SaleRepository) FindByID(ctx context.Context, id string) (*domain.Sale, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Sale
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSaleNotFound
		}
		return nil, err
	}
	return &s, nil
}

// List returns all sales, newest first.
func (r *SaleRepository) List(ctx context.Context) ([]*domain.Sale, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var sales []*domain.Sale
	if err := cur.All(ctx, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}
