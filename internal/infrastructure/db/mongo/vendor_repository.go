package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/surojitbera2/inventory/internal/core/domain"
)

const vendorsCollection = "vendors"

type VendorRepository struct {
	coll *mongo.Collection
}

func NewVendorRepository(db *mongo.Database) *VendorRepository {
	return &VendorRepository{coll: db.Collection(vendorsCollection)}
}

func (r *VendorRepository) Insert(ctx context.Context, v *domain.Vendor) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, v)
	return err
}

func (r *VendorRepository) FindByID(ctx context.Context, id string) (*domain.Vendor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var v domain.Vendor
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&v); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrVendorNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *VendorRepository) List(ctx context.Context) ([]*domain.Vendor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var vendors []*domain.Vendor
	if err := cur.All(ctx, &vendors); err != nil {
		return nil, err
	}
	return vendors, nil
}

func (r *VendorRepository) Replace(ctx context.Context, id string, v *domain.Vendor) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": id}, v)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrVendorNotFound
	}
	return nil
}

func (r *VendorRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrVendorNotFound
	}
	return nil
}

func (r *VendorRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.coll.CountDocuments(ctx, bson.M{})
}
