package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/surojitbera2/inventory/internal/core/domain"
)

const companyCollection = "company"

// CompanyRepository persists the single company-profile document.
type CompanyRepository struct {
	coll *mongo.Collection
}

func NewCompanyRepository(db *mongo.Database) *CompanyRepository {
	return &CompanyRepository{coll: db.Collection(companyCollection)}
}

// Find returns the profile document. The collection holds at most one.
func (r *CompanyRepository) Find(ctx context.Context) (*domain.CompanyProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.CompanyProfile
	if err := r.coll.FindOne(ctx, bson.M{}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *CompanyRepository) Insert(ctx context.Context, p *domain.CompanyProfile) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, p)
	return err
}

func (r *CompanyRepository) Replace(ctx context.Context, id string, p *domain.CompanyProfile) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": id}, p)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrCompanyNotFound
	}
	return nil
}
