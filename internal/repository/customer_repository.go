package repository

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rmussard/easyloc-api/internal/model"
)

type CustomerRepository struct {
	col *mongo.Collection
}

func NewCustomerRepository(database *mongo.Database) *CustomerRepository {
	return &CustomerRepository{col: database.Collection("customers")}
}

// Find lists customers matching an equality filter, optionally sorted.
// sortDir is 1 or -1; an empty sortField leaves the natural order.
func (r *CustomerRepository) Find(ctx context.Context, filter map[string]interface{}, sortField string, sortDir int) ([]model.Customer, error) {
	opts := options.Find()
	if sortField != "" {
		opts.SetSort(bson.D{{Key: sortField, Value: sortDir}})
	}
	cursor, err := r.col.Find(ctx, bson.M(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	customers := []model.Customer{}
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Customer, error) {
	var customer model.Customer
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepository) ExistsByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	count, err := r.col.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByName is the natural-key lookup, case insensitive.
func (r *CustomerRepository) FindByName(ctx context.Context, lastName, firstName string) (*model.Customer, error) {
	filter := bson.M{
		"last_name":  caseInsensitive(lastName),
		"first_name": caseInsensitive(firstName),
	}
	var customer model.Customer
	if err := r.col.FindOne(ctx, filter).Decode(&customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// FindByExactName backs the uniqueness pre-check on the trimmed name pair.
func (r *CustomerRepository) FindByExactName(ctx context.Context, firstName, lastName string) (*model.Customer, error) {
	filter := bson.M{"first_name": firstName, "last_name": lastName}
	var customer model.Customer
	if err := r.col.FindOne(ctx, filter).Decode(&customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepository) Insert(ctx context.Context, customer model.Customer) (*model.Customer, error) {
	now := time.Now().UTC()
	customer.ID = primitive.NewObjectID()
	customer.CreatedAt = now
	customer.UpdatedAt = now
	if _, err := r.col.InsertOne(ctx, customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*model.Customer, error) {
	update := bson.M{
		"$set":         bson.M(fields),
		"$currentDate": bson.M{"updated_at": true},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var customer model.Customer
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*model.Customer, error) {
	var customer model.Customer
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func caseInsensitive(value string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(value) + "$", Options: "i"}
}
