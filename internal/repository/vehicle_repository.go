package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rmussard/easyloc-api/internal/model"
)

type VehicleRepository struct {
	col *mongo.Collection
}

func NewVehicleRepository(database *mongo.Database) *VehicleRepository {
	return &VehicleRepository{col: database.Collection("vehicles")}
}

func (r *VehicleRepository) Find(ctx context.Context, filter map[string]interface{}, sortField string, sortDir int) ([]model.Vehicle, error) {
	opts := options.Find()
	if sortField != "" {
		opts.SetSort(bson.D{{Key: sortField, Value: sortDir}})
	}
	cursor, err := r.col.Find(ctx, bson.M(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	vehicles := []model.Vehicle{}
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *VehicleRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *VehicleRepository) ExistsByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	count, err := r.col.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByPlate is the natural-key lookup, case insensitive.
func (r *VehicleRepository) FindByPlate(ctx context.Context, licencePlate string) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	if err := r.col.FindOne(ctx, bson.M{"licence_plate": caseInsensitive(licencePlate)}).Decode(&vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// FindByExactPlate backs the uniqueness pre-check on the trimmed plate.
func (r *VehicleRepository) FindByExactPlate(ctx context.Context, licencePlate string) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	if err := r.col.FindOne(ctx, bson.M{"licence_plate": licencePlate}).Decode(&vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *VehicleRepository) Insert(ctx context.Context, vehicle model.Vehicle) (*model.Vehicle, error) {
	now := time.Now().UTC()
	vehicle.ID = primitive.NewObjectID()
	vehicle.CreatedAt = now
	vehicle.UpdatedAt = now
	if _, err := r.col.InsertOne(ctx, vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *VehicleRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*model.Vehicle, error) {
	update := bson.M{
		"$set":         bson.M(fields),
		"$currentDate": bson.M{"updated_at": true},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var vehicle model.Vehicle
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *VehicleRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}
