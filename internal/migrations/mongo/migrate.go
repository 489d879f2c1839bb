package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"roomly/internal/catalog/seed"
	"roomly/internal/migrations/mongo/validators"
)

var (
	FacilitiesIndexes = []mongo.IndexModel{
		{Keys: bson.D{{Key: "city", Value: 1}}},
	}

	RoomsIndexes = []mongo.IndexModel{
		{Keys: bson.D{
			{Key: "facility_id", Value: 1},
			{Key: "_id", Value: 1},
		}},
	}
)

// RunMigration ensures the catalog collections exist with their
// schema validators and indexes, then loads the reference data.
// Re-running is safe: seeding replaces documents by id.
func RunMigration(ctx context.Context, client *mongo.Client, dbName string) error {
	db := client.Database(dbName)
	fmt.Printf("🚀 Running Roomly Mongo migrations on database: %s\n", dbName)

	collections := map[string]struct {
		Indexes   []mongo.IndexModel
		Validator bson.M
	}{
		"Facilities": {
			Indexes:   FacilitiesIndexes,
			Validator: validators.FacilityValidator,
		},
		"Rooms": {
			Indexes:   RoomsIndexes,
			Validator: validators.RoomValidator,
		},
	}

	for name, def := range collections {
		if err := ensureCollection(ctx, db, name, def.Validator); err != nil {
			return fmt.Errorf("failed to ensure collection %s: %w", name, err)
		}
		if err := ensureIndexes(ctx, db, name, def.Indexes); err != nil {
			return fmt.Errorf("failed to ensure indexes for %s: %w", name, err)
		}
	}

	if err := seedCatalog(ctx, db); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	fmt.Println("✅ All migrations applied successfully.")
	return nil
}

func ensureCollection(ctx context.Context, db *mongo.Database, name string, validator bson.M) error {
	existing, err := db.ListCollectionNames(ctx, bson.D{{Key: "name", Value: name}})
	if err != nil {
		return err
	}

	if len(existing) == 0 {
		fmt.Printf("🆕 Creating collection: %s\n", name)
		opts := options.CreateCollection().SetValidator(validator)
		if err := db.CreateCollection(ctx, name, opts); err != nil {
			return fmt.Errorf("failed creating %s: %w", name, err)
		}
	} else {
		fmt.Printf("ℹ️ Collection %s already exists — updating validator if needed\n", name)
		command := bson.D{
			{Key: "collMod", Value: name},
			{Key: "validator", Value: validator},
		}
		if err := db.RunCommand(ctx, command).Err(); err != nil {
			fmt.Printf("⚠️ Warning: failed updating validator for %s: %v\n", name, err)
		}
	}

	return nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database, name string, models []mongo.IndexModel) error {
	coll := db.Collection(name)
	_, err := coll.Indexes().CreateMany(ctx, models)
	if err != nil {
		return err
	}
	fmt.Printf("📚 Ensured indexes for %s\n", name)
	return nil
}

func seedCatalog(ctx context.Context, db *mongo.Database) error {
	opts := options.Replace().SetUpsert(true)

	facilities := db.Collection("Facilities")
	for _, f := range seed.Facilities() {
		filter := bson.M{"_id": f.ID}
		if _, err := facilities.ReplaceOne(ctx, filter, f, opts); err != nil {
			return fmt.Errorf("failed upserting facility %d: %w", f.ID, err)
		}
	}

	rooms := db.Collection("Rooms")
	for _, room := range seed.Rooms() {
		filter := bson.M{"_id": room.ID}
		if _, err := rooms.ReplaceOne(ctx, filter, room, opts); err != nil {
			return fmt.Errorf("failed upserting room %d: %w", room.ID, err)
		}
	}

	fmt.Printf("🌱 Seeded %d facilities and %d rooms\n", len(seed.Facilities()), len(seed.Rooms()))
	return nil
}
