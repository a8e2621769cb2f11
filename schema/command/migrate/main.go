package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/vitals-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("vitals")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE SCHEMA IF NOT EXISTS vitals`).Error; err != nil {
		panic(err)
	}

	if err := db.Exec("SET search_path TO vitals").Error; err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(
		&schema.Account{},
		&schema.AccountProfile{},
	).Error; err != nil {
		panic(err)
	}

	if err := db.Model(schema.AccountProfile{}).
		AddUniqueIndex("account_profile_account_number", "account_number").Error; err != nil {
		panic(err)
	}

	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()

	err = migrateMongo()
	if nil != err {
		panic(err)
	}
}

func migrateMongo() error {
	ctx := context.Background()
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(1)
	client, err := mongo.NewClient(opts)
	if err != nil {
		return err
	}
	if err := client.Connect(ctx); err != nil {
		return err
	}
	defer client.Disconnect(ctx)

	if err := backfillProfiles(ctx, client); err != nil {
		fmt.Println("failed to back fill collection `profile`: ", err)
		return err
	}

	return nil
}

// backfillProfiles gives profiles written before tracking existed the
// array fields the atomic set updates rely on
func backfillProfiles(ctx context.Context, client *mongo.Client) error {
	fmt.Println("back fill profile collection")
	c := client.Database(viper.GetString("mongo.database")).Collection(schema.ProfileCollection)

	for _, field := range []string{"tracked_metrics", "authorized_institutions"} {
		result, err := c.UpdateMany(ctx,
			bson.M{"$or": bson.A{
				bson.M{field: bson.M{"$exists": false}},
				bson.M{field: nil},
			}},
			bson.M{"$set": bson.M{field: bson.A{}}},
		)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d profiles updated\n", field, result.ModifiedCount)
	}

	return nil
}
