// Command seed wipes and repopulates the products collection and upserts a
// default login so the API is usable immediately after a fresh start.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"productcatalog/internal/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

var baseProducts = []struct {
	Name  string
	Price float64
}{
	{"Laptop", 999.99},
	{"Mouse", 29.99},
	{"Monitor", 199.99},
	{"Keyboard", 49.99},
	{"Headset", 89.99},
	{"Webcam", 59.99},
	{"Docking Station", 149.99},
	{"USB-C Cable", 12.50},
	{"Desk Lamp", 34.90},
	{"Office Chair", 189.00},
}

func main() {
	var (
		count    = flag.Int("count", 100, "number of products to seed")
		username = flag.String("username", "admin", "seed login username")
		password = flag.String("password", "admin123", "seed login password")
	)
	flag.Parse()

	env := config.LoadEnv()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := config.ConnectMongo(ctx, env)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	products := db.Collection("products")
	if _, err := products.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear products: %v", err)
	}

	docs := make([]interface{}, 0, *count)
	for i := 0; i < *count; i++ {
		base := baseProducts[i%len(baseProducts)]
		name := base.Name
		if i >= len(baseProducts) {
			name = fmt.Sprintf("%s %d", base.Name, i/len(baseProducts)+1)
		}
		docs = append(docs, bson.M{"name": name, "price": base.Price})
	}
	if _, err := products.InsertMany(ctx, docs); err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	users := db.Collection("users")
	_, err = users.UpdateOne(ctx,
		bson.M{"username": *username},
		bson.M{"$set": bson.M{"username": *username, "password_hash": string(hash)}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		log.Fatalf("Failed to seed user: %v", err)
	}

	log.Printf("Seeded %d products and user %q into %s", len(docs), *username, env.MongoDB)
}
