package repository

type ItemEntity struct {
	ID         string `bson:"_id"`
	Name       string `bson:"name"`
	Reference  string `bson:"reference"`
	PriceCents int64  `bson:"price_cents"`
	Stock      int64  `bson:"stock"`
}
