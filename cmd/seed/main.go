package main

import (
	"database/sql"
	"encoding/json"
	"log"
	"time"

	"loopa-be/internal/config"
	"loopa-be/internal/db"
	"loopa-be/internal/pickup"
	"loopa-be/internal/sample"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

// Seeds the demo neighborhood: two makers, their listings, the starter
// categories, and one available sample. Wipes existing rows first.
func main() {
	cfg := config.LoadConfig()
	database := db.InitDB(cfg)
	defer database.Close()

	if err := seed(database); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	log.Println("seed complete")
}

func seed(database *sql.DB) error {
	tx, err := database.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"samples", "order_items", "orders", "products", "categories", "sellers", "users"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return err
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	userID := uuid.NewString()
	if _, err := tx.Exec(`
		INSERT INTO users (id, email, name, password)
		VALUES ($1, $2, $3, $4)
	`, userID, "seller@loopa.app", "The Candle Nook Owner", string(hashed)); err != nil {
		return err
	}

	candleSellerID := uuid.NewString()
	if _, err := tx.Exec(`
		INSERT INTO sellers (id, user_id, name, description, latitude, longitude,
		                     pickup_days, pickup_start_time, pickup_end_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, candleSellerID, userID, "The Candle Nook", "Handcrafted candles for your home.",
		40.94, -123.63, "Mon-Fri", "17:00", "19:00"); err != nil {
		return err
	}

	candleWindows, err := json.Marshal([]pickup.Window{{
		Days:      "Mon-Fri",
		StartTime: "17:00",
		EndTime:   "19:00",
		Formatted: "Mon-Fri 5:00 PM - 7:00 PM",
	}})
	if err != nil {
		return err
	}
	candleLocation, err := json.Marshal(pickup.Location{
		Address:       "88 Oak Ave, Willow Creek",
		Latitude:      40.9382,
		Longitude:     -123.6321,
		DistanceMiles: 1.2,
		IsExact:       false,
	})
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`
		INSERT INTO products (id, seller_id, title, description, price, currency,
		                      quantity_available, quantity_left, images, primary_image,
		                      image_url, category, tags, badges, pickup_windows, pickup_location)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`, uuid.NewString(), candleSellerID,
		"Lavender & Sage Candle", "Calming scent.", "15.00", "USD", 12, 12,
		pq.Array([]string{
			"https://cdn.loopa.app/products/candle-1.jpg",
			"https://cdn.loopa.app/products/candle-2.jpg",
		}),
		"https://cdn.loopa.app/products/candle-main.jpg",
		"https://cdn.loopa.app/products/candle-main.jpg",
		"body",
		pq.Array([]string{"soy", "handmade", "sustainable", "aromatherapy"}),
		pq.Array([]string{"Handmade", "Organic"}),
		candleWindows, candleLocation); err != nil {
		return err
	}

	categories := []struct {
		label string
		icon  string
		count int
	}{
		{"All", "home", 0},
		{"Bakery", "croissant", 14},
		{"Sweets", "cookie", 9},
		{"Body", "soap", 11},
	}
	for _, c := range categories {
		if _, err := tx.Exec(`
			INSERT INTO categories (id, label, icon, is_active, count)
			VALUES ($1, $2, $3, TRUE, $4)
		`, uuid.NewString(), c.label, c.icon, c.count); err != nil {
			return err
		}
	}

	jamSellerID := uuid.NewString()
	if _, err := tx.Exec(`
		INSERT INTO sellers (id, user_id, name, description, latitude, longitude,
		                     pickup_days, pickup_start_time, pickup_end_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, jamSellerID, userID, "Sarah's Kitchen", "Small-batch artisan jams and preserves.",
		40.9401, -123.6305, "Sat-Sun", "10:00", "16:00"); err != nil {
		return err
	}

	jamProductID := uuid.NewString()
	if _, err := tx.Exec(`
		INSERT INTO products (id, seller_id, title, description, price, currency,
		                      quantity_available, quantity_left, images, primary_image,
		                      category, tags, badges)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, jamProductID, jamSellerID,
		"Spiced Peach & Honey Jam",
		"Testing a new small-batch recipe using local orchard peaches.",
		"0.00", "USD", 5, 5,
		pq.Array([]string{"https://cdn.loopa.app/products/peach-jam.jpg"}),
		"https://cdn.loopa.app/products/peach-jam.jpg",
		"food",
		pq.Array([]string{"sample", "jam", "local"}),
		pq.Array([]string{"Free Sample"})); err != nil {
		return err
	}

	sampleWindows, err := json.Marshal([]sample.Window{
		{ID: "win_1", Day: "Tomorrow", StartTime: "15:00", EndTime: "17:00", Formatted: "Tomorrow 3:00–5:00 PM", Available: true},
		{ID: "win_2", Day: "Sat", StartTime: "10:00", EndTime: "12:00", Formatted: "Sat 10:00 AM–12:00 PM", Available: true},
	})
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`
		INSERT INTO samples (id, seller_id, product_id, status, pickup_windows, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, uuid.NewString(), jamSellerID, jamProductID, string(sample.StatusAvailable),
		sampleWindows, time.Now().Add(48*time.Hour)); err != nil {
		return err
	}

	return tx.Commit()
}
