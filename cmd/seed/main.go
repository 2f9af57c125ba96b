package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"tambar-be/internal/config"
	"tambar-be/internal/db"
	"tambar-be/internal/product"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type seedProduct struct {
	Name        string
	Description string
	CostPrice   float64
	SalePrice   float64
	Margin      float64
	Stock       int
	MinStock    int
	Supplier    string
	Category    product.Category
	ImageURL    string
}

type seedCustomer struct {
	Name              string
	Phone             string
	Email             string
	Address           string
	TotalPurchases    float64
	LoyaltyPoints     int
	PreferredProducts []string
}

var sampleProducts = []seedProduct{
	{
		Name:        "Cerveza Pilsener 330ml",
		Description: "Cerveza nacional boliviana, botella de vidrio 330ml",
		CostPrice:   3.50, SalePrice: 6.00, Margin: 71.43,
		Stock: 48, MinStock: 20,
		Supplier: "Cervecería Boliviana Nacional",
		Category: product.CategoryBeers,
		ImageURL: "https://images.unsplash.com/photo-1608270586620-248524c67de9?w=300",
	},
	{
		Name:        "Vino Kohlberg Tinto",
		Description: "Vino tinto boliviano de Tarija, cosecha 2022",
		CostPrice:   45.00, SalePrice: 75.00, Margin: 66.67,
		Stock: 12, MinStock: 5,
		Supplier: "Bodegas Kohlberg",
		Category: product.CategoryWines,
		ImageURL: "https://images.unsplash.com/photo-1506377247377-2a5b3b417ebb?w=300",
	},
	{
		Name:        "Singani Casa Real",
		Description: "Singani boliviano premium, botella 750ml",
		CostPrice:   65.00, SalePrice: 95.00, Margin: 46.15,
		Stock: 8, MinStock: 10,
		Supplier: "Casa Real",
		Category: product.CategorySpirits,
		ImageURL: "https://images.unsplash.com/photo-1569529465841-dfecdab7503b?w=300",
	},
	{
		Name:        "Whisky Johnnie Walker Red",
		Description: "Whisky escocés Red Label, 750ml",
		CostPrice:   120.00, SalePrice: 180.00, Margin: 50.00,
		Stock: 6, MinStock: 8,
		Supplier: "Importadora Boliviana",
		Category: product.CategoryWhiskey,
		ImageURL: "https://images.unsplash.com/photo-1527281400683-1aae777175f8?w=300",
	},
	{
		Name:        "Vodka Smirnoff",
		Description: "Vodka premium importado, 750ml",
		CostPrice:   85.00, SalePrice: 130.00, Margin: 52.94,
		Stock: 15, MinStock: 10,
		Supplier: "Importadora Premium",
		Category: product.CategoryVodka,
		ImageURL: "https://images.unsplash.com/photo-1551538827-9c037cb4f32a?w=300",
	},
	{
		Name:        "Ron Bacardi Superior",
		Description: "Ron blanco caribeño, 750ml",
		CostPrice:   70.00, SalePrice: 110.00, Margin: 57.14,
		Stock: 9, MinStock: 12,
		Supplier: "Distribuidora Caribe",
		Category: product.CategoryRum,
		ImageURL: "https://images.unsplash.com/photo-1514362545857-3bc16c4c7d1b?w=300",
	},
	{
		Name:        "Cerveza Corona Extra",
		Description: "Cerveza mexicana importada, 355ml",
		CostPrice:   8.00, SalePrice: 14.00, Margin: 75.00,
		Stock: 24, MinStock: 15,
		Supplier: "Importadora México",
		Category: product.CategoryBeers,
		ImageURL: "https://images.unsplash.com/photo-1608032664297-6195e2a39e30?w=300",
	},
	{
		Name:        "Pisco Control C",
		Description: "Pisco peruano premium, 750ml",
		CostPrice:   55.00, SalePrice: 85.00, Margin: 54.55,
		Stock: 7, MinStock: 10,
		Supplier: "Importadora Perú",
		Category: product.CategorySpirits,
		ImageURL: "https://images.unsplash.com/photo-1582821456916-1a4e2c9b5f86?w=300",
	},
}

var sampleCustomers = []seedCustomer{
	{
		Name: "Carlos Mendoza", Phone: "59170001234", Email: "carlos@email.com",
		Address: "Zona Sur, La Paz", TotalPurchases: 450.50, LoyaltyPoints: 45,
		PreferredProducts: []string{"Cerveza Pilsener 330ml", "Vino Kohlberg Tinto"},
	},
	{
		Name: "María García", Phone: "59170005678", Email: "maria@email.com",
		Address: "Sopocachi, La Paz", TotalPurchases: 320.00, LoyaltyPoints: 32,
		PreferredProducts: []string{"Whisky Johnnie Walker Red"},
	},
	{
		Name: "Roberto Silva", Phone: "59170009999", Email: "roberto@email.com",
		Address: "Centro, La Paz", TotalPurchases: 180.75, LoyaltyPoints: 18,
		PreferredProducts: []string{"Singani Casa Real", "Ron Bacardi Superior"},
	},
}

func main() {
	cfg := config.LoadConfig()

	database, err := db.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("failed to connect db: %v", err)
	}
	defer database.Close()

	fmt.Println("🌱 Iniciando inserción de datos de prueba...")

	if err := seed(database); err != nil {
		log.Fatal(err)
	}
}

func seed(database *sql.DB) error {
	inserted, err := seedProducts(database)
	if err != nil {
		return err
	}
	fmt.Printf("📦 %d productos insertados\n", inserted)

	inserted, err = seedCustomers(database)
	if err != nil {
		return err
	}
	fmt.Printf("👥 %d clientes insertados\n", inserted)

	fmt.Println("✅ Datos de prueba insertados exitosamente!")
	return nil
}

// seedProducts inserts each sample product unless one with the same name
// already exists, so re-running the seeder does not duplicate rows.
func seedProducts(database *sql.DB) (int, error) {
	inserted := 0
	for _, p := range sampleProducts {
		res, err := database.Exec(`
			INSERT INTO products (
				id, name, description, cost_price, sale_price, margin,
				stock, min_stock, supplier, category, image_url, created_at
			)
			SELECT $1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12
			WHERE NOT EXISTS (SELECT 1 FROM products WHERE name = $2)
		`,
			uuid.New().String(), p.Name, p.Description, p.CostPrice, p.SalePrice, p.Margin,
			p.Stock, p.MinStock, p.Supplier, p.Category, p.ImageURL, time.Now().UTC(),
		)
		if err != nil {
			return inserted, fmt.Errorf("failed to seed product %s: %w", p.Name, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			inserted++
		}
	}
	return inserted, nil
}

func seedCustomers(database *sql.DB) (int, error) {
	inserted := 0
	for _, c := range sampleCustomers {
		res, err := database.Exec(`
			INSERT INTO customers (
				id, name, phone, email, address,
				total_purchases, loyalty_points, preferred_products, created_at
			)
			SELECT $1,$2,$3,$4,$5,$6,$7,$8,$9
			WHERE NOT EXISTS (SELECT 1 FROM customers WHERE phone = $3)
		`,
			uuid.New().String(), c.Name, c.Phone, c.Email, c.Address,
			c.TotalPurchases, c.LoyaltyPoints, pq.Array(c.PreferredProducts), time.Now().UTC(),
		)
		if err != nil {
			return inserted, fmt.Errorf("failed to seed customer %s: %w", c.Name, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			inserted++
		}
	}
	return inserted, nil
}
