package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/cyl-castillo/eco-mercado/internal/models"
)

// DefaultSQLitePath is used when no DATABASE_URL is configured.
const DefaultSQLitePath = "app.db"

func configurePool(sqlDB *sql.DB) {
	const (
		maxOpenConns    = 20
		maxIdleConns    = 10
		connMaxLifetime = 30 * time.Minute
		connMaxIdleTime = 5 * time.Minute
	)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)
}

// Open connects to postgres when dsn is non-empty, otherwise to a local
// sqlite file, and migrates the marketplace tables.
func Open(ctx context.Context, dsn string) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	if dsn != "" {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			PrepareStmt: true,
			NowFunc:     func() time.Time { return time.Now().UTC() },
		})
	} else {
		db, err = gorm.Open(sqlite.Open(DefaultSQLitePath), &gorm.Config{})
	}
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := db.AutoMigrate(&models.Product{}, &models.RepairService{}, &models.User{}); err != nil {
		return nil, fmt.Errorf("migrate tables: %w", err)
	}

	if dsn != "" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("unwrap sql.DB: %w", err)
		}
		configurePool(sqlDB)

		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := sqlDB.PingContext(pingCtx); err != nil {
			return nil, fmt.Errorf("ping database: %w", err)
		}
	}

	return db, nil
}

// Seed inserts the demo catalogue and the repair directory on first run.
// Existing rows are left untouched.
func Seed(db *gorm.DB) error {
	var productCount int64
	if err := db.Model(&models.Product{}).Count(&productCount).Error; err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if productCount == 0 {
		products := seedProducts()
		if err := db.Create(&products).Error; err != nil {
			return fmt.Errorf("seed products: %w", err)
		}
	}

	var repairCount int64
	if err := db.Model(&models.RepairService{}).Count(&repairCount).Error; err != nil {
		return fmt.Errorf("count repairs: %w", err)
	}
	if repairCount == 0 {
		repairs := seedRepairs()
		if err := db.Create(&repairs).Error; err != nil {
			return fmt.Errorf("seed repairs: %w", err)
		}
	}

	return nil
}

func seedProducts() []models.Product {
	return []models.Product{
		{
			Name:        "Chaqueta de cuero vintage",
			Description: "Chaqueta en buen estado, talla M.",
			Category:    "ropa",
			Price:       45.0,
			Image:       "https://images.unsplash.com/photo-1497204085333-6bfcbfd9acef?auto=format&fit=crop&w=400&q=60",
		},
		{
			Name:        "Smartphone reacondicionado",
			Description: "Teléfono inteligente reacondicionado, 64 GB de almacenamiento.",
			Category:    "electronica",
			Price:       150.0,
			Image:       "https://images.unsplash.com/photo-1512499617640-c2f999098137?auto=format&fit=crop&w=400&q=60",
		},
		{
			Name:        "Mesa de madera reciclada",
			Description: "Mesa hecha con madera recuperada, ideal para comedor o trabajo.",
			Category:    "muebles",
			Price:       80.0,
			Image:       "https://images.unsplash.com/photo-1503602642458-232111445657?auto=format&fit=crop&w=400&q=60",
		},
		{
			Name:        "Zapatillas deportivas retro",
			Description: "Modelo clásico en buen estado, talla 42.",
			Category:    "ropa",
			Price:       30.0,
			Image:       "https://images.unsplash.com/photo-1514053026555-49d21d1127a0?auto=format&fit=crop&w=400&q=60",
		},
	}
}

func seedRepairs() []models.RepairService {
	return []models.RepairService{
		{
			Name:        "Reparación de teléfonos",
			Description: "Servicio especializado en reparación de smartphones y tablets: cambio de pantallas, baterías y puertos.",
			Contact:     "reparasmart@example.com",
		},
		{
			Name:        "Costurera y sastrería",
			Description: "Arreglos de ropa, ajuste de prendas, cambio de cremalleras y dobladillos. Servicio rápido y de confianza.",
			Contact:     "costurera@example.com",
		},
		{
			Name:        "Carpintero",
			Description: "Reparación y restauración de muebles de madera, sillas, mesas y armarios. Reacabados y personalización.",
			Contact:     "carpintero@example.com",
		},
	}
}
