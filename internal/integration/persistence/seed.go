package persistence

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ecotrack/backend/internal/application/adapter"
	"github.com/ecotrack/backend/internal/integration/persistence/model"
)

type seedCategory struct {
	name       string
	factor     float64
	unit       string
	color      string
	activities []string
}

type seedRecommendation struct {
	category    string
	title       string
	description string
	savingKg    float64
	icon        string
}

// Factors are kg CO2e per unit.
var defaultCategories = []seedCategory{
	{name: "Transporte", factor: 0.21, unit: "km", color: "#3B82F6", activities: []string{
		"Conducir coche", "Viajar en autobús", "Viajar en moto", "Taxi o VTC",
	}},
	{name: "Energía", factor: 0.25, unit: "kWh", color: "#F59E0B", activities: []string{
		"Consumo eléctrico", "Calefacción", "Aire acondicionado",
	}},
	{name: "Alimentación", factor: 2.5, unit: "kg", color: "#EF4444", activities: []string{
		"Consumo de carne roja", "Consumo de lácteos", "Comida procesada",
	}},
	{name: "Residuos", factor: 0.45, unit: "kg", color: "#8B5CF6", activities: []string{
		"Basura sin reciclar", "Plásticos de un solo uso",
	}},
	{name: "Agua", factor: 0.0003, unit: "l", color: "#06B6D4", activities: []string{
		"Ducha", "Lavadora",
	}},
}

var defaultRecommendations = []seedRecommendation{
	{"Transporte", "Usa la bicicleta", "Sustituye trayectos cortos en coche por la bicicleta.", 30, "bike"},
	{"Transporte", "Usa el transporte público", "El autobús o el metro reducen las emisiones por pasajero.", 45, "bus"},
	{"Energía", "Apaga los dispositivos", "Desconecta los aparatos en espera cuando no los uses.", 10, "power"},
	{"Energía", "Cambia a bombillas LED", "Las bombillas LED consumen hasta un 80% menos.", 15, "lightbulb"},
	{"Alimentación", "Reduce el consumo de carne", "Sustituye la carne roja por legumbres algunos días a la semana.", 50, "salad"},
	{"Residuos", "Recicla tus residuos", "Separa envases, papel y vidrio en sus contenedores.", 25, "recycle"},
	{"Agua", "Acorta tus duchas", "Una ducha de cinco minutos ahorra agua y energía.", 5, "droplet"},
}

// catalogSeeder implements adapter.CatalogSeeder.
type catalogSeeder struct {
	db *gorm.DB
}

// NewCatalogSeeder creates a seeder for the default reference catalog.
func NewCatalogSeeder(db *gorm.DB) adapter.CatalogSeeder {
	return &catalogSeeder{db: db}
}

// Seed inserts whatever part of the default catalog is missing, matching rows
// by name (or title). Existing rows are left untouched.
func (s *catalogSeeder) Seed(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		categoryIDs := make(map[string]uuid.UUID, len(defaultCategories))

		for _, c := range defaultCategories {
			var category model.CategoryModel
			err := tx.Where(model.CategoryModel{Name: c.name}).
				Attrs(model.CategoryModel{
					ID:             uuid.New(),
					EmissionFactor: c.factor,
					Unit:           c.unit,
					Color:          c.color,
					CreatedAt:      now,
					UpdatedAt:      now,
				}).
				FirstOrCreate(&category).Error
			if err != nil {
				return fmt.Errorf("failed to seed category %q: %w", c.name, err)
			}
			categoryIDs[c.name] = category.ID

			for _, name := range c.activities {
				var activity model.ActivityModel
				err := tx.Where(model.ActivityModel{Name: name}).
					Attrs(model.ActivityModel{
						ID:         uuid.New(),
						CategoryID: category.ID,
						CreatedAt:  now,
						UpdatedAt:  now,
					}).
					FirstOrCreate(&activity).Error
				if err != nil {
					return fmt.Errorf("failed to seed activity %q: %w", name, err)
				}
			}
		}

		for _, rec := range defaultRecommendations {
			var recommendation model.RecommendationModel
			err := tx.Where(model.RecommendationModel{Title: rec.title}).
				Attrs(model.RecommendationModel{
					ID:                uuid.New(),
					CategoryID:        categoryIDs[rec.category],
					Description:       rec.description,
					EstimatedSavingKg: rec.savingKg,
					Icon:              rec.icon,
					CreatedAt:         now,
				}).
				FirstOrCreate(&recommendation).Error
			if err != nil {
				return fmt.Errorf("failed to seed recommendation %q: %w", rec.title, err)
			}
		}

		slog.Info("Catalog seeded",
			"categories", len(defaultCategories),
			"recommendations", len(defaultRecommendations))
		return nil
	})
}
