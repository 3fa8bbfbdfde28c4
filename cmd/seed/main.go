package main

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/GitMovi52027/movi5/config"
	"github.com/GitMovi52027/movi5/infras/otel"
	"github.com/GitMovi52027/movi5/infras/postgres"
	configurationModel "github.com/GitMovi52027/movi5/internal/domains/configuration/model"
	configurationRepository "github.com/GitMovi52027/movi5/internal/domains/configuration/repository"
	routeModel "github.com/GitMovi52027/movi5/internal/domains/route/model"
	routeRepository "github.com/GitMovi52027/movi5/internal/domains/route/repository"
	routeService "github.com/GitMovi52027/movi5/internal/domains/route/service"
	userModel "github.com/GitMovi52027/movi5/internal/domains/user/model"
	userRepository "github.com/GitMovi52027/movi5/internal/domains/user/repository"
	"github.com/GitMovi52027/movi5/shared/constant"
	gDto "github.com/GitMovi52027/movi5/shared/dto"
	"github.com/GitMovi52027/movi5/shared/logger"
	gModel "github.com/GitMovi52027/movi5/shared/model"
	"github.com/GitMovi52027/movi5/shared/password"
	"github.com/GitMovi52027/movi5/shared/timezone"
)

const (
	adminEmail    = "admin@test.com"
	adminPassword = "abcd1234"
)

var everyDay = []string{"lunes", "martes", "miércoles", "jueves", "viernes", "sábado", "domingo"}

var workWeek = []string{"lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}

type seedRoute struct {
	origin          string
	destination     string
	busPrice        *int64
	boatPrice       *int64
	startTime       string
	endTime         string
	frequencyType   string
	intervalMinutes *int
	specificTimes   []string
	operatingDays   []string
}

func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	ctx := context.Background()

	db := postgres.New(cfg)
	defer db.Close()

	ot := otel.New(cfg)

	userRepo := userRepository.New(db, ot)
	routeRepo := routeRepository.New(db, ot)
	configurationRepo := configurationRepository.New(db, ot)
	routes := routeService.New(routeRepo, cfg, ot)

	if err := seedAdmin(ctx, userRepo); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed admin user")
	}

	if err := seedRoutes(ctx, routes); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed routes")
	}

	if err := seedConfigurations(ctx, configurationRepo); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed configurations")
	}

	log.Info().Msg("Seeding completed successfully")
}

func seedAdmin(ctx context.Context, repo userRepository.User) error {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    adminEmail,
				Table:    userModel.TableName,
			},
		},
	}

	exists, err := repo.Exist(ctx, filter)
	if err != nil {
		return err
	}

	if exists {
		log.Info().Str("email", adminEmail).Msg("Admin user already exists")

		return nil
	}

	hashed, err := password.Hash(adminPassword)
	if err != nil {
		return err
	}

	name := "Administrador"

	admin := userModel.User{
		ID:       uuid.NewString(),
		Email:    adminEmail,
		Name:     &name,
		Password: hashed,
		Role:     constant.RoleAdmin,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  constant.ContextSystem,
			ModifiedBy: constant.ContextSystem,
		},
	}

	if err := repo.Insert(ctx, admin); err != nil {
		return err
	}

	log.Info().Str("email", adminEmail).Msg("Admin user created")

	return nil
}

// seedRoutes replaces the whole catalog with the default routes of the
// Cali, Buenaventura and coastal destinations network.
func seedRoutes(ctx context.Context, svc routeService.Route) error {
	interval8 := 8
	interval15 := 15
	morning := []string{"08:00", "09:00"}

	seeds := []seedRoute{
		{"Cali", "Buenaventura", price(42500), nil, "04:08", "19:52", routeModel.FrequencyTypeInterval, &interval8, nil, everyDay},
		{"Cali", "Juanchaco", price(42500), price(140000), "04:08", "23:00", routeModel.FrequencyTypeInterval, &interval8, nil, everyDay},
		{"Cali", "Chucheros", price(42500), price(160000), "04:08", "23:00", routeModel.FrequencyTypeInterval, &interval8, nil, everyDay},
		{"Cali", "Piangüita", price(42500), price(70000), "04:08", "23:00", routeModel.FrequencyTypeInterval, &interval8, nil, everyDay},
		{"Cali", "Pacifico Hostal", price(42500), price(160000), "04:08", "23:00", routeModel.FrequencyTypeInterval, &interval8, nil, everyDay},
		{"Cali", "Playa juan de dios", price(42500), price(160000), "04:08", "23:00", routeModel.FrequencyTypeInterval, &interval8, nil, everyDay},
		{"Cali", "Playa Dorada Magüipi", price(42500), price(160000), "04:08", "23:00", routeModel.FrequencyTypeInterval, &interval8, nil, everyDay},
		{"Cali", "Bahia plata malaga", price(42500), price(190000), "04:08", "23:00", routeModel.FrequencyTypeInterval, &interval8, nil, everyDay},
		{"Cali", "Bocana", price(42500), price(60000), "04:08", "23:00", routeModel.FrequencyTypeInterval, &interval8, nil, everyDay},
		{"Buenaventura", "Cali", price(42500), nil, "04:08", "19:52", routeModel.FrequencyTypeInterval, &interval8, nil, everyDay},
		{"Buenaventura", "Juanchaco", nil, price(140000), "08:00", "16:00", routeModel.FrequencyTypeInterval, &interval15, nil, everyDay},
		{"Buenaventura", "Chucheros", nil, price(160000), "08:00", "16:00", routeModel.FrequencyTypeInterval, &interval15, nil, everyDay},
		{"Buenaventura", "Güapi", nil, price(160000), "08:00", "09:00", routeModel.FrequencyTypeSpecific, nil, morning, workWeek},
		{"Buenaventura", "Timbiquí", nil, price(150000), "08:00", "09:00", routeModel.FrequencyTypeSpecific, nil, morning, workWeek},
		{"Buenaventura", "Piangüita", nil, price(70000), "08:00", "16:00", routeModel.FrequencyTypeInterval, &interval15, nil, everyDay},
		{"Buenaventura", "Pacifico Hostal", nil, price(160000), "08:00", "16:00", routeModel.FrequencyTypeInterval, &interval15, nil, everyDay},
		{"Buenaventura", "Playa juan de dios", nil, price(160000), "08:00", "16:00", routeModel.FrequencyTypeInterval, &interval15, nil, everyDay},
		{"Buenaventura", "Playa Dorada Magüipi", nil, price(160000), "08:00", "16:00", routeModel.FrequencyTypeInterval, &interval15, nil, everyDay},
		{"Buenaventura", "Bahía plata malaga", nil, price(190000), "08:00", "16:00", routeModel.FrequencyTypeInterval, &interval15, nil, everyDay},
		{"Buenaventura", "La Bocana", nil, price(60000), "08:00", "16:00", routeModel.FrequencyTypeInterval, &interval15, nil, everyDay},
		{"Guapi", "Buenaventura", nil, price(160000), "08:00", "09:00", routeModel.FrequencyTypeSpecific, nil, morning, workWeek},
		{"Guapi", "Cali", price(42500), price(160000), "08:00", "09:00", routeModel.FrequencyTypeSpecific, nil, morning, workWeek},
		{"Timbiquí", "Buenaventura", nil, price(150000), "08:00", "09:00", routeModel.FrequencyTypeSpecific, nil, morning, workWeek},
		{"Timbiquí", "Cali", price(42500), price(150000), "08:00", "09:00", routeModel.FrequencyTypeSpecific, nil, morning, workWeek},
	}

	routes := make([]routeModel.Route, len(seeds))
	for i, seed := range seeds {
		routes[i] = routeModel.Route{
			ID:              uuid.NewString(),
			Origin:          seed.origin,
			Destination:     seed.destination,
			BusPrice:        seed.busPrice,
			BoatPrice:       seed.boatPrice,
			StartTime:       seed.startTime,
			EndTime:         seed.endTime,
			FrequencyType:   seed.frequencyType,
			IntervalMinutes: seed.intervalMinutes,
			SpecificTimes:   pq.StringArray(seed.specificTimes),
			OperatingDays:   pq.StringArray(seed.operatingDays),
			TripType:        tripType(seed.busPrice, seed.boatPrice),
			Active:          true,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  constant.ContextSystem,
				ModifiedBy: constant.ContextSystem,
			},
		}
	}

	if err := svc.Reseed(ctx, routes); err != nil {
		return err
	}

	log.Info().Int("routes", len(routes)).Msg("Default routes created")

	return nil
}

func seedConfigurations(ctx context.Context, repo configurationRepository.Configuration) error {
	configs := []configurationModel.Configuration{
		{Key: "company_name", Value: "Movi5", Description: description("Nombre de la empresa")},
		{Key: "contact_email", Value: "info@movi5.co", Description: description("Email de contacto")},
		{Key: "contact_phone", Value: "+57 317 123 4567", Description: description("Teléfono de contacto")},
	}

	for _, cfg := range configs {
		filter := gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{
					Field:    configurationModel.FieldKey,
					Operator: gDto.FilterOperatorEq,
					Value:    cfg.Key,
					Table:    configurationModel.TableName,
				},
			},
		}

		exists, err := repo.Exist(ctx, filter)
		if err != nil {
			return err
		}

		if exists {
			continue
		}

		cfg.ID = uuid.NewString()
		cfg.Metadata = gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  constant.ContextSystem,
			ModifiedBy: constant.ContextSystem,
		}

		if err := repo.Upsert(ctx, cfg); err != nil {
			return err
		}

		log.Info().Str("key", cfg.Key).Msg("Configuration created")
	}

	return nil
}

func tripType(busPrice, boatPrice *int64) string {
	switch {
	case busPrice != nil && boatPrice != nil:
		return routeModel.TripTypeBusBoat
	case boatPrice != nil:
		return routeModel.TripTypeBoat
	default:
		return routeModel.TripTypeBus
	}
}

func price(value int64) *int64 {
	return &value
}

func description(value string) *string {
	return &value
}
