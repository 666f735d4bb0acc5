package cmd

import (
	"tracking/internal/adapters/out/postgres/orderrepo"
	"tracking/internal/adapters/out/postgres/stoprepo"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB *gorm.DB
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB: gormDB,
	}
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetShipmentProgressQueryHandler() queries.GetShipmentProgressQueryHandler {
	return queries.NewGetShipmentProgressQueryHandler(
		orderrepo.NewGormOrderRepository(c.gormDB),
		stoprepo.NewGormStopRepository(c.gormDB),
		services.NewShipmentReporter(),
	)
}

func (c *CompositionRoot) CreateGetDelayedStopsQueryHandler() queries.GetDelayedStopsQueryHandler {
	return queries.NewGetDelayedStopsQueryHandler(c.gormDB)
}
