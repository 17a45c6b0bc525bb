package cmd

import (
	"log/slog"

	adapterhttp "logistica/internal/adapters/in/http"
	"logistica/internal/adapters/out/jwtauth"
	"logistica/internal/adapters/out/postgres"
	"logistica/internal/adapters/out/postgres/userrepo"
	"logistica/internal/core/application/usecases/commands"
	"logistica/internal/core/application/usecases/queries"
	"logistica/internal/core/ports"
	"logistica/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	tokenService *jwtauth.JWTTokenService
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	tokenService, err := jwtauth.NewJWTTokenService(config.JWTSecret, config.TokenTTL)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		tokenService: tokenService,
	}, nil
}

func (c *CompositionRoot) TokenService() ports.TokenService {
	return c.tokenService
}

func (c *CompositionRoot) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(c.gormDB)
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateDeliveryCommandHandler() commands.UpdateDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteDeliveryCommandHandler() commands.DeleteDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateChangePasswordCommandHandler() commands.ChangePasswordCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangePasswordCommandHandler(f)
}

func (c *CompositionRoot) CreateAuthenticateUserQueryHandler() queries.AuthenticateUserQueryHandler {
	return queries.NewAuthenticateUserQueryHandler(c.UserRepository(), c.tokenService)
}

func (c *CompositionRoot) CreateGetAllDeliveriesQueryHandler() queries.GetAllDeliveriesQueryHandler {
	return queries.NewGetAllDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveriesByDateQueryHandler() queries.GetDeliveriesByDateQueryHandler {
	return queries.NewGetDeliveriesByDateQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryStatsQueryHandler() queries.GetDeliveryStatsQueryHandler {
	return queries.NewGetDeliveryStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchDeliveryByDocumentQueryHandler() queries.SearchDeliveryByDocumentQueryHandler {
	return queries.NewSearchDeliveryByDocumentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *adapterhttp.Server {
	return adapterhttp.NewServer(
		c.CreateCreateDeliveryCommandHandler(),
		c.CreateUpdateDeliveryCommandHandler(),
		c.CreateCompleteDeliveryCommandHandler(),
		c.CreateDeleteDeliveryCommandHandler(),
		c.CreateChangePasswordCommandHandler(),
		c.CreateAuthenticateUserQueryHandler(),
		c.CreateGetAllDeliveriesQueryHandler(),
		c.CreateGetDeliveriesByDateQueryHandler(),
		c.CreateGetDeliveryStatsQueryHandler(),
		c.CreateSearchDeliveryByDocumentQueryHandler(),
		c.tokenService,
	)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetDeliveryStatsQueryHandler(), logger)
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
