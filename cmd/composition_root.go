package cmd

import (
	"time"

	httpin "foodex/internal/adapters/in/http"
	"foodex/internal/adapters/out/crypto"
	"foodex/internal/adapters/out/postgres"
	"foodex/internal/core/application/usecases/commands"
	"foodex/internal/core/application/usecases/queries"
	"foodex/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	verifier   ports.CredentialVerifier
	tokens     httpin.TokenService
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		verifier:   crypto.NewBcryptVerifier(config.BcryptCost),
		tokens: httpin.NewTokenService(
			[]byte(config.JWTSecret),
			time.Duration(config.TokenTTLHours)*time.Hour,
		),
	}
}

func (c *CompositionRoot) TokenService() httpin.TokenService {
	return c.tokens
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f, c.verifier)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() commands.AdvanceOrderStatusCommandHandler {
	return commands.NewAdvanceOrderStatusCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	return commands.NewAssignCourierCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateDispatchCourierCommandHandler() commands.DispatchCourierCommandHandler {
	return commands.NewDispatchCourierCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateAuthenticateQueryHandler() (queries.AuthenticateQueryHandler, error) {
	return queries.NewAuthenticateQueryHandler(c.gormDB, c.verifier)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUncompletedOrdersQueryHandler() queries.GetUncompletedOrdersQueryHandler {
	return queries.NewGetUncompletedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRestaurantMenuQueryHandler() queries.GetRestaurantMenuQueryHandler {
	return queries.NewGetRestaurantMenuQueryHandler(c.gormDB)
}

func (c *CompositionRoot) createUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
