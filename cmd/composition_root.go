package cmd

import (
	"log/slog"

	"bookshop/internal/adapters/out/postgres"
	"bookshop/internal/core/application/usecases/commands"
	"bookshop/internal/core/application/usecases/queries"
	"bookshop/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateRegisterMemberCommandHandler() commands.CommandHandler[commands.RegisterMemberCommand] {
	var f commands.MemberUoWFactory = FuncMemberUoWFactory(func() commands.MemberUoW {
		return c.uowFactory.Create()
	})
	return timed[commands.RegisterMemberCommand](c, "register_member", commands.NewRegisterMemberCommandHandler(f))
}

func (c *CompositionRoot) CreateAddItemCommandHandler() commands.CommandHandler[commands.AddItemCommand] {
	var f commands.ItemUoWFactory = FuncItemUoWFactory(func() commands.ItemUoW {
		return c.uowFactory.Create()
	})
	return timed[commands.AddItemCommand](c, "add_item", commands.NewAddItemCommandHandler(f))
}

func (c *CompositionRoot) CreateRestockItemCommandHandler() commands.CommandHandler[commands.RestockItemCommand] {
	var f commands.ItemUoWFactory = FuncItemUoWFactory(func() commands.ItemUoW {
		return c.uowFactory.Create()
	})
	return timed[commands.RestockItemCommand](c, "restock_item", commands.NewRestockItemCommandHandler(f))
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.CommandHandler[commands.PlaceOrderCommand] {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return timed[commands.PlaceOrderCommand](c, "place_order", commands.NewPlaceOrderCommandHandler(f))
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CommandHandler[commands.CancelOrderCommand] {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return timed[commands.CancelOrderCommand](c, "cancel_order", commands.NewCancelOrderCommandHandler(f))
}

func (c *CompositionRoot) CreateCompleteDeliveriesCommandHandler() commands.CommandHandler[commands.CompleteDeliveriesCommand] {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return timed[commands.CompleteDeliveriesCommand](c, "complete_deliveries", commands.NewCompleteDeliveriesCommandHandler(f))
}

func (c *CompositionRoot) CreateAddCategoryCommandHandler() commands.CommandHandler[commands.AddCategoryCommand] {
	var f commands.CategoryUoWFactory = FuncCategoryUoWFactory(func() commands.CategoryUoW {
		return c.uowFactory.Create()
	})
	return timed[commands.AddCategoryCommand](c, "add_category", commands.NewAddCategoryCommandHandler(f))
}

func (c *CompositionRoot) CreateAssignItemToCategoryCommandHandler() commands.CommandHandler[commands.AssignItemToCategoryCommand] {
	var f commands.CategoryUoWFactory = FuncCategoryUoWFactory(func() commands.CategoryUoW {
		return c.uowFactory.Create()
	})
	return timed[commands.AssignItemToCategoryCommand](c, "assign_item_to_category", commands.NewAssignItemToCategoryCommandHandler(f))
}

func (c *CompositionRoot) CreateGetAllMembersQueryHandler() queries.GetAllMembersQueryHandler {
	return queries.NewGetAllMembersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllItemsQueryHandler() queries.GetAllItemsQueryHandler {
	return queries.NewGetAllItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchOrdersQueryHandler() queries.SearchOrdersQueryHandler {
	return queries.NewSearchOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewDeliveryCompletionJob(
			c.CreateCompleteDeliveriesCommandHandler(),
			c.config.DeliveryJobSchedule,
			c.config.ShippingDelay,
			c.logger,
		),
	)
}

func timed[C any](c *CompositionRoot, command string, next commands.CommandHandler[C]) commands.CommandHandler[C] {
	return commands.NewTimedCommandHandler(command, next, c.logger)
}

type FuncMemberUoWFactory func() commands.MemberUoW

func (f FuncMemberUoWFactory) Create() commands.MemberUoW {
	return f()
}

type FuncItemUoWFactory func() commands.ItemUoW

func (f FuncItemUoWFactory) Create() commands.ItemUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncCategoryUoWFactory func() commands.CategoryUoW

func (f FuncCategoryUoWFactory) Create() commands.CategoryUoW {
	return f()
}
