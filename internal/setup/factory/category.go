package factory

import (
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/repositories/category_repository"
	controllers "github.com/controlenamao/finance-backend/internal/presentation/controllers/category"
	"go.mongodb.org/mongo-driver/mongo"
)

// MakeCreateCategoryController creates the controller for creating categories
func MakeCreateCategoryController(db *mongo.Database) *controllers.CreateCategoryController {
	createRepo := category_repository.NewCreateCategoryRepository(db)
	findByNameRepo := category_repository.NewFindCategoryByNameRepository(db)
	return controllers.NewCreateCategoryController(createRepo, findByNameRepo)
}

// MakeGetCategoriesController creates the controller for retrieving categories
func MakeGetCategoriesController(db *mongo.Database) *controllers.GetCategoriesController {
	findRepo := category_repository.NewFindCategoriesRepository(db)
	return controllers.NewGetCategoriesController(findRepo)
}

// MakeGetCategoryByIdController creates the controller for retrieving a category by ID
func MakeGetCategoryByIdController(db *mongo.Database) *controllers.GetCategoryByIdController {
	findByIdRepo := category_repository.NewFindCategoryByIdRepository(db)
	return controllers.NewGetCategoryByIdController(findByIdRepo)
}

// MakeUpdateCategoryController creates the controller for updating categories
func MakeUpdateCategoryController(db *mongo.Database) *controllers.UpdateCategoryController {
	updateRepo := category_repository.NewUpdateCategoryRepository(db)
	findByIdRepo := category_repository.NewFindCategoryByIdRepository(db)
	findByNameRepo := category_repository.NewFindCategoryByNameRepository(db)
	return controllers.NewUpdateCategoryController(updateRepo, findByIdRepo, findByNameRepo)
}

// MakeDeleteCategoryController creates the controller for deleting categories
func MakeDeleteCategoryController(db *mongo.Database) *controllers.DeleteCategoryController {
	deleteRepo := category_repository.NewDeleteCategoryRepository(db)
	return controllers.NewDeleteCategoryController(deleteRepo)
}
