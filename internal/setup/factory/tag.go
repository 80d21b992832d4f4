package factory

import (
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/repositories/tag_repository"
	controllers "github.com/controlenamao/finance-backend/internal/presentation/controllers/tag"
	"go.mongodb.org/mongo-driver/mongo"
)

// MakeCreateTagController creates the controller for creating tags
func MakeCreateTagController(db *mongo.Database) *controllers.CreateTagController {
	createRepo := tag_repository.NewCreateTagRepository(db)
	return controllers.NewCreateTagController(createRepo)
}

// MakeGetTagsController creates the controller for retrieving tags
func MakeGetTagsController(db *mongo.Database) *controllers.GetTagsController {
	findRepo := tag_repository.NewFindTagsRepository(db)
	return controllers.NewGetTagsController(findRepo)
}

// MakeUpdateTagController creates the controller for updating tags
func MakeUpdateTagController(db *mongo.Database) *controllers.UpdateTagController {
	updateRepo := tag_repository.NewUpdateTagRepository(db)
	return controllers.NewUpdateTagController(updateRepo)
}

// MakeDeleteTagController creates the controller for deleting tags
func MakeDeleteTagController(db *mongo.Database) *controllers.DeleteTagController {
	deleteRepo := tag_repository.NewDeleteTagRepository(db)
	return controllers.NewDeleteTagController(deleteRepo)
}
