package setup

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/controlenamao/finance-backend/internal/infra/ai"
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/helpers"
	"github.com/controlenamao/finance-backend/internal/setup/config"
)

func Server() *http.ServeMux {
	mux := http.NewServeMux()

	dbName := os.Getenv("MONGO_DATABASE")
	if dbName == "" {
		dbName = "controlenamao"
	}
	db := helpers.MongoHelper(os.Getenv("MONGO_URI"), dbName)

	redisClient := helpers.RedisHelper(os.Getenv("REDIS_URL"))

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = ai.DefaultModelName
	}
	aiClient, err := ai.NewClient(context.Background(), os.Getenv("GEMINI_API_KEY"), model)
	if err != nil {
		log.Fatalf("error creating AI client: %v", err)
	}

	config.SetupRoutes(mux, db, redisClient, aiClient)

	return mux
}
