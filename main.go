package main

import (
	"fmt"
	"os"

	bidding "auction-engine/internal/bidService"
	category "auction-engine/internal/categoryService"
	condition "auction-engine/internal/conditionService"
	"auction-engine/internal/config"
	model "auction-engine/internal/models"
	product "auction-engine/internal/productService"
	rating "auction-engine/internal/ratingService"
	"auction-engine/internal/repository"
	"auction-engine/internal/repository/sqlite"
	scoring "auction-engine/internal/scoringService"
	"auction-engine/internal/server"
	"auction-engine/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	utils.SetLevel(cfg.LogLevel)

	store, closeStore, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open store: %v\n", err)
		os.Exit(1)
	}
	defer closeStore()

	conditionSvc := condition.NewService(store)
	if err := conditionSvc.Seed(defaultConditions(cfg.Conditions)); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to seed conditions: %v\n", err)
		os.Exit(1)
	}

	scoringSvc := scoring.NewService(store, conditionSvc)

	router := server.SetupRouter(server.Services{
		Conditions: conditionSvc,
		Categories: category.NewService(store),
		Products:   product.NewService(store, conditionSvc, scoringSvc),
		Bids:       bidding.NewService(store, store, scoringSvc),
		Ratings:    rating.NewService(store, store, store, conditionSvc),
		Scoring:    scoringSvc,
		Users:      store,
	})

	fmt.Printf("Starting auction server on %s...\n", cfg.Addr())
	if err := router.Run(cfg.Addr()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// openStore picks the durable sqlite store when a path is configured and
// falls back to the in-memory repository otherwise.
func openStore(cfg config.Config) (repository.Store, func(), error) {
	if cfg.DBPath == "" {
		return repository.NewMemoryRepo(), func() {}, nil
	}
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	return store, func() { store.Close() }, nil
}

// defaultConditions builds the bootstrap registry entries.
func defaultConditions(d config.ConditionDefaults) []model.Condition {
	return []model.Condition{
		{Name: model.ConditionK, Description: "Max simultaneous auctions per seller", Value: d.K},
		{Name: model.ConditionM, Description: "Max simultaneous auctions per seller and category", Value: d.M},
		{Name: model.ConditionS, Description: "Maximum possible reputation score", Value: d.S},
		{Name: model.ConditionN, Description: "Number of recent ratings used for the score", Value: d.N},
		{Name: model.ConditionT, Description: "Perfect-score count granting the full limit", Value: d.T},
		{Name: model.ConditionL, Description: "Max edit distance between product descriptions", Value: d.L},
	}
}
