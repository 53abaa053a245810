package main

import (
	"context"
	"flag"
	"foodgram/internal/config"
	"foodgram/internal/model"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.ParseConfig()
	if err != nil {
		logrus.WithError(err).Error("Failed to parse config")
		os.Exit(1)
	}

	ingredientsPath := flag.String("ingredients", cfg.SeedIngredientsPath, "ingredients JSON file")
	tagsPath := flag.String("tags", cfg.SeedTagsPath, "tags JSON file")
	flag.Parse()

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(cfg.ParseLogLevel())

	repo, err := model.InitRepository(&cfg)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise repository")
		os.Exit(1)
	}
	if repo == nil {
		logrus.Error("no database configured, set DBType")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	result, err := model.SeedCatalog(ctx, repo, *ingredientsPath, *tagsPath)
	if err != nil {
		logrus.WithError(err).Error("failed to seed catalog")
		os.Exit(1)
	}

	logrus.WithFields(logrus.Fields{
		"ingredients": result.Ingredients,
		"tags":        result.Tags,
		"skipped":     result.Skipped,
	}).Info("catalog seeded")
}
