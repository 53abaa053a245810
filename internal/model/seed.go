package model

import (
	"context"
	"errors"
	"fmt"
	"foodgram/internal/entity"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"gorm.io/gorm"
)

type ingredientSeed struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

type tagSeed struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Slug  string `json:"slug"`
}

// SeedResult counts the catalog rows written by SeedCatalog.
type SeedResult struct {
	Ingredients int
	Tags        int
	Skipped     int
}

// SeedCatalog loads ingredients and tags from JSON files into the catalog.
// Rows that already exist are skipped, so the seed can be run repeatedly.
// An empty path skips that file.
func SeedCatalog(ctx context.Context, repo Repository, ingredientsPath, tagsPath string) (SeedResult, error) {
	var result SeedResult
	if repo == nil {
		return result, fmt.Errorf("repository is nil")
	}

	if ingredientsPath != "" {
		var seeds []ingredientSeed
		if err := readSeedFile(ingredientsPath, &seeds); err != nil {
			return result, err
		}
		for _, seed := range seeds {
			name := strings.TrimSpace(seed.Name)
			unit := strings.TrimSpace(seed.MeasurementUnit)
			if name == "" || unit == "" {
				result.Skipped++
				continue
			}
			err := repo.CreateIngredient(ctx, &entity.DbIngredient{Name: name, MeasurementUnit: unit})
			switch {
			case err == nil:
				result.Ingredients++
			case errors.Is(err, gorm.ErrDuplicatedKey):
				result.Skipped++
			default:
				return result, fmt.Errorf("seed ingredient %q: %w", name, err)
			}
		}
	}

	if tagsPath != "" {
		var seeds []tagSeed
		if err := readSeedFile(tagsPath, &seeds); err != nil {
			return result, err
		}
		for _, seed := range seeds {
			slug := strings.TrimSpace(seed.Slug)
			if slug == "" || strings.TrimSpace(seed.Name) == "" {
				result.Skipped++
				continue
			}
			tag := &entity.DbTag{Name: strings.TrimSpace(seed.Name), Color: strings.TrimSpace(seed.Color), Slug: slug}
			err := repo.CreateTag(ctx, tag)
			switch {
			case err == nil:
				result.Tags++
			case errors.Is(err, gorm.ErrDuplicatedKey):
				result.Skipped++
			default:
				return result, fmt.Errorf("seed tag %q: %w", slug, err)
			}
		}
	}

	return result, nil
}

func readSeedFile(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode seed file %s: %w", path, err)
	}
	return nil
}
