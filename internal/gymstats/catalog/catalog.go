package catalog

import (
	"context"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=catalog_mocks_test.go -package=catalog_test

type customRepo interface {
	ListCustom(ctx context.Context, userID string) ([]Exercise, error)
}

// Catalog merges a user's custom exercises over the built-in list.
// On an id collision the custom exercise wins.
type Catalog struct {
	repo customRepo
}

func New(repo customRepo) *Catalog {
	return &Catalog{
		repo: repo,
	}
}

// Lookup never fails: if custom exercises cannot be loaded, the built-in list is used,
// and an unknown id resolves to an exercise named after the id.
func (c *Catalog) Lookup(ctx context.Context, userID, exerciseID string) (Exercise, bool) {
	for _, ex := range c.custom(ctx, userID) {
		if ex.ID == exerciseID {
			return ex, true
		}
	}
	for _, ex := range builtin {
		if ex.ID == exerciseID {
			return ex, true
		}
	}
	return Exercise{ID: exerciseID, Name: humanize(exerciseID), Type: TypeCompound}, false
}

// List returns the merged catalog sorted by name.
func (c *Catalog) List(ctx context.Context, userID string) []Exercise {
	merged := make(map[string]Exercise, len(builtin))
	for _, ex := range builtin {
		merged[ex.ID] = ex
	}
	for _, ex := range c.custom(ctx, userID) {
		merged[ex.ID] = ex
	}

	result := make([]Exercise, 0, len(merged))
	for _, ex := range merged {
		result = append(result, ex)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Name == result[j].Name {
			return result[i].ID < result[j].ID
		}
		return result[i].Name < result[j].Name
	})
	return result
}

func (c *Catalog) custom(ctx context.Context, userID string) []Exercise {
	if c.repo == nil || userID == "" {
		return nil
	}
	custom, err := c.repo.ListCustom(ctx, userID)
	if err != nil {
		log.Errorf("catalog: list custom exercises for %s: %s", userID, err)
		return nil
	}
	return custom
}

func humanize(id string) string {
	words := strings.FieldsFunc(id, func(r rune) bool {
		return r == '_' || r == '-'
	})
	for i, w := range words {
		first, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(first)) + w[size:]
	}
	return strings.Join(words, " ")
}
