/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

// Package words holds the civil/impostor word pairs players are dealt.
package words

import (
	"errors"
	"math/rand/v2"
)

// AnyCategory selects from every category at once.
const AnyCategory = "any"

// AnyCategoryName is shown when no category was chosen.
const AnyCategoryName = "Aleatorio (todas)"

var ErrUnknownCategory = errors.New("unknown word category")

// WordPair is one round's secret: civilians get Civil, the impostor gets Impostor.
type WordPair struct {
	Civil    string `json:"civil"`
	Impostor string `json:"impostor"`
	Theme    string `json:"theme"`
}

type Category struct {
	ID    string
	Name  string
	Pairs []WordPair
}

// Summary describes a category without leaking its words.
type Summary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Catalog is an immutable set of categories. It is safe for concurrent use.
type Catalog struct {
	categories []Category
	all        []WordPair
}

// New builds a catalog from the given categories. Categories without pairs are skipped.
func New(categories []Category) *Catalog {
	c := &Catalog{}
	for _, category := range categories {
		if len(category.Pairs) == 0 {
			continue
		}
		c.categories = append(c.categories, category)
		c.all = append(c.all, category.Pairs...)
	}
	return c
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return New(builtin)
}

func (c *Catalog) lookup(id string) (Category, bool) {
	for _, category := range c.categories {
		if category.ID == id {
			return category, true
		}
	}
	return Category{}, false
}

// Resolve maps a category id to its canonical id and display name. An empty id or
// AnyCategory resolves to the whole catalog, reported as an empty id.
func (c *Catalog) Resolve(id string) (string, string, error) {
	if id == "" || id == AnyCategory {
		return "", AnyCategoryName, nil
	}
	category, ok := c.lookup(id)
	if !ok {
		return "", "", ErrUnknownCategory
	}
	return category.ID, category.Name, nil
}

// RandomPair draws a pair uniformly from the category's pool, or from every pair
// when id is empty or AnyCategory.
func (c *Catalog) RandomPair(rng *rand.Rand, id string) (WordPair, error) {
	pool := c.all
	if id != "" && id != AnyCategory {
		category, ok := c.lookup(id)
		if !ok {
			return WordPair{}, ErrUnknownCategory
		}
		pool = category.Pairs
	}
	if len(pool) == 0 {
		return WordPair{}, errors.New("word catalog is empty")
	}
	return pool[rng.IntN(len(pool))], nil
}

func (c *Catalog) Summary() []Summary {
	out := make([]Summary, 0, len(c.categories))
	for _, category := range c.categories {
		out = append(out, Summary{
			ID:    category.ID,
			Name:  category.Name,
			Count: len(category.Pairs),
		})
	}
	return out
}
