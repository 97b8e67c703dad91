package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrValidationRejected is returned when a document fails the category
// enumeration or is missing a required field.
var ErrValidationRejected = errors.New("validation rejected")

// Category is the audience tag a document belongs to.
type Category string

const (
	CategoryEngineer   Category = "engineer"
	CategoryHR         Category = "hr"
	CategoryTechnician Category = "technician"
	CategoryEmployee   Category = "employee"
)

// Categories lists every valid category in a stable order.
func Categories() []Category {
	return []Category{CategoryEngineer, CategoryHR, CategoryTechnician, CategoryEmployee}
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryEngineer, CategoryHR, CategoryTechnician, CategoryEmployee:
		return true
	}
	return false
}

func (c Category) String() string { return string(c) }

// ParseCategory converts raw text into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: unknown category %q", ErrValidationRejected, s)
	}
	return c, nil
}

// Document is a metadata record describing an external file.
// It carries no persistence tags and is shared by the store, service and HTTP layers.
type Document struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    Category  `json:"category"`
	Description string    `json:"description"`
	FileName    string    `json:"fileName"`
	UploadDate  time.Time `json:"uploadDate"`
}

// Validate checks the required fields and the category enumeration.
func (d Document) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidationRejected)
	}
	if !d.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrValidationRejected, string(d.Category))
	}
	return nil
}
