package models

import (
	"gorm.io/gorm"
)

// Category classifies a question by computer-science topic.
type Category string

const (
	CategoryAlgorithms       Category = "ALG"
	CategoryDataStructures   Category = "DS"
	CategoryOOP              Category = "OOP"
	CategoryDatabases        Category = "DB"
	CategoryOperatingSystems Category = "OS"
	CategoryNone             Category = "NUL"
)

// ValidCategories contains all accepted category codes.
var ValidCategories = map[Category]bool{
	CategoryAlgorithms:       true,
	CategoryDataStructures:   true,
	CategoryOOP:              true,
	CategoryDatabases:        true,
	CategoryOperatingSystems: true,
	CategoryNone:             true,
}

// Question is a single interview question in the catalogue.
// Rows are immutable once created; generated questions carry the
// normalized job title they were produced for.
type Question struct {
	gorm.Model
	QuestionText string   `gorm:"type:text;not null" json:"question_text"`
	JobTitle     string   `gorm:"index" json:"job_title,omitempty"`
	Category     Category `gorm:"size:3;not null;default:NUL" json:"category"`
	Difficulty   int      `gorm:"not null;default:1" json:"difficulty"` // 1-5 scale
}
