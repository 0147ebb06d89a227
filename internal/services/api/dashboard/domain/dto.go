package domain

import (
	"time"

	"salesboard/internal/core/aggregate"
	"salesboard/internal/core/facts"
)

// FilterInput carries only a filter
type FilterInput struct {
	Filter Filter `json:"filter"`
}

// AggregateInput groups the filtered facts by one field
type AggregateInput struct {
	Filter         Filter `json:"filter"`
	GroupBy        string `json:"groupBy,omitempty" validate:"omitempty,oneof=category subcategory country gender maritalStatus product color status year month dayOfWeek dateStr" example:"category"`
	Metric         string `json:"metric,omitempty" validate:"omitempty,oneof=revenue quantity" example:"revenue"`
	OrderBy        string `json:"orderBy,omitempty" validate:"omitempty,oneof=value name" example:"value"`
	OrderDirection string `json:"orderDirection,omitempty" validate:"omitempty,oneof=asc desc" example:"desc"`
	Limit          int    `json:"limit,omitempty" validate:"omitempty,min=1,max=1000" example:"10"`
}

// MatrixInput groups the filtered facts by a row and a column field
type MatrixInput struct {
	Filter  Filter `json:"filter"`
	Rows    string `json:"rows" validate:"required,oneof=category subcategory country gender maritalStatus product color status year month dayOfWeek dateStr" example:"country"`
	Columns string `json:"columns,omitempty" validate:"omitempty,oneof=category subcategory country gender maritalStatus product color status year month dayOfWeek dateStr" example:"gender"`
	Metric  string `json:"metric,omitempty" validate:"omitempty,oneof=revenue quantity" example:"revenue"`
}

// HistogramInput buckets a metric of the filtered facts
type HistogramInput struct {
	Filter      Filter  `json:"filter"`
	Metric      string  `json:"metric,omitempty" validate:"omitempty,oneof=revenue quantity" example:"revenue"`
	BucketWidth float64 `json:"bucketWidth,omitempty" validate:"omitempty,gt=0" example:"200"`
}

// ComparisonField is the json name of the comparison filter; errors inside it are reported under this prefix
const ComparisonField = "comparison"

// TrendInput is a daily series with an optional comparison slice
type TrendInput struct {
	Filter     Filter  `json:"filter"`
	Comparison *Filter `json:"comparison,omitempty"`
	Metric     string  `json:"metric,omitempty" validate:"omitempty,oneof=revenue quantity" example:"revenue"`
}

// Calendar is the first and last day of the date dimension
type Calendar struct {
	First string `json:"first" example:"2010-12-29"`
	Last  string `json:"last" example:"2014-01-28"`
	Days  int    `json:"days" example:"1492"`
}

// MetaResponse describes the loaded dataset and its filter catalogs
type MetaResponse struct {
	SnapshotID string     `json:"snapshotId" example:"2f1d7c1e-6b9a-4a55-9c1b-6c7f9f0e8d11"`
	LoadedAt   time.Time  `json:"loadedAt"`
	Facts      int        `json:"facts" example:"60398"`
	Calendar   Calendar   `json:"calendar"`
	Catalog    facts.Meta `json:"catalog"`
	Fields     []string   `json:"groupable"`
}

// CountsResponse is the leave-one-out value count per dimension
// values with no matching fact are absent
type CountsResponse struct {
	Categories      map[string]int `json:"categories"`
	Subcategories   map[string]int `json:"subcategories"`
	Countries       map[string]int `json:"countries"`
	Genders         map[string]int `json:"genders"`
	MaritalStatuses map[string]int `json:"maritalStatuses"`
	Products        map[string]int `json:"products"`
	Matching        int            `json:"matching" example:"1250"`
}

// MatrixResponse is a dense row by column grid
type MatrixResponse struct {
	RowField    string `json:"rowField" example:"country"`
	ColumnField string `json:"columnField" example:"gender"`
	Metric      string `json:"metric" example:"revenue"`
	aggregate.Matrix
}

// HistogramResponse lists non empty buckets by ascending start
type HistogramResponse struct {
	Metric      string             `json:"metric" example:"revenue"`
	BucketWidth float64            `json:"bucketWidth" example:"200"`
	Buckets     []aggregate.Bucket `json:"buckets"`
}
