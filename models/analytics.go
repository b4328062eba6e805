// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AnalyticsCounters are the progress counters shared by every analytics row.
// Percentages are computed by the backend.
type AnalyticsCounters struct {
	TotalThemes       int     `json:"total_themes"`
	RegistryClusters  int     `json:"registry_clusters"`
	TZReady           int     `json:"tz_ready"`
	ProdPublished     int     `json:"prod_published"`
	PercentageOfTotal float64 `json:"percentage_of_total"`
	TZProgress        float64 `json:"tz_progress"`
	ProdProgress      float64 `json:"prod_progress"`
	RegistryCoverage  float64 `json:"registry_coverage"`
}

// PageTypeAnalytics is the analytics row of a single page type.
type PageTypeAnalytics struct {
	PageType string `json:"page_type"`
	AnalyticsCounters
}

// DirectionAnalytics is the analytics row of a single direction.
type DirectionAnalytics struct {
	Direction string `json:"direction"`
	AnalyticsCounters
}

// AnalyticsTotals summarizes the whole report.
type AnalyticsTotals struct {
	TotalThemes         int     `json:"total_themes"`
	RegistryClusters    int     `json:"registry_clusters"`
	TZReady             int     `json:"tz_ready"`
	ProdPublished       int     `json:"prod_published"`
	AvgTZProgress       float64 `json:"avg_tz_progress"`
	AvgProdProgress     float64 `json:"avg_prod_progress"`
	AvgRegistryCoverage float64 `json:"avg_registry_coverage"`
}

// AnalyticsReport is the body of GET /analytics/report.
type AnalyticsReport struct {
	PageTypes  []PageTypeAnalytics  `json:"page_types"`
	Directions []DirectionAnalytics `json:"directions"`
	Totals     AnalyticsTotals      `json:"totals"`
}
