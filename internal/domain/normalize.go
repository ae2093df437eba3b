package domain

import (
	"bytes"
	"encoding/json"

	"github.com/sirupsen/logrus"
)

// Defaults applied during normalization. Every optional column maps to one
// of these so that downstream consumers never see a nil field.
const (
	DefaultItemRating   = 4.5
	DefaultPrepTime     = 30
	DefaultOpenTime     = "08:00"
	DefaultCloseTime    = "22:00"
	DefaultRecommendTop = 5
)

var weekdays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// DefaultBusinessHours is the fixed fallback schedule: 08:00-22:00, all week.
func DefaultBusinessHours() BusinessHours {
	regular := make(map[string]DayHours, len(weekdays))
	for _, day := range weekdays {
		regular[day] = DayHours{Open: DefaultOpenTime, Close: DefaultCloseTime}
	}
	return BusinessHours{Regular: regular}
}

// ParseBusinessHours is total: any stored representation — jsonb object,
// JSON-encoded string (double encoded), NULL, or garbage — maps to a usable
// schedule. Malformed input always yields the same default schedule with a
// logged diagnostic; the condition is never surfaced as an error.
func ParseBusinessHours(raw []byte) BusinessHours {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return DefaultBusinessHours()
	}

	// Stored-as-string: unquote first, then parse the inner document.
	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			logrus.WithError(err).Warn("malformed business_hours string, using default schedule")
			return DefaultBusinessHours()
		}
		raw = []byte(inner)
	}

	var hours BusinessHours
	if err := json.Unmarshal(raw, &hours); err != nil {
		logrus.WithError(err).Warn("malformed business_hours, using default schedule")
		return DefaultBusinessHours()
	}

	// Every weekday key must be present; a partial schedule counts as a
	// wrong shape and falls back whole.
	for _, day := range weekdays {
		if _, ok := hours.Regular[day]; !ok {
			logrus.WithField("missing_day", day).Warn("incomplete business_hours, using default schedule")
			return DefaultBusinessHours()
		}
	}
	return hours
}

// ParseCustomizations resolves the duck-typed customization_options blob:
// object form passes through, string form is unquoted then parsed, anything
// else or any failure yields an empty map.
func ParseCustomizations(raw []byte) map[string]any {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return map[string]any{}
	}
	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			logrus.WithError(err).Debug("malformed customization_options string")
			return map[string]any{}
		}
		raw = []byte(inner)
	}
	var opts map[string]any
	if err := json.Unmarshal(raw, &opts); err != nil {
		logrus.WithError(err).Debug("malformed customization_options")
		return map[string]any{}
	}
	if opts == nil {
		return map[string]any{}
	}
	return opts
}

// ParseNutrition keeps every field nullable; a missing or malformed blob
// yields the all-nil struct.
func ParseNutrition(raw []byte) NutritionalInfo {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return NutritionalInfo{}
	}
	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return NutritionalInfo{}
		}
		raw = []byte(inner)
	}
	var info NutritionalInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		logrus.WithError(err).Debug("malformed nutritional_info")
		return NutritionalInfo{}
	}
	return info
}

// RestaurantFromRow normalizes a raw restaurants row into a fully defaulted
// Restaurant. The default policy lives here and nowhere else.
func RestaurantFromRow(row RestaurantRow) Restaurant {
	return Restaurant{
		ID:              row.ID,
		Name:            strOr(row.Name, "Unknown Restaurant"),
		Description:     strOr(row.Description, ""),
		Address:         strOr(row.Address, ""),
		Latitude:        floatOr(row.Latitude, 0),
		Longitude:       floatOr(row.Longitude, 0),
		Phone:           strOr(row.Phone, ""),
		Email:           strOr(row.Email, ""),
		Status:          restaurantStatusOr(row.Status),
		CuisineType:     strOr(row.CuisineType, ""),
		BannerImageURL:  strOr(row.BannerImageURL, ""),
		LogoURL:         strOr(row.LogoURL, ""),
		Rating:          floatOr(row.Rating, 0),
		TotalRatings:    intOr(row.TotalRatings, 0),
		AveragePrepTime: intOr(row.AveragePrepTime, DefaultPrepTime),
		MinimumOrder:    floatOr(row.MinimumOrder, 0),
		DeliveryFee:     floatOr(row.DeliveryFee, 0),
		BusinessHours:   ParseBusinessHours(row.BusinessHours),
		Trending:        boolOr(row.Trending, false),
		CreatedAt:       row.CreatedAt,
	}
}

// MenuItemFromRow normalizes a raw menu_items row. Available defaults to
// true unless the column explicitly says false.
func MenuItemFromRow(row MenuItemRow) MenuItem {
	updated := row.CreatedAt
	if row.UpdatedAt != nil {
		updated = *row.UpdatedAt
	}
	return MenuItem{
		ID:                   row.ID,
		RestaurantID:         row.RestaurantID,
		Name:                 row.Name,
		Description:          strOr(row.Description, ""),
		Price:                row.Price,
		ImageURL:             strOr(row.ImageURL, ""),
		Category:             strOr(row.Category, ""),
		Available:            boolOr(row.Available, true),
		Ingredients:          sliceOrEmpty(row.Ingredients),
		Allergens:            sliceOrEmpty(row.Allergens),
		DietaryPreferences:   sliceOrEmpty(row.DietaryPreferences),
		CustomizationOptions: ParseCustomizations(row.CustomizationOptions),
		NutritionalInfo:      ParseNutrition(row.NutritionalInfo),
		Rating:               floatOr(row.Rating, DefaultItemRating),
		PreparationTime:      intOr(row.PreparationTime, DefaultPrepTime),
		PopularityScore:      floatOr(row.PopularityScore, 0),
		CreatedAt:            row.CreatedAt,
		UpdatedAt:            updated,
	}
}

// Categories derives the tab list from loaded items: deduplicated, first-seen
// order, prefixed with the synthetic "all" category.
func Categories(items []MenuItem) []string {
	categories := []string{"all"}
	seen := map[string]bool{}
	for _, item := range items {
		if seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		categories = append(categories, item.Category)
	}
	return categories
}

// FilterByCategory returns items whose category matches exactly; "all"
// returns every item.
func FilterByCategory(items []MenuItem, category string) []MenuItem {
	if category == "all" {
		return items
	}
	filtered := []MenuItem{}
	for _, item := range items {
		if item.Category == category {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func strOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}

func floatOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}

func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

func sliceOrEmpty(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

func restaurantStatusOr(v *string) RestaurantStatus {
	if v == nil {
		return RestaurantClosed
	}
	switch RestaurantStatus(*v) {
	case RestaurantOpen, RestaurantClosed, RestaurantBusy:
		return RestaurantStatus(*v)
	}
	return RestaurantClosed
}
