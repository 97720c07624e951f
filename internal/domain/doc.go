// Package domain models California wildfire season data.
//
// # Data Source
//
// Seasons are distilled from CAL FIRE annual statistics for 2008-2020. Each
// season carries the year's aggregate figures (number of major fires, total
// acreage burned) plus its five largest fires by acreage.
//
// # Dataset Conventions
//
// Year encoding:
//
//	Years are nonzero integers; positive means AD, negative means BC. The
//	dataset itself only contains 2008-2020, but the sign convention is kept so
//	a zero year always signals a construction bug rather than real data.
//
// Fire cause:
//
//	Free-form strings from the source reports ("Lightning", "Arson",
//	"Structure", ...). "Under Investigation" is folded into "Unknown" upstream.
//
// Top five ordering:
//
//	A season's top five fires are ordered from most to least acreage. The
//	loader enforces this at parse time; [Season.Validate] re-checks it.
//
// # Reference Year
//
// ReferenceYear (2020) is the dataset's present. Seasons for later years only
// exist as forecasts produced by the forecast package; [IsForecast] is the
// single place that distinction is made. Forecast seasons carry placeholder
// per-fire acreage and structure counts that must never be shown to the user.
package domain
