package domain

import "github.com/shopspring/decimal"

// MoneyPlaces количество знаков после запятой для денежных сумм (NUMERIC(12,2)).
const MoneyPlaces = 2

// RatingPlaces количество знаков после запятой в рейтинге пользователя.
const RatingPlaces = 2

var hundred = decimal.NewFromInt(100) //nolint:gochecknoglobals

// Commission считает комиссию площадки: price * ratePercent / 100, округленную до копеек.
func Commission(price, ratePercent decimal.Decimal) decimal.Decimal {
	return price.Mul(ratePercent).Div(hundred).Round(MoneyPlaces)
}

// NextRating возвращает новое среднее значение рейтинга после добавления оценки rating
// к среднему avg из count оценок.
func NextRating(avg decimal.Decimal, count int, rating int) decimal.Decimal {
	total := avg.Mul(decimal.NewFromInt(int64(count))).Add(decimal.NewFromInt(int64(rating)))
	return total.Div(decimal.NewFromInt(int64(count + 1))).Round(RatingPlaces)
}

// NormalizeMoney округляет сумму до копеек.
func NormalizeMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MoneyPlaces)
}
