package analytics

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Antonio-Naoki/fintrack/internal/model"
)

// MonthPoint is one calendar month's figures in a monthly series.
type MonthPoint struct {
	Year     int
	Month    time.Month
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Balance  decimal.Decimal
}

var spanishShortMonths = [...]string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sep", "oct", "nov", "dic",
}

// Label returns the month in the "ene 24" display form.
func (p MonthPoint) Label() string {
	return fmt.Sprintf("%s %02d", spanishShortMonths[p.Month-1], p.Year%100)
}

// MonthlySeries returns one entry per calendar month from months-1 months
// before the reference date through the reference month, in chronological
// order. A non-positive months yields nil.
func MonthlySeries(txns []model.Transaction, ref time.Time, months int) []MonthPoint {
	if months <= 0 {
		return nil
	}
	series := make([]MonthPoint, 0, months)
	for i := months - 1; i >= 0; i-- {
		year, month := monthsBack(ref, i)

		var monthTxns []model.Transaction
		for _, txn := range txns {
			if txn.Date.Year() == year && txn.Date.Month() == month {
				monthTxns = append(monthTxns, txn)
			}
		}

		income := TotalByType(monthTxns, model.TypeIncome)
		expenses := TotalByType(monthTxns, model.TypeExpense)
		series = append(series, MonthPoint{
			Year:     year,
			Month:    month,
			Income:   income,
			Expenses: expenses,
			Balance:  income.Sub(expenses),
		})
	}
	return series
}

// WeekPoint is one fixed-width week bucket's figures in a weekly series.
type WeekPoint struct {
	Week     int
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Balance  decimal.Decimal
}

// Label returns the week in the "Semana 1" display form.
func (p WeekPoint) Label() string {
	return fmt.Sprintf("Semana %d", p.Week+1)
}

// WeeklySeries returns the four week buckets of the reference month, in
// order 0..3.
func WeeklySeries(txns []model.Transaction, ref time.Time) []WeekPoint {
	series := make([]WeekPoint, 0, 4)
	for week := 0; week < 4; week++ {
		weekTxns := Filter(txns, WeekOfMonth(week), ref)

		income := TotalByType(weekTxns, model.TypeIncome)
		expenses := TotalByType(weekTxns, model.TypeExpense)
		series = append(series, WeekPoint{
			Week:     week,
			Income:   income,
			Expenses: expenses,
			Balance:  income.Sub(expenses),
		})
	}
	return series
}

// monthsBack returns the (year, month) pair i calendar months before the
// reference date's month. Plain AddDate is avoided: it normalizes
// overflowing days and can skip a month when called late in a long month.
func monthsBack(ref time.Time, i int) (int, time.Month) {
	year, month := ref.Year(), int(ref.Month())
	month -= i
	for month < 1 {
		month += 12
		year--
	}
	return year, time.Month(month)
}
