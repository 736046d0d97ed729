package core

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// MoneyFormatter renders amounts with a fixed currency symbol prefix.
type MoneyFormatter struct {
	symbol  string
	printer *message.Printer
}

func NewMoneyFormatter(conf *Config) *MoneyFormatter {
	tag, err := language.Parse(conf.Currency.Locale)
	if err != nil {
		tag = language.English
	}
	return &MoneyFormatter{
		symbol:  conf.Currency.Symbol,
		printer: message.NewPrinter(tag),
	}
}

// Format renders amount with grouping and two decimals, eg. ৳1,500.00
func (f *MoneyFormatter) Format(amount float64) string {
	return f.symbol + f.printer.Sprint(number.Decimal(amount, number.Scale(2)))
}
