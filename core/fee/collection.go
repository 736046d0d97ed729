package fee

import (
	"strconv"
	"time"

	"github.com/trezcool/schoolhub/core"
	"github.com/trezcool/schoolhub/core/resource"
)

var (
	Months = []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	PaymentMethods = []string{"Cash", "Bank Transfer", "Mobile Banking", "Card Payment", "Cheque"}

	CollectionResource = resource.Resource{Path: "fee-collections", ListKey: "collections"}

	nowFunc = time.Now // mockable
)

// CollectionDraft holds the editable fields of a fee payment.
type CollectionDraft struct {
	Date          string  `json:"date" validate:"required,isodate"`
	StudentID     string  `json:"studentId" validate:"notblank"`
	FeeID         string  `json:"feeId" validate:"notblank"`
	Month         string  `json:"month"`
	Year          string  `json:"year"`
	Quantity      int     `json:"quantity" validate:"gte=0"`
	AmountPaid    float64 `json:"amountPaid" validate:"gt=0"`
	PaymentMethod string  `json:"paymentMethod" validate:"notblank"`
	Description   string  `json:"description"`
}

// Collection is a recorded fee payment.
type Collection struct {
	CollectionID string `json:"collectionId"`
	CollectionDraft
}

// Years returns the selectable years: two before and two after the current one.
func Years() []string {
	cur := nowFunc().Year()
	years := make([]string, 0, 5)
	for y := cur - 2; y <= cur+2; y++ {
		years = append(years, strconv.Itoa(y))
	}
	return years
}

// TotalAmount sums what was paid over the given collections.
func TotalAmount(cols []Collection) float64 {
	var total float64
	for _, c := range cols {
		total += c.AmountPaid
	}
	return total
}

type CollectionScreen = resource.Controller[Collection, CollectionDraft]

// NewCollectionProjection searches by student and fee id, and filters by month, year and payment method.
func NewCollectionProjection() *resource.Projection[Collection] {
	return resource.NewProjection(
		func(c Collection) string { return c.StudentID },
		func(c Collection) string { return c.FeeID },
	).
		WithSelector("month", func(c Collection) string { return c.Month }).
		WithSelector("year", func(c Collection) string { return c.Year }).
		WithSelector("paymentMethod", func(c Collection) string { return c.PaymentMethod })
}

func blankCollection() CollectionDraft {
	return CollectionDraft{
		Year:     strconv.Itoa(nowFunc().Year()),
		Quantity: 1,
	}
}

func NewCollectionScreen(conf *core.Config, deps resource.Deps, opts ...resource.ClientOption) *CollectionScreen {
	client := resource.NewClient[Collection, CollectionDraft](conf, CollectionResource, opts...)
	return resource.NewController[Collection, CollectionDraft](client, resource.Policy[Collection, CollectionDraft]{
		Singular:   "fee collection",
		Plural:     "fee collections",
		Key:        func(c Collection) resource.Key { return resource.Key{c.CollectionID} },
		Blank:      blankCollection,
		Seed:       func(c Collection) CollectionDraft { return c.CollectionDraft },
		Projection: NewCollectionProjection(),
	}, deps)
}
