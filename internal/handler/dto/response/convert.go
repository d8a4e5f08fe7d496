package response

import (
	"rental-core/internal/pkg/errs"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// Money is rendered with two decimals.
var copyOptions = copier.Option{
	DeepCopy: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				d, ok := src.(decimal.Decimal)
				if !ok {
					return nil, errs.New("expected decimal.Decimal")
				}
				return d.StringFixed(2), nil
			},
		},
	},
}

func copyInto(dst, src any) error {
	if err := copier.CopyWithOption(dst, src, copyOptions); err != nil {
		return errs.Wrap(err, "failed to map view to response")
	}
	return nil
}

func mapAll[V any, R any](views []*V) ([]*R, error) {
	res := make([]*R, len(views))
	for i, v := range views {
		r := new(R)
		if err := copyInto(r, v); err != nil {
			return nil, err
		}
		res[i] = r
	}
	return res, nil
}

// Page wraps one page of a keyset-paginated listing.
type Page[T any] struct {
	Items      []*T    `json:"items"`
	NextCursor *string `json:"next_cursor,omitempty"`
}
