package response

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// money renders amounts with two decimal places
var money = copier.TypeConverter{
	SrcType: decimal.Decimal{},
	DstType: copier.String,
	Fn: func(src any) (any, error) {
		d, ok := src.(decimal.Decimal)
		if !ok {
			return nil, fmt.Errorf("expected decimal.Decimal, got %T", src)
		}
		return d.StringFixed(2), nil
	},
}

func copyView(dst, src any) {
	// views and responses share field names; a failure here is a programming error
	if err := copier.CopyWithOption(dst, src, copier.Option{
		Converters: []copier.TypeConverter{money},
	}); err != nil {
		panic(fmt.Sprintf("copy %T into %T: %v", src, dst, err))
	}
}
