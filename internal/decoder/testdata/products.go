package testdata

import (
	"github.com/MichalMitros/cartlinker/internal/decoder"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Product is expected result of decoding product.json.
var Product = decoder.Product{
	Title: lo.ToPtr("ちいかわ マグカップ"),
	Tags:  &[]string{"予約販売", "mug"},
	Variants: &[]decoder.Variant{
		{
			ID:        lo.ToPtr(int64(44111111111111)),
			Title:     "Default Title",
			Available: true,
			Price:     lo.ToPtr(decimal.NewFromInt(1650)),
		},
		{
			ID:        lo.ToPtr(int64(44222222222222)),
			Title:     "ハチワレ",
			Available: false,
			Price:     lo.ToPtr(decimal.NewFromInt(1650)),
		},
	},
}

// CollectionHandles are handles listed in collection.json.
var CollectionHandles = []string{"chiikawa-mug", "usagi-plush", "hachiware-keychain"}

// PageHandles are distinct product handles linked from page.html.
var PageHandles = []string{"chiikawa-mug", "usagi-plush", "hachiware-keychain"}
