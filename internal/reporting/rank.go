package reporting

import (
	"sort"

	"github.com/dairyledger/dairyledger/internal/ledger"
)

// ProductRank is one row of the top selling products table.
type ProductRank struct {
	ProductName   string `json:"product_name"`
	TotalQuantity int    `json:"total_sales"`
}

// TopProducts groups the sales by product name, sums units sold per group
// and returns at most n products, best seller first. Equal quantities are
// broken by product name ascending so repeated calls over unchanged data
// always rank identically. An empty history yields an empty slice.
func TopProducts(sales []ledger.Sale, n int) []ProductRank {
	if n <= 0 {
		return []ProductRank{}
	}

	quantities := make(map[string]int)
	for _, sale := range sales {
		quantities[sale.ProductName] += sale.Quantity
	}

	ranking := make([]ProductRank, 0, len(quantities))
	for name, qty := range quantities {
		ranking = append(ranking, ProductRank{ProductName: name, TotalQuantity: qty})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].TotalQuantity != ranking[j].TotalQuantity {
			return ranking[i].TotalQuantity > ranking[j].TotalQuantity
		}
		return ranking[i].ProductName < ranking[j].ProductName
	})

	if len(ranking) > n {
		ranking = ranking[:n]
	}
	return ranking
}
