package store

// Product is priced in cents.
type Product struct {
	ID         int64
	PriceCents int64
	Inventory  int
	Weight     Grams
}

type Grams float64

type OrderItem struct {
	ProductID int64
	Quantity  uint32
	UnitPrice int64
}

const maxQuantity = uint16(1000)

var defaultDiscount = float32(0.15)

// Total returns the order total and the number of boxes needed.
func Total(items []OrderItem) (int64, uint8) {
	var total int64
	var count uint32
	for _, it := range items {
		total += it.UnitPrice * int64(it.Quantity)
		count += it.Quantity
	}

	boxes := uint8(count / 10)
	return total, boxes
}

func (p Product) Kilos() int32 {
	return int32(p.Weight / 1000)
}

func Discounted(cents int64) float32 {
	return float32(cents) * (1 - defaultDiscount)
}
