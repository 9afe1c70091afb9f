package warehouse

type Address struct {
	ID         uint32
	PostalCode uint16
}

func Key(a Address) uint64 {
	return uint64(a.ID)<<16 | uint64(a.PostalCode)
}

func Weight(grams uint16) float32 {
	return float32(grams)
}
