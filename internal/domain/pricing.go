package domain

// TotalPrice computes the price of a purchase in minor currency units: the
// seat's unit price for the premiere engagement plus the sum of each
// concession line's unit price times its quantity. Pure, no I/O.
func TotalPrice(seatUnitPrice int64, lines []ConcessionLine) int64 {
	total := seatUnitPrice

	for _, line := range lines {
		total += line.UnitPrice * int64(line.Quantity)
	}

	return total
}
