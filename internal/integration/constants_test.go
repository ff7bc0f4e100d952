package integration_test

const (
	// Account related constants
	TestAccountId      = 1
	TestOtherAccountId = 2
	TestAccountEmail   = "ada@example.com"

	// Catalog related constants
	TestPremiereId        = 1
	TestOtherPremiereId   = 2
	TestPricedSeatId      = 1
	TestOtherPricedSeatId = 2
	TestUnpricedSeatId    = 3
	TestCinemaId          = 1
	TestPopcornItemId     = 1
	TestScarceSodaItemId  = 2
	TestPopcornStock      = 40
	TestScarceSodaStock   = 1
	TestSeatPriceMinor    = 10000
	TestPopcornPriceMinor = 2000
	TestSodaPriceMinor    = 500
)
