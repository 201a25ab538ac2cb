package domain

type EconomyData struct {
	ObjectCapacity          int32
	ObjectCount             int32
	PriceEnergyUnit         int32
	PriceGroupCreate        int32
	PriceObjectClaim        int32
	PriceObjectRent         float32
	PriceObjectScaleFactor  float32
	PriceParcelClaim        int32
	PriceParcelClaimFactor  float32
	PriceParcelRent         int32
	PricePublicObjectDecay  int32
	PricePublicObjectDelete int32
	PriceRentLight          int32
	PriceUpload             int32
	TeleportMinPrice        int32
	TeleportPriceExponent   float32
	EnergyEfficiency        float32
	SellEnabled             bool
}

func DefaultEconomyData() EconomyData {
	return EconomyData{
		PriceEnergyUnit:         100,
		PriceObjectClaim:        10,
		PricePublicObjectDecay:  4,
		PricePublicObjectDelete: 4,
		PriceParcelClaim:        1,
		PriceParcelClaimFactor:  1,
		PriceUpload:             0,
		PriceRentLight:          5,
		TeleportMinPrice:        2,
		TeleportPriceExponent:   2,
		EnergyEfficiency:        1,
		PriceObjectRent:         1,
		PriceObjectScaleFactor:  10,
		PriceParcelRent:         1,
		PriceGroupCreate:        0,
		SellEnabled:             true,
	}
}
