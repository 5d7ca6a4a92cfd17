package quote

// ComputePrice turns the manufacturer's cost components into the persisted
// price breakdown:
//
//	subtotal     = material + labor + machine time
//	profitAmount = subtotal * margin% / 100
//	totalPrice   = subtotal + profitAmount
//
// Pure and unrounded; rounding is a presentation concern of the caller.
func ComputePrice(materialCost, laborCost, machineTimeCost, profitMarginPercent float64) (subtotal, profitAmount, totalPrice float64) {
	subtotal = materialCost + laborCost + machineTimeCost
	profitAmount = subtotal * (profitMarginPercent / 100)
	totalPrice = subtotal + profitAmount
	return subtotal, profitAmount, totalPrice
}
