package domain

// FareBreakdown is the priced view of a selection. Total is always
// Subtotal + Tax + Fee; Tax is derived from Subtotal, never set on its own.
type FareBreakdown struct {
	Subtotal int64
	Tax      int64
	Fee      int64
	Total    int64
}
