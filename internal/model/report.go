package model

// ProductSales is a report row: total quantity sold for one product
// across all order items.
type ProductSales struct {
	ProductID     int64 `json:"productId"`
	TotalQuantity int   `json:"totalQuantity"`
}

// CustomerOrderCount is a report row: number of orders placed by one customer.
type CustomerOrderCount struct {
	CustomerID  int64 `json:"customerId"`
	TotalOrders int   `json:"totalOrders"`
}
