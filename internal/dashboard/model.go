package dashboard

type Stats struct {
	TotalProducts    int     `json:"total_products"`
	LowStockAlerts   int     `json:"low_stock_alerts"`
	TotalOrders      int     `json:"total_orders"`
	PendingOrders    int     `json:"pending_orders"`
	TodaySales       float64 `json:"today_sales"`
	MonthlySales     float64 `json:"monthly_sales"`
	TotalCustomers   int     `json:"total_customers"`
	WhatsAppMessages int     `json:"whatsapp_messages"`
}
