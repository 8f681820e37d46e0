package orders

const (
	TopicOrderPlaced        = "order.placed"
	TopicOrderStatusChanged = "order.status.changed"
)

// Partition key = order id so events of one order stay ordered.
func PartitionKey(orderID string) []byte { return []byte(orderID) }
