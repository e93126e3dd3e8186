package constants

const (
	// OrderNumberPrefix prefixes synthesized order numbers.
	OrderNumberPrefix = "SO-"
	// OrderNumberLayout renders the timestamp part of a synthesized order number.
	OrderNumberLayout = "20060102150405"
	// CreatedAtLayout matches SQLite CURRENT_TIMESTAMP so both dialects sort the same way.
	CreatedAtLayout = "2006-01-02 15:04:05"

	// DefaultOrderStatus is stored on every new header.
	DefaultOrderStatus = 1
)

const (
	TableOrderHeader = "SalesOrderHeader"
	TableOrderDetail = "SalesOrderDetail"
)
